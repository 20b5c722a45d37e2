package model

import (
	"time"
)

type Venue struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:120;not null"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:120"`
	Address            string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	WebsiteLink        string `gorm:"size:120"`
	FacebookLink       string `gorm:"size:120"`
	SeekingTalent      bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`
	ImageLink          string `gorm:"size:500"`

	Genres []Genre `gorm:"foreignKey:VenueID"`
}

type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"size:120;not null"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	WebsiteLink        string `gorm:"size:120"`
	SeekingTalent      bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`

	Genres []Genre `gorm:"foreignKey:ArtistID"`
}

// Genre is a free-text style label owned by exactly one venue or artist.
// Rows are replaced wholesale whenever the owner is edited.
type Genre struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:120;not null"`
	VenueID  *uint  `gorm:"index"`
	ArtistID *uint  `gorm:"index"`
}

// Show links one artist to one venue at a start time. It doubles as the
// association row that makes the venue/artist relationship many-to-many.
type Show struct {
	ID        uint      `gorm:"primaryKey"`
	ArtistID  uint      `gorm:"not null;index"`
	VenueID   uint      `gorm:"not null;index"`
	StartTime time.Time `gorm:"not null;index"`

	Artist Artist `gorm:"constraint:OnDelete:RESTRICT"`
	Venue  Venue  `gorm:"constraint:OnDelete:RESTRICT"`
}
