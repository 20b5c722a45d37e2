package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/avelline/stagelist/internal/model"
	"github.com/avelline/stagelist/internal/repository"
	"github.com/avelline/stagelist/internal/service"
)

// VenueFields carries every scalar column of a venue. Create and update
// overwrite all of them unconditionally; there is no partial update.
type VenueFields struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
}

type VenueService interface {
	CreateVenue(fields VenueFields, genreNames []string) (*model.Venue, error)
	GetVenueByID(id uint) (*model.Venue, error)
	ListVenuesWithUpcomingCounts() ([]model.Venue, map[uint]int64, error)
	SearchVenuesByName(term string) ([]model.Venue, error)
	VenueShows(id uint) (past, upcoming []model.Show, err error)
	UpdateVenue(id uint, fields VenueFields, genreNames []string) error
	DeleteVenue(id uint) error
}

type venueService struct {
	db       *gorm.DB
	repo     repository.VenueRepo
	showRepo repository.ShowRepo
	now      func() time.Time
}

var _ VenueService = (*venueService)(nil)

func NewVenueService(db *gorm.DB, venueRepo repository.VenueRepo, showRepo repository.ShowRepo) *venueService {
	return &venueService{
		db:       db,
		repo:     venueRepo,
		showRepo: showRepo,
		now:      time.Now,
	}
}

// CreateVenue inserts the venue row and one genre row per name inside a
// single transaction; a failure rolls everything back.
func (s *venueService) CreateVenue(fields VenueFields, genreNames []string) (*model.Venue, error) {
	venue := &model.Venue{}
	applyVenueFields(venue, fields)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(venue); err != nil {
			return err
		}
		return repo.ReplaceGenres(venue.ID, genreNames)
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *venueService) GetVenueByID(id uint) (*model.Venue, error) {
	venue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return venue, nil
}

// ListVenuesWithUpcomingCounts returns every venue ordered by (city, state,
// id) plus, per venue id, the number of shows starting at or after now.
func (s *venueService) ListVenuesWithUpcomingCounts() ([]model.Venue, map[uint]int64, error) {
	venues, err := s.repo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	now := s.now()
	counts := make(map[uint]int64, len(venues))
	for _, venue := range venues {
		count, err := s.showRepo.CountUpcomingForVenue(venue.ID, now)
		if err != nil {
			return nil, nil, err
		}
		counts[venue.ID] = count
	}
	return venues, counts, nil
}

func (s *venueService) SearchVenuesByName(term string) ([]model.Venue, error) {
	return s.repo.SearchByName(term)
}

// VenueShows splits the venue's shows around a single instant so a show
// cannot land in both buckets. Shows starting exactly now are upcoming.
func (s *venueService) VenueShows(id uint) ([]model.Show, []model.Show, error) {
	now := s.now()
	past, err := s.showRepo.ListForVenue(id, repository.FilterPast, now)
	if err != nil {
		return nil, nil, err
	}
	upcoming, err := s.showRepo.ListForVenue(id, repository.FilterUpcoming, now)
	if err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

// UpdateVenue overwrites every scalar field and replaces the genre set.
// A missing id fails with ErrNotFound before anything is written.
func (s *venueService) UpdateVenue(id uint, fields VenueFields, genreNames []string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		venue, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		applyVenueFields(venue, fields)
		venue.Genres = nil
		if err := repo.Save(venue); err != nil {
			return err
		}
		return repo.ReplaceGenres(id, genreNames)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}

// DeleteVenue removes the venue and its genre rows. Venues still referenced
// by a show are rejected with ErrConflict rather than cascaded.
func (s *venueService) DeleteVenue(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.GetByID(id); err != nil {
			return err
		}
		count, err := s.showRepo.WithTx(tx).CountForVenue(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return service.ErrConflict
		}
		if err := repo.ReplaceGenres(id, nil); err != nil {
			return err
		}
		return repo.Delete(id)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}

func applyVenueFields(venue *model.Venue, fields VenueFields) {
	venue.Name = fields.Name
	venue.City = fields.City
	venue.State = fields.State
	venue.Address = fields.Address
	venue.Phone = fields.Phone
	venue.WebsiteLink = fields.WebsiteLink
	venue.FacebookLink = fields.FacebookLink
	venue.SeekingTalent = fields.SeekingTalent
	venue.SeekingDescription = fields.SeekingDescription
	venue.ImageLink = fields.ImageLink
}
