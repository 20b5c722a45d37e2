package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/avelline/stagelist/internal/model"
)

// TimeFilter selects which side of "now" a show listing covers. A show
// starting exactly at the query instant counts as upcoming.
type TimeFilter int

const (
	FilterPast TimeFilter = iota
	FilterUpcoming
)

func (f TimeFilter) cond() string {
	if f == FilterUpcoming {
		return "start_time >= ?"
	}
	return "start_time < ?"
}

type ShowRepo interface {
	WithTx(tx *gorm.DB) ShowRepo
	Create(show *model.Show) error
	ListAll() ([]model.Show, error)
	ListForVenue(venueID uint, filter TimeFilter, now time.Time) ([]model.Show, error)
	ListForArtist(artistID uint, filter TimeFilter, now time.Time) ([]model.Show, error)
	CountUpcomingForVenue(venueID uint, now time.Time) (int64, error)
	CountForVenue(venueID uint) (int64, error)
}

type showRepoGorm struct {
	db *gorm.DB
}

var _ ShowRepo = (*showRepoGorm)(nil)

func NewShowRepoGorm(db *gorm.DB) *showRepoGorm {
	return &showRepoGorm{
		db: db,
	}
}

func (r *showRepoGorm) WithTx(tx *gorm.DB) ShowRepo {
	return &showRepoGorm{
		db: tx,
	}
}

func (r *showRepoGorm) Create(show *model.Show) error {
	ctx := context.Background()
	if err := gorm.G[model.Show](r.db).Create(ctx, show); err != nil {
		return err
	}
	return nil
}

// ListAll returns every show with its venue and artist loaded for the
// full listing page.
func (r *showRepoGorm) ListAll() ([]model.Show, error) {
	var shows []model.Show
	err := r.db.
		Preload("Venue").
		Preload("Artist").
		Order("start_time, id").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepoGorm) ListForVenue(venueID uint, filter TimeFilter, now time.Time) ([]model.Show, error) {
	var shows []model.Show
	err := r.db.
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Where(filter.cond(), now).
		Order("start_time, id").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepoGorm) ListForArtist(artistID uint, filter TimeFilter, now time.Time) ([]model.Show, error) {
	var shows []model.Show
	err := r.db.
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Where(filter.cond(), now).
		Order("start_time, id").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepoGorm) CountUpcomingForVenue(venueID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Show{}).
		Where("venue_id = ?", venueID).
		Where(FilterUpcoming.cond(), now).
		Count(&count).Error
	return count, err
}

func (r *showRepoGorm) CountForVenue(venueID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Show{}).
		Where("venue_id = ?", venueID).
		Count(&count).Error
	return count, err
}
