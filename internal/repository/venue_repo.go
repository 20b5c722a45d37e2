package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/avelline/stagelist/internal/model"
)

type VenueRepo interface {
	WithTx(tx *gorm.DB) VenueRepo
	Create(venue *model.Venue) error
	GetByID(id uint) (*model.Venue, error)
	ListAll() ([]model.Venue, error)
	SearchByName(term string) ([]model.Venue, error)
	Save(venue *model.Venue) error
	ReplaceGenres(venueID uint, names []string) error
	Delete(id uint) error
}

type venueRepoGorm struct {
	db *gorm.DB
}

var _ VenueRepo = (*venueRepoGorm)(nil)

func NewVenueRepoGorm(db *gorm.DB) *venueRepoGorm {
	return &venueRepoGorm{
		db: db,
	}
}

func (r *venueRepoGorm) WithTx(tx *gorm.DB) VenueRepo {
	return &venueRepoGorm{
		db: tx,
	}
}

func (r *venueRepoGorm) Create(venue *model.Venue) error {
	ctx := context.Background()
	if err := gorm.G[model.Venue](r.db).Create(ctx, venue); err != nil {
		return err
	}
	return nil
}

// GetByID loads the venue together with its genres in insertion order.
func (r *venueRepoGorm) GetByID(id uint) (*model.Venue, error) {
	var venue model.Venue
	err := r.db.
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		First(&venue, id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// ListAll orders by (city, state, id) so that grouping by city is
// deterministic across calls.
func (r *venueRepoGorm) ListAll() ([]model.Venue, error) {
	ctx := context.Background()
	venues, err := gorm.G[model.Venue](r.db).Order("city, state, id").Find(ctx)
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchByName matches a case-insensitive substring. An empty term matches
// every venue.
func (r *venueRepoGorm) SearchByName(term string) ([]model.Venue, error) {
	ctx := context.Background()
	venues, err := gorm.G[model.Venue](r.db).
		Where("lower(name) LIKE lower(?)", "%"+term+"%").
		Order("id").
		Find(ctx)
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepoGorm) Save(venue *model.Venue) error {
	return r.db.Save(venue).Error
}

// ReplaceGenres discards every genre row owned by the venue and inserts the
// given names one by one, so ids preserve the submitted order.
func (r *venueRepoGorm) ReplaceGenres(venueID uint, names []string) error {
	if err := r.db.Where("venue_id = ?", venueID).Delete(&model.Genre{}).Error; err != nil {
		return err
	}
	for _, name := range names {
		genre := model.Genre{Name: name, VenueID: &venueID}
		if err := r.db.Create(&genre).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *venueRepoGorm) Delete(id uint) error {
	return r.db.Delete(&model.Venue{}, id).Error
}
