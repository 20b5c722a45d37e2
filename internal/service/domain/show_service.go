package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/avelline/stagelist/internal/model"
	"github.com/avelline/stagelist/internal/repository"
	"github.com/avelline/stagelist/internal/service"
)

type ShowService interface {
	CreateShow(artistID, venueID uint, startTime time.Time) (*model.Show, error)
	ListAllShows() ([]model.Show, error)
}

type showService struct {
	db         *gorm.DB
	repo       repository.ShowRepo
	artistRepo repository.ArtistRepo
	venueRepo  repository.VenueRepo
	now        func() time.Time
}

var _ ShowService = (*showService)(nil)

func NewShowService(db *gorm.DB, showRepo repository.ShowRepo, artistRepo repository.ArtistRepo, venueRepo repository.VenueRepo) *showService {
	return &showService{
		db:         db,
		repo:       showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		now:        time.Now,
	}
}

// CreateShow books an artist at a venue. Both references are resolved first
// so a dangling id surfaces as ErrConstraint instead of a driver error. A
// zero start time means "now", matching the schema default of the listing.
func (s *showService) CreateShow(artistID, venueID uint, startTime time.Time) (*model.Show, error) {
	if startTime.IsZero() {
		startTime = s.now()
	}
	show := &model.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.artistRepo.WithTx(tx).GetByID(artistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrConstraint
			}
			return err
		}
		if _, err := s.venueRepo.WithTx(tx).GetByID(venueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrConstraint
			}
			return err
		}
		return s.repo.WithTx(tx).Create(show)
	})
	if err != nil {
		return nil, err
	}
	return show, nil
}

func (s *showService) ListAllShows() ([]model.Show, error) {
	return s.repo.ListAll()
}
