package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/avelline/stagelist/internal/model"
	"github.com/avelline/stagelist/internal/repository"
	"github.com/avelline/stagelist/internal/service"
)

type ArtistFields struct {
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingTalent      bool
	SeekingDescription string
}

type ArtistService interface {
	CreateArtist(fields ArtistFields, genreNames []string) (*model.Artist, error)
	GetArtistByID(id uint) (*model.Artist, error)
	ListAllArtists() ([]model.Artist, error)
	SearchArtistsByName(term string) ([]model.Artist, error)
	ArtistShows(id uint) (past, upcoming []model.Show, err error)
	UpdateArtist(id uint, fields ArtistFields, genreNames []string) error
}

type artistService struct {
	db       *gorm.DB
	repo     repository.ArtistRepo
	showRepo repository.ShowRepo
	now      func() time.Time
}

var _ ArtistService = (*artistService)(nil)

func NewArtistService(db *gorm.DB, artistRepo repository.ArtistRepo, showRepo repository.ShowRepo) *artistService {
	return &artistService{
		db:       db,
		repo:     artistRepo,
		showRepo: showRepo,
		now:      time.Now,
	}
}

func (s *artistService) CreateArtist(fields ArtistFields, genreNames []string) (*model.Artist, error) {
	artist := &model.Artist{}
	applyArtistFields(artist, fields)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(artist); err != nil {
			return err
		}
		return repo.ReplaceGenres(artist.ID, genreNames)
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *artistService) GetArtistByID(id uint) (*model.Artist, error) {
	artist, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) ListAllArtists() ([]model.Artist, error) {
	return s.repo.ListAll()
}

func (s *artistService) SearchArtistsByName(term string) ([]model.Artist, error) {
	return s.repo.SearchByName(term)
}

func (s *artistService) ArtistShows(id uint) ([]model.Show, []model.Show, error) {
	now := s.now()
	past, err := s.showRepo.ListForArtist(id, repository.FilterPast, now)
	if err != nil {
		return nil, nil, err
	}
	upcoming, err := s.showRepo.ListForArtist(id, repository.FilterUpcoming, now)
	if err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

func (s *artistService) UpdateArtist(id uint, fields ArtistFields, genreNames []string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		artist, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		applyArtistFields(artist, fields)
		artist.Genres = nil
		if err := repo.Save(artist); err != nil {
			return err
		}
		return repo.ReplaceGenres(id, genreNames)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return service.ErrNotFound
	}
	return err
}

func applyArtistFields(artist *model.Artist, fields ArtistFields) {
	artist.Name = fields.Name
	artist.City = fields.City
	artist.State = fields.State
	artist.Phone = fields.Phone
	artist.ImageLink = fields.ImageLink
	artist.FacebookLink = fields.FacebookLink
	artist.WebsiteLink = fields.WebsiteLink
	artist.SeekingTalent = fields.SeekingTalent
	artist.SeekingDescription = fields.SeekingDescription
}
