package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/avelline/stagelist/internal/model"
)

type ArtistRepo interface {
	WithTx(tx *gorm.DB) ArtistRepo
	Create(artist *model.Artist) error
	GetByID(id uint) (*model.Artist, error)
	ListAll() ([]model.Artist, error)
	SearchByName(term string) ([]model.Artist, error)
	Save(artist *model.Artist) error
	ReplaceGenres(artistID uint, names []string) error
}

type artistRepoGorm struct {
	db *gorm.DB
}

var _ ArtistRepo = (*artistRepoGorm)(nil)

func NewArtistRepoGorm(db *gorm.DB) *artistRepoGorm {
	return &artistRepoGorm{
		db: db,
	}
}

func (r *artistRepoGorm) WithTx(tx *gorm.DB) ArtistRepo {
	return &artistRepoGorm{
		db: tx,
	}
}

func (r *artistRepoGorm) Create(artist *model.Artist) error {
	ctx := context.Background()
	if err := gorm.G[model.Artist](r.db).Create(ctx, artist); err != nil {
		return err
	}
	return nil
}

func (r *artistRepoGorm) GetByID(id uint) (*model.Artist, error) {
	var artist model.Artist
	err := r.db.
		Preload("Genres", func(db *gorm.DB) *gorm.DB { return db.Order("genres.id") }).
		First(&artist, id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepoGorm) ListAll() ([]model.Artist, error) {
	ctx := context.Background()
	artists, err := gorm.G[model.Artist](r.db).Order("id").Find(ctx)
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepoGorm) SearchByName(term string) ([]model.Artist, error) {
	ctx := context.Background()
	artists, err := gorm.G[model.Artist](r.db).
		Where("lower(name) LIKE lower(?)", "%"+term+"%").
		Order("id").
		Find(ctx)
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepoGorm) Save(artist *model.Artist) error {
	return r.db.Save(artist).Error
}

func (r *artistRepoGorm) ReplaceGenres(artistID uint, names []string) error {
	if err := r.db.Where("artist_id = ?", artistID).Delete(&model.Genre{}).Error; err != nil {
		return err
	}
	for _, name := range names {
		genre := model.Genre{Name: name, ArtistID: &artistID}
		if err := r.db.Create(&genre).Error; err != nil {
			return err
		}
	}
	return nil
}
