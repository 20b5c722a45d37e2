package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/avelline/stagelist/config"
	"github.com/avelline/stagelist/internal/repository"
	"github.com/avelline/stagelist/internal/service/domain"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Logger *zap.Logger

	VenueRepo  repository.VenueRepo
	ArtistRepo repository.ArtistRepo
	ShowRepo   repository.ShowRepo

	VenueService  domain.VenueService
	ArtistService domain.ArtistService
	ShowService   domain.ShowService
}

func New(config *config.Config, db *gorm.DB, logger *zap.Logger) *App {
	venueRepo := repository.NewVenueRepoGorm(db)
	artistRepo := repository.NewArtistRepoGorm(db)
	showRepo := repository.NewShowRepoGorm(db)

	venueService := domain.NewVenueService(db, venueRepo, showRepo)
	artistService := domain.NewArtistService(db, artistRepo, showRepo)
	showService := domain.NewShowService(db, showRepo, artistRepo, venueRepo)

	return &App{
		Config:        config,
		DB:            db,
		Logger:        logger,
		VenueRepo:     venueRepo,
		ArtistRepo:    artistRepo,
		ShowRepo:      showRepo,
		VenueService:  venueService,
		ArtistService: artistService,
		ShowService:   showService,
	}
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
