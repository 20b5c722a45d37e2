package main

import (
	"log"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/avelline/stagelist/config"
	"github.com/avelline/stagelist/internal/app"
	"github.com/avelline/stagelist/internal/handler"
	"github.com/avelline/stagelist/internal/model"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.Venue{}, &model.Artist{}, &model.Genre{}, &model.Show{}); err != nil {
		logger.Fatal("migrate schema", zap.Error(err))
	}

	application := app.New(cfg, db, logger)
	defer application.Close()

	router := handler.NewRouter(application)
	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
