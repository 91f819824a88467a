package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
	"github.com/HennaArtStudio/henna-booking-api/internal/db"
	"github.com/HennaArtStudio/henna-booking-api/internal/logger"
	"github.com/HennaArtStudio/henna-booking-api/internal/mailer"
	"github.com/HennaArtStudio/henna-booking-api/internal/media"
	"github.com/HennaArtStudio/henna-booking-api/internal/middleware"
	"github.com/HennaArtStudio/henna-booking-api/internal/routes"
	"github.com/HennaArtStudio/henna-booking-api/internal/tokens"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()

	database := db.NewDB(cfg)
	tokenStore := tokens.NewStore(cfg)
	mediaStore := media.NewStore(cfg)
	m := mailer.New(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg, tokenStore, mediaStore, m)

	logger.Log.Info("starting server", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
