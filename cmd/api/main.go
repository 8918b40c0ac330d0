package main

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/repository"
	"storefront/internal/routes"
	"storefront/internal/session"
)

func main() {
	cfg := config.LoadConfig()

	store := repository.NewStore(cfg.DataFile)
	sessions := session.New(cfg.SessionTTL)
	credentials := auth.StaticCredentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.RegisterRoutes(router, store, sessions, credentials, cfg.StaticDir)

	log.Info("🚀 Server running on port ", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
