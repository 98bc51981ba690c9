package main

import (
	"fmt"

	"andes-autoparts/internal/auth"
	"andes-autoparts/internal/catalog"
	"andes-autoparts/internal/config"
	"andes-autoparts/internal/database"
	"andes-autoparts/internal/handlers"
	"andes-autoparts/internal/logging"
	"andes-autoparts/internal/server"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if err := cfg.CheckServer(); err != nil {
		log.WithError(err).Fatal("invalid server config")
	}
	logging.Setup(cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}

	store, err := server.NewSessionStore(cfg.SessionStore, cfg.SessionSecret)
	if err != nil {
		log.WithError(err).Fatal("failed to create session store")
	}

	h := handlers.New(
		auth.NewService(db),
		catalog.NewService(catalog.NewGORMPartRepository(db), cfg.RankScope),
	)
	r := server.NewRouter(h, store)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.WithFields(log.Fields{"addr": addr, "rank_scope": cfg.RankScope}).Info("starting server")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
