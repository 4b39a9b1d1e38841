package main

import (
	"log"

	"github.com/unasp/eighthealth/cmd"
	"github.com/unasp/eighthealth/internal/config"
	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/storage/bolt"
	"github.com/unasp/eighthealth/internal/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	store, err := bolt.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer store.Close()

	trk, err := tracker.New(store)
	if err != nil {
		log.Fatalf("failed to load stores: %v", err)
	}

	cmd.Init(trk, cfg)
	cmd.Execute()
}
