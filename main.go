package main

import (
	"log"
	"os"

	"scambase-bot/bot"
	"scambase-bot/config"
	"scambase-bot/handlers"
	"scambase-bot/registry"
	"scambase-bot/utils"
	"scambase-bot/utils/database"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := os.MkdirAll("./data", os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	store := config.NewStore(cfg, config.DefaultPath)

	auditDB, err := database.InitAuditDB(cfg.AuditDBPath)
	if err != nil {
		log.Fatalf("Error initializing audit database: %v", err)
	}

	reg, err := registry.Open(cfg.DatabasePath, func(identity string) bool {
		return utils.IsAdmin(store.Roles(), identity)
	})
	if err != nil {
		log.Fatalf("Error opening scammer database: %v", err)
	}

	b, err := bot.New(store, reg, auditDB)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	defer b.Close()
	b.Run()
}
