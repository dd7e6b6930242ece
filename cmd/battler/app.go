package main

import (
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/config"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/logging"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid battler configuration", err, logging.Fields{"config_path": path, "hint": "create a battler_config.json with a 'card_list' array of card objects (id,name,attack,health,play_cost,pitch_value,token,abilities) and an optional server.address"})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cfg *config.LoadedConfig) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, cfg.Cards)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
