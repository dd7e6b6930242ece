package main

import (
	"os"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/api"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/constants"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load the card configuration file (required). Path may be provided via
	// BATTLER_CONFIG or defaults to ./battler_config.json in the current
	// working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via BATTLER_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath, cfg)

	handler := api.NewBattleHandler(repo, cfg.Cards, cfg.Pool, cfg.MaxStoredEvents)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteCards, handler.ListCards)
		apiRoutes.POST(constants.RouteBattles, handler.ResolveBattle)
		apiRoutes.GET(constants.RouteBattleByID, handler.GetBattle)
		apiRoutes.POST(constants.RouteTurns, handler.CommitTurn)
		apiRoutes.GET(constants.RoutePlayerByID, handler.GetPlayer)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, api.Version)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr, constants.LogFieldCards: len(cfg.Cards)})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
