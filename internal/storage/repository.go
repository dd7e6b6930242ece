package storage

import "github.com/shawntabrizi/open-auto-battler-sub000/internal/game"

type Repository interface {
	// GetPlayerByName returns a player by display name (case-insensitive).
	GetPlayerByName(name string) (*Player, error)
	// UpsertPlayer returns the named player, creating an empty profile on
	// first sight.
	UpsertPlayer(name string) (*Player, error)
	SavePlayer(p *Player) error
	// GetTopPlayers returns the leaderboard ordered by wins, then games
	// played.
	GetTopPlayers(limit int) ([]Player, error)
	// UpdateStatsOnBattleEnd applies one battle outcome to a profile.
	UpdateStatsOnBattleEnd(playerID uint, result game.BattleResult) error

	CreateBattle(rec *BattleRecord) error
	GetBattleByID(id uint) (*BattleRecord, error)
	ListBattlesByPlayer(playerID uint, limit int) ([]BattleRecord, error)
}
