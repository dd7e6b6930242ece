package service

import (
	"errors"
	"fmt"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/codec"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/dedupe"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/engine"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/logging"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/storage"
)

// ErrNoBoard is returned when a battle is requested for a player that has
// never committed a turn and supplied no inline board.
var ErrNoBoard = errors.New("player has no saved board")

// ResolveRequest describes one battle to resolve. Nil boards fall back to
// the player's saved board and a deterministically generated opponent.
type ResolveRequest struct {
	PlayerName     string
	PlayerBoard    *game.PlayerBoard
	EnemyBoard     *game.PlayerBoard
	Seed           uint64
	OpponentBudget int32
}

// ResolveResult is the persisted outcome handed back to the API layer.
type ResolveResult struct {
	BattleID  uint              `json:"battle_id"`
	Result    game.BattleResult `json:"result"`
	Events    []game.Event      `json:"events"`
	Truncated bool              `json:"truncated"`
}

// ResolveBattle builds both rosters, runs the engine, persists the record
// and updates the player's stats. Concurrent identical requests collapse to
// one execution: resolution is deterministic, so sharing the persisted
// record is safe.
func ResolveBattle(repo storage.Repository, pool game.CardPool, maxStoredEvents int, req *ResolveRequest) (*ResolveResult, error) {
	player, err := repo.UpsertPlayer(req.PlayerName)
	if err != nil {
		return nil, err
	}

	playerBoard := req.PlayerBoard
	if playerBoard == nil {
		if len(player.BoardJSON) == 0 {
			return nil, ErrNoBoard
		}
		playerBoard, err = codec.UnmarshalBoard(player.BoardJSON)
		if err != nil {
			return nil, err
		}
	}
	enemyBoard := req.EnemyBoard
	if enemyBoard == nil {
		enemyBoard = BuildOpponent(pool, req.Seed, req.OpponentBudget)
	}

	pb, err := codec.MarshalBoard(playerBoard)
	if err != nil {
		return nil, err
	}
	eb, err := codec.MarshalBoard(enemyBoard)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%d|%d|%s|%s", player.ID, req.Seed, pb, eb)
	v, err, _ := dedupe.BattleGroup.Do(key, func() (interface{}, error) {
		events, err := engine.ResolveBattle(playerBoard, enemyBoard, req.Seed, pool)
		if err != nil {
			return nil, err
		}
		encoded, truncated, err := codec.MarshalEventsBounded(events, maxStoredEvents)
		if err != nil {
			return nil, err
		}
		result := game.ResultOf(events)
		rec := &storage.BattleRecord{
			PlayerID:        player.ID,
			Seed:            req.Seed,
			PlayerBoardJSON: pb,
			EnemyBoardJSON:  eb,
			EventsJSON:      encoded,
			Truncated:       truncated,
			Result:          string(result),
		}
		if err := repo.CreateBattle(rec); err != nil {
			return nil, err
		}
		if err := repo.UpdateStatsOnBattleEnd(player.ID, result); err != nil {
			return nil, err
		}
		if truncated {
			logging.Info("battle log truncated for storage", logging.Fields{"battle_id": rec.ID, "events": len(events)})
		}
		return &ResolveResult{
			BattleID:  rec.ID,
			Result:    result,
			Events:    events,
			Truncated: truncated,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ResolveResult), nil
}
