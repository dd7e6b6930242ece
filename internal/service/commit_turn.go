package service

import (
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/codec"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/storage"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/turn"
)

// CommitTurn validates a player's shop actions against their saved board and
// hand. The replay runs on a clone: an invalid action sequence returns its
// typed error and leaves the stored state untouched; on success the updated
// board, hand and mana are persisted and returned.
func CommitTurn(repo storage.Repository, pool game.CardPool, playerName string, actions []turn.Action, seed uint64) (*turn.State, error) {
	player, err := repo.UpsertPlayer(playerName)
	if err != nil {
		return nil, err
	}

	board := &game.PlayerBoard{}
	if len(player.BoardJSON) > 0 {
		board, err = codec.UnmarshalBoard(player.BoardJSON)
		if err != nil {
			return nil, err
		}
	}
	hand := game.Hand{}
	if len(player.HandJSON) > 0 {
		hand, err = codec.UnmarshalHand(player.HandJSON)
		if err != nil {
			return nil, err
		}
	}

	state := &turn.State{Board: board.Clone(), Hand: hand.Clone()}
	if err := turn.VerifyAndApply(state, actions, pool, seed); err != nil {
		return nil, err
	}

	boardJSON, err := codec.MarshalBoard(state.Board)
	if err != nil {
		return nil, err
	}
	handJSON, err := codec.MarshalHand(state.Hand)
	if err != nil {
		return nil, err
	}
	player.BoardJSON = boardJSON
	player.HandJSON = handJSON
	player.Mana = state.Mana
	if err := repo.SavePlayer(player); err != nil {
		return nil, err
	}
	return state, nil
}
