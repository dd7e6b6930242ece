package service

import (
	"sort"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/rng"
)

// DefaultOpponentBudget is the total play cost granted to a generated
// opponent when the request does not set one.
const DefaultOpponentBudget int32 = 12

// BuildOpponent assembles an enemy board deterministically from the pool:
// non-token cards only, drawn with the battle RNG against a play-cost
// budget. Identical (pool, seed, budget) always yields the same board.
func BuildOpponent(pool game.CardPool, seed uint64, budget int32) *game.PlayerBoard {
	if budget <= 0 {
		budget = DefaultOpponentBudget
	}
	ids := make([]string, 0, len(pool))
	for id, c := range pool {
		if !c.Token {
			ids = append(ids, id)
		}
	}
	// Map iteration order is not deterministic; the draw must be.
	sort.Strings(ids)

	gen := rng.New(seed)
	board := &game.PlayerBoard{}
	for slot := 0; slot < game.MaxBoardSize; slot++ {
		choices := affordable(pool, ids, budget)
		if len(choices) == 0 {
			break
		}
		card := pool[choices[gen.Range(len(choices))]]
		board.Slots[slot] = game.BoardSlot{
			Occupied: true,
			CardID:   card.ID,
			Attack:   card.Attack,
			Health:   card.Health,
		}
		budget -= card.PlayCost
	}
	return board
}

func affordable(pool game.CardPool, ids []string, budget int32) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if pool[id].PlayCost <= budget {
			out = append(out, id)
		}
	}
	return out
}
