package engine

import (
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/limits"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/rng"
)

// --- Battle context and helpers ----------------------------------------

// battleContext threads everything one battle owns through the resolution
// pipeline: the two board sequences, the RNG, the limits tracker, the card
// pool and the event log. Nothing in it is shared across battles.
type battleContext struct {
	player []*game.CombatUnit
	enemy  []*game.CombatUnit
	gen    *rng.Generator
	limits *limits.Tracker
	pool   game.CardPool
	log    []game.Event
	round  int32
}

func newBattleContext(player, enemy []*game.CombatUnit, tracker *limits.Tracker, gen *rng.Generator, pool game.CardPool) *battleContext {
	return &battleContext{
		player: player,
		enemy:  enemy,
		gen:    gen,
		limits: tracker,
		pool:   pool,
		log:    make([]game.Event, 0, 64),
	}
}

func (bc *battleContext) add(ev game.Event) {
	ev.Round = bc.round
	bc.log = append(bc.log, ev)
}

// board returns one side's unit sequence. Boards are always iterated by
// position, never through map ordering.
func (bc *battleContext) board(team game.Team) []*game.CombatUnit {
	if team == game.TeamPlayer {
		return bc.player
	}
	return bc.enemy
}

func (bc *battleContext) setBoard(team game.Team, units []*game.CombatUnit) {
	if team == game.TeamPlayer {
		bc.player = units
	} else {
		bc.enemy = units
	}
}

// indexOf returns the unit's position in its board sequence, or -1 when the
// unit has already been removed.
func (bc *battleContext) indexOf(u *game.CombatUnit) int {
	for i, v := range bc.board(u.ID.Team) {
		if v == u {
			return i
		}
	}
	return -1
}

// liveUnits returns one side's living units in board order.
func (bc *battleContext) liveUnits(team game.Team) []*game.CombatUnit {
	board := bc.board(team)
	out := make([]*game.CombatUnit, 0, len(board))
	for _, u := range board {
		if u.Alive() {
			out = append(out, u)
		}
	}
	return out
}

// frontUnit returns the first living unit of a side, or nil.
func (bc *battleContext) frontUnit(team game.Team) *game.CombatUnit {
	for _, u := range bc.board(team) {
		if u.Alive() {
			return u
		}
	}
	return nil
}

// snapshot captures one side's living units for a UnitDeath event payload.
func (bc *battleContext) snapshot(team game.Team) []game.UnitSnapshot {
	live := bc.liveUnits(team)
	if len(live) == 0 {
		// Keep the payload nil so the event survives a JSON round trip:
		// the omitempty tag drops an empty slice and decodes it as nil.
		return nil
	}
	out := make([]game.UnitSnapshot, 0, len(live))
	for _, u := range live {
		out = append(out, game.UnitSnapshot{
			ID:       u.ID,
			CardID:   u.CardID,
			Attack:   u.Attack,
			Health:   u.Health,
			Statuses: u.Statuses,
		})
	}
	return out
}

// triggerCause carries the units responsible for a reaction trigger: the
// fainted/spawned/hurt-causing unit, and the damage source for on_hurt.
// Both are nil outside reaction contexts, making TriggerSource/Aggressor
// scopes fizzle there.
type triggerCause struct {
	source    *game.CombatUnit
	aggressor *game.CombatUnit
}
