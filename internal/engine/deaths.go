package engine

import (
	"sort"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
)

// deadUnit is one unit that died this resolution step, with its stats frozen
// at the time of death for the faint ordering.
type deadUnit struct {
	team   game.Team
	index  int
	unit   *game.CombatUnit
	attack int32
	health int32
}

// resolveDeaths drains all pending deaths: collect everything with zero
// health on either board, order the corpses by the trigger priority
// hierarchy (dead units compete with their stats at time of death), fire
// OnFaint and OnAllyFaint for each in that order, then remove the corpses
// and emit a UnitDeath per unit with the side's new board state. Faint
// effects may kill further units, so the whole pass repeats until the boards
// are clean or a ceiling is breached.
func (bc *battleContext) resolveDeaths() {
	for bc.limits.Breach() == nil {
		dead := bc.collectDead()
		if len(dead) == 0 {
			return
		}
		sort.SliceStable(dead, func(i, j int) bool {
			a, b := dead[i], dead[j]
			if a.attack != b.attack {
				return a.attack > b.attack
			}
			if a.health != b.health {
				return a.health > b.health
			}
			if a.team != b.team {
				return a.team.Rank() < b.team.Rank()
			}
			return a.index < b.index
		})

		for _, d := range dead {
			if bc.limits.Breach() != nil {
				break
			}
			cause := &triggerCause{source: d.unit}
			bc.fireNested(d.team, game.TriggerOnFaint, cause, func(u *game.CombatUnit) bool { return u == d.unit })
			bc.fireNested(d.team, game.TriggerOnAllyFaint, cause, func(u *game.CombatUnit) bool {
				return u.ID.Team == d.team && u != d.unit
			})
		}

		for _, d := range dead {
			if idx := bc.indexOf(d.unit); idx >= 0 {
				board := bc.board(d.team)
				bc.setBoard(d.team, append(board[:idx], board[idx+1:]...))
			}
			bc.add(game.Event{
				Kind:  game.EventUnitDeath,
				Team:  d.team,
				Unit:  &d.unit.ID,
				Board: bc.snapshot(d.team),
			})
		}
	}
}

// collectDead scans both boards by position for units at zero health.
func (bc *battleContext) collectDead() []deadUnit {
	out := make([]deadUnit, 0, 4)
	scan := func(team game.Team) {
		for idx, u := range bc.board(team) {
			if u.Alive() {
				continue
			}
			out = append(out, deadUnit{team: team, index: idx, unit: u, attack: u.Attack, health: u.Health})
		}
	}
	scan(game.TeamPlayer)
	scan(game.TeamEnemy)
	return out
}
