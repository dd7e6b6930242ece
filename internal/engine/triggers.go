package engine

import (
	"sort"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
)

// firing is one collected (unit, ability) pair whose trigger matched.
// Attack/health are snapshotted at collection time so dead units compete in
// the faint ordering with their stats at time of death.
type firing struct {
	team       game.Team
	index      int
	unit       *game.CombatUnit
	abilityIdx int
	attack     int32
	health     int32
}

// collectFirings gathers every ability on both boards matching the trigger,
// scanning the player board then the enemy board by position. Abilities
// whose max_triggers budget is exhausted are skipped here; conditions are
// re-evaluated at fire time because earlier firings mutate the board.
func (bc *battleContext) collectFirings(tr game.Trigger, filter func(*game.CombatUnit) bool) []firing {
	out := make([]firing, 0, 8)
	scan := func(team game.Team) {
		for idx, u := range bc.board(team) {
			if filter != nil && !filter(u) {
				continue
			}
			for ai := range u.Abilities {
				ab := &u.Abilities[ai]
				if ab.Trigger != tr {
					continue
				}
				if ab.MaxTriggers != nil && u.TriggersUsed[ai] >= *ab.MaxTriggers {
					continue
				}
				out = append(out, firing{
					team:       team,
					index:      idx,
					unit:       u,
					abilityIdx: ai,
					attack:     u.Attack,
					health:     u.Health,
				})
			}
		}
	}
	scan(game.TeamPlayer)
	scan(game.TeamEnemy)
	return out
}

// sortFirings applies the engine's total trigger order: attack descending,
// health descending, initiating team first, board index ascending, ability
// declaration order ascending. Every trigger point uses this unmodified.
func sortFirings(firings []firing) {
	sort.SliceStable(firings, func(i, j int) bool {
		a, b := firings[i], firings[j]
		if a.attack != b.attack {
			return a.attack > b.attack
		}
		if a.health != b.health {
			return a.health > b.health
		}
		if a.team != b.team {
			return a.team.Rank() < b.team.Rank()
		}
		if a.index != b.index {
			return a.index < b.index
		}
		return a.abilityIdx < b.abilityIdx
	})
}

// fireTriggers collects, orders and executes every ability matching the
// trigger. requireAlive is false only for faint triggers, where the firing
// unit is already dead.
func (bc *battleContext) fireTriggers(tr game.Trigger, cause *triggerCause, filter func(*game.CombatUnit) bool) {
	firings := bc.collectFirings(tr, filter)
	sortFirings(firings)
	for i := range firings {
		if bc.limits.Breach() != nil {
			return
		}
		bc.fireAbility(&firings[i], cause, tr != game.TriggerOnFaint)
	}
}

// fireAbility executes one collected firing: condition gate, trigger budget,
// trigger event, target resolution, effect application. A firing whose
// condition fails does not consume a max_triggers slot; a firing whose
// targets resolve empty still logs its trigger and fizzles.
func (bc *battleContext) fireAbility(f *firing, cause *triggerCause, requireAlive bool) {
	if requireAlive && !f.unit.Alive() {
		return
	}
	if bc.indexOf(f.unit) < 0 && requireAlive {
		return
	}
	ab := &f.unit.Abilities[f.abilityIdx]
	if ab.MaxTriggers != nil && f.unit.TriggersUsed[f.abilityIdx] >= *ab.MaxTriggers {
		return
	}
	if !bc.evalCondition(ab.Condition, f.unit, cause) {
		return
	}
	if !bc.limits.RecordTrigger(f.team) {
		return
	}
	f.unit.TriggersUsed[f.abilityIdx]++
	bc.add(game.Event{
		Kind:    game.EventAbilityTrigger,
		Team:    f.team,
		Unit:    &f.unit.ID,
		Ability: ab.Name,
	})
	targets := bc.resolveTarget(ab.Effect.Target, f.unit, cause)
	bc.applyEffect(ab, f.unit, targets)
}
