package engine

import (
	"sort"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
)

// resolveTarget maps an abstract target specification to concrete units.
// It never fails: a spec no unit satisfies resolves to an empty slice and
// the effect fizzles.
func (bc *battleContext) resolveTarget(t game.Target, src *game.CombatUnit, cause *triggerCause) []*game.CombatUnit {
	switch t.Kind {
	case game.TargetSelf:
		return bc.scopeUnits(game.ScopeSelf, src, cause)
	case game.TargetAll:
		return bc.scopeUnits(t.Scope, src, cause)
	case game.TargetPosition:
		units := bc.scopeUnits(t.Scope, src, cause)
		idx := normalizeIndex(t.Index, len(units))
		if idx < 0 {
			return nil
		}
		return units[idx : idx+1]
	case game.TargetRandom:
		return bc.randomTargets(t, src, cause)
	case game.TargetStandard:
		return bc.standardTargets(t, src, cause)
	case game.TargetAdjacent:
		return bc.adjacentTargets(t, src)
	}
	return nil
}

// randomTargets draws Count units without replacement using the battle RNG.
// When the source is picking among its enemies, Guard bearers soak the
// targeting: if any candidate carries Guard, only Guard bearers remain
// candidates.
func (bc *battleContext) randomTargets(t game.Target, src *game.CombatUnit, cause *triggerCause) []*game.CombatUnit {
	candidates := bc.scopeUnits(t.Scope, src, cause)
	if t.Scope == game.ScopeEnemies {
		guards := make([]*game.CombatUnit, 0, len(candidates))
		for _, u := range candidates {
			if u.Statuses.Has(game.StatusGuard) {
				guards = append(guards, u)
			}
		}
		if len(guards) > 0 {
			candidates = guards
		}
	}
	if len(candidates) == 0 || t.Count <= 0 {
		return nil
	}
	// Copy so removal does not disturb the board scan order.
	pool := append([]*game.CombatUnit(nil), candidates...)
	count := t.Count
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]*game.CombatUnit, 0, count)
	for i := 0; i < count; i++ {
		j := bc.gen.Range(len(pool))
		out = append(out, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return out
}

// standardTargets ranks the scope by a named stat and takes the first Count.
// The sort is stable over the board scan order, so ties resolve to the
// lower scan index; downstream replays depend on exactly this stability.
func (bc *battleContext) standardTargets(t game.Target, src *game.CombatUnit, cause *triggerCause) []*game.CombatUnit {
	units := bc.scopeUnits(t.Scope, src, cause)
	if len(units) == 0 || t.Count <= 0 {
		return nil
	}
	ranked := append([]*game.CombatUnit(nil), units...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].StatValue(t.Stat), ranked[j].StatValue(t.Stat)
		if t.Order == game.OrderDescending {
			return a > b
		}
		return a < b
	})
	count := t.Count
	if count > len(ranked) {
		count = len(ranked)
	}
	return ranked[:count]
}

// adjacentTargets resolves to the units directly before and after the source
// in its own side's living sequence, filtered by scope. Adjacency is a
// same-board notion; enemy-side scopes resolve to nothing.
func (bc *battleContext) adjacentTargets(t game.Target, src *game.CombatUnit) []*game.CombatUnit {
	switch t.Scope {
	case game.ScopeAllies, game.ScopeAlliesOther, game.ScopeAll, "":
	default:
		return nil
	}
	allies := bc.liveUnits(src.ID.Team)
	pos := -1
	for i, u := range allies {
		if u == src {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil
	}
	out := make([]*game.CombatUnit, 0, 2)
	if pos-1 >= 0 {
		out = append(out, allies[pos-1])
	}
	if pos+1 < len(allies) {
		out = append(out, allies[pos+1])
	}
	return out
}
