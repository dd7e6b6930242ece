package engine

import "github.com/shawntabrizi/open-auto-battler-sub000/internal/game"

// evalCondition decides whether a gated ability fires. A nil condition is
// always satisfied. Conditions are pure reads of the current board state.
func (bc *battleContext) evalCondition(cond *game.Condition, src *game.CombatUnit, cause *triggerCause) bool {
	if cond == nil {
		return true
	}
	switch cond.Kind {
	case game.ConditionIs:
		return bc.evalMatcher(&cond.Matcher, src, cause)
	case game.ConditionAnyOf:
		for i := range cond.Matchers {
			if bc.evalMatcher(&cond.Matchers[i], src, cause) {
				return true
			}
		}
		return false
	}
	return false
}

func (bc *battleContext) evalMatcher(m *game.Matcher, src *game.CombatUnit, cause *triggerCause) bool {
	switch m.Kind {
	case game.MatchStatValue:
		// Existential: satisfied if any unit in scope passes the comparison.
		for _, u := range bc.scopeUnits(m.Scope, src, cause) {
			if m.Op.Compare(u.StatValue(m.Stat), m.Value) {
				return true
			}
		}
		return false
	case game.MatchUnitCount:
		n := int32(len(bc.scopeUnits(m.Scope, src, cause)))
		return m.Op.Compare(n, m.Value)
	case game.MatchStatStat:
		a := src.StatValue(m.SourceStat)
		for _, u := range bc.scopeUnits(m.Scope, src, cause) {
			if m.Op.Compare(a, u.StatValue(m.TargetStat)) {
				return true
			}
		}
		return false
	case game.MatchIsPosition:
		units := bc.scopeUnits(m.Scope, src, cause)
		want := normalizeIndex(m.Index, len(units))
		if want < 0 {
			return false
		}
		return units[want] == src
	}
	return false
}
