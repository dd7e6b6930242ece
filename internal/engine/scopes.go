package engine

import "github.com/shawntabrizi/open-auto-battler-sub000/internal/game"

// scopeUnits resolves a target scope to concrete living units, in board
// order. Ally/enemy is always decided relative to the source unit's team.
// For ScopeAll the source's own side scans first so the order is identical
// no matter which side the source fights on.
func (bc *battleContext) scopeUnits(scope game.TargetScope, src *game.CombatUnit, cause *triggerCause) []*game.CombatUnit {
	switch scope {
	case game.ScopeSelf:
		if src.Alive() {
			return []*game.CombatUnit{src}
		}
		return nil
	case game.ScopeAllies:
		return bc.liveUnits(src.ID.Team)
	case game.ScopeAlliesOther:
		out := make([]*game.CombatUnit, 0, game.MaxBoardSize)
		for _, u := range bc.liveUnits(src.ID.Team) {
			if u != src {
				out = append(out, u)
			}
		}
		return out
	case game.ScopeEnemies:
		return bc.liveUnits(src.ID.Team.Opponent())
	case game.ScopeAll:
		allies := bc.liveUnits(src.ID.Team)
		return append(allies, bc.liveUnits(src.ID.Team.Opponent())...)
	case game.ScopeTriggerSource:
		if cause != nil && cause.source != nil && cause.source.Alive() {
			return []*game.CombatUnit{cause.source}
		}
		return nil
	case game.ScopeAggressor:
		if cause != nil && cause.aggressor != nil && cause.aggressor.Alive() {
			return []*game.CombatUnit{cause.aggressor}
		}
		return nil
	}
	return nil
}

// normalizeIndex maps a possibly-negative position index onto a list of the
// given length. Negative indexes count from the back. Returns -1 when out
// of range.
func normalizeIndex(idx, length int) int {
	if idx < 0 {
		idx = length + idx
	}
	if idx < 0 || idx >= length {
		return -1
	}
	return idx
}
