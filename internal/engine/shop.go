package engine

import (
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/limits"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/rng"
)

// ShopSession runs shop-phase triggers (on_shop_start, on_buy, on_sell)
// through the same collector/resolver/executor pipeline as battle triggers.
// The player's roster is the only board; enemy scopes resolve empty.
type ShopSession struct {
	bc *battleContext
}

// ShopAction reports one replayed shop action to the trigger pipeline.
// For buys the unit is the freshly boarded one; for sells it is the unit
// just removed from the board (it stays addressable as a trigger source).
type ShopAction struct {
	Sell bool
	Unit *game.CombatUnit
}

// NewShopSession prepares the trigger pipeline over a shop-phase roster.
// The tracker must be the one that allocated the units' instance IDs.
func NewShopSession(units []*game.CombatUnit, tracker *limits.Tracker, gen *rng.Generator, pool game.CardPool) *ShopSession {
	return &ShopSession{bc: newBattleContext(units, nil, tracker, gen, pool)}
}

// Run fires the shop-start trigger followed by one buy/sell trigger per
// replayed action, in action order, and returns the event log. Deaths
// caused by shop effects resolve exactly as in battle.
func (s *ShopSession) Run(actions []ShopAction) []game.Event {
	bc := s.bc
	bc.limits.ResetPhaseTriggers()
	bc.add(game.Event{Kind: game.EventPhaseStart, Phase: game.PhaseShop})
	bc.fireTriggers(game.TriggerOnShopStart, nil, nil)
	bc.resolveDeaths()
	for _, a := range actions {
		if bc.limits.Breach() != nil {
			break
		}
		cause := &triggerCause{source: a.Unit}
		if a.Sell {
			// The sold unit already left the board, so the collector's
			// board scan misses it. Its own sell abilities still fire,
			// before any bystander reactions.
			bc.fireSold(a.Unit, cause)
			bc.fireTriggers(game.TriggerOnSell, cause, nil)
		} else {
			bc.fireTriggers(game.TriggerOnBuy, cause, nil)
		}
		bc.resolveDeaths()
	}
	bc.add(game.Event{Kind: game.EventPhaseEnd, Phase: game.PhaseShop})
	return bc.log
}

// fireSold executes the sold unit's own sell abilities. The unit is not a
// board member anymore, so liveness and membership checks are skipped the
// same way they are for fainted units.
func (bc *battleContext) fireSold(unit *game.CombatUnit, cause *triggerCause) {
	for ai := range unit.Abilities {
		if unit.Abilities[ai].Trigger != game.TriggerOnSell {
			continue
		}
		if bc.limits.Breach() != nil {
			return
		}
		f := firing{
			team:       unit.ID.Team,
			unit:       unit,
			abilityIdx: ai,
			attack:     unit.Attack,
			health:     unit.Health,
		}
		bc.fireAbility(&f, cause, false)
	}
}

// Units returns the roster after shop triggers resolved, in board order.
func (s *ShopSession) Units() []*game.CombatUnit {
	return s.bc.player
}

// Breached reports whether a ceiling was hit during the session.
func (s *ShopSession) Breached() bool {
	return s.bc.limits.Breach() != nil
}
