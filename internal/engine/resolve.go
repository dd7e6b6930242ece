package engine

import (
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/limits"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/rng"
)

// ResolveBattle is the main entry point for resolving a battle between two
// persistent boards. It instantiates both rosters, runs the state machine
// and returns the complete ordered event log — the sole observable output.
// Given identical boards, seed and card data, the log is byte-identical on
// every host. The only recoverable error is a card ID absent from the pool
// during roster construction.
func ResolveBattle(playerBoard, enemyBoard *game.PlayerBoard, seed uint64, pool game.CardPool) ([]game.Event, error) {
	tracker := limits.NewTracker()
	player, err := game.UnitsFromBoard(playerBoard, game.TeamPlayer, pool, tracker)
	if err != nil {
		return nil, err
	}
	enemy, err := game.UnitsFromBoard(enemyBoard, game.TeamEnemy, pool, tracker)
	if err != nil {
		return nil, err
	}
	return ResolveUnits(player, enemy, tracker, seed, pool), nil
}

// ResolveUnits resolves pre-built rosters. The tracker must be the one that
// allocated the units' instance IDs so ordinals stay unique when spawns
// happen mid-battle.
func ResolveUnits(player, enemy []*game.CombatUnit, tracker *limits.Tracker, seed uint64, pool game.CardPool) []game.Event {
	bc := newBattleContext(player, enemy, tracker, rng.New(seed), pool)
	return bc.run()
}

func (bc *battleContext) run() []game.Event {
	bc.startPhase()

	// The clash loop shares one trigger budget so reaction chains that
	// stretch across iterations (perpetual re-heals, zero-damage
	// stalemates) still breach and force termination.
	bc.limits.ResetPhaseTriggers()
	bc.round = 1
	for bc.limits.Breach() == nil && bc.frontUnit(game.TeamPlayer) != nil && bc.frontUnit(game.TeamEnemy) != nil {
		bc.clash()
		bc.round++
	}

	bc.endPhase()
	return bc.log
}

func (bc *battleContext) startPhase() {
	bc.limits.ResetPhaseTriggers()
	bc.add(game.Event{Kind: game.EventPhaseStart, Phase: game.PhaseStart})
	bc.fireTriggers(game.TriggerOnStart, nil, nil)
	bc.resolveDeaths()
	bc.add(game.Event{Kind: game.EventPhaseEnd, Phase: game.PhaseStart})
}

// clash runs one iteration of the clash loop. The front units snapshotted
// here stay authoritative for the whole iteration: a unit promoted to the
// front mid-iteration does not become eligible for front-scoped triggers
// until the next one.
func (bc *battleContext) clash() {
	bc.add(game.Event{Kind: game.EventPhaseStart, Phase: game.PhaseClash})
	// Each iteration consumes one slot of the shared budget so even a
	// trigger-free stalemate terminates.
	if !bc.limits.RecordTrigger(game.TeamPlayer) {
		bc.add(game.Event{Kind: game.EventPhaseEnd, Phase: game.PhaseClash})
		return
	}

	pFront := bc.frontUnit(game.TeamPlayer)
	eFront := bc.frontUnit(game.TeamEnemy)

	isFront := func(u *game.CombatUnit) bool { return u == pFront || u == eFront }
	bc.fireTriggers(game.TriggerBeforeUnitAttack, nil, isFront)
	bc.fireTriggers(game.TriggerBeforeAnyAttack, nil, nil)
	bc.resolveDeaths()
	if bc.limits.Breach() != nil {
		bc.add(game.Event{Kind: game.EventPhaseEnd, Phase: game.PhaseClash})
		return
	}

	// Pre-attack triggers may have killed a snapshot front; then no clash
	// happens this iteration.
	if pFront.Alive() && eFront.Alive() {
		bc.add(game.Event{
			Kind:         game.EventClash,
			PlayerDamage: pFront.EffectiveAttack(),
			EnemyDamage:  eFront.EffectiveAttack(),
		})
		// Both hits land before either unit is removed.
		toPlayer := bc.applyClashHit(pFront, eFront)
		toEnemy := bc.applyClashHit(eFront, pFront)
		bc.add(game.Event{Kind: game.EventDamageTaken, Team: game.TeamPlayer, Unit: &pFront.ID, Amount: toPlayer, Remaining: pFront.Health})
		bc.add(game.Event{Kind: game.EventDamageTaken, Team: game.TeamEnemy, Unit: &eFront.ID, Amount: toEnemy, Remaining: eFront.Health})
		if toPlayer > 0 && pFront.Alive() {
			bc.fireNested(game.TeamPlayer, game.TriggerOnHurt, &triggerCause{source: eFront, aggressor: eFront}, func(u *game.CombatUnit) bool { return u == pFront })
		}
		if toEnemy > 0 && eFront.Alive() {
			bc.fireNested(game.TeamEnemy, game.TriggerOnHurt, &triggerCause{source: pFront, aggressor: pFront}, func(u *game.CombatUnit) bool { return u == eFront })
		}
		bc.resolveDeaths()
	}

	// Post-attack triggers fire only for surviving attackers.
	bc.fireTriggers(game.TriggerAfterUnitAttack, nil, isFront)
	bc.fireTriggers(game.TriggerAfterAnyAttack, nil, nil)
	bc.resolveDeaths()
	bc.add(game.Event{Kind: game.EventPhaseEnd, Phase: game.PhaseClash})
}

// applyClashHit lands one front-line hit on target and returns the damage
// inflicted. A Shield consumes the hit for zero damage; a Poison-bearing
// attacker makes any non-zero hit lethal regardless of magnitude.
func (bc *battleContext) applyClashHit(target, attacker *game.CombatUnit) int32 {
	amount := attacker.EffectiveAttack()
	if amount <= 0 {
		return 0
	}
	if target.Statuses.Has(game.StatusShield) {
		target.Statuses = target.Statuses.Without(game.StatusShield)
		bc.add(game.Event{Kind: game.EventStatusConsumed, Team: target.ID.Team, Unit: &target.ID, Status: game.StatusShield})
		return 0
	}
	if attacker.Statuses.Has(game.StatusPoison) && target.Health > amount {
		amount = target.Health
	}
	target.Health = game.AddSat(target.Health, -amount)
	if target.Health < 0 {
		target.Health = 0
	}
	return amount
}

func (bc *battleContext) endPhase() {
	result := game.ResultDraw
	if br := bc.limits.Breach(); br != nil {
		// The breach forces a draw; the breaching side is recorded for
		// transparency but the canonical result stays a draw.
		bc.add(game.Event{Kind: game.EventLimitExceeded, Team: br.Team, Reason: string(br.Reason)})
	} else {
		playerAlive := bc.frontUnit(game.TeamPlayer) != nil
		enemyAlive := bc.frontUnit(game.TeamEnemy) != nil
		switch {
		case playerAlive && !enemyAlive:
			result = game.ResultVictory
		case !playerAlive && enemyAlive:
			result = game.ResultDefeat
		}
	}
	bc.add(game.Event{Kind: game.EventBattleEnd, Result: result})
}
