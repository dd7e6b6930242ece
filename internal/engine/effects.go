package engine

import "github.com/shawntabrizi/open-auto-battler-sub000/internal/game"

// applyEffect applies one ability effect to its resolved targets, emitting
// events only for targets actually affected. An empty target list is a
// fizzle: no board mutation, no effect event.
func (bc *battleContext) applyEffect(ab *game.Ability, src *game.CombatUnit, targets []*game.CombatUnit) {
	eff := &ab.Effect
	switch eff.Kind {
	case game.EffectDamage:
		for _, t := range targets {
			bc.applyAbilityDamage(src, t, ab.Name, eff.Amount)
		}
	case game.EffectModifyStats, game.EffectModifyStatsPermanent:
		permanent := eff.Kind == game.EffectModifyStatsPermanent
		for _, t := range targets {
			bc.applyStatMod(src, t, ab.Name, eff.Attack, eff.Health, permanent)
		}
	case game.EffectSpawnUnit:
		// Spawns always materialize at the source's own slot; the target
		// spec plays no role.
		bc.applySpawn(src, eff.CardID)
	case game.EffectDestroy:
		for _, t := range targets {
			bc.applyDestroy(src, t, ab.Name)
		}
	case game.EffectGrantStatusPermanent:
		for _, t := range targets {
			bc.applyStatusGrant(src, t, ab.Name, eff.Status, eff.Clear)
		}
	case game.EffectGainMana:
		// Mana is a shop-phase currency; the event feeds the shop reducer
		// and is inert during battles.
		bc.add(game.Event{
			Kind:    game.EventAbilityGainMana,
			Team:    src.ID.Team,
			Unit:    &src.ID,
			Ability: ab.Name,
			Amount:  eff.Amount,
		})
	}
}

// applyAbilityDamage deals ability damage to one target. Non-positive
// amounts affect nothing and emit nothing. A Shield consumes the hit
// entirely: the StatusConsumed event replaces the damage and the damage
// event reports zero.
func (bc *battleContext) applyAbilityDamage(src, target *game.CombatUnit, ability string, amount int32) {
	if amount <= 0 || !target.Alive() {
		return
	}
	if target.Statuses.Has(game.StatusShield) {
		target.Statuses = target.Statuses.Without(game.StatusShield)
		bc.add(game.Event{Kind: game.EventStatusConsumed, Team: target.ID.Team, Unit: &target.ID, Status: game.StatusShield})
		bc.add(game.Event{Kind: game.EventAbilityDamage, Team: target.ID.Team, Unit: &target.ID, Source: &src.ID, Ability: ability, Amount: 0})
		return
	}
	target.Health = game.AddSat(target.Health, -amount)
	if target.Health < 0 {
		target.Health = 0
	}
	bc.add(game.Event{Kind: game.EventAbilityDamage, Team: target.ID.Team, Unit: &target.ID, Source: &src.ID, Ability: ability, Amount: amount})
	if target.Alive() {
		bc.fireNested(target.ID.Team, game.TriggerOnHurt, &triggerCause{source: src, aggressor: src}, func(u *game.CombatUnit) bool { return u == target })
	}
}

// applyStatMod adds stat deltas with saturating arithmetic and emits the
// applied (post-saturation) delta. A modification that changes nothing
// emits nothing.
func (bc *battleContext) applyStatMod(src, target *game.CombatUnit, ability string, attack, health int32, permanent bool) {
	if !target.Alive() {
		return
	}
	oldAttack, oldHealth := target.Attack, target.Health
	target.ApplyStatDelta(attack, health)
	dAttack := target.Attack - oldAttack
	dHealth := target.Health - oldHealth
	if dAttack == 0 && dHealth == 0 {
		return
	}
	bc.add(game.Event{
		Kind:      game.EventAbilityModStats,
		Team:      target.ID.Team,
		Unit:      &target.ID,
		Source:    &src.ID,
		Ability:   ability,
		Attack:    dAttack,
		Health:    dHealth,
		Permanent: permanent,
	})
}

// applySpawn inserts a fresh unit at the source's slot, pushing the source
// and everything behind it back one position. Unknown templates, a full
// board or an exhausted spawn budget make the spawn fizzle. A successful
// spawn fires the spawn reaction triggers recursively, bounded by the
// limits tracker.
func (bc *battleContext) applySpawn(src *game.CombatUnit, cardID string) {
	card, err := bc.pool.Lookup(cardID)
	if err != nil {
		return
	}
	team := src.ID.Team
	if len(bc.liveUnits(team)) >= game.MaxBoardSize {
		return
	}
	if !bc.limits.RecordSpawn(team) {
		return
	}
	unit := game.NewCombatUnit(bc.limits.NextUnitID(team), card)

	board := bc.board(team)
	idx := bc.indexOf(src)
	if idx < 0 {
		idx = 0
	}
	board = append(board, nil)
	copy(board[idx+1:], board[idx:])
	board[idx] = unit
	bc.setBoard(team, board)

	bc.add(game.Event{
		Kind:   game.EventUnitSpawn,
		Team:   team,
		Unit:   &unit.ID,
		Source: &src.ID,
		CardID: card.ID,
		Index:  int32(idx),
	})

	if !bc.limits.EnterRecursion(team) {
		return
	}
	defer bc.limits.ExitRecursion()
	cause := &triggerCause{source: unit}
	bc.fireNested(team, game.TriggerOnSpawn, cause, func(u *game.CombatUnit) bool { return u == unit })
	bc.fireNested(team, game.TriggerOnAllySpawn, cause, func(u *game.CombatUnit) bool {
		return u.ID.Team == team && u != unit
	})
	bc.fireNested(team, game.TriggerOnEnemySpawn, cause, func(u *game.CombatUnit) bool {
		return u.ID.Team != team
	})
}

// applyDestroy removes a unit by dealing damage equal to its current
// health. The hit is lethal regardless of buffs and is not a regular hit,
// so a Shield does not intercept it.
func (bc *battleContext) applyDestroy(src, target *game.CombatUnit, ability string) {
	if !target.Alive() {
		return
	}
	amount := target.Health
	target.Health = 0
	bc.add(game.Event{Kind: game.EventAbilityDamage, Team: target.ID.Team, Unit: &target.ID, Source: &src.ID, Ability: ability, Amount: amount})
}

// applyStatusGrant sets or clears permanent status bits. A grant that does
// not change the mask emits nothing.
func (bc *battleContext) applyStatusGrant(src, target *game.CombatUnit, ability string, status game.Status, clear bool) {
	if !target.Alive() {
		return
	}
	old := target.Statuses
	if clear {
		target.Statuses = target.Statuses.Without(status)
	} else {
		target.Statuses = target.Statuses.With(status)
	}
	if target.Statuses == old {
		return
	}
	bc.add(game.Event{
		Kind:      game.EventAbilityStatus,
		Team:      target.ID.Team,
		Unit:      &target.ID,
		Source:    &src.ID,
		Ability:   ability,
		Status:    status,
		Clear:     clear,
		Permanent: true,
	})
}

// fireNested fires a reaction trigger one nesting level deeper, bounded by
// the trigger-depth ceiling.
func (bc *battleContext) fireNested(team game.Team, tr game.Trigger, cause *triggerCause, filter func(*game.CombatUnit) bool) {
	if !bc.limits.EnterTriggerDepth(team) {
		return
	}
	defer bc.limits.ExitTriggerDepth()
	bc.fireTriggers(tr, cause, filter)
}
