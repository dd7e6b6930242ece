package game

import "math"

// Team identifies one side of a battle. The player side always acts as the
// initiating team for tie-break purposes.
type Team string

const (
	TeamPlayer Team = "player"
	TeamEnemy  Team = "enemy"
)

// Rank is the tie-break order of the team: the side that initiated the
// battle sorts first.
func (t Team) Rank() int {
	if t == TeamPlayer {
		return 0
	}
	return 1
}

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

// UnitID uniquely identifies a combat unit for the lifetime of one battle.
// Ordinals are allocated monotonically by the limits tracker and are never
// reused, even after the unit dies.
type UnitID struct {
	Team    Team   `json:"team"`
	Ordinal uint32 `json:"ordinal"`
}

// CombatUnit is a runtime battle instance derived from a card template.
// It is owned exclusively by one side's board for the battle's duration.
type CombatUnit struct {
	ID        UnitID    `json:"id"`
	CardID    string    `json:"card_id"`
	Name      string    `json:"name"`
	Attack    int32     `json:"attack"`
	Health    int32     `json:"health"`
	ManaCost  int32     `json:"mana_cost"`
	Statuses  Status    `json:"statuses"`
	Abilities []Ability `json:"abilities"`
	// TriggersUsed counts firings per ability (declaration order) to
	// enforce MaxTriggers.
	TriggersUsed []uint32 `json:"-"`
}

// NewCombatUnit builds a battle instance of a card template.
func NewCombatUnit(id UnitID, card *Card) *CombatUnit {
	return &CombatUnit{
		ID:           id,
		CardID:       card.ID,
		Name:         card.Name,
		Attack:       card.Attack,
		Health:       card.Health,
		ManaCost:     card.PlayCost,
		Abilities:    card.Abilities,
		TriggersUsed: make([]uint32, len(card.Abilities)),
	}
}

// Alive reports whether the unit is still fighting.
func (u *CombatUnit) Alive() bool { return u.Health > 0 }

// EffectiveAttack is the attack used for dealing damage. Attack may go
// negative internally through debuffs but damage dealt never heals.
func (u *CombatUnit) EffectiveAttack() int32 {
	if u.Attack < 0 {
		return 0
	}
	return u.Attack
}

// StatValue reads a named stat from the unit.
func (u *CombatUnit) StatValue(s Stat) int32 {
	switch s {
	case StatAttack:
		return u.Attack
	case StatHealth:
		return u.Health
	case StatManaCost:
		return u.ManaCost
	}
	return 0
}

// AddSat adds two int32 values with saturation. Stat buffs of extreme
// magnitude must clamp, never wrap.
func AddSat(a, b int32) int32 {
	s := int64(a) + int64(b)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	if s < math.MinInt32 {
		return math.MinInt32
	}
	return int32(s)
}

// ApplyStatDelta applies attack/health deltas with saturating arithmetic.
// Health never drops below zero through a stat modification.
func (u *CombatUnit) ApplyStatDelta(attack, health int32) {
	u.Attack = AddSat(u.Attack, attack)
	u.Health = AddSat(u.Health, health)
	if u.Health < 0 {
		u.Health = 0
	}
}
