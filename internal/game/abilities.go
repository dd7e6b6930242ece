package game

// Trigger names a point in the battle or shop state machine at which
// abilities fire. Using a dedicated type instead of plain string makes the
// card config self-documenting.
type Trigger string

const (
	TriggerOnStart Trigger = "on_start"

	// Clash-scoped triggers. The *_unit_attack variants fire only for the
	// front unit acting this clash; the *_any_attack variants fire for every
	// eligible unit on either board.
	TriggerBeforeUnitAttack Trigger = "before_unit_attack"
	TriggerBeforeAnyAttack  Trigger = "before_any_attack"
	TriggerAfterUnitAttack  Trigger = "after_unit_attack"
	TriggerAfterAnyAttack   Trigger = "after_any_attack"

	// Reaction triggers. The firing context carries the unit that caused
	// them (the fainted unit, the spawned unit, the damage source).
	TriggerOnHurt       Trigger = "on_hurt"
	TriggerOnFaint      Trigger = "on_faint"
	TriggerOnAllyFaint  Trigger = "on_ally_faint"
	TriggerOnSpawn      Trigger = "on_spawn"
	TriggerOnAllySpawn  Trigger = "on_ally_spawn"
	TriggerOnEnemySpawn Trigger = "on_enemy_spawn"

	// Shop-phase triggers, fired by the turn commitment validator through
	// the same pipeline as battle triggers.
	TriggerOnShopStart Trigger = "on_shop_start"
	TriggerOnBuy       Trigger = "on_buy"
	TriggerOnSell      Trigger = "on_sell"
)

// TargetScope selects units relative to an ability's source unit. Which side
// counts as "ally" is always decided by the source's team, never by a global
// player/enemy axis.
type TargetScope string

const (
	ScopeSelf          TargetScope = "self"
	ScopeAllies        TargetScope = "allies"
	ScopeAlliesOther   TargetScope = "allies_other"
	ScopeEnemies       TargetScope = "enemies"
	ScopeAll           TargetScope = "all"
	ScopeTriggerSource TargetScope = "trigger_source"
	ScopeAggressor     TargetScope = "aggressor"
)

// TargetKind selects the shape of a target specification.
type TargetKind string

const (
	TargetSelf     TargetKind = "self"
	TargetAll      TargetKind = "all"
	TargetPosition TargetKind = "position"
	TargetRandom   TargetKind = "random"
	TargetStandard TargetKind = "standard"
	TargetAdjacent TargetKind = "adjacent"
)

// SortOrder orders Standard target ranking.
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// Target describes which units an effect applies to. Only the fields used by
// the chosen Kind are meaningful. A negative Position index counts from the
// back of the side's live unit list.
type Target struct {
	Kind  TargetKind  `json:"kind"`
	Scope TargetScope `json:"scope,omitempty"`
	Index int         `json:"index,omitempty"`
	Count int         `json:"count,omitempty"`
	Stat  Stat        `json:"stat,omitempty"`
	Order SortOrder   `json:"order,omitempty"`
}

// EffectKind selects the shape of an effect.
type EffectKind string

const (
	EffectDamage               EffectKind = "damage"
	EffectModifyStats          EffectKind = "modify_stats"
	EffectModifyStatsPermanent EffectKind = "modify_stats_permanent"
	EffectSpawnUnit            EffectKind = "spawn_unit"
	EffectDestroy              EffectKind = "destroy"
	EffectGrantStatusPermanent EffectKind = "grant_status_permanent"
	EffectGainMana             EffectKind = "gain_mana"
)

// Effect is one resolved consequence of an ability firing. Effects are plain
// data interpreted by the engine; card content never carries code.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Target Target     `json:"target"`
	// Amount is the damage for EffectDamage and the mana for EffectGainMana.
	Amount int32 `json:"amount,omitempty"`
	// Attack/Health are the deltas for the modify-stats effects.
	Attack int32 `json:"attack,omitempty"`
	Health int32 `json:"health,omitempty"`
	// CardID names the template spawned by EffectSpawnUnit.
	CardID string `json:"card_id,omitempty"`
	// Status and Clear configure EffectGrantStatusPermanent.
	Status Status `json:"status,omitempty"`
	Clear  bool   `json:"clear,omitempty"`
}

// Ability couples a trigger point with a gated effect. Immutable once a
// battle starts; per-battle trigger-use counters live on the CombatUnit.
type Ability struct {
	Name      string     `json:"name"`
	Trigger   Trigger    `json:"trigger"`
	Condition *Condition `json:"condition,omitempty"`
	Effect    Effect     `json:"effect"`
	// MaxTriggers caps how many times the ability may fire per battle.
	// nil means unlimited. A firing that fails its condition does not
	// consume a slot.
	MaxTriggers *uint32 `json:"max_triggers,omitempty"`
}
