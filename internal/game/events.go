package game

// EventKind enumerates all observable battle events.
type EventKind string

const (
	EventPhaseStart      EventKind = "phase_start"
	EventPhaseEnd        EventKind = "phase_end"
	EventAbilityTrigger  EventKind = "ability_trigger"
	EventClash           EventKind = "clash"
	EventDamageTaken     EventKind = "damage_taken"
	EventUnitDeath       EventKind = "unit_death"
	EventUnitSpawn       EventKind = "unit_spawn"
	EventAbilityDamage   EventKind = "ability_damage"
	EventAbilityModStats EventKind = "ability_modify_stats"
	EventAbilityStatus   EventKind = "ability_grant_status"
	EventStatusConsumed  EventKind = "status_consumed"
	EventAbilityGainMana EventKind = "ability_gain_mana"
	EventBattleEnd       EventKind = "battle_end"
	EventLimitExceeded   EventKind = "limit_exceeded"
)

// Phase names a segment of the state machine for PhaseStart/PhaseEnd events.
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseClash Phase = "clash"
	PhaseShop  Phase = "shop"
)

// BattleResult is the outcome from the player side's perspective.
type BattleResult string

const (
	ResultVictory BattleResult = "victory"
	ResultDefeat  BattleResult = "defeat"
	ResultDraw    BattleResult = "draw"
)

// UnitSnapshot captures one unit's state inside an event payload.
type UnitSnapshot struct {
	ID       UnitID `json:"id"`
	CardID   string `json:"card_id"`
	Attack   int32  `json:"attack"`
	Health   int32  `json:"health"`
	Statuses Status `json:"statuses"`
}

// Event is one append-only log entry. The log is the sole observable output
// of a battle and must be byte-identical for identical inputs, so the struct
// is flat with a fixed field order. Numeric fields are always encoded;
// optional references use pointers.
type Event struct {
	Kind    EventKind `json:"kind"`
	Phase   Phase     `json:"phase,omitempty"`
	Round   int32     `json:"round"`
	Team    Team      `json:"team,omitempty"`
	Unit    *UnitID   `json:"unit,omitempty"`
	Source  *UnitID   `json:"source,omitempty"`
	Ability string    `json:"ability,omitempty"`
	CardID  string    `json:"card_id,omitempty"`
	Index   int32     `json:"index"`
	// Amount is damage dealt or mana gained.
	Amount int32 `json:"amount"`
	// Remaining is the target's health after a DamageTaken event.
	Remaining int32 `json:"remaining"`
	// Attack/Health are stat deltas for modify-stats events.
	Attack    int32 `json:"attack"`
	Health    int32 `json:"health"`
	Permanent bool  `json:"permanent,omitempty"`
	// PlayerDamage/EnemyDamage are the simultaneous hits of a Clash event,
	// dealt by the player and enemy front units respectively.
	PlayerDamage int32          `json:"player_damage"`
	EnemyDamage  int32          `json:"enemy_damage"`
	Status       Status         `json:"status,omitempty"`
	Clear        bool           `json:"clear,omitempty"`
	Result       BattleResult   `json:"result,omitempty"`
	Reason       string         `json:"reason,omitempty"`
	Board        []UnitSnapshot `json:"board,omitempty"`
}

// StatDelta accumulates permanent attack/health changes for one unit.
type StatDelta struct {
	Attack int32 `json:"attack"`
	Health int32 `json:"health"`
}

// StatusDelta accumulates permanent status grants and clears for one unit.
type StatusDelta struct {
	Set     Status `json:"set"`
	Cleared Status `json:"cleared"`
}

// PermanentStatDeltas reduces the log to the permanent stat change per unit,
// for callers that persist only the durable portion of a battle.
func PermanentStatDeltas(events []Event) map[UnitID]StatDelta {
	out := make(map[UnitID]StatDelta)
	for _, ev := range events {
		if ev.Kind != EventAbilityModStats || !ev.Permanent || ev.Unit == nil {
			continue
		}
		d := out[*ev.Unit]
		d.Attack = AddSat(d.Attack, ev.Attack)
		d.Health = AddSat(d.Health, ev.Health)
		out[*ev.Unit] = d
	}
	return out
}

// PermanentStatusDeltas reduces the log to the permanent status change per
// unit. A later grant overrides an earlier clear of the same bit and vice
// versa, matching the order effects were applied.
func PermanentStatusDeltas(events []Event) map[UnitID]StatusDelta {
	out := make(map[UnitID]StatusDelta)
	for _, ev := range events {
		if ev.Kind != EventAbilityStatus || !ev.Permanent || ev.Unit == nil {
			continue
		}
		d := out[*ev.Unit]
		if ev.Clear {
			d.Cleared = d.Cleared.With(ev.Status)
			d.Set = d.Set.Without(ev.Status)
		} else {
			d.Set = d.Set.With(ev.Status)
			d.Cleared = d.Cleared.Without(ev.Status)
		}
		out[*ev.Unit] = d
	}
	return out
}

// ShopManaDelta reduces the log to the total mana gained by abilities.
func ShopManaDelta(events []Event) int32 {
	var total int32
	for _, ev := range events {
		if ev.Kind == EventAbilityGainMana {
			total = AddSat(total, ev.Amount)
		}
	}
	return total
}

// ResultOf extracts the battle outcome from the log. A log without a
// BattleEnd event (only possible for an empty log) reads as a draw.
func ResultOf(events []Event) BattleResult {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == EventBattleEnd {
			return events[i].Result
		}
	}
	return ResultDraw
}
