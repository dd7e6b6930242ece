// Package limits bounds every unbounded-looking operation of battle
// resolution (recursive ability chains, trigger fan-out, unit spawning) so
// that execution provably terminates within a metered budget. One Tracker is
// created per battle and threaded explicitly through the pipeline; nothing
// here is shared across battles.
package limits

import "github.com/shawntabrizi/open-auto-battler-sub000/internal/game"

// Ceilings. These are part of the determinism contract and must be identical
// on every host that replays a battle.
const (
	MaxRecursionDepth   = 50
	MaxSpawnsPerBattle  = 100
	MaxTriggersPerPhase = 200
	MaxTriggerDepth     = 10
)

// Reason names the ceiling that was breached.
type Reason string

const (
	ReasonRecursionDepth Reason = "recursion_depth"
	ReasonSpawnCount     Reason = "spawn_count"
	ReasonTriggerCount   Reason = "trigger_count"
	ReasonTriggerDepth   Reason = "trigger_depth"
)

// Breach records which side tripped which ceiling. The first breach wins and
// is never overwritten.
type Breach struct {
	Team   game.Team
	Reason Reason
}

// Tracker holds the per-battle counters and allocates unit ordinals so
// instance identifiers never collide across both boards for the whole
// battle.
type Tracker struct {
	recursionDepth int
	spawnCount     int
	phaseTriggers  int
	triggerDepth   int
	nextOrdinal    uint32
	breach         *Breach
}

// NewTracker returns a fresh tracker. Each battle must own exactly one.
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) latch(team game.Team, reason Reason) bool {
	if t.breach == nil {
		t.breach = &Breach{Team: team, Reason: reason}
	}
	return false
}

// Breach returns the latched breach, or nil while all counters are within
// their ceilings.
func (t *Tracker) Breach() *Breach { return t.breach }

// EnterRecursion counts one nested resolution step for the given side.
// It reports false once the recursion ceiling is breached; the caller must
// abort the in-flight step without reverting prior log entries.
func (t *Tracker) EnterRecursion(team game.Team) bool {
	if t.breach != nil {
		return false
	}
	t.recursionDepth++
	if t.recursionDepth > MaxRecursionDepth {
		return t.latch(team, ReasonRecursionDepth)
	}
	return true
}

// ExitRecursion unwinds one recursion step.
func (t *Tracker) ExitRecursion() {
	if t.recursionDepth > 0 {
		t.recursionDepth--
	}
}

// RecordSpawn counts one spawned unit against the per-battle ceiling.
func (t *Tracker) RecordSpawn(team game.Team) bool {
	if t.breach != nil {
		return false
	}
	t.spawnCount++
	if t.spawnCount > MaxSpawnsPerBattle {
		return t.latch(team, ReasonSpawnCount)
	}
	return true
}

// RecordTrigger counts one ability firing against the per-phase ceiling.
func (t *Tracker) RecordTrigger(team game.Team) bool {
	if t.breach != nil {
		return false
	}
	t.phaseTriggers++
	if t.phaseTriggers > MaxTriggersPerPhase {
		return t.latch(team, ReasonTriggerCount)
	}
	return true
}

// ResetPhaseTriggers starts a new trigger budget at a phase boundary.
func (t *Tracker) ResetPhaseTriggers() { t.phaseTriggers = 0 }

// EnterTriggerDepth counts one level of trigger nesting (a trigger fired
// while another trigger is still resolving).
func (t *Tracker) EnterTriggerDepth(team game.Team) bool {
	if t.breach != nil {
		return false
	}
	t.triggerDepth++
	if t.triggerDepth > MaxTriggerDepth {
		return t.latch(team, ReasonTriggerDepth)
	}
	return true
}

// ExitTriggerDepth unwinds one trigger nesting level.
func (t *Tracker) ExitTriggerDepth() {
	if t.triggerDepth > 0 {
		t.triggerDepth--
	}
}

// NextUnitID allocates the next unit instance identifier. Ordinals are
// monotonic across the whole battle and never reused.
func (t *Tracker) NextUnitID(team game.Team) game.UnitID {
	t.nextOrdinal++
	return game.UnitID{Team: team, Ordinal: t.nextOrdinal}
}
