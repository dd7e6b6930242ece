package game

import (
	"errors"
	"math"
	"testing"
)

func TestAddSatClamps(t *testing.T) {
	cases := []struct {
		a, b, want int32
	}{
		{1, 2, 3},
		{math.MaxInt32, 1, math.MaxInt32},
		{math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{math.MinInt32, -1, math.MinInt32},
		{math.MaxInt32, -math.MaxInt32, 0},
	}
	for _, c := range cases {
		if got := AddSat(c.a, c.b); got != c.want {
			t.Fatalf("AddSat(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestApplyStatDeltaFloorsHealth(t *testing.T) {
	u := &CombatUnit{Attack: 2, Health: 3}
	u.ApplyStatDelta(-10, -10)
	if u.Health != 0 {
		t.Fatalf("health must floor at zero, got %d", u.Health)
	}
	if u.Attack != -8 {
		t.Fatalf("attack may go negative internally, got %d", u.Attack)
	}
	if u.EffectiveAttack() != 0 {
		t.Fatalf("effective attack must clamp at zero, got %d", u.EffectiveAttack())
	}
	if u.Alive() {
		t.Fatalf("zero health means dead")
	}
}

func TestStatusBitmask(t *testing.T) {
	var s Status
	s = s.With(StatusShield).With(StatusGuard)
	if !s.Has(StatusShield) || !s.Has(StatusGuard) || s.Has(StatusPoison) {
		t.Fatalf("unexpected mask %b", s)
	}
	s = s.Without(StatusShield)
	if s.Has(StatusShield) || !s.Has(StatusGuard) {
		t.Fatalf("clear removed the wrong bit: %b", s)
	}
}

func TestTeamRankAndOpponent(t *testing.T) {
	if TeamPlayer.Rank() >= TeamEnemy.Rank() {
		t.Fatalf("the initiating side must rank first")
	}
	if TeamPlayer.Opponent() != TeamEnemy || TeamEnemy.Opponent() != TeamPlayer {
		t.Fatalf("opponent mapping broken")
	}
}

type fixedIDs struct{ next uint32 }

func (f *fixedIDs) NextUnitID(team Team) UnitID {
	f.next++
	return UnitID{Team: team, Ordinal: f.next}
}

func TestUnitsFromBoard(t *testing.T) {
	pool := NewCardPool([]Card{
		{ID: "wolf", Name: "wolf", Attack: 3, Health: 2},
	})
	board := &PlayerBoard{}
	board.Slots[0] = BoardSlot{Occupied: true, CardID: "wolf", Attack: 5, Health: 4, Statuses: Status(0).With(StatusGuard)}
	board.Slots[2] = BoardSlot{Occupied: true, CardID: "wolf", Attack: 3, Health: 2}

	units, err := UnitsFromBoard(board, TeamEnemy, pool, &fixedIDs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	// Slot stats, not template stats, carry permanent modifiers.
	if units[0].Attack != 5 || units[0].Health != 4 || !units[0].Statuses.Has(StatusGuard) {
		t.Fatalf("slot state must override template: %+v", units[0])
	}
	if units[0].ID.Ordinal == units[1].ID.Ordinal {
		t.Fatalf("ordinals must be unique")
	}

	board.Slots[1] = BoardSlot{Occupied: true, CardID: "ghost"}
	_, err = UnitsFromBoard(board, TeamEnemy, pool, &fixedIDs{})
	var notFound *TemplateNotFoundError
	if !errors.As(err, &notFound) || notFound.CardID != "ghost" {
		t.Fatalf("expected TemplateNotFound, got %v", err)
	}
}

func TestPermanentStatDeltasAccumulate(t *testing.T) {
	id := UnitID{Team: TeamPlayer, Ordinal: 1}
	other := UnitID{Team: TeamPlayer, Ordinal: 2}
	events := []Event{
		{Kind: EventAbilityModStats, Unit: &id, Attack: 1, Health: 2, Permanent: true},
		{Kind: EventAbilityModStats, Unit: &id, Attack: 3, Permanent: true},
		{Kind: EventAbilityModStats, Unit: &other, Attack: 9}, // transient, ignored
	}
	deltas := PermanentStatDeltas(events)
	if d := deltas[id]; d.Attack != 4 || d.Health != 2 {
		t.Fatalf("unexpected delta %+v", d)
	}
	if _, ok := deltas[other]; ok {
		t.Fatalf("transient modification must not persist")
	}
}

func TestPermanentStatusDeltasLastWriteWins(t *testing.T) {
	id := UnitID{Team: TeamPlayer, Ordinal: 1}
	events := []Event{
		{Kind: EventAbilityStatus, Unit: &id, Status: StatusShield, Permanent: true},
		{Kind: EventAbilityStatus, Unit: &id, Status: StatusShield, Clear: true, Permanent: true},
		{Kind: EventAbilityStatus, Unit: &id, Status: StatusGuard, Permanent: true},
	}
	d := PermanentStatusDeltas(events)[id]
	if d.Set.Has(StatusShield) || !d.Cleared.Has(StatusShield) {
		t.Fatalf("later clear must win: %+v", d)
	}
	if !d.Set.Has(StatusGuard) {
		t.Fatalf("guard grant lost: %+v", d)
	}
}

func TestResultOf(t *testing.T) {
	if ResultOf(nil) != ResultDraw {
		t.Fatalf("empty log reads as draw")
	}
	events := []Event{
		{Kind: EventPhaseStart},
		{Kind: EventBattleEnd, Result: ResultVictory},
	}
	if ResultOf(events) != ResultVictory {
		t.Fatalf("expected victory")
	}
}
