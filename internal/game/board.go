package game

// MaxBoardSize is the number of slots per side. Board sequences never exceed
// it, even after spawn effects; the value must be identical across hosts.
const MaxBoardSize = 5

// BoardSlot is one persistent board position. Attack/Health hold the
// permanent post-modifier stats written back after battles; Statuses holds
// only the permanent portion of the status mask.
type BoardSlot struct {
	Occupied bool   `json:"occupied"`
	CardID   string `json:"card_id,omitempty"`
	Attack   int32  `json:"attack,omitempty"`
	Health   int32  `json:"health,omitempty"`
	Statuses Status `json:"statuses,omitempty"`
}

// PlayerBoard is the persistent, shop-phase view of one side's roster.
// Slot 0 is the front, first to fight.
type PlayerBoard struct {
	Slots [MaxBoardSize]BoardSlot `json:"slots"`
}

// Clone returns an independent copy. The turn validator mutates a clone and
// the caller commits it only on full success.
func (b *PlayerBoard) Clone() *PlayerBoard {
	cp := *b
	return &cp
}

// HandCard is one drawable card in a player's hand. Used marks cards already
// pitched or played this turn.
type HandCard struct {
	CardID string `json:"card_id"`
	Used   bool   `json:"used"`
}

// Hand is the ordered list of cards available during a shop phase.
type Hand []HandCard

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	cp := make(Hand, len(h))
	copy(cp, h)
	return cp
}

// IDAllocator hands out unit ordinals. The limits tracker implements it for
// battles; the turn validator uses it to instantiate shop-phase units.
type IDAllocator interface {
	NextUnitID(team Team) UnitID
}

// UnitsFromBoard instantiates combat units from a persistent board, front
// first, carrying over permanent stats and statuses. Unknown card IDs raise
// TemplateNotFoundError; this is the roster-construction boundary, inside a
// battle unknown IDs only fizzle.
func UnitsFromBoard(board *PlayerBoard, team Team, pool CardPool, ids IDAllocator) ([]*CombatUnit, error) {
	units := make([]*CombatUnit, 0, MaxBoardSize)
	for i := range board.Slots {
		slot := &board.Slots[i]
		if !slot.Occupied {
			continue
		}
		card, err := pool.Lookup(slot.CardID)
		if err != nil {
			return nil, err
		}
		u := NewCombatUnit(ids.NextUnitID(team), card)
		u.Attack = slot.Attack
		u.Health = slot.Health
		u.Statuses = slot.Statuses
		units = append(units, u)
	}
	return units, nil
}
