package game

import (
	"errors"
	"fmt"
)

// Recoverable errors surfaced by the turn commitment validator and by roster
// construction. Battle resolution itself exposes no recoverable errors: an
// unresolvable target is a fizzle and a ceiling breach is a forced draw.
var (
	ErrInvalidHandIndex  = errors.New("invalid hand index")
	ErrCardAlreadyUsed   = errors.New("card already used this turn")
	ErrInvalidBoardSlot  = errors.New("invalid board slot")
	ErrBoardSlotOccupied = errors.New("board slot occupied")
	ErrInvalidBoardPitch = errors.New("invalid board pitch")
)

// NotEnoughManaError reports a play action exceeding the accrued turn mana.
type NotEnoughManaError struct {
	Have int32
	Need int32
}

func (e *NotEnoughManaError) Error() string {
	return fmt.Sprintf("not enough mana: have %d, need %d", e.Have, e.Need)
}

// TemplateNotFoundError reports a card ID absent from the card pool.
type TemplateNotFoundError struct {
	CardID string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("card template not found: %s", e.CardID)
}
