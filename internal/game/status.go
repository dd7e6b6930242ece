package game

// Status is a bitmask of unit statuses. Statuses granted permanently are
// written back to the persistent board after a battle; transient ones live
// only on the CombatUnit.
type Status uint32

const (
	// StatusShield fully negates the next hit taken, then is consumed.
	StatusShield Status = 1 << iota
	// StatusPoison makes any non-zero clash hit dealt by the bearer lethal.
	StatusPoison
	// StatusGuard makes the bearer soak enemy random targeting.
	StatusGuard
)

// Has reports whether all bits of s are set.
func (st Status) Has(s Status) bool { return st&s == s }

// With returns the mask with the given bits set.
func (st Status) With(s Status) Status { return st | s }

// Without returns the mask with the given bits cleared.
func (st Status) Without(s Status) Status { return st &^ s }
