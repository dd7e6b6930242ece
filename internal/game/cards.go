package game

// Stat names a numeric attribute readable by conditions and target ranking.
type Stat string

const (
	StatAttack   Stat = "attack"
	StatHealth   Stat = "health"
	StatManaCost Stat = "mana_cost"
)

// Card is an immutable unit template. Instances are authored in the config
// file and loaded read-only into a CardPool; battle code never mutates them.
type Card struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Attack     int32  `json:"attack"`
	Health     int32  `json:"health"`
	PlayCost   int32  `json:"play_cost"`
	PitchValue int32  `json:"pitch_value"`
	// Token cards exist only as battle spawns and are never drawable or
	// playable from hand.
	Token     bool      `json:"token"`
	Abilities []Ability `json:"abilities"`
}

// CardPool is a read-only lookup of card templates keyed by card ID.
type CardPool map[string]*Card

// NewCardPool builds a pool from a card list. Later duplicates win; the
// config loader rejects duplicate IDs before this point.
func NewCardPool(cards []Card) CardPool {
	pool := make(CardPool, len(cards))
	for i := range cards {
		pool[cards[i].ID] = &cards[i]
	}
	return pool
}

// Lookup returns the template for id, or a TemplateNotFoundError.
func (p CardPool) Lookup(id string) (*Card, error) {
	c, ok := p[id]
	if !ok {
		return nil, &TemplateNotFoundError{CardID: id}
	}
	return c, nil
}
