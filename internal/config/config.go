package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
)

type rawConfig struct {
	CardList []game.Card `json:"card_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
	// MaxStoredEvents bounds the encoded event log persisted per battle.
	// Zero means the built-in default.
	MaxStoredEvents int `json:"max_stored_events"`
}

// LoadedConfig contains the card pool to serve and the server address to
// bind to.
type LoadedConfig struct {
	Cards           []game.Card
	Pool            game.CardPool
	ServerAddress   string
	MaxStoredEvents int
}

// DefaultMaxStoredEvents caps the persisted event log when the config does
// not override it. Battles breach the execution limits long before this.
const DefaultMaxStoredEvents = 20000

// LoadConfig reads the configuration file at path and returns the validated
// card list and server address. It requires the key `card_list` (snake_case).
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cards := rc.CardList
	if len(cards) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide 'card_list' array)", path)
	}
	if err := validateCards(path, cards); err != nil {
		return nil, err
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	maxEvents := rc.MaxStoredEvents
	if maxEvents <= 0 {
		maxEvents = DefaultMaxStoredEvents
	}

	return &LoadedConfig{
		Cards:           cards,
		Pool:            game.NewCardPool(cards),
		ServerAddress:   addr,
		MaxStoredEvents: maxEvents,
	}, nil
}

// validateCards runs the cross-entry checks: unique IDs, resolvable spawn
// references, tokens never purchasable, stats inside the int32 domain the
// engine assumes.
func validateCards(path string, cards []game.Card) error {
	ids := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return fmt.Errorf("config file %s: card entry missing 'id'", path)
		}
		if _, exists := ids[id]; exists {
			return fmt.Errorf("config file %s: duplicate card id '%s'", path, c.ID)
		}
		ids[id] = struct{}{}
	}
	for _, c := range cards {
		if c.Health <= 0 {
			return fmt.Errorf("config file %s: card '%s' must have positive health", path, c.ID)
		}
		if c.Token && (c.PlayCost != 0 || c.PitchValue != 0) {
			return fmt.Errorf("config file %s: token card '%s' must not carry play/pitch costs", path, c.ID)
		}
		for _, ab := range c.Abilities {
			if ab.Name == "" {
				return fmt.Errorf("config file %s: card '%s' has an unnamed ability", path, c.ID)
			}
			if ab.Effect.Kind == game.EffectSpawnUnit {
				if _, ok := ids[ab.Effect.CardID]; !ok {
					return fmt.Errorf("config file %s: card '%s' ability '%s' spawns unknown card '%s'", path, c.ID, ab.Name, ab.Effect.CardID)
				}
			}
		}
	}
	return nil
}
