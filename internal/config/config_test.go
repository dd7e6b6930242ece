package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battler_config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigValid(t *testing.T) {
	path := writeConfig(t, `{
		"card_list": [
			{"id": "wolf", "name": "Wolf", "attack": 3, "health": 2, "play_cost": 3, "pitch_value": 2},
			{"id": "cub", "name": "Cub", "attack": 1, "health": 1, "token": true},
			{"id": "den", "name": "Den", "attack": 0, "health": 4, "play_cost": 2, "pitch_value": 1,
			 "abilities": [{"name": "whelp", "trigger": "on_faint",
			   "effect": {"kind": "spawn_unit", "card_id": "cub", "target": {"kind": "self"}}}]}
		],
		"server": {"address": ":9090"},
		"max_stored_events": 500
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Cards) != 3 || cfg.Pool["wolf"] == nil {
		t.Fatalf("cards not loaded: %+v", cfg.Cards)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("server address not honored: %s", cfg.ServerAddress)
	}
	if cfg.MaxStoredEvents != 500 {
		t.Fatalf("max_stored_events not honored: %d", cfg.MaxStoredEvents)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{"card_list": [{"id": "a", "name": "A", "attack": 1, "health": 1}]}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %s", cfg.ServerAddress)
	}
	if cfg.MaxStoredEvents != DefaultMaxStoredEvents {
		t.Fatalf("expected default event ceiling, got %d", cfg.MaxStoredEvents)
	}
}

func TestLoadConfigRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"empty list":        `{"card_list": []}`,
		"missing id":        `{"card_list": [{"name": "X", "attack": 1, "health": 1}]}`,
		"duplicate id":      `{"card_list": [{"id": "a", "name": "A", "attack": 1, "health": 1}, {"id": "a", "name": "B", "attack": 1, "health": 1}]}`,
		"zero health":       `{"card_list": [{"id": "a", "name": "A", "attack": 1, "health": 0}]}`,
		"costed token":      `{"card_list": [{"id": "a", "name": "A", "attack": 1, "health": 1, "token": true, "play_cost": 2}]}`,
		"dangling spawn":    `{"card_list": [{"id": "a", "name": "A", "attack": 1, "health": 1, "abilities": [{"name": "x", "trigger": "on_faint", "effect": {"kind": "spawn_unit", "card_id": "ghost", "target": {"kind": "self"}}}]}]}`,
		"unnamed ability":   `{"card_list": [{"id": "a", "name": "A", "attack": 1, "health": 1, "abilities": [{"trigger": "on_start", "effect": {"kind": "gain_mana", "amount": 1, "target": {"kind": "self"}}}]}]}`,
		"not json":          `{`,
	}
	for name, body := range cases {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file: expected an error")
	}
}
