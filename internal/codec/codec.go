// Package codec serializes boards and event logs for the two hosting
// environments: an unbounded encoding for the sandbox and a fixed-capacity
// encoding for storage-metered hosts. The bounded form truncates instead of
// erroring when a collection exceeds its ceiling; picking a ceiling large
// enough for the battle at hand is the caller's configuration concern.
package codec

import (
	"encoding/json"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
)

// MarshalEvents encodes a full event log.
func MarshalEvents(events []game.Event) ([]byte, error) {
	return json.Marshal(events)
}

// UnmarshalEvents decodes an event log produced by either encoding.
func UnmarshalEvents(data []byte) ([]game.Event, error) {
	var out []game.Event
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalEventsBounded encodes at most maxEvents entries, dropping the tail
// beyond the ceiling. It reports whether truncation happened.
func MarshalEventsBounded(events []game.Event, maxEvents int) ([]byte, bool, error) {
	truncated := false
	if maxEvents >= 0 && len(events) > maxEvents {
		events = events[:maxEvents]
		truncated = true
	}
	data, err := json.Marshal(events)
	return data, truncated, err
}

// MarshalBoard encodes a persistent board.
func MarshalBoard(board *game.PlayerBoard) ([]byte, error) {
	return json.Marshal(board)
}

// UnmarshalBoard decodes a persistent board.
func UnmarshalBoard(data []byte) (*game.PlayerBoard, error) {
	var out game.PlayerBoard
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarshalHand encodes a hand.
func MarshalHand(hand game.Hand) ([]byte, error) {
	return json.Marshal(hand)
}

// UnmarshalHand decodes a hand.
func UnmarshalHand(data []byte) (game.Hand, error) {
	var out game.Hand
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarshalHandBounded encodes at most maxCards hand entries, truncating the
// tail. It reports whether truncation happened.
func MarshalHandBounded(hand game.Hand, maxCards int) ([]byte, bool, error) {
	truncated := false
	if maxCards >= 0 && len(hand) > maxCards {
		hand = hand[:maxCards]
		truncated = true
	}
	data, err := json.Marshal(hand)
	return data, truncated, err
}
