// Package turn replays a player's shop-phase actions against the pre-turn
// board, enforcing the turn-scoped mana invariants. Its output is the
// validated board that seeds battle resolution, so it obeys the same
// cross-host determinism contract as the engine.
package turn

import (
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/engine"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/limits"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/rng"
)

// ManaLimit caps the turn-scoped currency. Identical across hosts.
const ManaLimit int32 = 10

// ActionKind names one shop-phase action.
type ActionKind string

const (
	// ActionPitchHand discards a hand card for mana.
	ActionPitchHand ActionKind = "pitch_hand"
	// ActionPlayHand spends mana to place a hand card on an empty slot.
	ActionPlayHand ActionKind = "play_hand"
	// ActionPitchBoard removes a board unit for mana.
	ActionPitchBoard ActionKind = "pitch_board"
	// ActionSwapBoard exchanges two board slot contents.
	ActionSwapBoard ActionKind = "swap_board"
)

// Action is one player-submitted shop action. Only the fields used by the
// chosen Kind are meaningful.
type Action struct {
	Kind      ActionKind `json:"kind"`
	HandIndex int        `json:"hand_index,omitempty"`
	Slot      int        `json:"slot,omitempty"`
	SlotA     int        `json:"slot_a,omitempty"`
	SlotB     int        `json:"slot_b,omitempty"`
}

// State is the mutable turn state the validator replays against. Callers
// are expected to pass a clone and commit it only on full success; the
// validator aborts on the first invalid action.
type State struct {
	Board *game.PlayerBoard
	Hand  game.Hand
	Mana  int32
}

// VerifyAndApply replays the actions in order. Each action is validated
// independently; the first failure returns a typed error and the caller
// must discard the state. On success the shop triggers of the resulting
// board fire through the battle pipeline and their permanent effects are
// written back to the board and the mana counter.
func VerifyAndApply(state *State, actions []Action, pool game.CardPool, seed uint64) error {
	state.Mana = 0
	tracker := limits.NewTracker()

	units, err := game.UnitsFromBoard(state.Board, game.TeamPlayer, pool, tracker)
	if err != nil {
		return err
	}
	// Slot index -> unit, maintained through the replay so shop triggers
	// see the final roster.
	bySlot := make(map[int]*game.CombatUnit, len(units))
	live := 0
	for i := range state.Board.Slots {
		if state.Board.Slots[i].Occupied {
			bySlot[i] = units[live]
			live++
		}
	}

	shopActions := make([]engine.ShopAction, 0, len(actions))
	for i := range actions {
		a := &actions[i]
		switch a.Kind {
		case ActionPitchHand:
			if err := pitchHand(state, a.HandIndex, pool); err != nil {
				return err
			}
		case ActionPlayHand:
			unit, err := playHand(state, a.HandIndex, a.Slot, pool, tracker)
			if err != nil {
				return err
			}
			bySlot[a.Slot] = unit
			shopActions = append(shopActions, engine.ShopAction{Unit: unit})
		case ActionPitchBoard:
			unit, err := pitchBoard(state, a.Slot, pool, bySlot)
			if err != nil {
				return err
			}
			delete(bySlot, a.Slot)
			shopActions = append(shopActions, engine.ShopAction{Sell: true, Unit: unit})
		case ActionSwapBoard:
			if err := swapBoard(state, a.SlotA, a.SlotB); err != nil {
				return err
			}
			bySlot[a.SlotA], bySlot[a.SlotB] = bySlot[a.SlotB], bySlot[a.SlotA]
			if bySlot[a.SlotA] == nil {
				delete(bySlot, a.SlotA)
			}
			if bySlot[a.SlotB] == nil {
				delete(bySlot, a.SlotB)
			}
		default:
			return game.ErrInvalidBoardSlot
		}
	}

	fireShopTriggers(state, bySlot, shopActions, pool, tracker, seed)
	return nil
}

func gainMana(state *State, amount int32) {
	state.Mana = game.AddSat(state.Mana, amount)
	if state.Mana > ManaLimit {
		state.Mana = ManaLimit
	}
}

func pitchHand(state *State, handIndex int, pool game.CardPool) error {
	if handIndex < 0 || handIndex >= len(state.Hand) {
		return game.ErrInvalidHandIndex
	}
	hc := &state.Hand[handIndex]
	if hc.Used {
		return game.ErrCardAlreadyUsed
	}
	card, err := pool.Lookup(hc.CardID)
	if err != nil {
		return err
	}
	hc.Used = true
	gainMana(state, card.PitchValue)
	return nil
}

func playHand(state *State, handIndex, slot int, pool game.CardPool, ids game.IDAllocator) (*game.CombatUnit, error) {
	if handIndex < 0 || handIndex >= len(state.Hand) {
		return nil, game.ErrInvalidHandIndex
	}
	hc := &state.Hand[handIndex]
	if hc.Used {
		return nil, game.ErrCardAlreadyUsed
	}
	if slot < 0 || slot >= game.MaxBoardSize {
		return nil, game.ErrInvalidBoardSlot
	}
	if state.Board.Slots[slot].Occupied {
		return nil, game.ErrBoardSlotOccupied
	}
	card, err := pool.Lookup(hc.CardID)
	if err != nil {
		return nil, err
	}
	// Tokens are battle-only spawns; a hand holding one is malformed input.
	if card.Token {
		return nil, game.ErrInvalidHandIndex
	}
	if state.Mana < card.PlayCost {
		return nil, &game.NotEnoughManaError{Have: state.Mana, Need: card.PlayCost}
	}
	hc.Used = true
	state.Mana -= card.PlayCost
	state.Board.Slots[slot] = game.BoardSlot{
		Occupied: true,
		CardID:   card.ID,
		Attack:   card.Attack,
		Health:   card.Health,
	}
	return game.NewCombatUnit(ids.NextUnitID(game.TeamPlayer), card), nil
}

func pitchBoard(state *State, slot int, pool game.CardPool, bySlot map[int]*game.CombatUnit) (*game.CombatUnit, error) {
	if slot < 0 || slot >= game.MaxBoardSize || !state.Board.Slots[slot].Occupied {
		return nil, game.ErrInvalidBoardPitch
	}
	card, err := pool.Lookup(state.Board.Slots[slot].CardID)
	if err != nil {
		return nil, err
	}
	unit := bySlot[slot]
	state.Board.Slots[slot] = game.BoardSlot{}
	gainMana(state, card.PitchValue)
	return unit, nil
}

func swapBoard(state *State, a, b int) error {
	if a < 0 || a >= game.MaxBoardSize || b < 0 || b >= game.MaxBoardSize {
		return game.ErrInvalidBoardSlot
	}
	state.Board.Slots[a], state.Board.Slots[b] = state.Board.Slots[b], state.Board.Slots[a]
	return nil
}

// fireShopTriggers runs on_shop_start plus one on_buy/on_sell per replayed
// action through the battle pipeline, then writes the permanent outcome
// (stat deltas, status deltas, gained mana, shop-phase deaths) back to the
// board and the mana counter.
func fireShopTriggers(state *State, bySlot map[int]*game.CombatUnit, actions []engine.ShopAction, pool game.CardPool, tracker *limits.Tracker, seed uint64) {
	units := make([]*game.CombatUnit, 0, len(bySlot))
	slotOf := make(map[game.UnitID]int, len(bySlot))
	for slot := 0; slot < game.MaxBoardSize; slot++ {
		if u, ok := bySlot[slot]; ok && u != nil {
			units = append(units, u)
			slotOf[u.ID] = slot
		}
	}

	session := engine.NewShopSession(units, tracker, rng.New(seed), pool)
	events := session.Run(actions)

	gainMana(state, game.ShopManaDelta(events))

	for id, delta := range game.PermanentStatDeltas(events) {
		if slot, ok := slotOf[id]; ok && state.Board.Slots[slot].Occupied {
			s := &state.Board.Slots[slot]
			s.Attack = game.AddSat(s.Attack, delta.Attack)
			s.Health = game.AddSat(s.Health, delta.Health)
			if s.Health < 0 {
				s.Health = 0
			}
		}
	}
	for id, delta := range game.PermanentStatusDeltas(events) {
		if slot, ok := slotOf[id]; ok && state.Board.Slots[slot].Occupied {
			s := &state.Board.Slots[slot]
			s.Statuses = s.Statuses.With(delta.Set).Without(delta.Cleared)
		}
	}
	// Units killed by shop effects vacate their slots.
	for _, ev := range events {
		if ev.Kind != game.EventUnitDeath || ev.Unit == nil {
			continue
		}
		if slot, ok := slotOf[*ev.Unit]; ok {
			state.Board.Slots[slot] = game.BoardSlot{}
		}
	}
}
