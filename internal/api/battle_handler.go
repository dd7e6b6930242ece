package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/codec"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/constants"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/logging"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/service"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/storage"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/turn"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	repo            storage.Repository
	pool            game.CardPool
	cards           []game.Card
	maxStoredEvents int
}

// NewBattleHandler creates a handler over the given repository and the
// config-loaded card pool.
func NewBattleHandler(repo storage.Repository, cards []game.Card, pool game.CardPool, maxStoredEvents int) *BattleHandler {
	return &BattleHandler{repo: repo, pool: pool, cards: cards, maxStoredEvents: maxStoredEvents}
}

// ListCards returns the full card pool served by this deployment.
func (h *BattleHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.cards)
}

type resolveBattleRequest struct {
	Player         string            `json:"player"`
	Seed           uint64            `json:"seed"`
	PlayerBoard    *game.PlayerBoard `json:"player_board,omitempty"`
	EnemyBoard     *game.PlayerBoard `json:"enemy_board,omitempty"`
	OpponentBudget int32             `json:"opponent_budget,omitempty"`
}

// ResolveBattle runs one battle and returns the persisted event log.
func (h *BattleHandler) ResolveBattle(c *gin.Context) {
	var req resolveBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Player == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameRequired})
		return
	}
	res, err := service.ResolveBattle(h.repo, h.pool, h.maxStoredEvents, &service.ResolveRequest{
		PlayerName:     req.Player,
		PlayerBoard:    req.PlayerBoard,
		EnemyBoard:     req.EnemyBoard,
		Seed:           req.Seed,
		OpponentBudget: req.OpponentBudget,
	})
	if err != nil {
		var notFound *game.TemplateNotFoundError
		switch {
		case errors.Is(err, service.ErrNoBoard), errors.As(err, &notFound):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		default:
			logging.Error("battle resolution failed", err, logging.Fields{constants.LogFieldPlayer: req.Player, constants.LogFieldSeed: req.Seed})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedResolveBattle})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetBattle returns one persisted battle record with its decoded event log.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("battleID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return
	}
	rec, err := h.repo.GetBattleByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
			return
		}
		logging.Error("failed to load battle", err, logging.Fields{constants.LogFieldBattleID: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
		return
	}
	events, err := codec.UnmarshalEvents(rec.EventsJSON)
	if err != nil {
		logging.Error("failed to decode stored battle log", err, logging.Fields{constants.LogFieldBattleID: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"battle_id": rec.ID,
		"seed":      rec.Seed,
		"result":    rec.Result,
		"truncated": rec.Truncated,
		"events":    events,
	})
}

type commitTurnRequest struct {
	Seed    uint64        `json:"seed"`
	Actions []turn.Action `json:"actions"`
}

// CommitTurn validates and applies one turn's shop actions for a player.
func (h *BattleHandler) CommitTurn(c *gin.Context) {
	player := c.Param("player")
	if player == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameRequired})
		return
	}
	var req commitTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	state, err := service.CommitTurn(h.repo, h.pool, player, req.Actions, req.Seed)
	if err != nil {
		if isTurnError(err) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		logging.Error("turn commit failed", err, logging.Fields{constants.LogFieldPlayer: player})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCommitTurn})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board": state.Board,
		"hand":  state.Hand,
		"mana":  state.Mana,
	})
}

// GetPlayer returns one player profile with stats.
func (h *BattleHandler) GetPlayer(c *gin.Context) {
	name := c.Param("player")
	p, err := h.repo.GetPlayerByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerNotFound})
			return
		}
		logging.Error("failed to load player", err, logging.Fields{constants.LogFieldPlayer: name})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListLeaderboard returns the top players by wins.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		logging.Error("failed to fetch leaderboard", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, players)
}

// isTurnError reports whether the error belongs to the recoverable turn
// validation taxonomy, which maps to a 400 instead of a 500.
func isTurnError(err error) bool {
	var mana *game.NotEnoughManaError
	var tmpl *game.TemplateNotFoundError
	return errors.Is(err, game.ErrInvalidHandIndex) ||
		errors.Is(err, game.ErrCardAlreadyUsed) ||
		errors.Is(err, game.ErrInvalidBoardSlot) ||
		errors.Is(err, game.ErrBoardSlotOccupied) ||
		errors.Is(err, game.ErrInvalidBoardPitch) ||
		errors.As(err, &mana) ||
		errors.As(err, &tmpl)
}
