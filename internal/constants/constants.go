package constants

// Centralized constants for env keys, routes and API strings.
const (
	// Environment variable keys
	EnvConfigPath = "BATTLER_CONFIG"
	EnvDBPath     = "BATTLER_DB"

	// Defaults used when the env vars are unset
	DefaultConfigPath = "./battler_config.json"
	DefaultDBPath     = "./data/battler.db"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteCards       = "/cards"
	RouteBattles     = "/battles"
	RouteBattleByID  = "/battles/:battleID"
	RouteTurns       = "/players/:player/turns"
	RoutePlayerByID  = "/players/:player"
	RouteLeaderboard = "/leaderboard"
	RouteVersion     = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidBattleID        = "Invalid battle ID"
	ErrBattleNotFound         = "Battle not found"
	ErrPlayerNotFound         = "Player not found"
	ErrPlayerNameRequired     = "Player name is required"
	ErrFailedResolveBattle    = "Failed to resolve battle"
	ErrFailedFetchBattle      = "Failed to fetch battle"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedCommitTurn       = "Failed to commit turn"
)

// Logging field names
const (
	LogFieldPlayer   = "player"
	LogFieldBattleID = "battle_id"
	LogFieldSeed     = "seed"
	LogFieldAddr     = "addr"
	LogFieldCards    = "cards"
)
