package storage

import "time"

// Player is the persisted player profile: leaderboard stats plus the saved
// shop-phase board and hand, stored as codec-encoded JSON blobs.
type Player struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex" json:"name"`
	GamesPlayed int    `json:"games_played"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Draws       int    `json:"draws"`

	BoardJSON []byte `json:"-"`
	HandJSON  []byte `json:"-"`
	Mana      int32  `json:"mana"`
}

// BattleRecord is one resolved battle: the inputs needed to replay it
// deterministically plus the (possibly truncated) encoded event log.
type BattleRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	PlayerID        uint   `gorm:"index" json:"player_id"`
	Seed            uint64 `json:"seed"`
	PlayerBoardJSON []byte `json:"-"`
	EnemyBoardJSON  []byte `json:"-"`
	EventsJSON      []byte `json:"-"`
	Truncated       bool   `json:"truncated"`
	Result          string `json:"result"`
}

// CardRecord mirrors one configured card template into the database so
// deployments can inspect the served pool. The config file stays the source
// of truth; rows are refreshed on startup.
type CardRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	CardID  string `gorm:"uniqueIndex" json:"card_id"`
	Name    string `json:"name"`
	DefJSON []byte `json:"-"`
}
