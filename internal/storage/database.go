package storage

import (
	"encoding/json"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"github.com/shawntabrizi/open-auto-battler-sub000/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database, keeps the schema updated via
// AutoMigrate and refreshes the card mirror from the config. The config file
// is always the source of truth for card definitions; the mirror exists so
// operators can inspect the served pool with plain SQL.
func OpenAndMigrate(dataSourceName string, cardsFromConfig []game.Card) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Player{}, &BattleRecord{}, &CardRecord{}); err != nil {
		return nil, err
	}

	refreshCardMirror(db, cardsFromConfig)
	return db, nil
}

// refreshCardMirror upserts every configured card. Mirror failures are
// logged but never abort startup; the pool served to clients comes from the
// config, not from these rows.
func refreshCardMirror(db *gorm.DB, cards []game.Card) {
	for i := range cards {
		c := &cards[i]
		def, err := json.Marshal(c)
		if err != nil {
			logging.Error("failed to encode card for mirror", err, logging.Fields{"card_id": c.ID})
			continue
		}
		var rec CardRecord
		err = db.Where("card_id = ?", c.ID).First(&rec).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			rec = CardRecord{CardID: c.ID, Name: c.Name, DefJSON: def}
			err = db.Create(&rec).Error
		case err == nil:
			rec.Name = c.Name
			rec.DefJSON = def
			err = db.Save(&rec).Error
		}
		if err != nil {
			logging.Error("failed to mirror card", err, logging.Fields{"card_id": c.ID})
		}
	}
}
