package storage

import (
	"strings"

	"github.com/shawntabrizi/open-auto-battler-sub000/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetPlayerByName(name string) (*Player, error) {
	var p Player
	if err := r.db.Where("lower(name) = ?", strings.ToLower(name)).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) UpsertPlayer(name string) (*Player, error) {
	var p Player
	err := r.db.Where("lower(name) = ?", strings.ToLower(name)).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		p = Player{Name: name}
		if err := r.db.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) SavePlayer(p *Player) error {
	return r.db.Save(p).Error
}

// GetTopPlayers returns top N players ordered by Wins desc, then GamesPlayed desc
func (r *sqliteRepository) GetTopPlayers(limit int) ([]Player, error) {
	if limit <= 0 {
		limit = 10
	}
	var players []Player
	if err := r.db.Model(&Player{}).
		Order("wins DESC").
		Order("games_played DESC").
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(playerID uint, result game.BattleResult) error {
	var p Player
	if err := r.db.First(&p, playerID).Error; err != nil {
		return err
	}
	p.GamesPlayed++
	switch result {
	case game.ResultVictory:
		p.Wins++
	case game.ResultDefeat:
		p.Losses++
	default:
		p.Draws++
	}
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) CreateBattle(rec *BattleRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetBattleByID(id uint) (*BattleRecord, error) {
	var rec BattleRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListBattlesByPlayer(playerID uint, limit int) ([]BattleRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var recs []BattleRecord
	if err := r.db.Where("player_id = ?", playerID).
		Order("created_at desc").
		Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
