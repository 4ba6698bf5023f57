package store

import (
	"errors"

	"github.com/rmoreira/vision2026-api/internal/models"
	"gorm.io/gorm"
)

// Store persists the two application documents: the ordered goal list and
// the user stats record. Writes replace the whole document.
type Store interface {
	LoadGoals() ([]models.Goal, error)
	SaveGoals(goals []models.Goal) error
	LoadStats() (models.UserStats, error)
	SaveStats(stats models.UserStats) error
}

type gormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) LoadGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("position").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// SaveGoals rewrites the goals table to match the given list, stamping each
// goal with its list index as position. The rewrite runs in one transaction
// so a failed save leaves the previous document intact.
func (s *gormStore) SaveGoals(goals []models.Goal) error {
	for i := range goals {
		goals[i].Position = i
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Goal{}).Error; err != nil {
			return err
		}
		if len(goals) == 0 {
			return nil
		}
		return tx.Create(&goals).Error
	})
}

func (s *gormStore) LoadStats() (models.UserStats, error) {
	var stats models.UserStats
	err := s.db.First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserStats{XP: 0, Level: 1}, nil
	}
	if err != nil {
		return models.UserStats{XP: 0, Level: 1}, err
	}
	return stats, nil
}

func (s *gormStore) SaveStats(stats models.UserStats) error {
	stats.ID = 1
	return s.db.Save(&stats).Error
}
