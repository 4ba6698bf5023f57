package store

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rmoreira/vision2026-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "vision2026.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Goal{}, &models.UserStats{}))
	return New(db)
}

func TestLoadGoalsEmpty(t *testing.T) {
	s := setupTestStore(t)

	goals, err := s.LoadGoals()
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestSaveLoadGoalsKeepsOrder(t *testing.T) {
	s := setupTestStore(t)

	goals := []models.Goal{
		{ID: uuid.New(), Title: "Run 100 days", Type: models.GoalTypeNumeric, Category: models.CategoryHealth, TargetValue: 100},
		{ID: uuid.New(), Title: "Read a book", Type: models.GoalTypeSimple, Category: models.CategoryLearning, TargetValue: 1},
		{ID: uuid.New(), Title: "Save money", Type: models.GoalTypeNumeric, Category: models.CategoryFinance, TargetValue: 12},
	}
	require.NoError(t, s.SaveGoals(goals))

	loaded, err := s.LoadGoals()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "Run 100 days", loaded[0].Title)
	assert.Equal(t, "Read a book", loaded[1].Title)
	assert.Equal(t, "Save money", loaded[2].Title)
}

func TestSaveGoalsReplacesDocument(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.SaveGoals([]models.Goal{
		{ID: uuid.New(), Title: "a", Type: models.GoalTypeSimple, TargetValue: 1},
		{ID: uuid.New(), Title: "b", Type: models.GoalTypeSimple, TargetValue: 1},
	}))

	keeper := models.Goal{ID: uuid.New(), Title: "c", Type: models.GoalTypeSimple, TargetValue: 1}
	require.NoError(t, s.SaveGoals([]models.Goal{keeper}))

	loaded, err := s.LoadGoals()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, keeper.ID, loaded[0].ID)
}

func TestSaveGoalsEmptyList(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.SaveGoals([]models.Goal{
		{ID: uuid.New(), Title: "a", Type: models.GoalTypeSimple, TargetValue: 1},
	}))
	require.NoError(t, s.SaveGoals(nil))

	loaded, err := s.LoadGoals()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadStatsDefault(t *testing.T) {
	s := setupTestStore(t)

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.XP)
	assert.Equal(t, 1, stats.Level)
}

func TestSaveLoadStats(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.SaveStats(models.UserStats{XP: 40, Level: 2}))

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 40, stats.XP)
	assert.Equal(t, 2, stats.Level)

	// Saving again replaces the single record.
	require.NoError(t, s.SaveStats(models.UserStats{XP: 90, Level: 3}))
	stats, err = s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 90, stats.XP)
	assert.Equal(t, 3, stats.Level)
}
