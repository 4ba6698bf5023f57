package models

// XP awards for goal progress events.
const (
	XPGoalCompleted = 50
	XPGoalIncrement = 10
)

// UserStats is the single gamification record: accumulated experience and
// the level it has rolled into. Exactly one row exists.
type UserStats struct {
	ID    uint `json:"-" gorm:"primaryKey"`
	XP    int  `json:"xp" gorm:"default:0"`
	Level int  `json:"level" gorm:"default:1"`
}

// GrantXP adds experience and rolls overflow into at most one level-up per
// call. With awards capped at 50 and the cheapest threshold at 100, a single
// grant can never cross two thresholds, so xp < level*100 always holds
// afterwards.
func (s *UserStats) GrantXP(amount int) {
	s.XP += amount
	if needed := s.Level * 100; s.XP >= needed {
		s.XP -= needed
		s.Level++
	}
}

// XPNeeded returns the experience required to reach the next level.
func (s *UserStats) XPNeeded() int {
	return s.Level * 100
}
