package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalType string

const (
	GoalTypeSimple  GoalType = "SIMPLE"
	GoalTypeNumeric GoalType = "NUMERIC"
)

type Category string

const (
	CategoryHealth   Category = "Health"
	CategoryFinance  Category = "Finance"
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryLearning Category = "Learning"
)

// Valid reports whether c is one of the fixed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryHealth, CategoryFinance, CategoryWork, CategoryPersonal, CategoryLearning:
		return true
	}
	return false
}

type Goal struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Position       int       `json:"-" gorm:"not null;index"`
	Title          string    `json:"title" gorm:"not null"`
	Type           GoalType  `json:"type" gorm:"not null;default:'SIMPLE'"`
	Category       Category  `json:"category" gorm:"not null;default:'Personal'"`
	CurrentValue   int       `json:"currentValue" gorm:"default:0"`
	TargetValue    int       `json:"targetValue" gorm:"default:1"`
	IsCompleted    bool      `json:"isCompleted" gorm:"default:false"`
	CreatedAt      time.Time `json:"createdAt"`
	Deadline       *string   `json:"deadline,omitempty"`
	VisionImageURL *string   `json:"visionImageUrl,omitempty"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// DeriveCompletion returns the completion state implied by the goal itself:
// progress against target for NUMERIC goals, the stored flag for SIMPLE ones.
func (g *Goal) DeriveCompletion() bool {
	if g.Type == GoalTypeNumeric {
		return g.CurrentValue >= g.TargetValue
	}
	return g.IsCompleted
}

// ApplyIncrement advances a NUMERIC goal by one step and resyncs the
// completion flag. It reports whether the increment was applied and whether
// this was the step that reached the target. SIMPLE goals and goals already
// at their target are left untouched.
func (g *Goal) ApplyIncrement() (applied, completedNow bool) {
	if g.Type != GoalTypeNumeric || g.CurrentValue >= g.TargetValue {
		return false, false
	}
	g.CurrentValue++
	wasCompleted := g.IsCompleted
	g.IsCompleted = g.DeriveCompletion()
	return true, g.IsCompleted && !wasCompleted
}

// ApplyToggle flips the completion flag and reports whether the goal just
// became completed. For NUMERIC goals the progress counter is deliberately
// left alone.
func (g *Goal) ApplyToggle() (completedNow bool) {
	g.IsCompleted = !g.IsCompleted
	return g.IsCompleted
}

// ApplyEdit replaces the editable fields. Switching to SIMPLE forces the
// target back to 1 and clears progress; for NUMERIC goals the completion
// flag is recomputed against the new target.
func (g *Goal) ApplyEdit(title string, goalType GoalType, category Category, target int, deadline *string) {
	g.Title = title
	g.Type = goalType
	g.Category = category
	g.Deadline = deadline

	if goalType == GoalTypeNumeric {
		if target < 1 {
			target = 1
		}
		g.TargetValue = target
		g.IsCompleted = g.DeriveCompletion()
	} else {
		g.TargetValue = 1
		g.CurrentValue = 0
	}
}

// GoalSummary is the condensed shape sent to the advisory service.
type GoalSummary struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Goal DTOs
type CreateGoalRequest struct {
	Title       string   `json:"title"`
	Type        GoalType `json:"type"`
	Category    Category `json:"category"`
	TargetValue int      `json:"targetValue"`
	Deadline    *string  `json:"deadline"`
}

type UpdateGoalRequest struct {
	Title       string   `json:"title"`
	Type        GoalType `json:"type"`
	Category    Category `json:"category"`
	TargetValue int      `json:"targetValue"`
	Deadline    *string  `json:"deadline"`
}

type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}
