package controller

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rmoreira/vision2026-api/internal/models"
	"github.com/rmoreira/vision2026-api/internal/services"
	"github.com/rmoreira/vision2026-api/internal/store"
)

// Shown until the first successful motivation fetch.
const initialMotivation = "Finding inspiration for your 2026..."

// Controller owns the goal list and user stats. Every mutation runs under
// the mutex and writes the affected document through to the store before
// returning; store failures are logged and the in-memory state stays
// authoritative. Advisory calls run as detached tasks and merge their
// results back only if the target goal still exists.
type Controller struct {
	mu         sync.Mutex
	goals      []models.Goal
	stats      models.UserStats
	motivation string

	store   store.Store
	advisor services.Advisor
}

// New loads both documents from the store and returns a ready controller.
func New(st store.Store, adv services.Advisor) (*Controller, error) {
	goals, err := st.LoadGoals()
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	stats, err := st.LoadStats()
	if err != nil {
		return nil, fmt.Errorf("loading stats: %w", err)
	}
	return &Controller{
		goals:      goals,
		stats:      stats,
		motivation: initialMotivation,
		store:      st,
		advisor:    adv,
	}, nil
}

// Goals returns a copy of the ordered goal list.
func (c *Controller) Goals() []models.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Goal, len(c.goals))
	copy(out, c.goals)
	return out
}

func (c *Controller) Stats() models.UserStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Controller) Motivation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.motivation
}

// Summary mirrors the app header counter: completed goals over total.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

func (c *Controller) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Summary{Total: len(c.goals)}
	for _, g := range c.goals {
		if g.IsCompleted || g.DeriveCompletion() {
			s.Completed++
		}
	}
	return s
}

// Create validates, builds and prepends a new goal. Returns nil on a blank
// title. The goal count changed, so a motivation refresh is kicked off.
func (c *Controller) Create(req models.CreateGoalRequest) *models.Goal {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil
	}

	goalType := req.Type
	if goalType != models.GoalTypeNumeric {
		goalType = models.GoalTypeSimple
	}
	target := 1
	if goalType == models.GoalTypeNumeric && req.TargetValue > 1 {
		target = req.TargetValue
	}
	category := req.Category
	if !category.Valid() {
		category = models.CategoryPersonal
	}

	goal := models.Goal{
		ID:          uuid.New(),
		Title:       title,
		Type:        goalType,
		Category:    category,
		TargetValue: target,
		CreatedAt:   time.Now(),
		Deadline:    req.Deadline,
	}

	c.mu.Lock()
	c.goals = append([]models.Goal{goal}, c.goals...)
	c.persistGoals()
	c.mu.Unlock()

	c.RequestMotivation()
	return &goal
}

// Update applies an edit to the goal with the given id. Returns nil when the
// title is blank or the goal does not exist.
func (c *Controller) Update(id uuid.UUID, req models.UpdateGoalRequest) *models.Goal {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil
	}

	goalType := req.Type
	if goalType != models.GoalTypeNumeric {
		goalType = models.GoalTypeSimple
	}
	category := req.Category
	if !category.Valid() {
		category = models.CategoryPersonal
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}
	c.goals[i].ApplyEdit(title, goalType, category, req.TargetValue, req.Deadline)
	c.persistGoals()

	goal := c.goals[i]
	return &goal
}

// Toggle flips a goal's completion flag, awarding XP when it transitions to
// completed. Returns nil when the goal does not exist.
func (c *Controller) Toggle(id uuid.UUID) *models.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}
	if c.goals[i].ApplyToggle() {
		c.stats.GrantXP(models.XPGoalCompleted)
		c.persistStats()
	}
	c.persistGoals()

	goal := c.goals[i]
	return &goal
}

// Increment advances a NUMERIC goal by one step. 10 XP per step, 50 XP for
// the step that reaches the target. Already-completed goals are capped: the
// call is a no-op that returns the goal unchanged. Returns nil when the goal
// does not exist or is not NUMERIC.
func (c *Controller) Increment(id uuid.UUID) *models.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 || c.goals[i].Type != models.GoalTypeNumeric {
		return nil
	}

	applied, completedNow := c.goals[i].ApplyIncrement()
	if applied {
		if completedNow {
			c.stats.GrantXP(models.XPGoalCompleted)
		} else {
			c.stats.GrantXP(models.XPGoalIncrement)
		}
		c.persistStats()
		c.persistGoals()
	}

	goal := c.goals[i]
	return &goal
}

// Remove deletes the goal with the given id. Removing an unknown id is a
// no-op; the report value only tells callers whether anything changed.
func (c *Controller) Remove(id uuid.UUID) bool {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	c.goals = append(c.goals[:i], c.goals[i+1:]...)
	c.persistGoals()
	c.mu.Unlock()

	c.RequestMotivation()
	return true
}

// Reorder moves the goal at from to position to, shifting the others.
// Returns false when either index is out of range.
func (c *Controller) Reorder(from, to int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if from < 0 || from >= len(c.goals) || to < 0 || to >= len(c.goals) {
		return false
	}

	goal := c.goals[from]
	c.goals = append(c.goals[:from], c.goals[from+1:]...)
	c.goals = append(c.goals[:to], append([]models.Goal{goal}, c.goals[to:]...)...)
	c.persistGoals()
	return true
}

// RequestMotivation refreshes the motivation text in the background. The
// previous text stays in place until the advisor answers.
func (c *Controller) RequestMotivation() {
	c.mu.Lock()
	summaries := make([]models.GoalSummary, len(c.goals))
	for i, g := range c.goals {
		status := fmt.Sprintf("%d/%d", g.CurrentValue, g.TargetValue)
		if g.IsCompleted {
			status = "Done"
		}
		summaries[i] = models.GoalSummary{Title: g.Title, Status: status}
	}
	c.mu.Unlock()

	go func() {
		text := c.advisor.GetMotivation(summaries)
		c.mu.Lock()
		c.motivation = text
		c.mu.Unlock()
	}()
}

// RequestVisionImage generates an illustrative image for a goal in the
// background and attaches the result if the goal still exists when it
// arrives. Overlapping requests for the same goal race; the last response
// wins. Returns false when the goal is already gone.
func (c *Controller) RequestVisionImage(id uuid.UUID) bool {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return false
	}
	title := c.goals[i].Title
	c.mu.Unlock()

	go func() {
		url, ok := c.advisor.GenerateVisionImage(title)
		if !ok {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		j := c.indexOf(id)
		if j < 0 {
			// Goal deleted while generating; discard the result.
			return
		}
		c.goals[j].VisionImageURL = &url
		c.persistGoals()
	}()
	return true
}

// RefineGoal passes through to the advisor, which never fails.
func (c *Controller) RefineGoal(title string) services.Refinement {
	return c.advisor.RefineGoal(title)
}

// indexOf must be called with the mutex held.
func (c *Controller) indexOf(id uuid.UUID) int {
	for i := range c.goals {
		if c.goals[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) persistGoals() {
	if err := c.store.SaveGoals(c.goals); err != nil {
		log.Printf("store: failed to save goals: %v", err)
	}
}

func (c *Controller) persistStats() {
	if err := c.store.SaveStats(c.stats); err != nil {
		log.Printf("store: failed to save stats: %v", err)
	}
}
