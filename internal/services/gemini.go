package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rmoreira/vision2026-api/internal/models"
	"google.golang.org/genai"
)

const (
	textModel  = "gemini-3-flash-preview"
	imageModel = "gemini-2.5-flash-image"

	requestTimeout = 30 * time.Second
)

// Fallbacks returned when the API is unreachable, misconfigured, or answers
// with something unusable. Advisory content is cosmetic, so failures degrade
// into these instead of surfacing errors.
var (
	motivationFallback = "Your journey to 2026 starts now. Every step counts."
	motivationEmpty    = "Stay focused on your 2026 goals! Success is the sum of small efforts repeated day after day."

	refinementFallback = Refinement{
		SuggestedTarget: 10,
		Tip:             "Start small: pick a number you can hit even on a bad week.",
	}
)

// Refinement is a structured suggestion for a goal: a realistic numeric
// target plus one practical tip.
type Refinement struct {
	SuggestedTarget int    `json:"suggestedTarget"`
	Tip             string `json:"tip"`
}

// Advisor produces best-effort motivational content. Implementations never
// return errors; every failure mode maps to a fallback value.
type Advisor interface {
	GetMotivation(summaries []models.GoalSummary) string
	GenerateVisionImage(title string) (string, bool)
	RefineGoal(title string) Refinement
}

// Gemini talks to the Google generative AI API through the official SDK.
// With no API key it stays in a disabled state and serves fallbacks
// immediately.
type Gemini struct {
	client     *genai.Client
	uploadsDir string
}

func NewGemini(apiKey, uploadsDir string) *Gemini {
	if apiKey == "" {
		log.Println("Gemini: no API key configured, advisory features run on fallbacks")
		return &Gemini{uploadsDir: uploadsDir}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Gemini: failed to initialize client: %v", err)
		return &Gemini{uploadsDir: uploadsDir}
	}
	return &Gemini{client: client, uploadsDir: uploadsDir}
}

// GetMotivation asks for a short motivational paragraph about the current
// goals. Always returns usable text.
func (g *Gemini) GetMotivation(summaries []models.GoalSummary) string {
	if g.client == nil {
		return motivationFallback
	}

	lines := make([]string, len(summaries))
	for i, s := range summaries {
		lines[i] = fmt.Sprintf("%s (%s)", s.Title, s.Status)
	}

	prompt := fmt.Sprintf(
		"As a high-performance mentor, look at my goals for 2026 and give me one short paragraph of motivation and extreme focus. Current goals: %s. Keep the tone inspiring and direct.",
		strings.Join(lines, ", "))

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("Gemini: motivation request failed: %v", err)
		return motivationFallback
	}

	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text
	}
	return motivationEmpty
}

// GenerateVisionImage renders an illustrative image for a goal title, writes
// it into the uploads directory and returns its serving path. ok is false on
// any failure.
func (g *Gemini) GenerateVisionImage(title string) (url string, ok bool) {
	if g.client == nil {
		return "", false
	}

	prompt := fmt.Sprintf(
		"A cinematic, highly detailed and inspiring 4k image representing the success of the goal: %q. Style: Modern, clean, professional photography.",
		title)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		log.Printf("Gemini: image generation failed: %v", err)
		return "", false
	}

	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if p.InlineData == nil || len(p.InlineData.Data) == 0 {
				continue
			}
			return g.saveImage(p.InlineData.Data)
		}
	}
	return "", false
}

// RefineGoal asks for a structured target suggestion. Returns a fixed
// fallback pair when the model answers with anything but the requested JSON.
func (g *Gemini) RefineGoal(title string) Refinement {
	if g.client == nil {
		return refinementFallback
	}

	prompt := fmt.Sprintf(
		`Suggest a realistic yearly numeric target and one short practical tip for the goal %q. Answer with JSON only, in the form {"suggestedTarget": <integer>, "tip": "<text>"}.`,
		title)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("Gemini: refine request failed: %v", err)
		return refinementFallback
	}

	var r Refinement
	if err := json.Unmarshal([]byte(stripFences(resp.Text())), &r); err != nil {
		return refinementFallback
	}
	if r.SuggestedTarget < 1 || r.Tip == "" {
		return refinementFallback
	}
	return r
}

func (g *Gemini) saveImage(data []byte) (string, bool) {
	if err := os.MkdirAll(g.uploadsDir, 0755); err != nil {
		log.Printf("Gemini: failed to create uploads directory: %v", err)
		return "", false
	}

	filename := uuid.New().String() + ".png"
	if err := os.WriteFile(filepath.Join(g.uploadsDir, filename), data, 0644); err != nil {
		log.Printf("Gemini: failed to save image: %v", err)
		return "", false
	}
	return "/uploads/" + filename, true
}

// stripFences removes a ```json ... ``` wrapper that the model likes to add
// around JSON answers.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
