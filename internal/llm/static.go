package llm

import (
	"context"
	"fmt"

	"atelier/internal/domain/models"
)

// Fallback values used when a remote call fails mid-flight.
var (
	// FallbackTags mirrors the defaults applied when tagging is
	// unavailable.
	FallbackTags = []string{"General", "File"}

	// FallbackReply is shown when a persona reply cannot be generated.
	FallbackReply = "Sorry, I can't reach this character right now. Try again in a moment."
)

// Static is a Client that returns canned values and never fails. It is
// wired in when no API key is configured, keeping every assist feature
// functional offline.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) GenerateTags(ctx context.Context, fileName string) ([]string, error) {
	return FallbackTags, nil
}

func (s *Static) ChatReply(ctx context.Context, persona *models.Character, history []models.ChatMessage, message string) (string, error) {
	return fmt.Sprintf("%s is thinking about your question. Configure an API key to get real replies.", persona.Name), nil
}

func (s *Static) BriefAssist(ctx context.Context, title, client string) (*BriefDraft, error) {
	return &BriefDraft{
		Objective:      fmt.Sprintf("Define the visual direction for %q and deliver assets %s can use across print and digital.", title, client),
		TargetAudience: "The client's primary customers and prospects.",
		Deliverables:   "Logo, poster, social templates, brand guideline sheet.",
		Preferences:    "Clean layout, limited palette, legible typography.",
	}, nil
}
