// Package llm is the generative-text service used by the peripheral
// assist features (file tagging, persona chat, brief drafting). It is a
// best-effort remote call with no retry: callers substitute the static
// fallbacks on any error and never surface a failure to the user.
package llm

import (
	"context"

	"atelier/internal/domain/models"
)

// BriefDraft is the structured output of the brief assistant.
type BriefDraft struct {
	Objective      string `json:"objective"`
	TargetAudience string `json:"target_audience"`
	Deliverables   string `json:"deliverables"`
	Preferences    string `json:"preferences"`
}

// Client generates text. Implementations: Anthropic (remote) and Static
// (canned values, used when no API key is configured and as the failure
// fallback source).
type Client interface {
	// GenerateTags suggests a few short tags for a design file name.
	GenerateTags(ctx context.Context, fileName string) ([]string, error)

	// ChatReply answers message in the voice of the persona, given the
	// prior conversation.
	ChatReply(ctx context.Context, persona *models.Character, history []models.ChatMessage, message string) (string, error)

	// BriefAssist drafts the free-text sections of a project brief.
	BriefAssist(ctx context.Context, title, client string) (*BriefDraft, error)
}
