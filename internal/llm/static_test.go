package llm

import (
	"context"
	"testing"

	"atelier/internal/domain/models"
)

// The static client backs every fallback path, so it must never fail.
func TestStaticNeverErrors(t *testing.T) {
	s := NewStatic()
	ctx := context.Background()

	tags, err := s.GenerateTags(ctx, "poster-draft.png")
	if err != nil || len(tags) == 0 {
		t.Fatalf("GenerateTags = %v, %v", tags, err)
	}

	reply, err := s.ChatReply(ctx, &models.Character{Name: "Mina"}, nil, "hi")
	if err != nil || reply == "" {
		t.Fatalf("ChatReply = %q, %v", reply, err)
	}

	draft, err := s.BriefAssist(ctx, "Rebrand", "Acme")
	if err != nil || draft.Objective == "" {
		t.Fatalf("BriefAssist = %+v, %v", draft, err)
	}
}
