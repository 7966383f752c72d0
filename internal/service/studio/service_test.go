package studio

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"atelier/internal/domain"
	"atelier/internal/domain/models"
	"atelier/internal/kvstore"
	"atelier/internal/llm"
)

// failingClient always errors, to exercise the fallback reply path.
type failingClient struct{ llm.Static }

func (f *failingClient) ChatReply(ctx context.Context, persona *models.Character, history []models.ChatMessage, message string) (string, error) {
	return "", errors.New("network down")
}

func newTestService(t *testing.T, client llm.Client) (*Service, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, client, logger), store
}

func mustCreateCharacter(t *testing.T, s *Service, name string) *models.Character {
	t.Helper()
	ch, err := s.Create(&SaveCharacterRequest{Name: name, Job: "Art Director", Tone: "Friendly"})
	if err != nil {
		t.Fatalf("Create(%q): %v", name, err)
	}
	return ch
}

func TestCreateCharacterValidation(t *testing.T) {
	s, _ := newTestService(t, llm.NewStatic())

	if _, err := s.Create(&SaveCharacterRequest{Job: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("missing name = %v, want validation error", err)
	}
	if _, err := s.Create(&SaveCharacterRequest{Name: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("missing job = %v, want validation error", err)
	}
}

func TestSendMessageAppendsBothTurns(t *testing.T) {
	s, _ := newTestService(t, llm.NewStatic())
	ch := mustCreateCharacter(t, s, "Mina")

	messages, err := s.SendMessage(context.Background(), ch.ID, "What do you think of serif logos?")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0].Role != models.ChatRoleUser || messages[1].Role != models.ChatRoleModel {
		t.Fatalf("roles = %q, %q", messages[0].Role, messages[1].Role)
	}
	if messages[1].Text == "" {
		t.Fatal("model turn must carry text")
	}
}

func TestSendMessageFallsBackOnLLMFailure(t *testing.T) {
	s, _ := newTestService(t, &failingClient{})
	ch := mustCreateCharacter(t, s, "Mina")

	messages, err := s.SendMessage(context.Background(), ch.ID, "hello?")
	if err != nil {
		t.Fatalf("SendMessage must not surface LLM failures: %v", err)
	}
	if messages[1].Text != llm.FallbackReply {
		t.Fatalf("reply = %q, want fallback", messages[1].Text)
	}
}

func TestSendMessageToUnknownCharacter(t *testing.T) {
	s, _ := newTestService(t, llm.NewStatic())
	if _, err := s.SendMessage(context.Background(), "ghost", "hi"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("SendMessage = %v, want not-found", err)
	}
}

func TestDeleteCharacterDropsHistory(t *testing.T) {
	s, store := newTestService(t, llm.NewStatic())
	ch := mustCreateCharacter(t, s, "Mina")

	if _, err := s.SendMessage(context.Background(), ch.ID, "hi"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if err := s.Delete(ch.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := s.Messages(ch.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Messages after delete = %v, want not-found", err)
	}

	// The dropped history stays dropped after rehydration.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fresh := NewService(store, llm.NewStatic(), logger)
	if got := fresh.List(); len(got) != 0 {
		t.Fatalf("rehydrated characters = %v", got)
	}
}

func TestUpdateCharacter(t *testing.T) {
	s, _ := newTestService(t, llm.NewStatic())
	ch := mustCreateCharacter(t, s, "Mina")

	updated, err := s.Update(ch.ID, &SaveCharacterRequest{
		Name: "Mina", Job: "Type Designer", Tone: "Blunt", Traits: []string{"precise"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Job != "Type Designer" || updated.Tone != "Blunt" || len(updated.Traits) != 1 {
		t.Fatalf("updated = %+v", updated)
	}

	if _, err := s.Update("ghost", &SaveCharacterRequest{Name: "x", Job: "y"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update missing = %v, want not-found", err)
	}
}

func TestHistoryPersistsAcrossReload(t *testing.T) {
	s, store := newTestService(t, llm.NewStatic())
	ch := mustCreateCharacter(t, s, "Mina")

	if _, err := s.SendMessage(context.Background(), ch.ID, "hi"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fresh := NewService(store, llm.NewStatic(), logger)
	messages, err := fresh.Messages(ch.ID)
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("rehydrated messages = %d, want 2", len(messages))
	}
}
