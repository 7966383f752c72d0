package resume

import (
	"io"
	"log/slog"
	"testing"

	"atelier/internal/domain/models"
	"atelier/internal/kvstore"
)

func newTestService(t *testing.T) (*Service, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, logger), store
}

func TestGetStartsEmpty(t *testing.T) {
	s, _ := newTestService(t)

	data := s.Get()
	if data.FullName != "" {
		t.Fatalf("fresh resume name = %q", data.FullName)
	}
	if data.Skills == nil || data.Experiences == nil || data.Education == nil {
		t.Fatal("empty resume must use empty slices, not nil")
	}
}

func TestReplaceNormalizesNilSlices(t *testing.T) {
	s, _ := newTestService(t)

	got := s.Replace(models.ResumeData{FullName: "Sara", JobTitle: "Art Director"})
	if got.FullName != "Sara" {
		t.Fatalf("name = %q", got.FullName)
	}
	if got.Skills == nil || got.Experiences == nil || got.Education == nil {
		t.Fatal("nil slices must be normalized to empty")
	}
}

func TestReplacePersistsAcrossReload(t *testing.T) {
	s, store := newTestService(t)

	s.Replace(models.ResumeData{
		FullName: "Sara",
		Skills:   []string{"typography", "layout"},
		Experiences: []models.ResumeExperience{
			{ID: "1", Role: "Designer", Company: "Studio"},
		},
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fresh := NewService(store, logger)
	got := fresh.Get()
	if got.FullName != "Sara" || len(got.Skills) != 2 || len(got.Experiences) != 1 {
		t.Fatalf("rehydrated resume = %+v", got)
	}
}

func TestReset(t *testing.T) {
	s, _ := newTestService(t)

	s.Replace(models.ResumeData{FullName: "Sara", Skills: []string{"x"}})
	got := s.Reset()
	if got.FullName != "" || len(got.Skills) != 0 {
		t.Fatalf("reset resume = %+v", got)
	}
	if s.Get().FullName != "" {
		t.Fatal("reset did not stick")
	}
}
