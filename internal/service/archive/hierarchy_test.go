package archive

import (
	"fmt"
	"testing"

	"atelier/internal/config"
	models "atelier/internal/domain/models/archive"
)

func TestBreadcrumbs(t *testing.T) {
	s, _ := newTestService(t)

	a := mustCreateFolder(t, s, "A", nil)
	b := mustCreateFolder(t, s, "B", &a.ID)
	c := mustCreateFolder(t, s, "C", &b.ID)

	crumbs := s.Breadcrumbs(&c.ID)
	want := []string{RootLabel, "A", "B", "C"}
	if len(crumbs) != len(want) {
		t.Fatalf("got %d crumbs, want %d", len(crumbs), len(want))
	}
	for i, name := range want {
		if crumbs[i].Name != name {
			t.Fatalf("crumb[%d] = %q, want %q", i, crumbs[i].Name, name)
		}
	}
	if crumbs[0].ID != nil {
		t.Fatal("root crumb must carry a nil id")
	}
	if crumbs[3].ID == nil || *crumbs[3].ID != c.ID {
		t.Fatal("last crumb must be the target folder")
	}
}

func TestBreadcrumbsAtRoot(t *testing.T) {
	s, _ := newTestService(t)

	crumbs := s.Breadcrumbs(nil)
	if len(crumbs) != 1 || crumbs[0].Name != RootLabel || crumbs[0].ID != nil {
		t.Fatalf("root breadcrumbs = %v", crumbs)
	}
}

func TestBreadcrumbsDepthGuard(t *testing.T) {
	s, _ := newTestService(t)
	a := mustCreateFolder(t, s, "A", nil)
	b := mustCreateFolder(t, s, "B", &a.ID)

	// Corrupt the data into a two-node cycle.
	for i := range s.folders {
		if s.folders[i].ID == a.ID {
			s.folders[i].ParentID = &b.ID
		}
	}

	crumbs := s.Breadcrumbs(&b.ID)
	if len(crumbs) > config.MaxBreadcrumbDepth+1 {
		t.Fatalf("depth guard failed: %d crumbs", len(crumbs))
	}
}

func TestBreadcrumbsDanglingParentStopsEarly(t *testing.T) {
	s, _ := newTestService(t)

	ghost := "no-such-folder"
	orphan := mustCreateFolder(t, s, "Orphan", nil)
	for i := range s.folders {
		if s.folders[i].ID == orphan.ID {
			s.folders[i].ParentID = &ghost
		}
	}

	crumbs := s.Breadcrumbs(&orphan.ID)
	if len(crumbs) != 2 || crumbs[0].Name != RootLabel || crumbs[1].Name != "Orphan" {
		t.Fatalf("dangling-parent breadcrumbs = %v", crumbs)
	}
}

func TestHistoryDedupAndCap(t *testing.T) {
	s, _ := newTestService(t)
	a := mustCreateFolder(t, s, "A", nil)
	b := mustCreateFolder(t, s, "B", nil)

	// Same folder twice in a row collapses to one entry.
	s.SetCurrentFolder(&a.ID)
	s.SetCurrentFolder(&a.ID)
	if got := s.History(); len(got) != 1 {
		t.Fatalf("history after repeat visit = %d entries, want 1", len(got))
	}

	// A, B, A records three entries (dedup is head-only).
	s.SetCurrentFolder(&b.ID)
	s.SetCurrentFolder(&a.ID)
	got := s.History()
	if len(got) != 3 {
		t.Fatalf("history = %d entries, want 3", len(got))
	}
	if got[0].Label != "A" || got[1].Label != "B" || got[2].Label != "A" {
		t.Fatalf("history order = %v", got)
	}

	// Cap at the configured maximum, evicting the oldest.
	for i := 0; i < config.MaxHistoryEntries+5; i++ {
		f := mustCreateFolder(t, s, fmt.Sprintf("F%d", i), nil)
		s.SetCurrentFolder(&f.ID)
	}
	got = s.History()
	if len(got) != config.MaxHistoryEntries {
		t.Fatalf("history = %d entries, want %d", len(got), config.MaxHistoryEntries)
	}
	if got[0].Label != fmt.Sprintf("F%d", config.MaxHistoryEntries+4) {
		t.Fatalf("newest entry = %q", got[0].Label)
	}
}

func TestHistoryLabelsRootAndUnknown(t *testing.T) {
	s, _ := newTestService(t)

	s.SetCurrentFolder(nil)
	stale := "deleted-folder"
	s.SetCurrentFolder(&stale)

	got := s.History()
	if len(got) != 2 {
		t.Fatalf("history = %d entries, want 2", len(got))
	}
	if got[0].Label != "Unknown folder" {
		t.Fatalf("stale visit label = %q", got[0].Label)
	}
	if got[1].Label != RootLabel {
		t.Fatalf("root visit label = %q", got[1].Label)
	}
}

func TestStatePersistsAcrossReload(t *testing.T) {
	s, store := newTestService(t)
	a := mustCreateFolder(t, s, "A", nil)

	s.SetCurrentFolder(&a.ID)
	if err := s.SetViewMode(models.ViewModeList); err != nil {
		t.Fatalf("SetViewMode: %v", err)
	}

	fresh := NewService(store, testLogger())

	state := fresh.State()
	if state.CurrentFolder == nil || *state.CurrentFolder != a.ID {
		t.Fatalf("reloaded current folder = %v", state.CurrentFolder)
	}
	if state.ViewMode != models.ViewModeList {
		t.Fatalf("reloaded view mode = %q", state.ViewMode)
	}
	if len(state.Breadcrumbs) != 2 || state.Breadcrumbs[1].Name != "A" {
		t.Fatalf("reloaded breadcrumbs = %v", state.Breadcrumbs)
	}
}

func TestSetViewModeRejectsUnknown(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.SetViewMode(models.ViewMode("mosaic")); err == nil {
		t.Fatal("expected an error for an unknown view mode")
	}
}
