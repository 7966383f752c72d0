package styles

import (
	"errors"
	"sort"
	"testing"

	"atelier/internal/domain"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := NewLibrary()
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func TestEmbeddedCatalogParses(t *testing.T) {
	lib := newTestLibrary(t)

	all := lib.List("", "")
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}
	for _, s := range all {
		if s.ID == "" || s.Name == "" || s.Category == "" {
			t.Fatalf("incomplete style entry: %+v", s)
		}
	}
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Name < all[j].Name }) {
		t.Fatal("listing must be name-sorted")
	}
}

func TestListFilters(t *testing.T) {
	lib := newTestLibrary(t)

	tests := []struct {
		name     string
		category string
		query    string
		wantID   string
	}{
		{"by category", "Iranian", "", "saqqakhaneh"},
		{"by name query", "", "brutal", "brutalism"},
		{"by artist query", "", "warhol", "pop-art"},
		{"category case-insensitive", "iranian", "", "saqqakhaneh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lib.List(tt.category, tt.query)
			if len(got) != 1 || got[0].ID != tt.wantID {
				t.Fatalf("List(%q, %q) = %v, want only %q", tt.category, tt.query, got, tt.wantID)
			}
		})
	}

	if got := lib.List("", "no-style-matches-this"); len(got) != 0 {
		t.Fatalf("unmatched query returned %v", got)
	}
}

func TestGet(t *testing.T) {
	lib := newTestLibrary(t)

	style, err := lib.Get("minimalism")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if style.Name != "Minimalism" {
		t.Fatalf("style name = %q", style.Name)
	}

	if _, err := lib.Get("vaporwave"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get unknown = %v, want not-found", err)
	}
}

func TestCategories(t *testing.T) {
	lib := newTestLibrary(t)

	cats := lib.Categories()
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
	if !sort.StringsAreSorted(cats) {
		t.Fatalf("categories not sorted: %v", cats)
	}
	seen := map[string]bool{}
	for _, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
	}
}
