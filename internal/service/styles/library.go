// Package styles serves the static art-style reference library. The data
// ships embedded in the binary; there is no mutation surface.
package styles

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"atelier/internal/domain"
	"atelier/internal/domain/models"
)

//go:embed styles.yaml
var rawStyles []byte

// Library holds the parsed reference data.
type Library struct {
	styles []models.ArtStyle
	byID   map[string]*models.ArtStyle
}

type document struct {
	Styles []models.ArtStyle `yaml:"styles"`
}

// NewLibrary parses the embedded catalog. A malformed catalog is a build
// defect, so parsing errors fail startup.
func NewLibrary() (*Library, error) {
	var doc document
	if err := yaml.Unmarshal(rawStyles, &doc); err != nil {
		return nil, fmt.Errorf("parse style catalog: %w", err)
	}

	lib := &Library{
		styles: doc.Styles,
		byID:   make(map[string]*models.ArtStyle, len(doc.Styles)),
	}
	for i := range lib.styles {
		lib.byID[lib.styles[i].ID] = &lib.styles[i]
	}
	return lib, nil
}

// List returns styles filtered by category and free-text query; empty
// filters match everything. Results are name-sorted.
func (l *Library) List(category, query string) []models.ArtStyle {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []models.ArtStyle{}
	for _, s := range l.styles {
		if category != "" && !strings.EqualFold(s.Category, category) {
			continue
		}
		if query != "" && !matchesQuery(&s, query) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns one style by id.
func (l *Library) Get(id string) (*models.ArtStyle, error) {
	if s, ok := l.byID[id]; ok {
		out := *s
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("style %q not found", id)}
}

// Categories returns the distinct category names, sorted.
func (l *Library) Categories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range l.styles {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	sort.Strings(out)
	return out
}

func matchesQuery(s *models.ArtStyle, query string) bool {
	if strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Description), query) {
		return true
	}
	for _, f := range s.Features {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	for _, a := range s.Artists {
		if strings.Contains(strings.ToLower(a), query) {
			return true
		}
	}
	return false
}
