package archive

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"atelier/internal/domain"
	models "atelier/internal/domain/models/archive"
)

// PendingDelete is the gate's pending state: a destructive action that has
// been requested but not yet confirmed. Name is the entity's display name,
// relayed into the confirmation prompt.
type PendingDelete struct {
	Token       string      `json:"token"`
	Kind        models.Kind `json:"kind"`
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	RequestedAt time.Time   `json:"requested_at"`
}

// RequestDelete moves the gate from idle to pending. A second request
// replaces the first; nothing is mutated until the token is confirmed.
func (s *Service) RequestDelete(kind models.Kind, id string) (*PendingDelete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, err := s.displayNameLocked(kind, id)
	if err != nil {
		return nil, err
	}

	s.pending = &PendingDelete{
		Token:       uuid.New().String(),
		Kind:        kind,
		ID:          id,
		Name:        name,
		RequestedAt: time.Now(),
	}
	out := *s.pending
	return &out, nil
}

// ConfirmDelete performs the pending delete and returns the gate to idle.
// Folder deletes cascade. A stale or unknown token is rejected without
// mutation.
func (s *Service) ConfirmDelete(token string) error {
	s.mu.Lock()
	pending := s.pending
	if pending == nil || pending.Token != token {
		s.mu.Unlock()
		return &domain.NotFoundError{Message: "no pending delete for this token"}
	}
	s.pending = nil
	s.mu.Unlock()

	if pending.Kind == models.KindFolder {
		return s.DeleteFolder(pending.ID)
	}
	return s.DeleteItem(pending.Kind, pending.ID)
}

// CancelDelete discards the pending state without mutation.
func (s *Service) CancelDelete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || s.pending.Token != token {
		return &domain.NotFoundError{Message: "no pending delete for this token"}
	}
	s.pending = nil
	return nil
}

// DeleteItem removes a single item of any non-folder kind.
func (s *Service) DeleteItem(kind models.Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case models.KindFile:
		for i := range s.files {
			if s.files[i].ID == id {
				s.files = append(s.files[:i], s.files[i+1:]...)
				s.persist(keyFiles, s.files)
				return nil
			}
		}
	case models.KindNote:
		for i := range s.notes {
			if s.notes[i].ID == id {
				s.notes = append(s.notes[:i], s.notes[i+1:]...)
				s.persist(keyNotes, s.notes)
				return nil
			}
		}
	case models.KindTask:
		for i := range s.tasks {
			if s.tasks[i].ID == id {
				s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
				s.persist(keyTasks, s.tasks)
				return nil
			}
		}
	case models.KindLink:
		for i := range s.links {
			if s.links[i].ID == id {
				s.links = append(s.links[:i], s.links[i+1:]...)
				s.persist(keyLinks, s.links)
				return nil
			}
		}
	case models.KindMoodboard:
		for i := range s.moodboards {
			if s.moodboards[i].ID == id {
				s.moodboards = append(s.moodboards[:i], s.moodboards[i+1:]...)
				s.persist(keyMoodboards, s.moodboards)
				return nil
			}
		}
	case models.KindBrief:
		for i := range s.briefs {
			if s.briefs[i].ID == id {
				s.briefs = append(s.briefs[:i], s.briefs[i+1:]...)
				s.persist(keyBriefs, s.briefs)
				return nil
			}
		}
	case models.KindFolder:
		return fmt.Errorf("%w: folder deletion must cascade", domain.ErrValidation)
	}
	return &domain.NotFoundError{Message: fmt.Sprintf("%s %q not found", kind, id)}
}

// displayNameLocked resolves the human-readable label for the prompt.
func (s *Service) displayNameLocked(kind models.Kind, id string) (string, error) {
	switch kind {
	case models.KindFolder:
		if f := s.findFolder(id); f != nil {
			return f.Name, nil
		}
	case models.KindFile:
		for _, f := range s.files {
			if f.ID == id {
				return f.Name, nil
			}
		}
	case models.KindNote:
		for _, n := range s.notes {
			if n.ID == id {
				return n.Title, nil
			}
		}
	case models.KindTask:
		for _, t := range s.tasks {
			if t.ID == id {
				return t.Text, nil
			}
		}
	case models.KindLink:
		for _, l := range s.links {
			if l.ID == id {
				return l.Title, nil
			}
		}
	case models.KindMoodboard:
		for _, m := range s.moodboards {
			if m.ID == id {
				return m.Title, nil
			}
		}
	case models.KindBrief:
		for _, b := range s.briefs {
			if b.ID == id {
				return b.Title, nil
			}
		}
	}
	return "", &domain.NotFoundError{Message: fmt.Sprintf("%s %q not found", kind, id)}
}
