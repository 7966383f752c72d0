package archive

import (
	"encoding/json"
	"fmt"

	"atelier/internal/domain"
)

// DescendantClosure computes the transitive set of folder ids rooted at
// rootID, including rootID itself. It is a breadth-first walk over the
// parent-child edges with a seen-set, so it is correct for arbitrarily
// deep trees and terminates even if corrupted data contains a cycle.
// Re-running it on its own result yields the same set (fixed point).
func (s *Service) DescendantClosure(rootID string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.descendantClosureLocked(rootID)
}

func (s *Service) descendantClosureLocked(rootID string) map[string]bool {
	closure := map[string]bool{rootID: true}
	queue := []string{rootID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, f := range s.folders {
			if f.ParentID != nil && *f.ParentID == current && !closure[f.ID] {
				closure[f.ID] = true
				queue = append(queue, f.ID)
			}
		}
	}
	return closure
}

// DeleteFolder removes the folder, every transitive sub-folder, and every
// item of every kind belonging to any folder in that closure. Items in
// sibling or ancestor folders are untouched. All seven collections are
// persisted in one batched store write so a crash cannot leave them
// mutually inconsistent.
func (s *Service) DeleteFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findFolder(id) == nil {
		return &domain.NotFoundError{Message: fmt.Sprintf("folder %q not found", id)}
	}

	ids := s.descendantClosureLocked(id)
	inClosure := func(ref *string) bool {
		return ref != nil && ids[*ref]
	}

	before := s.itemCountLocked()

	folders := s.folders[:0]
	for _, f := range s.folders {
		if !ids[f.ID] {
			folders = append(folders, f)
		}
	}
	s.folders = folders

	files := s.files[:0]
	for _, f := range s.files {
		if !inClosure(f.FolderID) {
			files = append(files, f)
		}
	}
	s.files = files

	notes := s.notes[:0]
	for _, n := range s.notes {
		if !inClosure(n.FolderID) {
			notes = append(notes, n)
		}
	}
	s.notes = notes

	tasks := s.tasks[:0]
	for _, t := range s.tasks {
		if !inClosure(t.FolderID) {
			tasks = append(tasks, t)
		}
	}
	s.tasks = tasks

	links := s.links[:0]
	for _, l := range s.links {
		if !inClosure(l.FolderID) {
			links = append(links, l)
		}
	}
	s.links = links

	moodboards := s.moodboards[:0]
	for _, m := range s.moodboards {
		if !inClosure(m.FolderID) {
			moodboards = append(moodboards, m)
		}
	}
	s.moodboards = moodboards

	briefs := s.briefs[:0]
	for _, b := range s.briefs {
		if !inClosure(b.FolderID) {
			briefs = append(briefs, b)
		}
	}
	s.briefs = briefs

	s.persistAllLocked()

	s.logger.Info("folder cascade deleted",
		"id", id,
		"folders_removed", len(ids),
		"items_removed", before-s.itemCountLocked(),
	)
	return nil
}

func (s *Service) itemCountLocked() int {
	return len(s.files) + len(s.notes) + len(s.tasks) + len(s.links) + len(s.moodboards) + len(s.briefs)
}

// persistAllLocked writes all seven collections through SetMany, which the
// durable store implements atomically.
func (s *Service) persistAllLocked() {
	pairs := make(map[string]string, 7)
	for key, collection := range map[string]interface{}{
		keyFolders:    s.folders,
		keyFiles:      s.files,
		keyNotes:      s.notes,
		keyTasks:      s.tasks,
		keyLinks:      s.links,
		keyMoodboards: s.moodboards,
		keyBriefs:     s.briefs,
	} {
		payload, err := json.Marshal(collection)
		if err != nil {
			s.logger.Error("failed to encode collection", "key", key, "error", err)
			return
		}
		pairs[key] = string(payload)
	}

	if err := s.kv.SetMany(pairs); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "error", err)
	}
}
