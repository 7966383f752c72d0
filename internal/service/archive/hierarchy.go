package archive

import (
	"fmt"
	"time"

	"atelier/internal/config"
	"atelier/internal/domain"
	models "atelier/internal/domain/models/archive"
)

// RootLabel is the display name of the implicit archive root. The root is
// not a stored folder; it is represented everywhere by a nil id.
const RootLabel = "Archive"

// Breadcrumbs returns the root-to-folder trail for folderID. The walk up
// the parent references is bounded by MaxBreadcrumbDepth so a cycle in
// corrupted data terminates instead of looping; a dangling parent
// reference simply ends the walk early, as if the root had been reached.
func (s *Service) Breadcrumbs(folderID *string) []models.Crumb {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.breadcrumbsLocked(folderID)
}

func (s *Service) breadcrumbsLocked(folderID *string) []models.Crumb {
	path := []models.Crumb{}
	current := folderID
	for depth := 0; current != nil && depth < config.MaxBreadcrumbDepth; depth++ {
		folder := s.findFolder(*current)
		if folder == nil {
			break
		}
		id := folder.ID
		path = append([]models.Crumb{{ID: &id, Name: folder.Name}}, path...)
		current = folder.ParentID
	}
	return append([]models.Crumb{{ID: nil, Name: RootLabel}}, path...)
}

// ArchiveState is the persisted navigation state plus the derived
// breadcrumb trail for the current folder.
type ArchiveState struct {
	CurrentFolder *string         `json:"current_folder"`
	ViewMode      models.ViewMode `json:"view_mode"`
	Breadcrumbs   []models.Crumb  `json:"breadcrumbs"`
}

// State returns the current navigation state.
func (s *Service) State() ArchiveState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ArchiveState{
		CurrentFolder: s.currentFolder,
		ViewMode:      s.viewMode,
		Breadcrumbs:   s.breadcrumbsLocked(s.currentFolder),
	}
}

// SetCurrentFolder navigates to a folder (nil = root), records the visit
// in the history, and persists the position. Navigating to an id that no
// longer exists is allowed (the reference may be stale); the history
// label falls back to a placeholder.
func (s *Service) SetCurrentFolder(folderID *string) ArchiveState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentFolder = folderID
	s.recordVisitLocked(folderID)

	value := ""
	if folderID != nil {
		value = *folderID
	}
	if err := s.kv.Set(keyCurrentFolder, value); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "key", keyCurrentFolder, "error", err)
	}

	return ArchiveState{
		CurrentFolder: s.currentFolder,
		ViewMode:      s.viewMode,
		Breadcrumbs:   s.breadcrumbsLocked(s.currentFolder),
	}
}

// recordVisitLocked prepends a history entry, deduplicating only against
// the immediately preceding one: visiting A, B, A records three entries.
func (s *Service) recordVisitLocked(folderID *string) {
	label := RootLabel
	if folderID != nil {
		if folder := s.findFolder(*folderID); folder != nil {
			label = folder.Name
		} else {
			label = "Unknown folder"
		}
	}

	if len(s.history) > 0 && sameRef(s.history[0].FolderID, folderID) {
		return
	}

	entry := models.HistoryEntry{
		FolderID:  folderID,
		Label:     label,
		Timestamp: time.Now().UnixMilli(),
	}
	s.history = append([]models.HistoryEntry{entry}, s.history...)
	if len(s.history) > config.MaxHistoryEntries {
		s.history = s.history[:config.MaxHistoryEntries]
	}
}

// History returns the most-recently-visited folders, newest first.
func (s *Service) History() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// SetViewMode switches the listing layout and persists it.
func (s *Service) SetViewMode(mode models.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: view mode must be %q or %q", domain.ErrValidation, models.ViewModeGrid, models.ViewModeList)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewMode = mode
	if err := s.kv.Set(keyViewMode, string(mode)); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "key", keyViewMode, "error", err)
	}
	return nil
}
