// Package archive implements the archive core: a store over seven
// collections (folders plus six item kinds), breadcrumb navigation,
// cascading folder deletion, and the delete confirmation gate. All durable
// state lives in the injected key-value store; the in-memory collections
// are the source of truth between writes and are fully rehydrated at
// startup.
package archive

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"atelier/internal/config"
	"atelier/internal/domain"
	models "atelier/internal/domain/models/archive"
	"atelier/internal/kvstore"
)

// Persisted key layout. Each collection key holds a JSON array; the two
// state keys hold scalars.
const (
	keyFolders       = "archive_folders"
	keyFiles         = "archive_files"
	keyNotes         = "archive_notes"
	keyTasks         = "archive_tasks"
	keyLinks         = "archive_links"
	keyMoodboards    = "archive_moodboards"
	keyBriefs        = "archive_briefs"
	keyCurrentFolder = "archive_current_folder"
	keyViewMode      = "archive_view_mode"
)

const defaultFolderColor = "#E0B0FF"

// Service is the single source of truth for the archive. All mutation
// goes through it; every mutating operation synchronously writes the full
// updated collection back to the persisted store. The logical writer is
// single (one user), but HTTP handlers run concurrently, so a mutex
// serializes access.
type Service struct {
	mu     sync.Mutex
	kv     kvstore.Store
	logger *slog.Logger

	folders    []models.Folder
	files      []models.File
	notes      []models.Note
	tasks      []models.Task
	links      []models.Link
	moodboards []models.Moodboard
	briefs     []models.Brief

	currentFolder *string
	viewMode      models.ViewMode
	history       []models.HistoryEntry

	pending *PendingDelete
}

// NewService rehydrates the archive from the persisted store. A missing
// key yields an empty collection; malformed JSON is logged and falls back
// to empty rather than failing startup.
func NewService(kv kvstore.Store, logger *slog.Logger) *Service {
	s := &Service{
		kv:       kv,
		logger:   logger,
		viewMode: models.ViewModeGrid,
	}

	s.folders = loadCollection[models.Folder](kv, logger, keyFolders)
	s.files = loadCollection[models.File](kv, logger, keyFiles)
	s.notes = loadCollection[models.Note](kv, logger, keyNotes)
	s.tasks = loadCollection[models.Task](kv, logger, keyTasks)
	s.links = loadCollection[models.Link](kv, logger, keyLinks)
	s.moodboards = loadCollection[models.Moodboard](kv, logger, keyMoodboards)
	s.briefs = loadCollection[models.Brief](kv, logger, keyBriefs)

	if raw, err := kv.Get(keyCurrentFolder); err == nil && raw != "" {
		id := raw
		s.currentFolder = &id
	}
	if raw, err := kv.Get(keyViewMode); err == nil {
		if mode := models.ViewMode(raw); mode.Valid() {
			s.viewMode = mode
		}
	}

	logger.Info("archive rehydrated",
		"folders", len(s.folders),
		"files", len(s.files),
		"notes", len(s.notes),
		"tasks", len(s.tasks),
		"links", len(s.links),
		"moodboards", len(s.moodboards),
		"briefs", len(s.briefs),
	)

	return s
}

func loadCollection[T any](kv kvstore.Store, logger *slog.Logger, key string) []T {
	raw, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Warn("failed to read collection, starting empty", "key", key, "error", err)
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("malformed collection, starting empty", "key", key, "error", err)
		return nil
	}
	return items
}

// persist writes one collection back. A failed write is logged and
// swallowed: the in-memory state stays valid and the application keeps
// operating (availability over durability).
func (s *Service) persist(key string, collection interface{}) {
	payload, err := json.Marshal(collection)
	if err != nil {
		s.logger.Error("failed to encode collection", "key", key, "error", err)
		return
	}
	if err := s.kv.Set(key, string(payload)); err != nil {
		s.logger.Warn("persist failed, continuing with in-memory state", "key", key, "error", err)
	}
}

// --- Folders ---

// CreateFolder creates a folder under req.ParentID (nil = root).
func (s *Service) CreateFolder(req *CreateFolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ParentID != nil {
		if s.findFolder(*req.ParentID) == nil {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("parent folder %q not found", *req.ParentID)}
		}
	}

	color := req.Color
	if color == "" {
		color = defaultFolderColor
	}

	folder := models.Folder{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(req.Name),
		Color:    color,
		ParentID: req.ParentID,
	}
	s.folders = append(s.folders, folder)
	s.persist(keyFolders, s.folders)

	s.logger.Info("folder created", "id", folder.ID, "name", folder.Name, "parent_id", folder.ParentID)
	return &folder, nil
}

// GetFolder returns a folder by id.
func (s *Service) GetFolder(id string) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder := s.findFolder(id)
	if folder == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("folder %q not found", id)}
	}
	out := *folder
	return &out, nil
}

// ListFolders returns the child folders of parentID (nil = root). Exact
// parent equality: listing the root never returns descendants.
func (s *Service) ListFolders(parentID *string) []models.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Folder{}
	for _, f := range s.folders {
		if sameRef(f.ParentID, parentID) {
			out = append(out, f)
		}
	}
	return out
}

// UpdateFolder renames, recolors, or moves a folder. Moving validates that
// the new parent exists and is not the folder itself or one of its
// descendants, keeping the parent graph acyclic.
func (s *Service) UpdateFolder(id string, req *UpdateFolderRequest) (*models.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	folder := s.findFolder(id)
	if folder == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("folder %q not found", id)}
	}

	if req.Name != nil {
		folder.Name = strings.TrimSpace(*req.Name)
	}
	if req.Color != nil {
		folder.Color = *req.Color
	}
	if req.ParentID.Present {
		if req.ParentID.Value != nil {
			parentID := *req.ParentID.Value
			if s.findFolder(parentID) == nil {
				return nil, &domain.NotFoundError{Message: fmt.Sprintf("parent folder %q not found", parentID)}
			}
			if err := s.checkNoCycle(id, parentID); err != nil {
				return nil, err
			}
			folder.ParentID = &parentID
		} else {
			folder.ParentID = nil
		}
	}

	s.persist(keyFolders, s.folders)
	s.logger.Info("folder updated", "id", folder.ID, "name", folder.Name, "parent_id", folder.ParentID)
	out := *folder
	return &out, nil
}

// checkNoCycle rejects a move that would make folderID an ancestor of
// itself. The walk is depth-guarded so corrupted data cannot hang it.
func (s *Service) checkNoCycle(folderID, newParentID string) error {
	if folderID == newParentID {
		return fmt.Errorf("%w: cannot move a folder into itself", domain.ErrValidation)
	}

	current := &newParentID
	for depth := 0; current != nil && depth < config.MaxBreadcrumbDepth; depth++ {
		if *current == folderID {
			return fmt.Errorf("%w: cannot move a folder into its own descendant", domain.ErrValidation)
		}
		parent := s.findFolder(*current)
		if parent == nil {
			break
		}
		current = parent.ParentID
	}
	return nil
}

func (s *Service) findFolder(id string) *models.Folder {
	for i := range s.folders {
		if s.folders[i].ID == id {
			return &s.folders[i]
		}
	}
	return nil
}

// --- Files ---

// CreateFile ingests an uploaded file. Content must be a data URI whose
// raw payload is at most the upload cap; images keep a copy of the
// content as their thumbnail.
func (s *Service) CreateFile(req *CreateFileRequest) (*models.File, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if size := dataURISize(req.Content); size > config.MaxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds the %dKB storage limit", domain.ErrValidation, config.MaxUploadBytes/1024)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mimeType := req.Type
	if mimeType == "" {
		mimeType = "unknown"
	}

	file := models.File{
		ID:         uuid.New().String(),
		FolderID:   req.FolderID,
		Name:       req.Name,
		Type:       mimeType,
		Size:       displaySize(dataURISize(req.Content)),
		Tags:       req.Tags,
		UploadDate: time.Now().Format("2006/01/02"),
		URL:        req.Content,
	}
	if strings.HasPrefix(mimeType, "image/") {
		file.Thumbnail = req.Content
	}
	if file.Tags == nil {
		file.Tags = []string{}
	}

	s.files = append(s.files, file)
	s.persist(keyFiles, s.files)

	s.logger.Info("file created", "id", file.ID, "name", file.Name, "type", file.Type, "size", file.Size)
	return &file, nil
}

// ListFiles returns the files directly inside folderID (nil = root).
func (s *Service) ListFiles(folderID *string) []models.File {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.File{}
	for _, f := range s.files {
		if sameRef(f.FolderID, folderID) {
			out = append(out, f)
		}
	}
	return out
}

func (s *Service) GetFile(id string) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID == id {
			out := s.files[i]
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("file %q not found", id)}
}

func (s *Service) UpdateFile(id string, req *UpdateFileRequest) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.files {
		if s.files[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.files[i].Name = *req.Name
		}
		if req.Tags != nil {
			s.files[i].Tags = *req.Tags
		}
		if req.FolderID.Present {
			s.files[i].FolderID = req.FolderID.Value
		}
		s.persist(keyFiles, s.files)
		out := s.files[i]
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("file %q not found", id)}
}

// --- Notes ---

func (s *Service) CreateNote(req *CreateNoteRequest) (*models.Note, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{
		ID:       uuid.New().String(),
		FolderID: req.FolderID,
		Title:    req.Title,
		Content:  req.Content,
		Date:     time.Now().Format("2006/01/02"),
	}
	s.notes = append(s.notes, note)
	s.persist(keyNotes, s.notes)
	return &note, nil
}

func (s *Service) ListNotes(folderID *string) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Note{}
	for _, n := range s.notes {
		if sameRef(n.FolderID, folderID) {
			out = append(out, n)
		}
	}
	return out
}

func (s *Service) UpdateNote(id string, req *UpdateNoteRequest) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		if req.Title != nil {
			s.notes[i].Title = *req.Title
		}
		if req.Content != nil {
			s.notes[i].Content = *req.Content
		}
		s.persist(keyNotes, s.notes)
		out := s.notes[i]
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("note %q not found", id)}
}

// --- Tasks ---

func (s *Service) CreateTask(req *CreateTaskRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:       uuid.New().String(),
		FolderID: req.FolderID,
		Text:     req.Text,
	}
	s.tasks = append(s.tasks, task)
	s.persist(keyTasks, s.tasks)
	return &task, nil
}

func (s *Service) ListTasks(folderID *string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Task{}
	for _, t := range s.tasks {
		if sameRef(t.FolderID, folderID) {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) UpdateTask(id string, req *UpdateTaskRequest) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if req.Text != nil {
			s.tasks[i].Text = *req.Text
		}
		if req.IsCompleted != nil {
			s.tasks[i].IsCompleted = *req.IsCompleted
		}
		s.persist(keyTasks, s.tasks)
		out := s.tasks[i]
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("task %q not found", id)}
}

// --- Links ---

func (s *Service) CreateLink(req *CreateLinkRequest) (*models.Link, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	link := models.Link{
		ID:       uuid.New().String(),
		FolderID: req.FolderID,
		Title:    req.Title,
		URL:      req.URL,
	}
	s.links = append(s.links, link)
	s.persist(keyLinks, s.links)
	return &link, nil
}

func (s *Service) ListLinks(folderID *string) []models.Link {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Link{}
	for _, l := range s.links {
		if sameRef(l.FolderID, folderID) {
			out = append(out, l)
		}
	}
	return out
}

func (s *Service) UpdateLink(id string, req *UpdateLinkRequest) (*models.Link, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.links {
		if s.links[i].ID != id {
			continue
		}
		if req.Title != nil {
			s.links[i].Title = *req.Title
		}
		if req.URL != nil {
			s.links[i].URL = *req.URL
		}
		s.persist(keyLinks, s.links)
		out := s.links[i]
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("link %q not found", id)}
}

// --- Moodboards ---

func (s *Service) CreateMoodboard(req *CreateMoodboardRequest) (*models.Moodboard, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	board := models.Moodboard{
		ID:       uuid.New().String(),
		FolderID: req.FolderID,
		Title:    req.Title,
		Images:   req.Images,
	}
	if board.Images == nil {
		board.Images = []models.MoodboardImage{}
	}
	s.moodboards = append(s.moodboards, board)
	s.persist(keyMoodboards, s.moodboards)
	return &board, nil
}

func (s *Service) ListMoodboards(folderID *string) []models.Moodboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Moodboard{}
	for _, m := range s.moodboards {
		if sameRef(m.FolderID, folderID) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Service) UpdateMoodboard(id string, req *UpdateMoodboardRequest) (*models.Moodboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.moodboards {
		if s.moodboards[i].ID != id {
			continue
		}
		if req.Title != nil {
			s.moodboards[i].Title = *req.Title
		}
		if req.Images != nil {
			s.moodboards[i].Images = *req.Images
		}
		s.persist(keyMoodboards, s.moodboards)
		out := s.moodboards[i]
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("moodboard %q not found", id)}
}

// --- Briefs ---

func (s *Service) CreateBrief(req *CreateBriefRequest) (*models.Brief, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	brief := models.Brief{
		ID:             uuid.New().String(),
		FolderID:       req.FolderID,
		Title:          req.Title,
		Client:         req.Client,
		StartDate:      req.StartDate,
		Deadline:       req.Deadline,
		Objective:      req.Objective,
		TargetAudience: req.TargetAudience,
		Deliverables:   req.Deliverables,
		Preferences:    req.Preferences,
		References:     req.References,
		Tags:           req.Tags,
		Version:        1,
		LastModified:   time.Now(),
	}
	if brief.References == nil {
		brief.References = []models.BriefReference{}
	}
	if brief.Tags == nil {
		brief.Tags = []string{}
	}

	s.briefs = append(s.briefs, brief)
	s.persist(keyBriefs, s.briefs)

	s.logger.Info("brief created", "id", brief.ID, "title", brief.Title, "client", brief.Client)
	return &brief, nil
}

// ListBriefs returns the briefs directly inside folderID, pinned first.
// The sort is stable so insertion order is preserved within each group.
func (s *Service) ListBriefs(folderID *string) []models.Brief {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Brief{}
	for _, b := range s.briefs {
		if sameRef(b.FolderID, folderID) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPinned && !out[j].IsPinned
	})
	return out
}

func (s *Service) GetBrief(id string) (*models.Brief, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.briefs {
		if s.briefs[i].ID == id {
			out := s.briefs[i]
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("brief %q not found", id)}
}

// UpdateBrief merges the patch and bumps Version by exactly one.
func (s *Service) UpdateBrief(id string, req *UpdateBriefRequest) (*models.Brief, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.briefs {
		if s.briefs[i].ID != id {
			continue
		}
		b := &s.briefs[i]
		if req.Title != nil {
			b.Title = *req.Title
		}
		if req.Client != nil {
			b.Client = *req.Client
		}
		if req.StartDate != nil {
			b.StartDate = *req.StartDate
		}
		if req.Deadline != nil {
			b.Deadline = *req.Deadline
		}
		if req.Objective != nil {
			b.Objective = *req.Objective
		}
		if req.TargetAudience != nil {
			b.TargetAudience = *req.TargetAudience
		}
		if req.Deliverables != nil {
			b.Deliverables = *req.Deliverables
		}
		if req.Preferences != nil {
			b.Preferences = *req.Preferences
		}
		if req.References != nil {
			b.References = *req.References
		}
		if req.Tags != nil {
			b.Tags = *req.Tags
		}
		b.Version++
		b.LastModified = time.Now()

		s.persist(keyBriefs, s.briefs)
		s.logger.Info("brief updated", "id", b.ID, "version", b.Version)
		out := *b
		return &out, nil
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("brief %q not found", id)}
}

// TogglePinBrief flips the pinned flag. Pinning affects ordering only.
func (s *Service) TogglePinBrief(id string) (*models.Brief, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.briefs {
		if s.briefs[i].ID == id {
			s.briefs[i].IsPinned = !s.briefs[i].IsPinned
			s.persist(keyBriefs, s.briefs)
			out := s.briefs[i]
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("brief %q not found", id)}
}

// --- helpers ---

// sameRef compares two nullable folder references for exact equality.
func sameRef(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// dataURISize estimates the raw byte size of a base64 data URI payload.
// Plain (non data URI) content falls back to its literal length.
func dataURISize(content string) int {
	idx := strings.Index(content, ";base64,")
	if idx < 0 {
		return len(content)
	}
	payload := content[idx+len(";base64,"):]
	return base64.StdEncoding.DecodedLen(len(payload))
}

// displaySize formats a byte count the way the UI shows it ("12.3 KB").
func displaySize(n int) string {
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}
