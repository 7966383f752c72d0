package archive

// Folder is a node in the archive hierarchy. ParentID is nil for folders
// that live directly under the implicit archive root; the root itself is
// never stored.
type Folder struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	ParentID *string `json:"parent_id"`
}

// Crumb is one segment of a breadcrumb trail. ID is nil for the synthetic
// root entry.
type Crumb struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// HistoryEntry records a visit to a folder (nil ID = archive root).
type HistoryEntry struct {
	FolderID  *string `json:"folder_id"`
	Label     string  `json:"label"`
	Timestamp int64   `json:"timestamp"`
}

// ViewMode is the persisted listing layout for the archive UI.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

// Valid reports whether the view mode is one of the known layouts.
func (m ViewMode) Valid() bool {
	return m == ViewModeGrid || m == ViewModeList
}
