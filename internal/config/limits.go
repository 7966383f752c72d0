package config

const (
	// MaxUploadBytes is the maximum raw size for uploaded file content.
	// The persistence layer is a local key-value store with limited
	// capacity, so large payloads are rejected before they reach it.
	MaxUploadBytes = 500 * 1024

	// MaxFolderNameLength is the maximum length for folder names.
	// Names should be short and descriptive.
	MaxFolderNameLength = 255

	// MaxTitleLength is the maximum length for item titles (notes,
	// links, moodboards, briefs). Same as folder names for consistency.
	MaxTitleLength = 255

	// MaxBreadcrumbDepth bounds the parent-reference walk when building
	// breadcrumbs. A cycle in the stored hierarchy must terminate the
	// traversal instead of looping forever.
	MaxBreadcrumbDepth = 20

	// MaxHistoryEntries caps the recent-folder navigation history.
	MaxHistoryEntries = 10
)
