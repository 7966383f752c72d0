package archive

type Moodboard struct {
	ID       string           `json:"id"`
	FolderID *string          `json:"folder_id"`
	Title    string           `json:"title"`
	Images   []MoodboardImage `json:"images"`
}

// MoodboardImage holds one pinned image as a data URI.
type MoodboardImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
