package archive

// File is an uploaded asset. Content is stored opaquely as a data URI in
// URL; images additionally carry the same content as Thumbnail. Size is a
// human-readable display string computed at upload time.
type File struct {
	ID         string   `json:"id"`
	FolderID   *string  `json:"folder_id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"` // MIME type, "unknown" when the client sent none
	Size       string   `json:"size"`
	Tags       []string `json:"tags"`
	UploadDate string   `json:"upload_date"`
	Thumbnail  string   `json:"thumbnail,omitempty"`
	URL        string   `json:"url,omitempty"`
}
