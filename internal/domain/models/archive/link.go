package archive

type Link struct {
	ID       string  `json:"id"`
	FolderID *string `json:"folder_id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
}
