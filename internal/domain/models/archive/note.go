package archive

type Note struct {
	ID       string  `json:"id"`
	FolderID *string `json:"folder_id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Date     string  `json:"date"`
}
