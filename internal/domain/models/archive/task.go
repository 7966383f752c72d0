package archive

type Task struct {
	ID          string  `json:"id"`
	FolderID    *string `json:"folder_id"`
	Text        string  `json:"text"`
	IsCompleted bool    `json:"is_completed"`
}
