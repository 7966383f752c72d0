package archive

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"atelier/internal/config"
	models "atelier/internal/domain/models/archive"
	"atelier/internal/httputil"
)

// CreateFolderRequest creates a folder under ParentID (nil = archive root).
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	ParentID *string `json:"parent_id"`
}

func (r *CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, config.MaxFolderNameLength)),
	)
}

// UpdateFolderRequest renames, recolors, or moves a folder. ParentID uses
// tri-state semantics: absent = keep, null = move to root.
type UpdateFolderRequest struct {
	Name     *string                 `json:"name"`
	Color    *string                 `json:"color"`
	ParentID httputil.OptionalString `json:"parent_id"`
}

func (r *UpdateFolderRequest) Validate() error {
	if r.Name == nil && r.Color == nil && !r.ParentID.Present {
		return validation.NewError("validation_empty_patch", "at least one field must be provided")
	}
	if r.Name != nil {
		return validation.Validate(*r.Name, validation.Required, validation.Length(1, config.MaxFolderNameLength))
	}
	return nil
}

// CreateFileRequest ingests an uploaded file. Content is a base64 data
// URI; the raw payload must stay under the upload cap. Tags are usually
// produced by the tagging assistant before the request is made.
type CreateFileRequest struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	FolderID *string  `json:"folder_id"`
}

func (r *CreateFileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&r.Content, validation.Required),
	)
}

// UpdateFileRequest renames or retags a file, or moves it between folders.
type UpdateFileRequest struct {
	Name     *string                 `json:"name"`
	Tags     *[]string               `json:"tags"`
	FolderID httputil.OptionalString `json:"folder_id"`
}

type CreateNoteRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	FolderID *string `json:"folder_id"`
}

func (r *CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, config.MaxTitleLength)),
	)
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type CreateTaskRequest struct {
	Text     string  `json:"text"`
	FolderID *string `json:"folder_id"`
}

func (r *CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required),
	)
}

type UpdateTaskRequest struct {
	Text        *string `json:"text"`
	IsCompleted *bool   `json:"is_completed"`
}

type CreateLinkRequest struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	FolderID *string `json:"folder_id"`
}

func (r *CreateLinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&r.URL, validation.Required, is.URL),
	)
}

type UpdateLinkRequest struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
}

func (r *UpdateLinkRequest) Validate() error {
	if r.URL != nil {
		return validation.Validate(*r.URL, validation.Required, is.URL)
	}
	return nil
}

type CreateMoodboardRequest struct {
	Title    string                  `json:"title"`
	Images   []models.MoodboardImage `json:"images"`
	FolderID *string                 `json:"folder_id"`
}

func (r *CreateMoodboardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, config.MaxTitleLength)),
	)
}

type UpdateMoodboardRequest struct {
	Title  *string                  `json:"title"`
	Images *[]models.MoodboardImage `json:"images"`
}

type CreateBriefRequest struct {
	Title          string                  `json:"title"`
	Client         string                  `json:"client"`
	StartDate      string                  `json:"start_date"`
	Deadline       string                  `json:"deadline"`
	Objective      string                  `json:"objective"`
	TargetAudience string                  `json:"target_audience"`
	Deliverables   string                  `json:"deliverables"`
	Preferences    string                  `json:"preferences"`
	References     []models.BriefReference `json:"references"`
	Tags           []string                `json:"tags"`
	FolderID       *string                 `json:"folder_id"`
}

func (r *CreateBriefRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, config.MaxTitleLength)),
	)
}

// UpdateBriefRequest edits a brief. Every successful edit increments the
// brief's version by exactly one.
type UpdateBriefRequest struct {
	Title          *string                  `json:"title"`
	Client         *string                  `json:"client"`
	StartDate      *string                  `json:"start_date"`
	Deadline       *string                  `json:"deadline"`
	Objective      *string                  `json:"objective"`
	TargetAudience *string                  `json:"target_audience"`
	Deliverables   *string                  `json:"deliverables"`
	Preferences    *string                  `json:"preferences"`
	References     *[]models.BriefReference `json:"references"`
	Tags           *[]string                `json:"tags"`
}

func (r *UpdateBriefRequest) Validate() error {
	if r.Title != nil {
		return validation.Validate(*r.Title, validation.Required, validation.Length(1, config.MaxTitleLength))
	}
	return nil
}
