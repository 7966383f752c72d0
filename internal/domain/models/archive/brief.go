package archive

import "time"

// Brief is a project brief. Version starts at 1 and increments by exactly
// one on every edit. IsPinned affects display ordering only (pinned briefs
// sort first within a folder).
type Brief struct {
	ID             string           `json:"id"`
	FolderID       *string          `json:"folder_id"`
	Title          string           `json:"title"`
	Client         string           `json:"client"`
	StartDate      string           `json:"start_date"`
	Deadline       string           `json:"deadline"`
	Objective      string           `json:"objective"`
	TargetAudience string           `json:"target_audience"`
	Deliverables   string           `json:"deliverables"`
	Preferences    string           `json:"preferences"`
	References     []BriefReference `json:"references"`
	Tags           []string         `json:"tags"`
	IsPinned       bool             `json:"is_pinned"`
	Version        int              `json:"version"`
	LastModified   time.Time        `json:"last_modified"`
}

// BriefReference is an attachment on a brief, stored as a data URI.
type BriefReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}
