package models

// ResumeData is the single resume document. It is persisted wholesale on
// every change (auto-save), never patched field by field.
type ResumeData struct {
	FullName    string             `json:"full_name"`
	JobTitle    string             `json:"job_title"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Website     string             `json:"website"`
	About       string             `json:"about"`
	Skills      []string           `json:"skills"`
	Experiences []ResumeExperience `json:"experiences"`
	Education   []ResumeEducation  `json:"education"`
}

type ResumeExperience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type ResumeEducation struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}
