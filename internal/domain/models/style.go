package models

// ArtStyle is one entry in the static reference library.
type ArtStyle struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     string   `json:"category" yaml:"category"`
	Description  string   `json:"description" yaml:"description"`
	Features     []string `json:"features" yaml:"features"`
	Usage        []string `json:"usage" yaml:"usage"`
	Avoid        []string `json:"avoid" yaml:"avoid"`
	Colors       []string `json:"colors" yaml:"colors"`
	ImageURL     string   `json:"image_url" yaml:"image_url"`
	Fonts        []string `json:"fonts" yaml:"fonts"`
	Artists      []string `json:"artists" yaml:"artists"`
	LearnMoreURL string   `json:"learn_more_url" yaml:"learn_more_url"`
}
