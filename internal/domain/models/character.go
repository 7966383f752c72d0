package models

// Character is a chat persona for the studio: a designer archetype the
// user can converse with.
type Character struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Avatar string   `json:"avatar"`
	Age    int      `json:"age"`
	Job    string   `json:"job"`
	Style  string   `json:"style"` // e.g. Swiss, Minimal, Qajar
	Tone   string   `json:"tone"`  // e.g. Formal, Friendly
	Traits []string `json:"traits"`
	Bio    string   `json:"bio"`
}

// ChatMessage is one turn in a persona conversation.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // "user" or "model"
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)
