package archive

import "fmt"

// Kind identifies one of the archive's deletable entity collections.
type Kind string

const (
	KindFolder    Kind = "folder"
	KindFile      Kind = "file"
	KindNote      Kind = "note"
	KindTask      Kind = "task"
	KindLink      Kind = "link"
	KindMoodboard Kind = "moodboard"
	KindBrief     Kind = "brief"
)

// ItemKinds lists the six item collections (everything except folders).
var ItemKinds = []Kind{KindFile, KindNote, KindTask, KindLink, KindMoodboard, KindBrief}

// ParseKind validates a kind string from the wire.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindFolder, KindFile, KindNote, KindTask, KindLink, KindMoodboard, KindBrief:
		return k, nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}
