package archive

import (
	"errors"
	"testing"

	"atelier/internal/domain"
)

// buildTree creates Root→A→B with X in A and a note in B, mirroring the
// layouts the cascade rules are defined against.
func buildTree(t *testing.T, s *Service) (a, b string, fileX, noteB string) {
	t.Helper()

	folderA := mustCreateFolder(t, s, "A", nil)
	folderB := mustCreateFolder(t, s, "B", &folderA.ID)

	file, err := s.CreateFile(&CreateFileRequest{
		Name:     "x.png",
		Type:     "image/png",
		Content:  "data:image/png;base64,QUJD",
		FolderID: &folderA.ID,
	})
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	note, err := s.CreateNote(&CreateNoteRequest{Title: "note in B", FolderID: &folderB.ID})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	return folderA.ID, folderB.ID, file.ID, note.ID
}

func TestDescendantClosure(t *testing.T) {
	s, _ := newTestService(t)
	a, b, _, _ := buildTree(t, s)
	c := mustCreateFolder(t, s, "C", &b)

	closure := s.DescendantClosure(a)
	for _, id := range []string{a, b, c.ID} {
		if !closure[id] {
			t.Fatalf("closure missing %s", id)
		}
	}
	if len(closure) != 3 {
		t.Fatalf("closure size = %d, want 3", len(closure))
	}

	// Fixed point: the closure of any member is a subset.
	sub := s.DescendantClosure(b)
	for id := range sub {
		if !closure[id] {
			t.Fatalf("closure of B contains %s outside closure of A", id)
		}
	}
}

func TestDescendantClosureTerminatesOnCycle(t *testing.T) {
	s, _ := newTestService(t)
	a := mustCreateFolder(t, s, "A", nil)
	b := mustCreateFolder(t, s, "B", &a.ID)

	// Corrupt the data directly: make A a child of B.
	for i := range s.folders {
		if s.folders[i].ID == a.ID {
			s.folders[i].ParentID = &b.ID
		}
	}

	closure := s.DescendantClosure(a.ID)
	if !closure[a.ID] || !closure[b.ID] {
		t.Fatalf("closure on cyclic data = %v", closure)
	}
}

func TestDeleteFolderCascades(t *testing.T) {
	s, _ := newTestService(t)
	a, b, _, _ := buildTree(t, s)

	if err := s.DeleteFolder(a); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	if _, err := s.GetFolder(a); !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("folder A should be gone")
	}
	if _, err := s.GetFolder(b); !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("sub-folder B should be gone")
	}
	if got := s.ListFiles(&a); len(got) != 0 {
		t.Fatalf("files of A remain: %v", got)
	}
	if got := s.ListNotes(&b); len(got) != 0 {
		t.Fatalf("notes of B remain: %v", got)
	}
}

func TestDeleteSubFolderSparesAncestors(t *testing.T) {
	s, _ := newTestService(t)
	a, b, fileX, _ := buildTree(t, s)

	if err := s.DeleteFolder(b); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	if _, err := s.GetFolder(a); err != nil {
		t.Fatalf("folder A should survive: %v", err)
	}
	if _, err := s.GetFile(fileX); err != nil {
		t.Fatalf("file X in A should survive: %v", err)
	}
	if got := s.ListNotes(&b); len(got) != 0 {
		t.Fatal("notes of B should be gone")
	}
}

func TestDeleteFolderSparesSiblings(t *testing.T) {
	s, _ := newTestService(t)
	a := mustCreateFolder(t, s, "A", nil)
	sibling := mustCreateFolder(t, s, "Sibling", nil)

	task, err := s.CreateTask(&CreateTaskRequest{Text: "keep me", FolderID: &sibling.ID})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	rootNote, err := s.CreateNote(&CreateNoteRequest{Title: "root note"})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	if err := s.DeleteFolder(a.ID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	if _, err := s.GetFolder(sibling.ID); err != nil {
		t.Fatalf("sibling should survive: %v", err)
	}
	got := s.ListTasks(&sibling.ID)
	if len(got) != 1 || got[0].ID != task.ID {
		t.Fatalf("sibling's task lost: %v", got)
	}
	notes := s.ListNotes(nil)
	if len(notes) != 1 || notes[0].ID != rootNote.ID {
		t.Fatalf("root note lost: %v", notes)
	}
}

func TestDeleteMissingFolder(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.DeleteFolder("ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("DeleteFolder on missing id = %v, want not-found", err)
	}
}
