package archive

import (
	"errors"
	"testing"

	"atelier/internal/domain"
	models "atelier/internal/domain/models/archive"
)

func TestGateRequestCapturesDisplayName(t *testing.T) {
	s, _ := newTestService(t)
	folder := mustCreateFolder(t, s, "Client Work", nil)

	pending, err := s.RequestDelete(models.KindFolder, folder.ID)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if pending.Name != "Client Work" {
		t.Fatalf("pending name = %q", pending.Name)
	}
	if pending.Token == "" {
		t.Fatal("expected a token")
	}

	// Nothing is deleted until the token is confirmed.
	if _, err := s.GetFolder(folder.ID); err != nil {
		t.Fatalf("folder deleted before confirmation: %v", err)
	}
}

func TestGateRequestUnknownEntity(t *testing.T) {
	s, _ := newTestService(t)
	if _, err := s.RequestDelete(models.KindNote, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("RequestDelete on missing entity = %v, want not-found", err)
	}
}

func TestGateConfirmCascades(t *testing.T) {
	s, _ := newTestService(t)
	a, b, _, _ := buildTree(t, s)

	pending, err := s.RequestDelete(models.KindFolder, a)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if err := s.ConfirmDelete(pending.Token); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}

	if _, err := s.GetFolder(a); !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("folder A should be gone after confirm")
	}
	if _, err := s.GetFolder(b); !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("sub-folder B should be gone after confirm")
	}

	// Token is single-use.
	if err := s.ConfirmDelete(pending.Token); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("reused token = %v, want not-found", err)
	}
}

func TestGateConfirmSingleItem(t *testing.T) {
	s, _ := newTestService(t)
	note, err := s.CreateNote(&CreateNoteRequest{Title: "scratch"})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	pending, err := s.RequestDelete(models.KindNote, note.ID)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if err := s.ConfirmDelete(pending.Token); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if got := s.ListNotes(nil); len(got) != 0 {
		t.Fatalf("note survived confirm: %v", got)
	}
}

func TestGateCancelKeepsEntity(t *testing.T) {
	s, _ := newTestService(t)
	folder := mustCreateFolder(t, s, "Keep", nil)

	pending, err := s.RequestDelete(models.KindFolder, folder.ID)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	if err := s.CancelDelete(pending.Token); err != nil {
		t.Fatalf("CancelDelete: %v", err)
	}
	if _, err := s.GetFolder(folder.ID); err != nil {
		t.Fatalf("folder lost after cancel: %v", err)
	}

	// The cancelled token no longer confirms anything.
	if err := s.ConfirmDelete(pending.Token); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("cancelled token = %v, want not-found", err)
	}
}

func TestGateNewRequestReplacesPending(t *testing.T) {
	s, _ := newTestService(t)
	first := mustCreateFolder(t, s, "First", nil)
	second := mustCreateFolder(t, s, "Second", nil)

	p1, err := s.RequestDelete(models.KindFolder, first.ID)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}
	p2, err := s.RequestDelete(models.KindFolder, second.ID)
	if err != nil {
		t.Fatalf("RequestDelete: %v", err)
	}

	if err := s.ConfirmDelete(p1.Token); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("superseded token = %v, want not-found", err)
	}
	if err := s.ConfirmDelete(p2.Token); err != nil {
		t.Fatalf("ConfirmDelete: %v", err)
	}
	if _, err := s.GetFolder(first.ID); err != nil {
		t.Fatalf("first folder should survive: %v", err)
	}
	if _, err := s.GetFolder(second.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("second folder should be gone")
	}
}

func TestDeleteItemRejectsFolderKind(t *testing.T) {
	s, _ := newTestService(t)
	folder := mustCreateFolder(t, s, "A", nil)

	if err := s.DeleteItem(models.KindFolder, folder.ID); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("DeleteItem(folder) = %v, want validation error", err)
	}
}
