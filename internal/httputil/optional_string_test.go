package httputil

import (
	"encoding/json"
	"testing"
)

func TestOptionalStringTriState(t *testing.T) {
	type patch struct {
		FolderID OptionalString `json:"folder_id"`
	}

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantValue   *string
	}{
		{"absent", `{}`, false, nil},
		{"null", `{"folder_id": null}`, true, nil},
		{"value", `{"folder_id": "abc"}`, true, strPtr("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.FolderID.Present != tt.wantPresent {
				t.Fatalf("Present = %v, want %v", p.FolderID.Present, tt.wantPresent)
			}
			if (p.FolderID.Value == nil) != (tt.wantValue == nil) {
				t.Fatalf("Value = %v, want %v", p.FolderID.Value, tt.wantValue)
			}
			if tt.wantValue != nil && *p.FolderID.Value != *tt.wantValue {
				t.Fatalf("Value = %q, want %q", *p.FolderID.Value, *tt.wantValue)
			}
		})
	}
}

func TestOptionalStringRejectsNonString(t *testing.T) {
	var o OptionalString
	if err := json.Unmarshal([]byte(`123`), &o); err == nil {
		t.Fatal("expected an error for a non-string value")
	}
}

func strPtr(s string) *string { return &s }
