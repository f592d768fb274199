package handler

import (
	"context"
	"testing"

	"app/internal/api/v1/dispatch"
	"app/internal/service"

	"github.com/rs/zerolog"
)

func TestGeneratePresignedURLMissingParams(t *testing.T) {
	svc := &stubStorageService{}
	h := NewFileHandler(svc, zerolog.Nop())

	cases := []struct {
		query map[string]string
		body  string
	}{
		{map[string]string{}, `"Missing required parameter: simulation_group_id"`},
		{map[string]string{"simulation_group_id": "g1"}, `"Missing required parameter: patient_id"`},
		{map[string]string{"simulation_group_id": "g1", "patient_id": "p1"}, `"Missing required parameter: file_name"`},
	}
	for i, c := range cases {
		resp, err := h.GeneratePresignedURL(context.Background(), dispatch.Request{Query: c.query})
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		// These routes respond with JSON string literals, not envelopes.
		if resp.StatusCode != 400 || resp.Body != c.body {
			t.Fatalf("case %d: got %d %q", i, resp.StatusCode, resp.Body)
		}
	}
	if svc.calls != 0 {
		t.Fatalf("rejected requests reached the service %d times", svc.calls)
	}
}

func TestGeneratePresignedURLUnsupportedType(t *testing.T) {
	svc := &stubStorageService{err: service.ErrUnsupportedFileType}
	h := NewFileHandler(svc, zerolog.Nop())

	resp, _ := h.GeneratePresignedURL(context.Background(), dispatch.Request{Query: map[string]string{
		"simulation_group_id": "g1", "patient_id": "p1", "file_name": "notes", "file_type": "exe",
	}})
	if resp.StatusCode != 400 || resp.Body != `"Unsupported file type"` {
		t.Fatalf("got %d %q", resp.StatusCode, resp.Body)
	}
}

func TestGeneratePresignedURLSuccess(t *testing.T) {
	svc := &stubStorageService{url: "https://bucket.example.com/signed"}
	h := NewFileHandler(svc, zerolog.Nop())

	resp, err := h.GeneratePresignedURL(context.Background(), dispatch.Request{Query: map[string]string{
		"simulation_group_id": "g1", "patient_id": "p1", "file_name": "notes", "file_type": "pdf",
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 || resp.Body != `{"presignedurl":"https://bucket.example.com/signed"}` {
		t.Fatalf("got %d %q", resp.StatusCode, resp.Body)
	}
}

func TestDeleteFileMissingParams(t *testing.T) {
	svc := &stubStorageService{}
	h := NewFileHandler(svc, zerolog.Nop())

	resp, _ := h.DeleteFile(context.Background(), dispatch.Request{Query: map[string]string{
		"simulation_group_id": "g1", "patient_id": "p1", "file_name": "notes", "file_type": "pdf",
	}})
	if resp.StatusCode != 400 ||
		resp.Body != `"Missing required parameters: simulation_group_id, patient_id, file_name, file_type, or folder_type"` {
		t.Fatalf("got %d %q", resp.StatusCode, resp.Body)
	}
	if svc.calls != 0 {
		t.Fatalf("rejected request reached the service")
	}
}

func TestDeleteFileSuccess(t *testing.T) {
	svc := &stubStorageService{}
	h := NewFileHandler(svc, zerolog.Nop())

	resp, err := h.DeleteFile(context.Background(), dispatch.Request{Query: map[string]string{
		"simulation_group_id": "g1", "patient_id": "p1", "file_name": "notes",
		"file_type": "pdf", "folder_type": "documents",
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 || resp.Body != `"File deleted successfully"` {
		t.Fatalf("got %d %q", resp.StatusCode, resp.Body)
	}
	if svc.calls != 1 {
		t.Fatalf("expected one service call, got %d", svc.calls)
	}
}
