package resumehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_Upload(t *testing.T) {
	var gotPreset string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file field: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"public_id":"res_abc123","secure_url":"https://host.example/res_abc123.png"}`))
	}))
	defer server.Close()

	client := New(server.URL, "resumes", 5*time.Second)
	upload, err := client.Upload(context.Background(), "resume.png", "image/png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotPreset != "resumes" {
		t.Fatalf("expected preset %q got %q", "resumes", gotPreset)
	}
	if upload.PublicID != "res_abc123" {
		t.Fatalf("unexpected public id %q", upload.PublicID)
	}
	if upload.URL != "https://host.example/res_abc123.png" {
		t.Fatalf("unexpected url %q", upload.URL)
	}
}

func TestClient_UploadErrors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer failing.Close()

	client := New(failing.URL, "resumes", 5*time.Second)
	if _, err := client.Upload(context.Background(), "resume.png", "image/png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error on upstream 502")
	}

	incomplete := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":""}`))
	}))
	defer incomplete.Close()

	client = New(incomplete.URL, "resumes", 5*time.Second)
	if _, err := client.Upload(context.Background(), "resume.png", "image/png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error on incomplete reference")
	}
}
