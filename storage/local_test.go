package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", name)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parsing form: %v", err)
	}
	return req.MultipartForm.File["photo"][0]
}

func TestLocalSaveAndDelete(t *testing.T) {
	local, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	path, err := local.Save(fileHeader(t, "photo.jpg", []byte("jpeg-bytes")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(path, "uploads/") {
		t.Errorf("stored path %q should be under uploads/", path)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("stored path %q should keep the extension", path)
	}

	onDisk := filepath.Join(local.Dir, filepath.Base(path))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content = %q", data)
	}

	if err := local.Delete(path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Error("file should be gone after Delete")
	}

	// Deleting again is not an error.
	if err := local.Delete(path); err != nil {
		t.Errorf("Delete on missing file: %v", err)
	}
}

func TestLocalSaveGeneratesUniqueNames(t *testing.T) {
	local, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	first, err := local.Save(fileHeader(t, "photo.jpg", []byte("a")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := local.Save(fileHeader(t, "photo.jpg", []byte("b")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Errorf("two uploads of the same filename should not collide: %q", first)
	}
}

func TestLocalDeleteIgnoresForeignPaths(t *testing.T) {
	local, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	if err := local.Delete(""); err != nil {
		t.Errorf("Delete of empty path: %v", err)
	}
	if err := local.Delete("uploads/"); err != nil {
		t.Errorf("Delete of bare prefix: %v", err)
	}
}
