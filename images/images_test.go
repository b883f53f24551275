package images

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDataURL(t *testing.T) {
	payload := []byte("hello")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	raw, err := ParseDataURL(encoded)
	if err != nil {
		t.Fatalf("ParseDataURL: %v", err)
	}
	if string(raw) != "hello" {
		t.Errorf("decoded %q, want hello", raw)
	}

	if _, err := ParseDataURL("no comma here"); !errors.Is(err, ErrBadDataURL) {
		t.Errorf("missing comma: err = %v, want ErrBadDataURL", err)
	}
	if _, err := ParseDataURL("data:image/png;base64,???"); !errors.Is(err, ErrBadDataURL) {
		t.Errorf("bad base64: err = %v, want ErrBadDataURL", err)
	}
}

func TestRemoved(t *testing.T) {
	stored := []string{"/static/uploads/u1/a.webp", "/static/uploads/u1/b.webp", "/static/uploads/u1/c.webp"}
	keep := []string{"/static/uploads/u1/b.webp"}

	got := Removed(stored, keep)
	if len(got) != 2 || got[0] != stored[0] || got[1] != stored[2] {
		t.Errorf("Removed = %v, want [a c]", got)
	}

	if got := Removed(stored, nil); len(got) != 3 {
		t.Errorf("empty keep should remove everything, got %v", got)
	}
	if got := Removed(stored, stored); got != nil {
		t.Errorf("full keep should remove nothing, got %v", got)
	}
}

func TestDeleteFiles(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	dir := filepath.Join(root, "uploads", "u1")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.webp", "b.webp", "c.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	stored := []string{
		"/static/uploads/u1/a.webp",
		"/static/uploads/u1/b.webp",
		"/static/uploads/u1/c.webp",
	}
	keep := []string{"/static/uploads/u1/b.webp"}
	m.DeleteFiles(Removed(stored, keep))

	if _, err := os.Stat(filepath.Join(dir, "b.webp")); err != nil {
		t.Errorf("kept file missing: %v", err)
	}
	for _, name := range []string{"a.webp", "c.webp"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should have been deleted", name)
		}
	}
}

func TestDeleteFilesIgnoresUnsafeURLs(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	outside := filepath.Join(root, "secret.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	m.DeleteFiles([]string{
		"/static/../secret.txt",
		"/elsewhere/a.webp",
	})

	if _, err := os.Stat(outside); err != nil {
		t.Errorf("file outside the static root was touched: %v", err)
	}
}

func TestRemoveUserUploads(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	dir := filepath.Join(root, "uploads", "u1")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.webp"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := m.RemoveUserUploads("u1"); err != nil {
		t.Fatalf("RemoveUserUploads: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("upload folder still present")
	}

	// Unknown uid is not an error.
	if err := m.RemoveUserUploads("nobody"); err != nil {
		t.Errorf("RemoveUserUploads(nobody): %v", err)
	}
}
