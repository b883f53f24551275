// Package images handles uploaded listing and profile pictures: data-URL
// decoding, WebP re-encoding, per-user storage paths, and keep-list
// reconciliation.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
)

// ErrBadDataURL is returned for payloads that are not base64 data URLs.
var ErrBadDataURL = errors.New("images: invalid data URL")

const urlPrefix = "/static/"

// Service is what the controllers need from image storage.
type Service interface {
	SaveProfileImage(uid, dataURL string) (string, error)
	SaveHomeImage(uid, dataURL string) (string, error)
	DeleteFiles(urls []string)
	RemoveUserUploads(uid string) error
}

// Manager stores images under Root, which is served at /static.
type Manager struct {
	Root string
}

func NewManager(root string) *Manager {
	return &Manager{Root: root}
}

// ParseDataURL strips the data:...;base64, header and decodes the payload.
func ParseDataURL(s string) ([]byte, error) {
	_, encoded, found := strings.Cut(s, ",")
	if !found {
		return nil, ErrBadDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrBadDataURL
	}
	return raw, nil
}

// SaveProfileImage writes the user's profile picture as WebP, one image per
// user with overwrite semantics, and returns its public URL.
func (m *Manager) SaveProfileImage(uid, dataURL string) (string, error) {
	rel := filepath.Join("profile", uid+".webp")
	if err := m.encodeTo(rel, dataURL); err != nil {
		return "", err
	}
	return urlPrefix + filepath.ToSlash(rel), nil
}

// SaveHomeImage writes a property image under the user's upload folder with
// a generated filename and returns its public URL.
func (m *Manager) SaveHomeImage(uid, dataURL string) (string, error) {
	rel := filepath.Join("uploads", uid, uuid.New().String()+".webp")
	if err := m.encodeTo(rel, dataURL); err != nil {
		return "", err
	}
	return urlPrefix + filepath.ToSlash(rel), nil
}

func (m *Manager) encodeTo(rel, dataURL string) error {
	raw, err := ParseDataURL(dataURL)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("images: decode: %w", err)
	}

	abs := filepath.Join(m.Root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return fmt.Errorf("images: encode: %w", err)
	}
	return os.WriteFile(abs, buf.Bytes(), 0o644)
}

// Removed returns the stored URLs that are not on the keep list.
func Removed(stored, keep []string) []string {
	keepSet := make(map[string]bool, len(keep))
	for _, k := range keep {
		keepSet[k] = true
	}
	var out []string
	for _, s := range stored {
		if !keepSet[s] {
			out = append(out, s)
		}
	}
	return out
}

// DeleteFiles removes the files behind the given public URLs, best effort.
func (m *Manager) DeleteFiles(urls []string) {
	for _, u := range urls {
		path, ok := m.filePath(u)
		if !ok {
			continue
		}
		_ = os.Remove(path)
	}
}

// RemoveUserUploads deletes the user's whole upload folder.
func (m *Manager) RemoveUserUploads(uid string) error {
	return os.RemoveAll(filepath.Join(m.Root, "uploads", uid))
}

func (m *Manager) filePath(url string) (string, bool) {
	rel, ok := strings.CutPrefix(url, urlPrefix)
	if !ok || strings.Contains(rel, "..") {
		return "", false
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel)), true
}
