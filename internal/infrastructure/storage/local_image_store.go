package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photostock/internal/usecase/interfaces"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	defaultUploadDir = "public/uploads"
	publicPrefix     = "/uploads"

	// Uploads come straight off phone cameras; bounding the longest edge
	// and re-encoding keeps the catalog directory at gallery size.
	maxEdge     = 1920
	jpegQuality = 80
)

// LocalImageStore keeps invoice photos on the local filesystem under a
// single uploads directory, served by the catalog as /uploads/<name>.
type LocalImageStore struct {
	dir string
}

var _ interfaces.IImageStore = (*LocalImageStore)(nil)

// NewLocalImageStore creates the store rooted at UPLOAD_DIR (default
// public/uploads), creating the directory if needed.
func NewLocalImageStore() (*LocalImageStore, error) {
	dir := getenvDefault("UPLOAD_DIR", defaultUploadDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStore{dir: dir}, nil
}

// Dir reports the directory photos are written to, for static serving.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save normalizes an uploaded JPEG/PNG and stores it as
// <unix-ms>_<name>.jpg, returning the public path.
func (s *LocalImageStore) Save(filename string, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image %q: %w", filename, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxEdge || bounds.Dy() > maxEdge {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), storedName(filename))
	if err := imaging.Save(img, filepath.Join(s.dir, name), imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("save image %q: %w", name, err)
	}
	return publicPrefix + "/" + name, nil
}

// Overwrite writes already-compressed bytes verbatim under filename,
// replacing any existing file.
func (s *LocalImageStore) Overwrite(filename string, data []byte) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return publicPrefix + "/" + name, nil
}

// Remove deletes the file behind a public path. A missing file is fine;
// the record may outlive its photo.
func (s *LocalImageStore) Remove(publicPath string) error {
	name := filepath.Base(publicPath)
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// storedName flattens the original filename to a safe .jpg name.
func storedName(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || stem == "." {
		stem = uuid.NewString()
	}
	return stem + ".jpg"
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
