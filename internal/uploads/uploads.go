// Package uploads is a disk-backed blob store for user-submitted files,
// currently just profile images. Stored names carry a timestamp-random prefix
// so concurrent uploads of the same filename never collide.
package uploads

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

type Store struct {
	Dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Save writes the blob under a unique name and returns that name. Only the
// base of originalName is kept, so path components in client input are inert.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%d-%s",
		time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Base(originalName))

	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}

// Open returns a reader for a previously stored blob.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.Dir, filepath.Base(name)))
}
