// Package wheelcache implements the directory-backed wheel cache.
package wheelcache

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.WheelCache = (*Store)(nil)

// Store implements ports.WheelCache on a local directory tree: one
// subdirectory per key digest, holding the wheel archives of one build.
// Entries match on the exact digest only and are never evicted here;
// expiry belongs to whatever owns the root directory.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// EntryDir returns the directory a key's archives live in under root.
func (s *Store) EntryDir(root string, key domain.CacheKey) string {
	return filepath.Join(root, key.Digest())
}

// Fetch looks up the entry for key. An absent directory or one holding no
// wheel archives is a miss; both lead to the same rebuild, but the caller
// can log which it was.
func (s *Store) Fetch(root string, key domain.CacheKey) (string, bool, error) {
	dir := s.EntryDir(root, key)

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, "failed to stat cache entry"), "dir", dir)
	}
	if !info.IsDir() {
		return "", false, zerr.With(zerr.New("cache entry is not a directory"), "dir", dir)
	}

	wheels, err := filepath.Glob(filepath.Join(dir, "*.whl"))
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to list cache entry"), "dir", dir)
	}
	if len(wheels) == 0 {
		return "", false, nil
	}

	return dir, true, nil
}

// Store copies the wheel archives from srcDir into the entry for key,
// creating it. Archives are copied concurrently; a failure leaves a
// partial entry behind, which Fetch treats as a hit only if at least one
// archive landed — the install-from-cache fallback covers the rest.
func (s *Store) Store(root string, key domain.CacheKey, srcDir string) error {
	wheels, err := filepath.Glob(filepath.Join(srcDir, "*.whl"))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to list wheels"), "dir", srcDir)
	}
	if len(wheels) == 0 {
		return zerr.With(domain.ErrNoWheels, "dir", srcDir)
	}

	dir := s.EntryDir(root, key)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache entry"), "dir", dir)
	}

	var g errgroup.Group
	for _, wheel := range wheels {
		g.Go(func() error {
			dest := filepath.Join(dir, filepath.Base(wheel))
			if err := copyFile(wheel, dest); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to copy wheel"), "wheel", wheel)
			}
			return nil
		})
	}
	return g.Wait()
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // path comes from a directory listing
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm) //nolint:gosec // dest is under the cache root
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
