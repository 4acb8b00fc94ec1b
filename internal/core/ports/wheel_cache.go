package ports

import "github.com/gunchamalik/wheelhouse/internal/core/domain"

// WheelCache stores built wheel archives keyed by an exact composite key.
// Entries are created by successful builds and never evicted by this
// logic; expiry, if any, belongs to the surrounding store.
//
//go:generate go run go.uber.org/mock/mockgen -source=wheel_cache.go -destination=mocks/mock_wheel_cache.go -package=mocks
type WheelCache interface {
	// Fetch looks up the entry for key under root. It returns the entry
	// directory and whether a usable entry exists. A missing or empty
	// entry is a miss, not an error.
	Fetch(root string, key domain.CacheKey) (dir string, hit bool, err error)

	// Store copies the wheel archives from srcDir into the entry for
	// key under root, creating it.
	Store(root string, key domain.CacheKey, srcDir string) error
}
