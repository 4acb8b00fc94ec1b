package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// SchemaTag is the fixed version component of every cache key. Bump it to
// invalidate all existing entries when the entry layout changes.
const SchemaTag = "wheelhouse-v1"

// CacheKey identifies a wheel cache entry. Entries match only on an exact
// key; there is no partial or fuzzy matching.
type CacheKey struct {
	OS            string
	PythonVersion string
	Commit        string
	SchemaTag     string
}

// NewCacheKey builds a key for the given platform and upstream commit,
// stamped with the current SchemaTag.
func NewCacheKey(os, pythonVersion, commit string) CacheKey {
	return CacheKey{
		OS:            os,
		PythonVersion: pythonVersion,
		Commit:        commit,
		SchemaTag:     SchemaTag,
	}
}

// Digest renders the key as a stable hex string suitable for use as a
// directory name. Fields are hashed with a separator so that adjacent
// fields cannot collide by concatenation.
func (k CacheKey) Digest() string {
	hasher := xxhash.New()
	for _, field := range []string{k.OS, k.PythonVersion, k.Commit, k.SchemaTag} {
		_, _ = hasher.WriteString(field)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

// String returns a human-readable form for logs and span attributes.
func (k CacheKey) String() string {
	return k.OS + "/" + k.PythonVersion + "/" + k.Commit + "/" + k.SchemaTag
}
