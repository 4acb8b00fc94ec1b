package ports

import "context"

// SourceCloner produces a working copy of an upstream repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=cloner.go -destination=mocks/mock_cloner.go -package=mocks
type SourceCloner interface {
	// Clone checks out branch of repoURL into dest at depth one. The
	// history is truncated; only the head commit is needed for a build.
	Clone(ctx context.Context, repoURL, branch, dest string) error
}
