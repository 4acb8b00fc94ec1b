// Package ports defines the core interfaces for the application.
package ports

import "context"

// HeadResolver resolves the current head commit of a remote branch through
// a read-only reference query; no local clone is involved.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type HeadResolver interface {
	// ResolveHead returns the full commit hash at the head of branch in
	// the repository at repoURL. A failure here is fatal to the step.
	ResolveHead(ctx context.Context, repoURL, branch string) (string, error)
}
