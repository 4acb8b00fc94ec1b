package git

import (
	"context"
	"errors"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceCloner = (*Cloner)(nil)

// Cloner implements ports.SourceCloner via `git clone`.
type Cloner struct {
	executor ports.Executor
}

// NewCloner creates a new Cloner backed by the given executor.
func NewCloner(executor ports.Executor) *Cloner {
	return &Cloner{executor: executor}
}

// Clone checks out branch of repoURL into dest at depth one.
func (c *Cloner) Clone(ctx context.Context, repoURL, branch, dest string) error {
	_, err := c.executor.Run(ctx, domain.Command{
		Name: "git",
		Args: []string{
			"clone",
			"--depth", "1",
			"--single-branch",
			"--branch", branch,
			repoURL,
			dest,
		},
	})
	if err != nil {
		return errors.Join(
			zerr.With(zerr.With(domain.ErrCloneFailed, "repo", repoURL), "branch", branch),
			err,
		)
	}
	return nil
}
