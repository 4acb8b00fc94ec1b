// Package git adapts the head resolver and source cloner ports onto the
// git CLI.
package git

import (
	"context"
	"errors"
	"strings"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/zerr"
)

var _ ports.HeadResolver = (*Resolver)(nil)

// resolverCacheSize bounds the memo of resolved heads. A single run
// resolves one branch; the headroom covers repeated invocations in tests
// and long-lived embedders.
const resolverCacheSize = 16

// Resolver implements ports.HeadResolver via `git ls-remote`. Resolved
// heads are memoized per repo+branch, so repeated queries within one
// process see a consistent commit even if upstream moves mid-run.
type Resolver struct {
	executor ports.Executor
	memo     *lru.Cache[string, string]
}

// NewResolver creates a new Resolver backed by the given executor.
func NewResolver(executor ports.Executor) (*Resolver, error) {
	memo, err := lru.New[string, string](resolverCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create resolver cache")
	}
	return &Resolver{
		executor: executor,
		memo:     memo,
	}, nil
}

// ResolveHead returns the commit hash at the head of branch in repoURL.
func (r *Resolver) ResolveHead(ctx context.Context, repoURL, branch string) (string, error) {
	memoKey := repoURL + "\x00" + branch
	if commit, ok := r.memo.Get(memoKey); ok {
		return commit, nil
	}

	out, err := r.executor.Run(ctx, domain.Command{
		Name: "git",
		Args: []string{"ls-remote", repoURL, "refs/heads/" + branch},
	})
	if err != nil {
		return "", errors.Join(
			zerr.With(zerr.With(domain.ErrResolveFailed, "repo", repoURL), "branch", branch),
			err,
		)
	}

	commit, err := parseLsRemote(out, branch)
	if err != nil {
		return "", errors.Join(
			zerr.With(zerr.With(domain.ErrResolveFailed, "repo", repoURL), "branch", branch),
			err,
		)
	}

	r.memo.Add(memoKey, commit)
	return commit, nil
}

// parseLsRemote extracts the commit hash from ls-remote output of the form
// "<hash>\trefs/heads/<branch>".
func parseLsRemote(out, branch string) (string, error) {
	want := "refs/heads/" + branch
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		if fields[1] == want {
			return fields[0], nil
		}
	}
	return "", zerr.With(zerr.New("branch not found in ls-remote output"), "branch", branch)
}
