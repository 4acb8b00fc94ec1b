package ports

import (
	"context"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes cmd, streaming its output to the logger, and returns
	// the captured standard output. A non-zero exit propagates as an
	// error carrying the exit code.
	Run(ctx context.Context, cmd domain.Command) (stdout string, err error)
}
