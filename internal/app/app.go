// Package app implements the application layer for wheelhouse.
package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *Pipeline
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, pipeline *Pipeline, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		pipeline:     pipeline,
		logger:       logger,
	}
}

// InstallOptions carries the per-invocation inputs of the install step.
type InstallOptions struct {
	// ConfigPath locates the wheelhouse.yaml file.
	ConfigPath string
	// OS overrides the detected platform identifier.
	OS string
	// PythonVersion overrides the configured runtime version.
	PythonVersion string
	// FromSource selects the build-from-head path.
	FromSource bool
	// CacheDir overrides the configured cache root.
	CacheDir string
}

// Install runs the install step with the configured spec and the given
// overrides.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	osID := opts.OS
	if osID == "" {
		osID = PlatformID(runtime.GOOS)
	}

	spec, err := a.configLoader.Load(opts.ConfigPath, osID)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	spec.FromSource = opts.FromSource
	if opts.PythonVersion != "" {
		spec.PythonVersion = opts.PythonVersion
	}
	if opts.CacheDir != "" {
		spec.CacheRoot = opts.CacheDir
	}

	report, err := a.pipeline.Run(ctx, *spec)
	if err != nil {
		return err
	}

	a.logger.Info(summarize(report))
	return nil
}

// PlatformID maps a GOOS value to the runner-style identifier used in
// cache keys and platform config, matching what CI runners report.
func PlatformID(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "macOS"
	case "windows":
		return "Windows"
	default:
		return goos
	}
}

func summarize(report *domain.InstallReport) string {
	switch {
	case report.Path == domain.InstallPathStable:
		return "installed stable release"
	case report.Rebuilt:
		return fmt.Sprintf("built %d wheel(s) from %s (%s)", len(report.Wheels), report.Commit, report.Outcome)
	default:
		return fmt.Sprintf("reused cached build of %s", report.Commit)
	}
}
