package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline runs the install step: a linear sequence with one decision,
// stable-vs-head crossed with hit-vs-miss. There are no loops and no
// intermediate states; each external call blocks until it completes or
// fails.
type Pipeline struct {
	resolver  ports.HeadResolver
	cloner    ports.SourceCloner
	builder   ports.WheelBuilder
	installer ports.PackageInstaller
	cache     ports.WheelCache
	logger    ports.Logger
	tracer    ports.Tracer
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	resolver ports.HeadResolver,
	cloner ports.SourceCloner,
	builder ports.WheelBuilder,
	installer ports.PackageInstaller,
	cache ports.WheelCache,
	logger ports.Logger,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		resolver:  resolver,
		cloner:    cloner,
		builder:   builder,
		installer: installer,
		cache:     cache,
		logger:    logger,
		tracer:    tracer,
	}
}

// Run executes the install step for spec. On return without error, the
// primary and companion packages are installed in the local environment.
// All failures propagate unmodified; there is no retry and no rollback,
// so a failed run may leave the environment partially modified.
func (p *Pipeline) Run(ctx context.Context, spec domain.InstallSpec) (*domain.InstallReport, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	ctx, span := p.tracer.Start(ctx, "install")
	defer span.End()
	span.SetAttribute("os", spec.OS)
	span.SetAttribute("python_version", spec.PythonVersion)
	span.SetAttribute("from_source", spec.FromSource)

	report := &domain.InstallReport{
		Path:    domain.InstallPathStable,
		Outcome: domain.CacheOutcomeSkipped,
	}

	if spec.FromSource {
		report.Path = domain.InstallPathSource
		p.tracer.EmitPlan(ctx, []string{"resolve", "cache", "install", "companion"})
		if err := p.installFromSource(ctx, spec, report); err != nil {
			span.RecordError(err)
			return nil, err
		}
	} else {
		// The stable path ignores the cache and the upstream head
		// entirely.
		p.tracer.EmitPlan(ctx, []string{"install", "companion"})
		p.logger.Info("installing " + spec.PrimaryPackage + " from the registry")
		if err := p.installer.InstallRelease(ctx, spec.Toolchain, spec.PrimaryPackage); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	// The companion is always installed from the registry, on every
	// path, and its failure is fatal.
	p.logger.Info("installing companion " + spec.CompanionPackage)
	if err := p.installer.InstallRelease(ctx, spec.Toolchain, spec.CompanionPackage); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("cache_outcome", string(report.Outcome))
	span.SetAttribute("rebuilt", report.Rebuilt)
	return report, nil
}

// installFromSource ensures the primary package is installed from the
// current upstream head, reusing a cached build when one installs cleanly.
func (p *Pipeline) installFromSource(ctx context.Context, spec domain.InstallSpec, report *domain.InstallReport) error {
	commit, err := p.resolveHead(ctx, spec)
	if err != nil {
		return err
	}
	report.Commit = commit

	key := domain.NewCacheKey(spec.OS, spec.PythonVersion, commit)

	outcome, wheels, err := p.tryCache(ctx, spec, key)
	if err != nil {
		return err
	}
	report.Outcome = outcome
	if outcome == domain.CacheOutcomeHit {
		report.Wheels = wheels
		return nil
	}

	// Miss, or a hit that would not install: both rebuild.
	wheels, err = p.rebuild(ctx, spec, key)
	if err != nil {
		return err
	}
	report.Wheels = wheels
	report.Rebuilt = true
	return nil
}

func (p *Pipeline) resolveHead(ctx context.Context, spec domain.InstallSpec) (string, error) {
	ctx, span := p.tracer.Start(ctx, "resolve")
	defer span.End()

	commit, err := p.resolver.ResolveHead(ctx, spec.RepoURL, spec.Branch)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("commit", commit)
	p.logger.Info("upstream head at " + commit)
	return commit, nil
}

// tryCache consults the cache and attempts an install from a hit. The
// returned outcome distinguishes a miss from a hit whose install failed,
// even though both trigger the same rebuild.
func (p *Pipeline) tryCache(ctx context.Context, spec domain.InstallSpec, key domain.CacheKey) (domain.CacheOutcome, []string, error) {
	ctx, span := p.tracer.Start(ctx, "cache")
	defer span.End()
	span.SetAttribute("key", key.String())

	dir, hit, err := p.cache.Fetch(spec.CacheRoot, key)
	if err != nil {
		span.RecordError(err)
		return "", nil, err
	}
	if !hit {
		p.logger.Info("cache miss for " + key.String())
		return domain.CacheOutcomeMiss, nil, nil
	}

	status, installErr := p.installer.InstallWheels(ctx, spec.Toolchain, dir)
	if status == domain.WheelInstallOK {
		p.logger.Info("installed " + spec.PrimaryPackage + " from cache")
		wheels, listErr := filepath.Glob(filepath.Join(dir, "*.whl"))
		if listErr != nil {
			wheels = nil
		}
		return domain.CacheOutcomeHit, wheels, nil
	}

	// Recovered locally: the entry existed but did not install. Not
	// surfaced as a failure unless the rebuild also fails.
	msg := "cache entry for " + key.String() + " did not install, rebuilding"
	if installErr != nil {
		msg += ": " + installErr.Error()
	}
	p.logger.Warn(msg)
	span.SetAttribute("install_status", status.String())
	return domain.CacheOutcomeHitInstallFailed, nil, nil
}

// rebuild clones the upstream head, builds wheels, stores them in the
// cache, and installs them. Every failure on this path is fatal except
// the cache store, which only costs the next run a rebuild.
func (p *Pipeline) rebuild(ctx context.Context, spec domain.InstallSpec, key domain.CacheKey) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "rebuild")
	defer span.End()

	workDir, err := os.MkdirTemp("", "wheelhouse-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create work directory")
	}
	defer os.RemoveAll(workDir) //nolint:errcheck // Best effort cleanup

	srcDir := filepath.Join(workDir, "src")
	wheelDir := filepath.Join(workDir, "wheels")
	if err := os.MkdirAll(wheelDir, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create wheel directory")
	}

	p.logger.Info("cloning " + spec.RepoURL + " at " + spec.Branch)
	if err := p.cloner.Clone(ctx, spec.RepoURL, spec.Branch, srcDir); err != nil {
		span.RecordError(err)
		return nil, err
	}

	p.logger.Info("building " + spec.PrimaryPackage)
	wheels, err := p.builder.Build(ctx, spec.Toolchain, srcDir, wheelDir)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if err := p.cache.Store(spec.CacheRoot, key, wheelDir); err != nil {
		// The wheels are still on disk and installable; losing the
		// cache entry only means the next run rebuilds.
		p.logger.Warn("failed to store cache entry: " + err.Error())
		span.RecordError(err)
	}

	status, err := p.installer.InstallWheels(ctx, spec.Toolchain, wheelDir)
	switch status {
	case domain.WheelInstallOK:
		p.logger.Info("installed " + spec.PrimaryPackage + " from fresh build")
		return wheels, nil
	case domain.WheelInstallNoWheels:
		installErr := zerr.With(domain.ErrNoWheels, "dir", wheelDir)
		span.RecordError(installErr)
		return nil, installErr
	default:
		if err == nil {
			err = zerr.With(domain.ErrInstallFailed, "dir", wheelDir)
		}
		span.RecordError(err)
		return nil, err
	}
}
