package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gunchamalik/wheelhouse/internal/adapters/wheelcache"
	"github.com/gunchamalik/wheelhouse/internal/app"
	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"github.com/gunchamalik/wheelhouse/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pipelineMocks struct {
	resolver  *mocks.MockHeadResolver
	cloner    *mocks.MockSourceCloner
	builder   *mocks.MockWheelBuilder
	installer *mocks.MockPackageInstaller
	cache     *mocks.MockWheelCache
	logger    *mocks.MockLogger
}

func newPipeline(ctrl *gomock.Controller) (*app.Pipeline, *pipelineMocks) {
	m := &pipelineMocks{
		resolver:  mocks.NewMockHeadResolver(ctrl),
		cloner:    mocks.NewMockSourceCloner(ctrl),
		builder:   mocks.NewMockWheelBuilder(ctrl),
		installer: mocks.NewMockPackageInstaller(ctrl),
		cache:     mocks.NewMockWheelCache(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	p := app.NewPipeline(m.resolver, m.cloner, m.builder, m.installer, m.cache, m.logger, noopTracer{})
	return p, m
}

// noopTracer keeps pipeline tests focused on the port interactions.
type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}
func (noopTracer) EmitPlan(context.Context, []string) {}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}

func (noopSpan) Write(p []byte) (int, error) { return len(p), nil }

func sourceSpec() domain.InstallSpec {
	return domain.InstallSpec{
		OS:               "Linux",
		PythonVersion:    "3.10",
		FromSource:       true,
		RepoURL:          "https://example.com/upstream.git",
		Branch:           "main",
		PrimaryPackage:   "primary",
		CompanionPackage: "companion",
		CacheRoot:        "/cache",
		Toolchain:        domain.Toolchain{Python: "python", Pip: "pip"},
	}
}

// Stable path: no resolve, no clone, no build, no cache consultation.
// Exactly one registry install of the primary plus one of the companion.
func TestPipeline_StablePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)

	spec := sourceSpec()
	spec.FromSource = false

	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "primary").Return(nil).Times(1)
	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "companion").Return(nil).Times(1)
	// No expectations on resolver, cloner, builder, or cache: any call
	// on them fails the test.

	report, err := p.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallPathStable, report.Path)
	assert.Equal(t, domain.CacheOutcomeSkipped, report.Outcome)
	assert.False(t, report.Rebuilt)
}

// Head path with a usable cache hit: no clone and no build occur.
func TestPipeline_SourcePath_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)
	spec := sourceSpec()

	entryDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(entryDir, "primary-1.0-py3-none-any.whl"), []byte("w"), 0o600))

	m.resolver.EXPECT().ResolveHead(gomock.Any(), spec.RepoURL, spec.Branch).Return("abc123", nil)
	m.cache.EXPECT().Fetch("/cache", domain.NewCacheKey("Linux", "3.10", "abc123")).Return(entryDir, true, nil)
	m.installer.EXPECT().InstallWheels(gomock.Any(), spec.Toolchain, entryDir).Return(domain.WheelInstallOK, nil)
	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "companion").Return(nil).Times(1)

	report, err := p.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, domain.InstallPathSource, report.Path)
	assert.Equal(t, domain.CacheOutcomeHit, report.Outcome)
	assert.Equal(t, "abc123", report.Commit)
	assert.False(t, report.Rebuilt)
	assert.Len(t, report.Wheels, 1)
}

// Head path with a cache miss: clone, build, store, and install from the
// fresh build happen in that order.
func TestPipeline_SourcePath_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)
	spec := sourceSpec()
	key := domain.NewCacheKey("Linux", "3.10", "abc123")

	m.resolver.EXPECT().ResolveHead(gomock.Any(), spec.RepoURL, spec.Branch).Return("abc123", nil)
	m.cache.EXPECT().Fetch("/cache", key).Return("", false, nil)

	gomock.InOrder(
		m.cloner.EXPECT().Clone(gomock.Any(), spec.RepoURL, spec.Branch, gomock.Any()).Return(nil),
		m.builder.EXPECT().Build(gomock.Any(), spec.Toolchain, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.Toolchain, _, outDir string) ([]string, error) {
				return []string{filepath.Join(outDir, "primary-1.0-py3-none-any.whl")}, nil
			}),
		m.cache.EXPECT().Store("/cache", key, gomock.Any()).Return(nil),
		m.installer.EXPECT().InstallWheels(gomock.Any(), spec.Toolchain, gomock.Any()).Return(domain.WheelInstallOK, nil),
	)
	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "companion").Return(nil).Times(1)

	report, err := p.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, domain.CacheOutcomeMiss, report.Outcome)
	assert.True(t, report.Rebuilt)
	assert.Len(t, report.Wheels, 1)
}

// A hit whose install fails is recovered locally by a full rebuild; the
// distinction from a plain miss stays visible in the report.
func TestPipeline_SourcePath_HitInstallFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)
	spec := sourceSpec()
	key := domain.NewCacheKey("Linux", "3.10", "abc123")

	m.resolver.EXPECT().ResolveHead(gomock.Any(), spec.RepoURL, spec.Branch).Return("abc123", nil)
	m.cache.EXPECT().Fetch("/cache", key).Return("/cache/entry", true, nil)

	gomock.InOrder(
		m.installer.EXPECT().InstallWheels(gomock.Any(), spec.Toolchain, "/cache/entry").
			Return(domain.WheelInstallFailed, errors.New("incompatible wheel")),
		m.cloner.EXPECT().Clone(gomock.Any(), spec.RepoURL, spec.Branch, gomock.Any()).Return(nil),
		m.builder.EXPECT().Build(gomock.Any(), spec.Toolchain, gomock.Any(), gomock.Any()).
			Return([]string{"fresh.whl"}, nil),
		m.cache.EXPECT().Store("/cache", key, gomock.Any()).Return(nil),
		m.installer.EXPECT().InstallWheels(gomock.Any(), spec.Toolchain, gomock.Any()).Return(domain.WheelInstallOK, nil),
	)
	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "companion").Return(nil).Times(1)

	report, err := p.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, domain.CacheOutcomeHitInstallFailed, report.Outcome)
	assert.True(t, report.Rebuilt)
}

// Resolution failure is fatal and aborts before the cache is consulted.
func TestPipeline_ResolveFailureFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)
	spec := sourceSpec()

	m.resolver.EXPECT().ResolveHead(gomock.Any(), spec.RepoURL, spec.Branch).
		Return("", domain.ErrResolveFailed)

	_, err := p.Run(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResolveFailed))
}

// A build failure after the fallback triggered is fatal.
func TestPipeline_BuildFailureFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)
	spec := sourceSpec()
	key := domain.NewCacheKey("Linux", "3.10", "abc123")

	m.resolver.EXPECT().ResolveHead(gomock.Any(), spec.RepoURL, spec.Branch).Return("abc123", nil)
	m.cache.EXPECT().Fetch("/cache", key).Return("", false, nil)
	m.cloner.EXPECT().Clone(gomock.Any(), spec.RepoURL, spec.Branch, gomock.Any()).Return(nil)
	m.builder.EXPECT().Build(gomock.Any(), spec.Toolchain, gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrBuildFailed)

	_, err := p.Run(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
}

// A failed cache store does not fail the step; the freshly built wheels
// still install.
func TestPipeline_StoreFailureNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)
	spec := sourceSpec()
	key := domain.NewCacheKey("Linux", "3.10", "abc123")

	m.resolver.EXPECT().ResolveHead(gomock.Any(), spec.RepoURL, spec.Branch).Return("abc123", nil)
	m.cache.EXPECT().Fetch("/cache", key).Return("", false, nil)
	m.cloner.EXPECT().Clone(gomock.Any(), spec.RepoURL, spec.Branch, gomock.Any()).Return(nil)
	m.builder.EXPECT().Build(gomock.Any(), spec.Toolchain, gomock.Any(), gomock.Any()).
		Return([]string{"fresh.whl"}, nil)
	m.cache.EXPECT().Store("/cache", key, gomock.Any()).Return(errors.New("disk full"))
	m.installer.EXPECT().InstallWheels(gomock.Any(), spec.Toolchain, gomock.Any()).Return(domain.WheelInstallOK, nil)
	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "companion").Return(nil)

	report, err := p.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.True(t, report.Rebuilt)
}

// The companion install happens exactly once on every path, and its
// failure is fatal.
func TestPipeline_CompanionFailureFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, m := newPipeline(ctrl)
	spec := sourceSpec()
	spec.FromSource = false

	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "primary").Return(nil)
	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "companion").
		Return(domain.ErrInstallFailed)

	_, err := p.Run(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInstallFailed))
}

func TestPipeline_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _ := newPipeline(ctrl)
	spec := sourceSpec()
	spec.PrimaryPackage = ""

	_, err := p.Run(context.Background(), spec)
	assert.True(t, errors.Is(err, domain.ErrInvalidSpec))
}

// Two consecutive runs against an unchanged upstream head build once and
// reuse the cache on the second run.
func TestPipeline_Idempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &pipelineMocks{
		resolver:  mocks.NewMockHeadResolver(ctrl),
		cloner:    mocks.NewMockSourceCloner(ctrl),
		builder:   mocks.NewMockWheelBuilder(ctrl),
		installer: mocks.NewMockPackageInstaller(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	store := wheelcache.NewStore()
	p := app.NewPipeline(m.resolver, m.cloner, m.builder, m.installer, store, m.logger, noopTracer{})

	spec := sourceSpec()
	spec.CacheRoot = t.TempDir()

	m.resolver.EXPECT().ResolveHead(gomock.Any(), spec.RepoURL, spec.Branch).Return("abc123", nil).Times(2)

	// First run only: clone and build, dropping a wheel into the build
	// output so the store has something to persist.
	m.cloner.EXPECT().Clone(gomock.Any(), spec.RepoURL, spec.Branch, gomock.Any()).Return(nil).Times(1)
	m.builder.EXPECT().Build(gomock.Any(), spec.Toolchain, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Toolchain, _, outDir string) ([]string, error) {
			wheel := filepath.Join(outDir, "primary-1.0-py3-none-any.whl")
			if err := os.WriteFile(wheel, []byte("wheel"), 0o600); err != nil {
				return nil, err
			}
			return []string{wheel}, nil
		}).Times(1)

	m.installer.EXPECT().InstallWheels(gomock.Any(), spec.Toolchain, gomock.Any()).
		Return(domain.WheelInstallOK, nil).Times(2)
	m.installer.EXPECT().InstallRelease(gomock.Any(), spec.Toolchain, "companion").Return(nil).Times(2)

	first, err := p.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, domain.CacheOutcomeMiss, first.Outcome)
	assert.True(t, first.Rebuilt)

	second, err := p.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, domain.CacheOutcomeHit, second.Outcome)
	assert.False(t, second.Rebuilt)
}
