package domain_test

import (
	"errors"
	"testing"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func validSpec() domain.InstallSpec {
	return domain.InstallSpec{
		OS:               "Linux",
		PythonVersion:    "3.10",
		FromSource:       true,
		RepoURL:          "https://example.com/upstream.git",
		Branch:           "main",
		PrimaryPackage:   "primary",
		CompanionPackage: "companion",
		CacheRoot:        "/tmp/cache",
		Toolchain:        domain.Toolchain{Python: "python", Pip: "pip"},
	}
}

func TestInstallSpec_Validate(t *testing.T) {
	assert.NoError(t, validSpec().Validate())
}

func TestInstallSpec_Validate_MissingField(t *testing.T) {
	spec := validSpec()
	spec.RepoURL = ""

	err := spec.Validate()
	if !errors.Is(err, domain.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}

	var zErr *zerr.Error
	if !errors.As(err, &zErr) {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if field, ok := meta["field"].(string); !ok || field != "repo_url" {
		t.Errorf("expected metadata field=repo_url, got %v", meta["field"])
	}
}

func TestInstallSpec_Validate_StableSkipsSourceFields(t *testing.T) {
	// The stable path never touches the repo or the cache, so their
	// fields are not required.
	spec := validSpec()
	spec.FromSource = false
	spec.RepoURL = ""
	spec.Branch = ""
	spec.CacheRoot = ""

	assert.NoError(t, spec.Validate())
}

func TestCacheOutcome_TriggersBuild(t *testing.T) {
	assert.False(t, domain.CacheOutcomeSkipped.TriggersBuild())
	assert.False(t, domain.CacheOutcomeHit.TriggersBuild())
	assert.True(t, domain.CacheOutcomeMiss.TriggersBuild())
	assert.True(t, domain.CacheOutcomeHitInstallFailed.TriggersBuild())
}

func TestWheelInstallStatus_String(t *testing.T) {
	assert.Equal(t, "ok", domain.WheelInstallOK.String())
	assert.Equal(t, "no-wheels", domain.WheelInstallNoWheels.String())
	assert.Equal(t, "failed", domain.WheelInstallFailed.String())
}
