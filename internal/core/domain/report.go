package domain

// InstallPath identifies which branch of the install step ran.
type InstallPath string

const (
	// InstallPathStable means the primary package came from the registry.
	InstallPathStable InstallPath = "stable"
	// InstallPathSource means the primary package was built from the
	// upstream head, or reused from a cached build of it.
	InstallPathSource InstallPath = "source"
)

// CacheOutcome records what the cache consultation produced. The rebuild
// path is identical for Miss and HitInstallFailed; keeping them distinct
// makes "the cache had something but it didn't work" observable in logs,
// spans, and tests.
type CacheOutcome string

const (
	// CacheOutcomeSkipped indicates the cache was never consulted
	// (stable path).
	CacheOutcomeSkipped CacheOutcome = "skipped"
	// CacheOutcomeHit indicates a usable entry was found and installed.
	CacheOutcomeHit CacheOutcome = "hit"
	// CacheOutcomeMiss indicates no entry existed for the key.
	CacheOutcomeMiss CacheOutcome = "miss"
	// CacheOutcomeHitInstallFailed indicates an entry existed but
	// installing from it failed, triggering a rebuild.
	CacheOutcomeHitInstallFailed CacheOutcome = "hit-install-failed"
)

// TriggersBuild reports whether this outcome sends the pipeline down the
// clone-build-store path.
func (o CacheOutcome) TriggersBuild() bool {
	return o == CacheOutcomeMiss || o == CacheOutcomeHitInstallFailed
}

// WheelInstallStatus is the typed result of installing the archives found
// in a directory, distinguishing an empty directory from a failed install.
type WheelInstallStatus int

const (
	// WheelInstallOK means every archive installed successfully.
	WheelInstallOK WheelInstallStatus = iota
	// WheelInstallNoWheels means the directory held no archives.
	WheelInstallNoWheels
	// WheelInstallFailed means an archive existed but its install failed.
	WheelInstallFailed
)

// String returns the string representation of the status.
func (s WheelInstallStatus) String() string {
	switch s {
	case WheelInstallOK:
		return "ok"
	case WheelInstallNoWheels:
		return "no-wheels"
	case WheelInstallFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InstallReport summarizes a completed run for logging and telemetry.
type InstallReport struct {
	Path    InstallPath
	Outcome CacheOutcome
	// Commit is the resolved upstream head, empty on the stable path.
	Commit string
	// Wheels lists the archives installed for the primary package,
	// empty on the stable path.
	Wheels []string
	// Rebuilt is true when a fresh build ran.
	Rebuilt bool
}
