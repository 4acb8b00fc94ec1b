package config

// Wheelfile represents the structure of the wheelhouse.yaml configuration
// file.
type Wheelfile struct {
	Version   string                  `yaml:"version"`
	Upstream  UpstreamDTO             `yaml:"upstream"`
	Companion CompanionDTO            `yaml:"companion"`
	Python    PythonDTO               `yaml:"python"`
	Cache     CacheDTO                `yaml:"cache"`
	Platforms map[string]ToolchainDTO `yaml:"platforms"`
}

// UpstreamDTO describes the source repository the primary package is
// built from.
type UpstreamDTO struct {
	Repo    string `yaml:"repo"`
	Branch  string `yaml:"branch"`
	Package string `yaml:"package"`
}

// CompanionDTO describes the always-stable companion package.
type CompanionDTO struct {
	Package string `yaml:"package"`
}

// PythonDTO carries the runtime version the cache key includes.
type PythonDTO struct {
	Version string `yaml:"version"`
}

// CacheDTO configures the wheel cache location.
type CacheDTO struct {
	Dir string `yaml:"dir"`
}

// ToolchainDTO overrides the build/install executables for one platform.
type ToolchainDTO struct {
	Python string `yaml:"python"`
	Pip    string `yaml:"pip"`
}
