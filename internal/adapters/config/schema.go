package config

// Configfile represents the structure of the depcache.yaml configuration file.
type Configfile struct {
	Version      string                     `yaml:"version"`
	Root         string                     `yaml:"root"`
	Settings     SettingsDTO                `yaml:"settings"`
	ProjectParts map[string]*ProjectPartDTO `yaml:"projectParts"`
}

// SettingsDTO represents the settings block of the configuration.
type SettingsDTO struct {
	StateDir    string `yaml:"stateDir"`
	Backend     string `yaml:"backend"`
	Freshness   string `yaml:"freshness"`
	CacheSize   *int   `yaml:"cacheSize"`
	Parallelism int    `yaml:"parallelism"`
}

// ProjectPartDTO represents a project part definition in the configuration.
type ProjectPartDTO struct {
	ProjectFile  string            `yaml:"projectFile"`
	Arguments    []string          `yaml:"arguments"`
	Macros       map[string]string `yaml:"macros"`
	IncludePaths []string          `yaml:"includePaths"`
	Headers      []string          `yaml:"headers"`
}
