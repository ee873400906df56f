// Package config provides the configuration loader for depcache.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration found from cwd and returns the workspace.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var configfile Configfile
	if err := readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	root := resolveRoot(configPath, configfile.Root)
	settings, err := resolveSettings(root, configfile.Settings)
	if err != nil {
		return nil, err
	}

	ws := &domain.Workspace{Root: root, Settings: settings}

	names := make([]string, 0, len(configfile.ProjectParts))
	for name := range configfile.ProjectParts {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := domain.ValidatePartName(name); err != nil {
			return nil, err
		}
		dto := configfile.ProjectParts[name]
		if dto == nil {
			dto = &ProjectPartDTO{}
		}
		if len(dto.Headers) == 0 {
			l.Logger.Warn(fmt.Sprintf("project part %s has no headers", name))
		}
		ws.Parts = append(ws.Parts, buildProjectPart(root, name, dto))
	}

	return ws, nil
}

// LoadSettings returns the settings of the workspace found from cwd.
// Without a configuration file the defaults rooted at cwd are returned.
func (l *Loader) LoadSettings(cwd string) (domain.Settings, error) {
	configPath, err := findConfiguration(cwd)
	if errors.Is(err, domain.ErrConfigNotFound) {
		abs, absErr := filepath.Abs(cwd)
		if absErr != nil {
			return domain.Settings{}, zerr.Wrap(absErr, domain.ErrFailedToGetRoot.Error())
		}
		l.Logger.Debug(fmt.Sprintf("no %s found, using defaults", domain.ConfigFileName))
		return domain.DefaultSettings(abs), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}

	var configfile Configfile
	if err := readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	return resolveSettings(resolveRoot(configPath, configfile.Root), configfile.Settings)
}

func findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	// Wrapped so callers can detect a missing file with errors.Is.
	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "configuration lookup failed"), "cwd", cwd)
}

func resolveSettings(root string, dto SettingsDTO) (domain.Settings, error) {
	settings := domain.DefaultSettings(root)

	if dto.StateDir != "" {
		settings.StateDir = resolvePath(root, dto.StateDir)
	}

	if dto.Backend != "" {
		settings.Backend = domain.Backend(dto.Backend)
	}
	if err := domain.ValidateBackend(settings.Backend); err != nil {
		return domain.Settings{}, zerr.With(err, "backend", dto.Backend)
	}

	if dto.Freshness != "" {
		settings.Freshness = domain.FreshnessMode(dto.Freshness)
	}
	if err := domain.ValidateFreshnessMode(settings.Freshness); err != nil {
		return domain.Settings{}, zerr.With(err, "freshness", dto.Freshness)
	}

	if dto.CacheSize != nil {
		settings.CacheSize = max(*dto.CacheSize, 0)
	}

	settings.Parallelism = dto.Parallelism
	if settings.Parallelism <= 0 {
		settings.Parallelism = runtime.NumCPU()
	}

	return settings, nil
}

func buildProjectPart(root, name string, dto *ProjectPartDTO) domain.ProjectPart {
	part := domain.ProjectPart{
		Name:      name,
		Arguments: slices.Clone(dto.Arguments),
		Headers:   slices.Clone(dto.Headers),
	}
	if dto.ProjectFile != "" {
		part.ProjectFile = resolvePath(root, dto.ProjectFile)
	}

	for _, dir := range dto.IncludePaths {
		part.IncludePaths = append(part.IncludePaths, resolvePath(root, dir))
	}

	keys := make([]string, 0, len(dto.Macros))
	for k := range dto.Macros {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		part.Macros = append(part.Macros, domain.NewCompilerMacro(k, dto.Macros[k]))
	}

	return part
}

func resolveRoot(configPath, configuredRoot string) string {
	return resolvePath(filepath.Dir(configPath), configuredRoot)
}

func resolvePath(base, p string) string {
	if p == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
