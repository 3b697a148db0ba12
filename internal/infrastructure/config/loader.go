package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the default settings file name
const SettingsFile = "settings.yaml"

// mapExt is the extension of map files under maps/
const mapExt = ".map"

// Loader loads settings and maps using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads a YAML settings file on top of Defaults()
func (l *Loader) LoadSettings(name string) (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return cfg, nil
}

// LoadMap loads maps/<name>.map as text
func (l *Loader) LoadMap(name string) (string, error) {
	p := path.Join("maps", name+mapExt)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return "", fmt.Errorf("failed to read map %s: %w", name, err)
	}
	return string(data), nil
}

// ListMaps returns the names of the maps under maps/, sorted
func (l *Loader) ListMaps() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "maps/*"+mapExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), mapExt))
	}
	sort.Strings(names)
	return names, nil
}

// ParseSettings decodes YAML settings; absent fields keep their defaults
func ParseSettings(data []byte) (*Settings, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadMapFile reads a map from an OS path
func LoadMapFile(p string) (string, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("failed to read map %s: %w", p, err)
	}
	return string(data), nil
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}
