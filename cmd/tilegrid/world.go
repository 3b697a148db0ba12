package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/younwookim/tilegrid/internal/application/session"
	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/infrastructure/config"
	"github.com/younwookim/tilegrid/internal/infrastructure/telemetry"
)

const (
	defaultLevel = "demo"

	envMap     = "TILEGRID_MAP"
	envBackend = "TILEGRID_BACKEND"
)

// mapSource names where map text comes from: a file path or a built-in level
type mapSource struct {
	path  string
	level string
}

func (s mapSource) String() string {
	if s.path != "" {
		return s.path
	}
	return "level:" + s.level
}

// resolveMapSource applies flag, then TILEGRID_MAP, then the default level
func resolveMapSource(path, level string) mapSource {
	switch {
	case path != "":
		return mapSource{path: path}
	case level != "":
		return mapSource{level: level}
	case os.Getenv(envMap) != "":
		return mapSource{path: os.Getenv(envMap)}
	default:
		return mapSource{level: defaultLevel}
	}
}

// builtinLoader reads the embedded settings and maps
func builtinLoader() *config.Loader {
	return config.NewFSLoader(builtinConfigs(), "builtin")
}

// loadSettings reads --config if given, the embedded settings otherwise
func loadSettings() (*config.Settings, error) {
	if flagConfig == "" {
		return builtinLoader().LoadSettings(config.SettingsFile)
	}
	loader := config.NewLoader(filepath.Dir(flagConfig))
	return loader.LoadSettings(filepath.Base(flagConfig))
}

// sessionOptions converts settings to session options
func sessionOptions(cfg *config.Settings) (session.Options, error) {
	palette, err := cfg.Palette.ToPalette()
	if err != nil {
		return session.Options{}, err
	}

	opts := session.DefaultOptions()
	opts.Palette = palette
	opts.Rules = system.MovementRules{
		ConfineToGrid: cfg.Movement.ConfineToGrid,
		BlockWalls:    cfg.Movement.BlockWalls,
	}
	return opts, nil
}

// loadMap reads and parses a map inside a "map.load" span
func loadMap(ctx context.Context, src mapSource, cfg *config.Settings) (*system.MapResult, error) {
	_, span := telemetry.Tracer("cli").Start(ctx, "map.load")
	defer span.End()
	span.SetAttributes(attribute.String("map.source", src.String()))

	m, err := readAndParse(src, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("map.width", m.Playground.Width()),
		attribute.Int("map.height", m.Playground.Height()),
	)
	logger.Info("map loaded",
		"source", src,
		"width", m.Playground.Width(),
		"height", m.Playground.Height(),
		"spawn", m.Spawn,
	)
	return m, nil
}

func readAndParse(src mapSource, cfg *config.Settings) (*system.MapResult, error) {
	var (
		text string
		err  error
	)
	if src.path != "" {
		text, err = config.LoadMapFile(src.path)
	} else {
		text, err = builtinLoader().LoadMap(src.level)
	}
	if err != nil {
		return nil, err
	}

	palette, err := cfg.Palette.ToPalette()
	if err != nil {
		return nil, err
	}

	m, err := system.ParseMap(text, palette)
	if err != nil {
		return nil, fmt.Errorf("invalid map %s: %w", src, err)
	}
	return m, nil
}
