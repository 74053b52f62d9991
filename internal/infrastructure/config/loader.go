package config

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed configs
var embedded embed.FS

const (
	tuningFile = "tuning.yaml"
	levelDir   = "levels"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Tuning *Tuning
	Level  *LevelConfig
}

// LevelConfig is the raw text grid of a level file
type LevelConfig struct {
	Name string
	Rows []string
}

// Loader loads game configuration from YAML and level text files using fs.FS interface
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

// NewEmbeddedLoader creates a loader over the built-in tuning and levels
func NewEmbeddedLoader() *Loader {
	sub, err := fs.Sub(embedded, "configs")
	if err != nil {
		panic(err)
	}
	return NewFSLoader(sub, "embedded")
}

// Default returns the built-in tuning
func Default() *Tuning {
	t, err := NewEmbeddedLoader().LoadTuning()
	if err != nil {
		panic(fmt.Sprintf("embedded tuning is broken: %v", err))
	}
	return t
}

// BasePath returns the directory (or label) the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads tuning.yaml
func (l *Loader) LoadTuning() (*Tuning, error) {
	data, err := fs.ReadFile(l.fsys, tuningFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", tuningFile, err)
	}

	var cfg Tuning
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tuningFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", tuningFile, err)
	}

	return &cfg, nil
}

// LoadLevel loads levels/<name>.txt
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := LevelPath(name)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}
	return ParseLevel(name, data), nil
}

// LevelPath returns the level file path relative to the loader root
func LevelPath(name string) string {
	return path.Join(levelDir, name+".txt")
}

// ParseLevel splits level text into rows. Trailing blank lines are dropped.
func ParseLevel(name string, data []byte) *LevelConfig {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	rows := strings.Split(text, "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return &LevelConfig{Name: name, Rows: rows}
}

// LoadAll loads the tuning and the named level
func (l *Loader) LoadAll(level string) (*GameConfig, error) {
	tuning, err := l.LoadTuning()
	if err != nil {
		return nil, err
	}

	lvl, err := l.LoadLevel(level)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Tuning: tuning,
		Level:  lvl,
	}, nil
}
