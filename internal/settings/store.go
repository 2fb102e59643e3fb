// Package settings persists user preferences in a TOML file, with
// environment variable overrides.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appDir       = "renameme"
	fileName     = "settings.toml"
	configEnvVar = "RENAMEME_CONFIG"
)

// Config locates the settings file and names the environment prefix
// used for overrides (PREFIX_KEY).
type Config struct {
	Path      string
	EnvPrefix string
}

// DefaultConfig honours RENAMEME_CONFIG, otherwise uses the user's
// config directory.
func DefaultConfig() Config {
	cfg := Config{EnvPrefix: "RENAMEME"}
	if path := os.Getenv(configEnvVar); path != "" {
		cfg.Path = path
		return cfg
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	cfg.Path = filepath.Join(dir, appDir, fileName)
	return cfg
}

type Store struct {
	cfg Config
}

func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) Path() string {
	return s.cfg.Path
}

// Snapshot separates what the settings file holds from what the
// environment overrides for this run only.
type Snapshot struct {
	File map[string]any
	Env  map[string]any
}

// Merged returns File with Env applied on top.
func (s Snapshot) Merged() map[string]any {
	out := make(map[string]any, len(s.File)+len(s.Env))
	for k, v := range s.File {
		out[k] = v
	}
	for k, v := range s.Env {
		out[k] = v
	}
	return out
}

// Load reads every setting in the file and any of keys set in the
// environment. A missing file yields an empty File map.
func (s *Store) Load(keys ...string) (Snapshot, error) {
	file, err := s.loadFile()
	if err != nil {
		return Snapshot{}, err
	}
	env, err := s.loadEnv(keys)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{File: file, Env: env}, nil
}

func (s *Store) loadFile() (map[string]any, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if s.cfg.Path != "" {
		_, err := os.Stat(s.cfg.Path)
		switch {
		case err == nil:
			v.SetConfigFile(s.cfg.Path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read settings %s: %w", s.cfg.Path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("stat settings %s: %w", s.cfg.Path, err)
		}
	}
	return v.AllSettings(), nil
}

func (s *Store) loadEnv(keys []string) (map[string]any, error) {
	v := viper.New()
	if s.cfg.EnvPrefix == "" {
		return v.AllSettings(), nil
	}

	v.SetEnvPrefix(s.cfg.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env for %q: %w", key, err)
		}
	}
	return v.AllSettings(), nil
}

// Save writes values to the settings file, creating its directory.
func (s *Store) Save(values map[string]any) error {
	if s.cfg.Path == "" {
		return errors.New("settings path not configured")
	}
	if err := os.MkdirAll(filepath.Dir(s.cfg.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	for key, value := range values {
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(s.cfg.Path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
