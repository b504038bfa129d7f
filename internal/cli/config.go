package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mwarzecha/weft/pkg/assemble"
	"github.com/mwarzecha/weft/pkg/cache"
)

// Config holds settings loadable from a weft.toml file. Command-line flags
// override config values; config values override built-in defaults.
type Config struct {
	K          int         `toml:"k"`
	MaxContigs int         `toml:"max_contigs"`
	Cache      CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	// Backend is one of "file" (default), "redis", or "none".
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`
	// Addr is the Redis address, e.g. "localhost:6379".
	Addr string `toml:"addr"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		K:          assemble.DefaultK,
		MaxContigs: assemble.DefaultMaxContigs,
		Cache:      CacheConfig{Backend: "file"},
	}
}

// loadConfig reads a TOML config file. With an empty path it looks for
// weft.toml in the working directory and returns defaults if absent;
// an explicit path that doesn't exist is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = "weft.toml"
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// cacheDir returns the default file cache directory under the user cache
// root (e.g. ~/.cache/weft).
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "weft"), nil
}

// newCache constructs the cache backend described by cfg.
// disabled forces a NullCache regardless of configuration (--no-cache).
func newCache(cfg CacheConfig, disabled bool) (cache.Cache, error) {
	if disabled || cfg.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case "redis":
		addr := cfg.Addr
		if addr == "" {
			addr = "localhost:6379"
		}
		return cache.NewRedisCache(addr)
	case "", "file":
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (file, redis, none)", cfg.Backend)
	}
}
