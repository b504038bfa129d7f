package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwarzecha/weft/pkg/assemble"
	"github.com/mwarzecha/weft/pkg/cache"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Run in an empty directory so no weft.toml is found.
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.K != assemble.DefaultK {
		t.Errorf("K = %d, want %d", cfg.K, assemble.DefaultK)
	}
	if cfg.MaxContigs != assemble.DefaultMaxContigs {
		t.Errorf("MaxContigs = %d, want %d", cfg.MaxContigs, assemble.DefaultMaxContigs)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
}

func TestLoadConfigExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weft.toml")
	content := `k = 31
max_contigs = 5

[cache]
backend = "none"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.K != 31 {
		t.Errorf("K = %d, want 31", cfg.K)
	}
	if cfg.MaxContigs != 5 {
		t.Errorf("MaxContigs = %d, want 5", cfg.MaxContigs)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weft.toml")
	if err := os.WriteFile(path, []byte("k = 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.K != 15 {
		t.Errorf("K = %d, want 15", cfg.K)
	}
	if cfg.MaxContigs != assemble.DefaultMaxContigs {
		t.Errorf("MaxContigs = %d, want default %d", cfg.MaxContigs, assemble.DefaultMaxContigs)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing config path must be an error")
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c, err := newCache(CacheConfig{Backend: "file"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("disabled cache = %T, want *cache.NullCache", c)
	}
}

func TestNewCacheFile(t *testing.T) {
	c, err := newCache(CacheConfig{Backend: "file", Dir: t.TempDir()}, false)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("cache = %T, want *cache.FileCache", c)
	}
}

func TestNewCacheUnknownBackend(t *testing.T) {
	if _, err := newCache(CacheConfig{Backend: "memcached"}, false); err == nil {
		t.Error("unknown backend must be an error")
	}
}
