// Package config loads library settings from a file and the environment.
//
// Settings come from, in increasing priority: built-in defaults, an optional
// YAML or TOML file, an optional dotenv file, and MELIB_* environment
// variables (MELIB_CACHE_DIR, MELIB_LOG_LEVEL, ...).
//
//	cfg, err := config.Load("melib.yaml")
//	if err != nil {
//	    return err
//	}
//	loader, err := cfg.Loader(cfg.Logger(os.Stderr))
//
// A file looks like:
//
//	cache_dir: ~/.cache/melib
//	cache_ttl: 72h
//	log_level: debug
//	layout: workbook
//	charts:
//	  - charts/gears.toml
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/matzehuels/melib/pkg/cache"
	"github.com/matzehuels/melib/pkg/chart"
	"github.com/matzehuels/melib/pkg/errors"
	"github.com/matzehuels/melib/pkg/lookup"
	"github.com/matzehuels/melib/pkg/workbook"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MELIB"

// Layout names accepted by the layout key.
const (
	LayoutDefault  = "default"
	LayoutWorkbook = "workbook"
)

const (
	keyCacheDir = "cache_dir"
	keyCacheTTL = "cache_ttl"
	keyLogLevel = "log_level"
	keyLayout   = "layout"
	keyCharts   = "charts"
)

// Config holds library settings.
type Config struct {
	// CacheDir is the FileCache directory. Empty disables caching.
	CacheDir string `mapstructure:"cache_dir"`

	// CacheTTL is how long parsed workbooks stay cached.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LayoutName selects lookup.DefaultLayout or lookup.WorkbookLayout.
	LayoutName string `mapstructure:"layout"`

	// Charts lists extra chart catalog files merged over the builtin one.
	Charts []string `mapstructure:"charts"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		CacheDir:   defaultCacheDir(),
		CacheTTL:   workbook.DefaultTTL,
		LogLevel:   "info",
		LayoutName: LayoutDefault,
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "melib")
}

// Load reads settings from path and the environment. An empty path skips
// the file; otherwise its extension must be .yaml, .yml, .toml or .json.
func Load(path string) (Config, error) {
	return LoadWithEnvFile(path, "")
}

// LoadWithEnvFile is like Load, and also reads MELIB_* variables from a
// dotenv file. Variables already set in the process environment win over the
// file. An empty envFile skips it.
func LoadWithEnvFile(path, envFile string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault(keyCacheDir, def.CacheDir)
	v.SetDefault(keyCacheTTL, def.CacheTTL)
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyLayout, def.LayoutName)
	v.SetDefault(keyCharts, []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if path != "" {
		if err := errors.ValidatePath(path); err != nil {
			return Config{}, err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml", ".toml", ".json":
		default:
			return Config{}, errors.New(errors.ErrCodeUnsupported, "unsupported config extension %q", ext)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
		}
	}

	if envFile != "" {
		if err := applyEnvFile(v, envFile); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvFile(v *viper.Viper, envFile string) error {
	if err := errors.ValidatePath(envFile); err != nil {
		return err
	}
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return errors.New(errors.ErrCodeFileNotFound, "env file %s does not exist", envFile)
	}
	vars, err := godotenv.Read(envFile)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "read env file %s", envFile)
	}
	prefix := EnvPrefix + "_"
	for name, value := range vars {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		v.Set(strings.ToLower(strings.TrimPrefix(name, prefix)), value)
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache_ttl must be >= 0, got %s", c.CacheTTL)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "log_level %q", c.LogLevel)
	}
	switch c.LayoutName {
	case LayoutDefault, LayoutWorkbook:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "layout must be %q or %q, got %q",
			LayoutDefault, LayoutWorkbook, c.LayoutName)
	}
	for _, p := range c.Charts {
		if err := errors.ValidatePath(p); err != nil {
			return err
		}
	}
	return nil
}

// Layout returns the table layout selected by LayoutName.
func (c Config) Layout() lookup.Layout {
	if c.LayoutName == LayoutWorkbook {
		return lookup.WorkbookLayout
	}
	return lookup.DefaultLayout
}

// Level returns the parsed log level, or info if LogLevel is invalid.
func (c Config) Level() log.Level {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// Cache opens the configured cache: a FileCache in CacheDir, or a NullCache
// when CacheDir is empty.
func (c Config) Cache() (cache.Cache, error) {
	if c.CacheDir == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(c.CacheDir)
}

// Loader returns a workbook loader over the configured cache.
func (c Config) Loader(logger *log.Logger) (*workbook.Loader, error) {
	ch, err := c.Cache()
	if err != nil {
		return nil, err
	}
	l := workbook.NewLoader(ch, nil, logger)
	l.TTL = c.CacheTTL
	return l, nil
}

// Catalog returns the builtin chart catalog with every file in Charts
// merged over it, in order.
func (c Config) Catalog() (*chart.Catalog, error) {
	cat, err := chart.Builtin()
	if err != nil {
		return nil, err
	}
	for _, p := range c.Charts {
		extra, err := chart.LoadFile(p)
		if err != nil {
			return nil, err
		}
		cat.Merge(extra)
	}
	return cat, nil
}
