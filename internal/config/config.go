package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/focusnest/internal/constants"
	"github.com/Paintersrp/focusnest/internal/pathutil"
)

type DatabaseConfig struct {
	Driver string `yaml:"driver" json:"driver"`
	DSN    string `yaml:"dsn"    json:"dsn"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
	Mode string `yaml:"mode" json:"mode"`
}

type ResurfaceConfig struct {
	StaleAfter   time.Duration `yaml:"stale_after"   json:"stale_after"`
	RecentWithin time.Duration `yaml:"recent_within" json:"recent_within"`
	DailyCount   int           `yaml:"daily_count"   json:"daily_count"`
	ContextCount int           `yaml:"context_count" json:"context_count"`
	OrphanCount  int           `yaml:"orphan_count"  json:"orphan_count"`
}

type GraphConfig struct {
	CentralLimit int `yaml:"central_limit" json:"central_limit"`
	SuggestLimit int `yaml:"suggest_limit" json:"suggest_limit"`
}

type SearchConfig struct {
	Limit int `yaml:"limit" json:"limit"`
}

type ExportConfig struct {
	Bucket  string `yaml:"bucket"  json:"bucket"`
	Prefix  string `yaml:"prefix"  json:"prefix"`
	Region  string `yaml:"region"  json:"region"`
	Profile string `yaml:"profile" json:"profile"`
}

type Config struct {
	Database  DatabaseConfig  `yaml:"database"  json:"database"`
	Server    ServerConfig    `yaml:"server"    json:"server"`
	Resurface ResurfaceConfig `yaml:"resurface" json:"resurface"`
	Graph     GraphConfig     `yaml:"graph"     json:"graph"`
	Search    SearchConfig    `yaml:"search"    json:"search"`
	Export    ExportConfig    `yaml:"export"    json:"export"`

	home string
}

const (
	defaultDriver       = "sqlite"
	defaultAddr         = "127.0.0.1:8000"
	defaultMode         = "release"
	defaultDailyCount   = 5
	defaultContextCount = 3
	defaultOrphanCount  = 3
	defaultCentralLimit = 10
	defaultSuggestLimit = 5
	defaultSearchLimit  = 20
	defaultExportPrefix = "focusnest"
)

var ValidDrivers = map[string]bool{
	"sqlite":   true,
	"pgx":      true,
	"postgres": true,
}

var ValidModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

// Default returns a configuration rooted at home with every default applied.
func Default(home string) *Config {
	cfg := &Config{home: home}
	cfg.ensureDefaults()
	return cfg
}

func (cfg *Config) ensureDefaults() {
	if strings.TrimSpace(cfg.Database.Driver) == "" {
		cfg.Database.Driver = defaultDriver
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" && cfg.Database.Driver == defaultDriver {
		cfg.Database.DSN = filepath.Join(cfg.home, constants.ConfigDir, constants.DatabaseFile)
	}
	cfg.Database.DSN = pathutil.ExpandHome(cfg.Database.DSN, cfg.home)
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		cfg.Server.Addr = defaultAddr
	}
	if strings.TrimSpace(cfg.Server.Mode) == "" {
		cfg.Server.Mode = defaultMode
	}
	if cfg.Resurface.StaleAfter == 0 {
		cfg.Resurface.StaleAfter = 7 * 24 * time.Hour
	}
	if cfg.Resurface.RecentWithin == 0 {
		cfg.Resurface.RecentWithin = 3 * 24 * time.Hour
	}
	if cfg.Resurface.DailyCount == 0 {
		cfg.Resurface.DailyCount = defaultDailyCount
	}
	if cfg.Resurface.ContextCount == 0 {
		cfg.Resurface.ContextCount = defaultContextCount
	}
	if cfg.Resurface.OrphanCount == 0 {
		cfg.Resurface.OrphanCount = defaultOrphanCount
	}
	if cfg.Graph.CentralLimit == 0 {
		cfg.Graph.CentralLimit = defaultCentralLimit
	}
	if cfg.Graph.SuggestLimit == 0 {
		cfg.Graph.SuggestLimit = defaultSuggestLimit
	}
	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = defaultSearchLimit
	}
	if strings.TrimSpace(cfg.Export.Prefix) == "" {
		cfg.Export.Prefix = defaultExportPrefix
	}
}

// Load reads the config file under home. A missing or empty file yields the
// defaults.
func Load(home string) (*Config, error) {
	cfg := &Config{home: home}

	data, err := os.ReadFile(GetConfigPath(home))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	case len(strings.TrimSpace(string(data))) > 0:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	cfg.ensureDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

// Validate reports the first invalid setting wrapped in ErrInvalidConfig.
func (cfg *Config) Validate() error {
	if !ValidDrivers[cfg.Database.Driver] {
		return invalid("database.driver", "unsupported driver %q", cfg.Database.Driver)
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return invalid("database.dsn", "a data source is required for driver %q", cfg.Database.Driver)
	}
	if !ValidModes[cfg.Server.Mode] {
		return invalid("server.mode", "unknown mode %q", cfg.Server.Mode)
	}
	if cfg.Resurface.StaleAfter < 0 || cfg.Resurface.RecentWithin < 0 {
		return invalid("resurface", "durations must be positive")
	}

	counts := map[string]int{
		"resurface.daily_count":   cfg.Resurface.DailyCount,
		"resurface.context_count": cfg.Resurface.ContextCount,
		"resurface.orphan_count":  cfg.Resurface.OrphanCount,
		"graph.central_limit":     cfg.Graph.CentralLimit,
		"graph.suggest_limit":     cfg.Graph.SuggestLimit,
		"search.limit":            cfg.Search.Limit,
	}
	for key, value := range counts {
		if value < 0 {
			return invalid(key, "must not be negative, got %d", value)
		}
	}
	return nil
}

// syncViper registers the file values as viper defaults so that bound
// command flags take precedence over them.
func (cfg *Config) syncViper() {
	viper.SetDefault("database.driver", cfg.Database.Driver)
	viper.SetDefault("database.dsn", cfg.Database.DSN)
	viper.SetDefault("server.addr", cfg.Server.Addr)
	viper.SetDefault("server.mode", cfg.Server.Mode)
}

// ApplyOverrides copies flag-bound viper values back into cfg.
func (cfg *Config) ApplyOverrides() error {
	if driver := viper.GetString("database.driver"); driver != "" {
		cfg.Database.Driver = driver
	}
	if dsn := viper.GetString("database.dsn"); dsn != "" {
		cfg.Database.DSN = pathutil.ExpandHome(dsn, cfg.home)
	}
	if addr := viper.GetString("server.addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if mode := viper.GetString("server.mode"); mode != "" {
		cfg.Server.Mode = mode
	}
	return cfg.Validate()
}

func (cfg *Config) GetConfigPath() string {
	return GetConfigPath(cfg.home)
}

// Save writes the config file, creating its directory when needed.
func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	cfg.syncViper()
	return os.WriteFile(configPath, data, 0o644)
}
