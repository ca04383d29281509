package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/cantieri/internal/util"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Values come from environment variables and
// are overridden by an optional YAML file.
type Config struct {
	DataDir      string        `yaml:"data_dir"`
	DatabasePath string        `yaml:"database_path"`
	ReportsDir   string        `yaml:"reports_dir"`
	LogPath      string        `yaml:"log_path"`
	Theme        string        `yaml:"theme"`
	SessionOnly  bool          `yaml:"session_only"`
	SeedDemo     bool          `yaml:"seed_demo"`
	DBTimeout    time.Duration `yaml:"db_timeout"`
}

// Load builds the configuration. path may be empty. The database and log
// paths default to files under the final data_dir.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DataDir:      getEnv("CANTIERI_DATA_DIR", util.DataDir(AppName)),
		DatabasePath: getEnv("CANTIERI_DB_PATH", ""),
		ReportsDir:   getEnv("CANTIERI_REPORTS_DIR", util.ReportsDir(AppName)),
		LogPath:      getEnv("CANTIERI_LOG_PATH", ""),
		Theme:        getEnv("CANTIERI_THEME", "default"),
		SessionOnly:  getEnvBool("CANTIERI_SESSION_ONLY", false),
		SeedDemo:     getEnvBool("CANTIERI_SEED_DEMO", true),
		DBTimeout:    5 * time.Second,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, DBFileName)
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.DataDir, LogFileName)
	}
	return cfg, nil
}

// Validate reports settings the application cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if !c.SessionOnly && strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("database_path is required unless session_only is set")
	}
	if strings.TrimSpace(c.ReportsDir) == "" {
		return errors.New("reports_dir is required")
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("db_timeout must be positive, got %s", c.DBTimeout)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
