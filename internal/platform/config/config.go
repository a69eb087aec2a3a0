package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is read from FIELDREPORT_* environment variables, optionally seeded
// from a .env file in the working directory.
type Config struct {
	DataDir      string `env:"DATA_DIR"`
	StateFile    string `env:"STATE_FILE" envDefault:"state.json"`
	DBFile       string `env:"DB_FILE" envDefault:"fieldreport.db"`
	ReportsDir   string `env:"REPORTS_DIR" envDefault:"reports"`
	MirrorURL    string `env:"MIRROR_URL"`
	MirrorToken  string `env:"MIRROR_TOKEN"`
	AutoSync     bool   `env:"AUTO_SYNC" envDefault:"false"`
	SyncSchedule string `env:"SYNC_SCHEDULE" envDefault:"@every 15m"`
	Env          string `env:"ENV" envDefault:"prod"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	Location     string `env:"LOCATION" envDefault:"Local"`

	StatePath   string
	DBPath      string
	ReportsPath string
}

// Load parses the environment and resolves file locations. A non-empty
// dataDir overrides FIELDREPORT_DATA_DIR.
func Load(dataDir string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "FIELDREPORT_"}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if strings.TrimSpace(dataDir) != "" {
		cfg.DataDir = dataDir
	}
	return cfg.resolve()
}

// New builds a Config rooted at dataDir using defaults only.
func New(dataDir string) (Config, error) {
	cfg := Config{
		DataDir:      dataDir,
		StateFile:    "state.json",
		DBFile:       "fieldreport.db",
		ReportsDir:   "reports",
		SyncSchedule: "@every 15m",
		Env:          "prod",
		LogLevel:     "info",
		LogFormat:    "text",
		Location:     "Local",
	}
	return cfg.resolve()
}

func (c Config) resolve() (Config, error) {
	if strings.TrimSpace(c.DataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	c.StatePath = joinUnlessAbs(c.DataDir, c.StateFile)
	c.DBPath = joinUnlessAbs(c.DataDir, c.DBFile)
	c.ReportsPath = joinUnlessAbs(c.DataDir, c.ReportsDir)
	if _, err := c.TimeLocation(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// TimeLocation resolves the zone used to decide calendar days.
func (c Config) TimeLocation() (*time.Location, error) {
	if c.Location == "" || c.Location == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", c.Location, err)
	}
	return loc, nil
}

func joinUnlessAbs(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
