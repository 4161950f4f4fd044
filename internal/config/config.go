// Package config loads rcalc settings from an ini file and environment
// overrides, and sets up logging.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// DefaultFile is the settings file looked up in the working directory
const DefaultFile = "rcalc.ini"

// Environment variables overriding the ini file
const (
	EnvLogLevel  = "RCALC_LOG_LEVEL"
	EnvLogFormat = "RCALC_LOG_FORMAT"
	EnvAddr      = "RCALC_ADDR"
	EnvRate      = "RCALC_RATE"
	EnvBurst     = "RCALC_BURST"
	EnvAuthor    = "RCALC_AUTHOR"
	EnvProject   = "RCALC_PROJECT"
)

type LogConfig struct {
	Level  string
	Format string // text or json
}

type ServerConfig struct {
	Addr string
	// Requests per second and burst allowed per client address
	Rate  float64
	Burst int
	// Seconds allowed for in-flight requests on shutdown
	ShutdownTimeout int
}

type ReportConfig struct {
	Author  string
	Project string
}

type Config struct {
	Log    LogConfig
	Server ServerConfig
	Report ReportConfig
}

// Default returns the settings used when no file is present
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{Addr: ":8080", Rate: 2, Burst: 5, ShutdownTimeout: 5},
	}
}

// Load reads path (a missing file yields the defaults), then applies a
// .env file and the process environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := ini.Load(path)
		switch {
		case err == nil:
			loadCfg(file, &cfg)
		case errors.Is(err, fs.ErrNotExist):
			log.WithField("file", path).Debug("no settings file, using defaults")
		default:
			return cfg, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func loadCfg(file *ini.File, cfg *Config) {
	cfg.Log = LogConfig{
		Level:  file.Section("log").Key("level").MustString(cfg.Log.Level),
		Format: file.Section("log").Key("format").MustString(cfg.Log.Format),
	}
	cfg.Server = ServerConfig{
		Addr:            file.Section("server").Key("addr").MustString(cfg.Server.Addr),
		Rate:            file.Section("server").Key("rate").MustFloat64(cfg.Server.Rate),
		Burst:           file.Section("server").Key("burst").MustInt(cfg.Server.Burst),
		ShutdownTimeout: file.Section("server").Key("shutdown_timeout").MustInt(cfg.Server.ShutdownTimeout),
	}
	cfg.Report = ReportConfig{
		Author:  file.Section("report").Key("author").MustString(cfg.Report.Author),
		Project: file.Section("report").Key("project").MustString(cfg.Report.Project),
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v, err := strconv.ParseFloat(os.Getenv(EnvRate), 64); err == nil && v > 0 {
		cfg.Server.Rate = v
	}
	if v, err := strconv.Atoi(os.Getenv(EnvBurst)); err == nil && v > 0 {
		cfg.Server.Burst = v
	}
	if v := os.Getenv(EnvAuthor); v != "" {
		cfg.Report.Author = v
	}
	if v := os.Getenv(EnvProject); v != "" {
		cfg.Report.Project = v
	}
}

// SetupLogging applies the level and formatter to the standard logger.
// An unknown level falls back to info.
func SetupLogging(c LogConfig) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		log.WithField("level", c.Level).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(c.Format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stderr)
}
