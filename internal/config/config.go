// Package config reads conf/app.ini and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

type Server struct {
	Addr            string
	StaticDir       string
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

type Limits struct {
	Rate  float64
	Burst int
}

type Catalog struct {
	Source string
	Path   string
}

type Config struct {
	Server   Server
	Limits   Limits
	Catalog  Catalog
	LogLevel string
}

// Load reads .env (if present) into the environment, then the ini file at
// path (if present), then applies APP_ADDR, LOG_LEVEL, CATALOG_SOURCE,
// CATALOG_PATH and DATABASE_URL.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	file := ini.Empty()
	if _, err := os.Stat(path); err == nil {
		if file, err = ini.Load(path); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	cfg := loadCfg(file)
	applyEnv(&cfg)

	if cfg.Limits.Rate <= 0 || cfg.Limits.Burst <= 0 {
		return Config{}, fmt.Errorf("limits: rate and burst must be positive")
	}
	return cfg, nil
}

func loadCfg(file *ini.File) Config {
	server := file.Section("server")
	limits := file.Section("limits")
	catalog := file.Section("catalog")
	return Config{
		Server: Server{
			Addr:            server.Key("addr").MustString(":8080"),
			StaticDir:       server.Key("static_dir").MustString("./static"),
			CORSOrigin:      server.Key("cors_origin").MustString("*"),
			ShutdownTimeout: server.Key("shutdown_timeout").MustDuration(5 * time.Second),
		},
		Limits: Limits{
			Rate:  limits.Key("rate").MustFloat64(5),
			Burst: limits.Key("burst").MustInt(10),
		},
		Catalog: Catalog{
			Source: catalog.Key("source").MustString("embedded"),
			Path:   catalog.Key("path").String(),
		},
		LogLevel: file.Section("log").Key("level").MustString("info"),
	}
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Server.Addr, "APP_ADDR")
	set(&cfg.LogLevel, "LOG_LEVEL")
	set(&cfg.Catalog.Source, "CATALOG_SOURCE")
	set(&cfg.Catalog.Path, "CATALOG_PATH")
	if cfg.Catalog.Source == "postgres" && cfg.Catalog.Path == "" {
		cfg.Catalog.Path = os.Getenv("DATABASE_URL")
	}
}
