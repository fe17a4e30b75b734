package main

import (
	"fmt"
	"os"
	"time"

	"minijudge/internal/judge/profile"
	"minijudge/internal/judge/runner"
	"minijudge/pkg/utils/logger"

	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr        = "0.0.0.0:8080"
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultWorkRoot        = "work"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// JudgeConfig holds execution runner settings.
type JudgeConfig struct {
	WorkRoot       string        `yaml:"workRoot"`
	RunTimeout     time.Duration `yaml:"runTimeout"`
	CompileTimeout time.Duration `yaml:"compileTimeout"`
	BatchWorkers   int           `yaml:"batchWorkers"`
	OutputMaxBytes int64         `yaml:"outputMaxBytes"`
}

// AppConfig is the root config structure.
type AppConfig struct {
	Server    ServerConfig           `yaml:"server"`
	Logger    logger.Config          `yaml:"logger"`
	Judge     JudgeConfig            `yaml:"judge"`
	Languages []profile.LanguageSpec `yaml:"languages"`
}

func loadAppConfig(path string, isDefaultPath bool) (AppConfig, error) {
	cfg := AppConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		// The default config path is optional; an explicit one is not.
		if os.IsNotExist(err) && isDefaultPath {
			applyDefaults(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file failed: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file failed: %w", err)
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultHTTPAddr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = defaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Judge.WorkRoot == "" {
		cfg.Judge.WorkRoot = defaultWorkRoot
	}
}

func (c JudgeConfig) toRunnerConfig() runner.Config {
	return runner.Config{
		WorkRoot:       c.WorkRoot,
		RunTimeout:     c.RunTimeout,
		CompileTimeout: c.CompileTimeout,
		BatchWorkers:   c.BatchWorkers,
	}
}
