// Package config provides the configuration loader for cacheprobe.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/cacheprobe/internal/adapters/actions"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/cacheprobe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only configuration file version understood.
const SupportedVersion = "1"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the defaults overlaid with the nearest cacheprobe.yaml found
// from cwd upwards and with the runner-provided cache service settings.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	base := cwd
	if abs, err := filepath.Abs(cwd); err == nil {
		base = abs
	}

	configPath, found := findConfiguration(cwd)
	if found {
		var file Configfile
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return nil, zerr.With(err, "file", configPath)
		}
		if file.Version != "" && file.Version != SupportedVersion {
			l.Logger.Warn(fmt.Sprintf("unsupported version %q in %s, reading it as version %s",
				file.Version, domain.ConfigFileName, SupportedVersion))
		}
		applyFile(&cfg, &file)
		base = filepath.Dir(configPath)
	}

	if cfg.Local.Dir != "" && !filepath.IsAbs(cfg.Local.Dir) {
		cfg.Local.Dir = filepath.Join(base, cfg.Local.Dir)
	}
	if cfg.Actions.URL == "" {
		cfg.Actions.URL = os.Getenv(actions.CacheURLEnv)
	}
	if cfg.Actions.Token == "" {
		cfg.Actions.Token = os.Getenv(actions.RuntimeTokenEnv)
	}

	return &cfg, nil
}

// Validate checks the backend selection and the settings of that backend only.
func (l *Loader) Validate(cfg *domain.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "backend", string(cfg.Backend))
	}

	var section any
	switch cfg.Backend {
	case domain.BackendActions:
		section = cfg.Actions
	case domain.BackendLocal:
		section = cfg.Local
	case domain.BackendS3:
		section = cfg.S3
	case domain.BackendRedis:
		section = cfg.Redis
	case domain.BackendNATS:
		section = cfg.NATS
	}

	if err := validate.Struct(section); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "backend", string(cfg.Backend))
	}
	return nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	if abs, err := filepath.Abs(cwd); err == nil {
		currentDir = abs
	}
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

func applyFile(cfg *domain.Config, file *Configfile) {
	if file.Backend != "" {
		cfg.Backend = domain.Backend(file.Backend)
	}

	setIfNotEmpty(&cfg.Actions.URL, file.Actions.URL)
	setIfNotEmpty(&cfg.Actions.Token, file.Actions.Token)
	if file.Actions.Compression != nil {
		cfg.Actions.Compression = *file.Actions.Compression
	}
	cfg.Actions.CrossOS = file.Actions.CrossOS

	setIfNotEmpty(&cfg.Local.Dir, file.Local.Dir)

	setIfNotEmpty(&cfg.S3.Bucket, file.S3.Bucket)
	setIfNotEmpty(&cfg.S3.Prefix, file.S3.Prefix)
	setIfNotEmpty(&cfg.S3.Region, file.S3.Region)
	setIfNotEmpty(&cfg.S3.Endpoint, file.S3.Endpoint)

	setIfNotEmpty(&cfg.Redis.Addr, file.Redis.Addr)
	setIfNotEmpty(&cfg.Redis.Password, file.Redis.Password)
	if file.Redis.DB != nil {
		cfg.Redis.DB = *file.Redis.DB
	}
	if file.Redis.Prefix != nil {
		cfg.Redis.Prefix = *file.Redis.Prefix
	}

	setIfNotEmpty(&cfg.NATS.URL, file.NATS.URL)
	setIfNotEmpty(&cfg.NATS.Bucket, file.NATS.Bucket)
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
