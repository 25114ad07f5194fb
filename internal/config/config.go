// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads application configuration from the environment and
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-mjisho/internal/logger"
)

// PathEnv is the environment variable holding the YAML config file path.
const PathEnv = "MJISHO_CONFIG"

// Config is the application configuration.
type Config struct {
	// DataDir is the directory holding the dictionary documents. If empty
	// the per-OS default locations are searched.
	DataDir string `yaml:"data_dir" env:"MJISHO_DATA_DIR"`

	// DictName is the base name of the JMdict document.
	DictName string `yaml:"dict_name" env:"MJISHO_DICT_NAME" env-default:"dict"`

	// IdiomName is the base name of the idiom document.
	IdiomName string `yaml:"idiom_name" env:"MJISHO_IDIOM_NAME" env-default:"kanyouku"`

	Log LogConfig `yaml:"log"`
}

// LogConfig is logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"  env:"MJISHO_LOG_LEVEL"  env-default:"warn"`
	Pretty bool   `yaml:"pretty" env:"MJISHO_LOG_PRETTY" env-default:"true"`
}

// Load reads configuration from environment variables and, if MJISHO_CONFIG
// is set, the YAML file it names. Environment variables take priority over
// the file.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(PathEnv))
}

// LoadFile reads configuration from the YAML file at path and environment
// variables. If path is empty only environment variables and defaults are
// used.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	var errs []error
	if c.DictName == "" {
		errs = append(errs, errors.New("dict_name is required"))
	}
	if c.IdiomName == "" {
		errs = append(errs, errors.New("idiom_name is required"))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Logger returns the logger configuration.
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:  c.Log.Level,
		Pretty: c.Log.Pretty,
	}
}
