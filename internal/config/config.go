/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads the picocodes server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the settings of the picocodes lookup server.
type Config struct {
	// Addr is the listen address of the HTTP lookup server.
	Addr string

	// LogLevel is the minimum slog level.
	LogLevel slog.Level

	// LogFormat is "json" or "text".
	LogFormat string

	// ReadTimeout and WriteTimeout bound a single HTTP exchange.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads PICOCODES_* variables, applying defaults for unset ones.
// Set but malformed values are errors.
func Load() (Config, error) {
	cfg := Config{
		Addr:      envStr("PICOCODES_ADDR", ":8080"),
		LogFormat: strings.ToLower(envStr("PICOCODES_LOG_FORMAT", "json")),
	}

	var err error
	if err = cfg.LogLevel.UnmarshalText([]byte(envStr("PICOCODES_LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("config: PICOCODES_LOG_LEVEL: %w", err)
	}
	if cfg.ReadTimeout, err = envDuration("PICOCODES_READ_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = envDuration("PICOCODES_WRITE_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("config: PICOCODES_ADDR must not be empty")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("config: PICOCODES_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("config: timeouts must be positive")
	}
	return nil
}

// Logger builds the slog logger described by c, writing to stdout.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
