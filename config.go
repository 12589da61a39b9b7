package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	defaultFPS  = 30
	defaultAddr = ":8080"
)

// DefaultConfig returns a config for a 300x200 target with no overrides.
func DefaultConfig() Config {
	return Config{
		Target: Target{Width: 300, Height: 200},
		FPS:    defaultFPS,
		Addr:   defaultAddr,
	}
}

// LoadConfig reads a config file on top of DefaultConfig. The format follows
// the extension: .json, .toml, .yaml or .yml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file '%s': %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format '%s' (want .json, .toml, .yaml)", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("error parsing config file '%s': %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides the config from TRACE_* environment variables.
func applyEnv(cfg *Config, getenv func(string) string) {
	if gap := getenv("TRACE_GAP"); gap != "" {
		cfg.Options.GapPoint = parseGapFlag(gap)
	}
	if color := getenv("TRACE_COLOR"); color != "" {
		cfg.Options.StrokeColor = &color
	}
	if addr := getenv("TRACE_ADDR"); addr != "" {
		cfg.Addr = addr
	}
}

// parseGapFlag keeps numeric strings numeric so "42" means 42%.
func parseGapFlag(value string) any {
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

var validate = validator.New()

// validateConfig checks the config and the options it resolves to, and
// reports every failing field.
func validateConfig(cfg Config, opts Options) error {
	var problems []string
	for _, v := range []any{cfg, opts} {
		err := validate.Struct(v)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		for _, fe := range verrs {
			problems = append(problems, fmt.Sprintf("%s: failed '%s' (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
