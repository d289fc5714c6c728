package config

import (
	"fmt"
	"os"
	"strconv"
)

// envVarPrefix is the prefix for all livemd environment variables.
const envVarPrefix = "LIVEMD_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config
// fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"COLOR":     {field: "color", typ: envTypeString},
	"THEME":     {field: "theme", typ: envTypeString},
	"TABWIDTH":  {field: "tabwidth", typ: envTypeInt},
	"LOG_LEVEL": {field: "log_level", typ: envTypeString},
	"HIGHLIGHT": {field: "highlight", typ: envTypeBool},
	"MATH":      {field: "math", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with LIVEMD_ (e.g. LIVEMD_COLOR=never).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *Config, field, value string) error {
	switch field {
	case "color":
		cfg.Color = value
	case "theme":
		cfg.Theme = value
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *Config, field string, value bool) error {
	switch field {
	case "highlight":
		cfg.Highlight = &value
	case "math":
		cfg.Math = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *Config, field string, value int) error {
	switch field {
	case "tabwidth":
		cfg.TabWidth = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns the supported environment variables with their
// descriptions, for help output.
func ListEnvVars() map[string]string {
	return map[string]string{
		"LIVEMD_COLOR":     "colorize output: auto, always, or never",
		"LIVEMD_THEME":     "preview palette: dark or light",
		"LIVEMD_TABWIDTH":  "tab expansion width (1-16)",
		"LIVEMD_LOG_LEVEL": "log level: debug, info, warn, or error",
		"LIVEMD_HIGHLIGHT": "enable code highlighting: true or false",
		"LIVEMD_MATH":      "enable math recognition: true or false",
	}
}
