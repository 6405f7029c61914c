package config

import (
	"log"
	"os"

	"github.com/NateDevIO/MacroMeter/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFile = "macrometer.yaml"

// Config holds process-wide settings resolved at startup. The USDA API key
// is deliberately not part of it; see APIKey.
type Config struct {
	Port         string
	DataDir      string
	DefaultGoals models.MacroSet
}

type fileConfig struct {
	DataDir string           `yaml:"data_dir"`
	Goals   *models.MacroSet `yaml:"goals"`
}

// Load reads .env (best-effort), then the optional macrometer.yaml, then
// environment overrides. Missing sources fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         "8080",
		DataDir:      "data",
		DefaultGoals: models.DefaultGoals,
	}

	if b, err := os.ReadFile(configFile); err == nil {
		var fc fileConfig
		if err := yaml.Unmarshal(b, &fc); err != nil {
			log.Printf("config: ignoring malformed %s: %v", configFile, err)
		} else {
			if fc.DataDir != "" {
				cfg.DataDir = fc.DataDir
			}
			if fc.Goals != nil {
				cfg.DefaultGoals = *fc.Goals
			}
		}
	}

	if v := os.Getenv("MACROMETER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	return cfg
}

// APIKey reads the USDA credential from the environment on every call so a
// key added after startup is picked up without a restart.
func APIKey() string {
	return os.Getenv("USDA_API_KEY")
}
