package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	Server struct {
		Port      string `json:"port"`
		StaticDir string `json:"static_dir"`
		Debug     bool   `json:"debug"`
	} `json:"server"`

	Database struct {
		Path string `json:"path"`
	} `json:"database"`

	AI AIConfig `json:"ai"`

	Weather WeatherConfig `json:"weather"`

	Log LogConfig `json:"log"`
}

// AIConfig configures the generative AI provider used for diagnosis and chat.
// Type is "gemini" or "stub". An empty ProjectID means no credential is
// configured; the clients surface that per request instead of failing startup.
type AIConfig struct {
	Type            string `json:"type"`
	ProjectID       string `json:"project_id"`
	Location        string `json:"location"`
	CredentialsFile string `json:"credentials_file"`
	Model           string `json:"model"`
}

// WeatherConfig carries the forecast and reverse-geocoding endpoints.
type WeatherConfig struct {
	ForecastURL string `json:"forecast_url"`
	GeocodeURL  string `json:"geocode_url"`
}

// LogConfig configures structured logging and file rotation.
type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	Console    bool   `json:"console"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Handle missing values
	if config.Server.Port == "" {
		// Fail if port is not set
		return nil, fmt.Errorf("server port is not set in config file")
	}
	if config.Server.StaticDir == "" {
		config.Server.StaticDir = "./static"
	}
	if config.Database.Path == "" {
		config.Database.Path = "catalog.db"
	}
	applyAIDefaults(&config.AI)
	applyWeatherDefaults(&config.Weather)
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	return &config, nil
}

func applyAIDefaults(cfg *AIConfig) {
	if cfg.Type == "" {
		cfg.Type = "gemini"
	}
	if cfg.ProjectID == "" {
		cfg.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if cfg.Location == "" {
		cfg.Location = os.Getenv("GOOGLE_LOCATION")
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
}

func applyWeatherDefaults(cfg *WeatherConfig) {
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = "https://api.open-meteo.com/v1/forecast"
	}
	if cfg.GeocodeURL == "" {
		cfg.GeocodeURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"
	}
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() string {
	// First try environment variable
	if path := os.Getenv("CROPDOCTOR_CONFIG"); path != "" {
		return path
	}

	// Then try config directory
	configDir := "config"
	if _, err := os.Stat(configDir); err == nil {
		return filepath.Join(configDir, "config.json")
	}

	// Finally, try current directory
	return "config.json"
}
