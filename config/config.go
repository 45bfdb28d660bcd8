package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server, the historical dataset, and the trained model artifact.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	DATA_FILE=./data/Gold_Price.csv
//	MODEL_FILE=./data/svr_model.gob
//	RECENT_ROWS=4
type Config struct {
	Server ServerConfig // HTTP server configuration
	Data   DataConfig   // Historical price dataset settings
	Model  ModelConfig  // Trained model artifact settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// DataConfig defines where the historical gold-price CSV lives and how many
// of its most recent rows are shown on the landing page.
type DataConfig struct {
	File       string // Path to the CSV with Open/High/Low/Close columns
	RecentRows int    // Number of trailing rows displayed by default
}

// ModelConfig defines where the serialized SVR artifact lives.
type ModelConfig struct {
	File string // Path to the gob-encoded model artifact
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATA_FILE", "./data/Gold_Price.csv")
	viper.SetDefault("MODEL_FILE", "./data/svr_model.gob")
	viper.SetDefault("RECENT_ROWS", 4)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Data: DataConfig{
			File:       viper.GetString("DATA_FILE"),
			RecentRows: viper.GetInt("RECENT_ROWS"),
		},
		Model: ModelConfig{
			File: viper.GetString("MODEL_FILE"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Data.File == "" {
		missing = append(missing, "DATA_FILE")
	}
	if AppConfig.Model.File == "" {
		missing = append(missing, "MODEL_FILE")
	}
	if AppConfig.Data.RecentRows <= 0 {
		missing = append(missing, "RECENT_ROWS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
