package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the upstream market data provider.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8050
//	MARKETDATA_BASE_URL=https://query1.finance.yahoo.com
//	MARKETDATA_HTTP_TIMEOUT=30s
//	MARKETDATA_USER_AGENT=Mozilla/5.0 (compatible; tickerboard/1.0)
type Config struct {
	Server     ServerConfig     // HTTP server configuration
	MarketData MarketDataConfig // Upstream price provider settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8050")
}

// MarketDataConfig defines how the price provider is reached.
//
// Fields:
//   - BaseURL: scheme and host of the chart API (no trailing slash).
//   - HTTPTimeout: transport-level timeout of the HTTP client. The fetch itself
//     carries no deadline of its own.
//   - UserAgent: header sent with each request; the public endpoint rejects
//     requests without one.
type MarketDataConfig struct {
	BaseURL     string
	HTTPTimeout time.Duration
	UserAgent   string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
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
	// .env only fills variables that are not already set in the environment
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.SetDefault("SERVER_PORT", "8050")

	viper.SetDefault("MARKETDATA_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("MARKETDATA_HTTP_TIMEOUT", "30s")
	viper.SetDefault("MARKETDATA_USER_AGENT", "Mozilla/5.0 (compatible; tickerboard/1.0)")

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		MarketData: MarketDataConfig{
			BaseURL:     viper.GetString("MARKETDATA_BASE_URL"),
			HTTPTimeout: viper.GetDuration("MARKETDATA_HTTP_TIMEOUT"),
			UserAgent:   viper.GetString("MARKETDATA_USER_AGENT"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.MarketData.BaseURL == "" {
		missing = append(missing, "MARKETDATA_BASE_URL")
	}
	if AppConfig.MarketData.HTTPTimeout <= 0 {
		missing = append(missing, "MARKETDATA_HTTP_TIMEOUT")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
