package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini API key for the assistant endpoint.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Owner booking-notification email settings (SES).
	OwnerEmail         string `mapstructure:"OWNER_EMAIL"`
	SESAccessKeyID     string `mapstructure:"SES_ACCESS_KEY_ID"`
	SESSecretAccessKey string `mapstructure:"SES_SECRET_ACCESS_KEY"`
	SESRegion          string `mapstructure:"SES_REGION"`
	SESSender          string `mapstructure:"SES_SENDER"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("OWNER_EMAIL", "")
	viper.SetDefault("SES_ACCESS_KEY_ID", "")
	viper.SetDefault("SES_SECRET_ACCESS_KEY", "")
	viper.SetDefault("SES_REGION", "")
	viper.SetDefault("SES_SENDER", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
