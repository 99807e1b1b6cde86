package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/spf13/viper"
)

// Config holds all configuration for the intake assistant
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Session SessionConfig `mapstructure:"session"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

func (s ServerConfig) Validate() error {
	if strings.TrimSpace(s.Address) == "" {
		return fmt.Errorf("server.address is required")
	}
	return nil
}

// LLMConfig selects and configures the language-model backend. Exactly one
// provider is resolved at process start; credential checks happen in the
// provider's ValidateConfig.
type LLMConfig struct {
	Provider        string        `mapstructure:"provider"` // openai, anthropic, azure_openai
	Model           string        `mapstructure:"model"`
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxTokens       int           `mapstructure:"max_tokens"`
	OpenAIAPIKey    string        `mapstructure:"openai_api_key"`
	AnthropicAPIKey string        `mapstructure:"anthropic_api_key"`
	Azure           AzureConfig   `mapstructure:"azure"`
}

// AzureConfig contains Azure OpenAI endpoint wiring. Model doubles as the
// deployment name for this provider.
type AzureConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Endpoint   string `mapstructure:"endpoint"`
	APIVersion string `mapstructure:"api_version"`
}

func (l LLMConfig) Validate() error {
	if strings.TrimSpace(l.Provider) == "" {
		return fmt.Errorf("llm.provider is required")
	}
	if strings.TrimSpace(l.Model) == "" {
		return fmt.Errorf("llm.model is required")
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be greater than zero")
	}
	return nil
}

// SessionConfig declares the expiry policy enforced by the janitor
type SessionConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	CleanupCron string        `mapstructure:"cleanup_cron"`
}

func (s SessionConfig) Validate() error {
	if s.Timeout <= 0 {
		return fmt.Errorf("session.timeout must be greater than zero")
	}
	if _, err := cronexpr.Parse(s.CleanupCron); err != nil {
		return fmt.Errorf("session.cleanup_cron is not a valid cron expression: %w", err)
	}
	return nil
}

// LoadConfig loads config from file and INTAKE_* environment variables
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.SetDefault("general.debug", false)
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("server.address", ":8000")
	viper.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-4-turbo-preview")
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("llm.azure.api_version", "2024-12-01-preview")
	viper.SetDefault("session.timeout", "30m")
	viper.SetDefault("session.cleanup_cron", "@hourly")

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("INTAKE")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match (INTAKE_*)

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env vars and defaults cover everything.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.Server.Validate(); err != nil {
		panic(err)
	}
	if err := config.LLM.Validate(); err != nil {
		panic(err)
	}
	if err := config.Session.Validate(); err != nil {
		panic(err)
	}

	return &config
}
