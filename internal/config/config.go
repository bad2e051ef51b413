package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/studymate/courseapi/internal/pkg/apperrors"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

// Supported completion providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
		ReadTimeout    string   `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout   string   `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		URL             string `yaml:"url" env:"DATABASE_URL"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		Path            string `yaml:"path" env:"DB_PATH"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		Seed            bool   `yaml:"seed" env:"DB_SEED"`
	} `yaml:"database"`

	LLM struct {
		Provider    string  `yaml:"provider" env:"LLM_PROVIDER"`
		MaxTokens   int     `yaml:"max_tokens" env:"LLM_MAX_TOKENS"`
		Temperature float64 `yaml:"temperature" env:"LLM_TEMPERATURE"` // 0 keeps the provider default
		Timeout     string  `yaml:"timeout" env:"LLM_TIMEOUT"`

		OpenAI struct {
			APIKey  string `yaml:"api_key" env:"OPENAI_API_KEY"`
			BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
			Model   string `yaml:"model" env:"OPENAI_MODEL"`
		} `yaml:"openai"`

		Gemini struct {
			APIKey  string `yaml:"api_key" env:"GEMINI_API_KEY"`
			BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL"`
			Model   string `yaml:"model" env:"GEMINI_MODEL"`
		} `yaml:"gemini"`
	} `yaml:"llm"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a .env file, a YAML file and environment variables.
// Both files are optional. A missing completion API key yields apperrors.ErrConfigurationMissing.
func LoadConfig(configPath string) (*Config, error) {
	// .env only seeds the process environment; real env vars win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8000"
	config.Server.Mode = "development"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "60s"

	// Database defaults
	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "password"
	config.Database.DBName = "studymate_db"
	config.Database.SSLMode = "disable"
	config.Database.Path = "studymate.db"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	// LLM defaults
	config.LLM.Provider = ProviderOpenAI
	config.LLM.MaxTokens = 500
	config.LLM.Timeout = "30s"
	config.LLM.OpenAI.BaseURL = "https://api.openai.com/v1"
	config.LLM.OpenAI.Model = "gpt-3.5-turbo"
	config.LLM.Gemini.Model = "gemini-2.0-flash"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case DriverPostgres, DriverMySQL:
		if config.Database.URL == "" && config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
	case DriverSQLite:
		if config.Database.Path == "" {
			return fmt.Errorf("database path is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime format: %w", err)
	}

	switch config.LLM.Provider {
	case ProviderOpenAI:
		if strings.TrimSpace(config.LLM.OpenAI.APIKey) == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is required when LLM_PROVIDER=openai", apperrors.ErrConfigurationMissing)
		}
	case ProviderGemini:
		if strings.TrimSpace(config.LLM.Gemini.APIKey) == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY is required when LLM_PROVIDER=gemini", apperrors.ErrConfigurationMissing)
		}
	default:
		return fmt.Errorf("unsupported llm provider %q", config.LLM.Provider)
	}

	if len(config.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	for _, origin := range config.Server.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid allowed origin %q: must be \"*\" or start with http:// or https://", origin)
		}
	}

	if config.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm max tokens must be positive, got %d", config.LLM.MaxTokens)
	}

	for name, value := range map[string]string{
		"llm timeout":          config.LLM.Timeout,
		"server read timeout":  config.Server.ReadTimeout,
		"server write timeout": config.Server.WriteTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string.
// DATABASE_URL wins over the individual parts.
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetMySQLConnectionString returns a go-sql-driver DSN
func (c *Config) GetMySQLConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
