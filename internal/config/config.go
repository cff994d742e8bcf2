// Package config loads application configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	ServerPort    int    `mapstructure:"server_port"`
	GinMode       string `mapstructure:"gin_mode"`
	LogLevel      string `mapstructure:"log_level"`
	DBDriver      string `mapstructure:"db_driver"`
	DBPath        string `mapstructure:"db_path"`
	DBHost        string `mapstructure:"db_host"`
	DBPort        string `mapstructure:"db_port"`
	DBUser        string `mapstructure:"db_user"`
	DBPassword    string `mapstructure:"db_password"`
	DBName        string `mapstructure:"db_name"`
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`
	SessionSecret string `mapstructure:"session_secret"`
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	BoardFile     string `mapstructure:"board_file"`
}

// Load reads configuration from the environment, falling back to a .env file
// in the working directory and then to defaults.
func Load() (*Config, error) {
	// Variables already set in the environment win over .env.
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBPort == "" {
		cfg.DBPort = defaultDBPort(cfg.DBDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", 8080)
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("log_level", "info")
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_path", "kerja.db")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "")
	v.SetDefault("db_user", "kerja")
	v.SetDefault("db_password", "kerja")
	v.SetDefault("db_name", "kerja")
	v.SetDefault("redis_host", "")
	v.SetDefault("redis_port", "6379")
	v.SetDefault("session_secret", "default-secret-key-change-me")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("board_file", "")
}

// defaultDBPort is the standard port of the driver's server, or "" for
// file-backed sqlite.
func defaultDBPort(driver string) string {
	switch driver {
	case DriverMySQL:
		return "3306"
	case DriverPostgres:
		return "5432"
	default:
		return ""
	}
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"server_port",
		"gin_mode",
		"log_level",
		"db_driver",
		"db_path",
		"db_host",
		"db_port",
		"db_user",
		"db_password",
		"db_name",
		"redis_host",
		"redis_port",
		"session_secret",
		"openai_api_key",
		"board_file",
	}
	for _, k := range keys {
		_ = v.BindEnv(k, strings.ToUpper(k))
	}
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.ServerPort <= 0 {
		return errors.New("SERVER_PORT must be positive")
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for sqlite")
		}
	case DriverMySQL, DriverPostgres:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST, DB_USER and DB_NAME are required for %s", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	return nil
}

// ServerAddr returns the listen address for the HTTP server.
func (c Config) ServerAddr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}

// RedisAddr returns host:port for the session store, or "" when sessions
// stay in cookies.
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
