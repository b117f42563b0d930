package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Audit
	}

	HTTP struct {
		Port     int32
		Host     string
		BasePath string // Prefix for every API route, e.g. "/api"
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogQuery bool // Log every SQL statement through the gorm logger
	}
	Auth struct {
		BcryptCost int
	}
	Audit struct {
		Enabled bool
	}
)

// normalizeBasePath makes sure a non-empty base path starts with a slash
// and has no trailing one, so it can be passed to gin's Group as is.
func normalizeBasePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimRight(path, "/")
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("base_path", "")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_query", false)
	v.SetDefault("auth_bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("audit_enabled", true)

	return &Config{
		HTTP: HTTP{
			Port:     v.GetInt32("PORT"),
			Host:     v.GetString("HOST"),
			BasePath: normalizeBasePath(v.GetString("BASE_PATH")),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogQuery: v.GetBool("DATABASE_LOG_QUERY"),
		},
		Auth: Auth{
			BcryptCost: v.GetInt("AUTH_BCRYPT_COST"),
		},
		Audit: Audit{
			Enabled: v.GetBool("AUDIT_ENABLED"),
		},
	}
}
