package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Backend names accepted by DatabaseConfig.Backend.
const (
	BackendMySQL = "mysql"
	BackendMongo = "mongo"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origins     []string
	Environment string
	LogLevel    string
	Database    DatabaseConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	// URL is the store connection string. A mongodb:// or mongodb+srv://
	// scheme selects the document backend; anything else is a MySQL DSN.
	URL           string
	Host          string
	Port          string
	Username      string
	Password      string
	Name          string
	MongoDatabase string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	dbConfig := DatabaseConfig{
		URL:           firstEnv("DATABASE_URL", "MONGO_URI"),
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "3306"),
		Username:      getEnv("DB_USERNAME", "root"),
		Password:      getEnv("DB_PASSWORD", ""),
		Name:          getEnv("DB_NAME", "hospital"),
		MongoDatabase: getEnv("MONGO_DATABASE", "hospital"),
	}

	port := getEnv("PORT", "3000")
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	level := getEnv("LOG_LEVEL", "info")
	if _, err := zerolog.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Port:        port,
		Origins:     splitList(getEnv("ORIGIN", "*")),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    level,
		Database:    dbConfig,
	}, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Backend returns BackendMongo or BackendMySQL depending on URL.
func (d DatabaseConfig) Backend() string {
	if strings.HasPrefix(d.URL, "mongodb://") || strings.HasPrefix(d.URL, "mongodb+srv://") {
		return BackendMongo
	}
	return BackendMySQL
}

// MySQLDSN returns the DSN for the SQL backend. URL wins over the individual
// DB_* settings and keeps its own charset; a DSN built from parts uses
// utf8mb4. Times are always parsed and stored in UTC.
func (d DatabaseConfig) MySQLDSN() (string, error) {
	var cfg *mysql.Config
	if d.URL != "" {
		parsed, err := mysql.ParseDSN(d.URL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		cfg = parsed
	} else {
		cfg = mysql.NewConfig()
		cfg.User = d.Username
		cfg.Passwd = d.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(d.Host, d.Port)
		cfg.DBName = d.Name
		if err := cfg.Apply(mysql.Charset("utf8mb4", "")); err != nil {
			return "", fmt.Errorf("build mysql dsn: %w", err)
		}
	}

	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
