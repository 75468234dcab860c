package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	LogLevel  string
	BodyLimit int64 // in bytes
}

// IsDevelopment reports whether the server runs in development mode
func (s ServerConfig) IsDevelopment() bool {
	return s.Env == "development"
}

type DatabaseConfig struct {
	Driver        string
	MongoURI      string
	MongoDatabase string

	Host          string
	Port          string
	User          string
	Password      string
	Database      string
	Schema        string
	SSLMode       string
	MigrationsDir string

	ConnectTimeout time.Duration
}

// PostgresDSN builds the connection URL for the postgres driver
func (d DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode, d.Schema)
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from the environment, an optional .env file and
// an optional config.yaml
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names used by earlier deployments of this API
	_ = v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT")
	_ = v.BindEnv("SERVER_ENV", "SERVER_ENV", "NODE_ENV")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Could not read config file: %v", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("BODY_LIMIT_BYTES", 10<<20)

	v.SetDefault("DB_DRIVER", DriverMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "storefront")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MIGRATIONS_DIR", "migrations")
	v.SetDefault("DB_CONNECT_TIMEOUT", 10*time.Second)

	v.SetDefault("ALLOWED_ORIGINS", "")

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("METRICS_ENABLED", true)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:      v.GetString("SERVER_PORT"),
			Env:       v.GetString("SERVER_ENV"),
			LogLevel:  v.GetString("LOG_LEVEL"),
			BodyLimit: v.GetInt64("BODY_LIMIT_BYTES"),
		},
		Database: DatabaseConfig{
			Driver:         strings.ToLower(v.GetString("DB_DRIVER")),
			MongoURI:       v.GetString("MONGODB_URI"),
			MongoDatabase:  v.GetString("MONGODB_DATABASE"),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Database:       v.GetString("DB_DATABASE"),
			Schema:         v.GetString("DB_SCHEMA"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			MigrationsDir:  v.GetString("DB_MIGRATIONS_DIR"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}
}

// splitList parses a comma separated list, dropping blanks
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
