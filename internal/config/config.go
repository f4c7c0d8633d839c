package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MySQL holds the message service's user and chat replicas
	Database DatabaseConfig `json:"database"`

	// MongoDB holds messages, read statuses and read progress
	MongoDB MongoDBConfig `json:"mongodb"`

	// Postgres holds the presence service's chat membership replica
	Postgres PostgresConfig `json:"postgres"`

	Redis RedisConfig `json:"redis"`

	NATS NATSConfig `json:"nats"`

	Presence PresenceConfig `json:"presence"`

	Gateway GatewayConfig `json:"gateway"`

	Auth AuthConfig `json:"auth"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains listen ports for every process and the addresses
// the gateway dials.
type ServerConfig struct {
	Host                string `json:"host"`
	MessageServicePort  string `json:"message_service_port"`
	PresenceServicePort string `json:"presence_service_port"`
	GatewayPort         string `json:"gateway_port"`
	PresenceMetricsPort string `json:"presence_metrics_port"`
	MessageServiceAddr  string `json:"message_service_addr"`
	PresenceServiceAddr string `json:"presence_service_addr"`
	ReadTimeout         int    `json:"read_timeout"`
	WriteTimeout        int    `json:"write_timeout"`
	Environment         string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"ssl_mode"`
	MaxConns int32  `json:"max_conns"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
	// ConfigureNotifications issues CONFIG SET notify-keyspace-events on start.
	// Managed Redis offerings usually reject it, so it can be turned off.
	ConfigureNotifications bool `json:"configure_notifications"`
}

type NATSConfig struct {
	URL           string        `json:"url"`
	SubjectPrefix string        `json:"subject_prefix"`
	MaxReconnects int           `json:"max_reconnects"`
	ReconnectWait time.Duration `json:"reconnect_wait"`
	Workers       int           `json:"workers"`     // handler goroutines per subscription
	BufferSize    int           `json:"buffer_size"` // pending messages per worker
}

type PresenceConfig struct {
	DefaultTTL time.Duration `json:"default_ttl"`
}

type GatewayConfig struct {
	KeepaliveInterval time.Duration `json:"keepalive_interval"`
	MaxMissedPings    int           `json:"max_missed_pings"`
	RefreshInterval   time.Duration `json:"refresh_interval"`
	WriteTimeout      time.Duration `json:"write_timeout"`
	RPCTimeout        time.Duration `json:"rpc_timeout"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

var defaults = map[string]any{
	"SERVER_HOST":           "0.0.0.0",
	"MESSAGE_SERVICE_PORT":  "7101",
	"PRESENCE_SERVICE_PORT": "7102",
	"GATEWAY_PORT":          "8080",
	"PRESENCE_METRICS_PORT": "9102",
	"MESSAGE_SERVICE_ADDR":  "localhost:7101",
	"PRESENCE_SERVICE_ADDR": "localhost:7102",
	"SERVER_READ_TIMEOUT":   15,
	"SERVER_WRITE_TIMEOUT":  15,
	"ENVIRONMENT":           "development",

	"MYSQL_HOST":           "localhost",
	"MYSQL_PORT":           "3306",
	"MYSQL_USERNAME":       "gochat",
	"MYSQL_PASSWORD":       "gochat123",
	"MYSQL_DATABASE":       "gochat_messages",
	"MYSQL_MAX_OPEN_CONNS": 25,
	"MYSQL_MAX_IDLE_CONNS": 5,

	"MONGO_HOST":     "localhost",
	"MONGO_PORT":     "27017",
	"MONGO_USERNAME": "",
	"MONGO_PASSWORD": "",
	"MONGO_DATABASE": "gochat",

	"POSTGRES_HOST":      "localhost",
	"POSTGRES_PORT":      "5432",
	"POSTGRES_USERNAME":  "gochat",
	"POSTGRES_PASSWORD":  "gochat123",
	"POSTGRES_DATABASE":  "gochat_presence",
	"POSTGRES_SSLMODE":   "disable",
	"POSTGRES_MAX_CONNS": 10,

	"REDIS_ADDR":                    "localhost:6379",
	"REDIS_PASSWORD":                "",
	"REDIS_DB":                      0,
	"REDIS_POOL_SIZE":               20,
	"REDIS_CONFIGURE_NOTIFICATIONS": true,

	"NATS_URL":            "nats://localhost:4222",
	"NATS_SUBJECT_PREFIX": "gochat",
	"NATS_MAX_RECONNECTS": 60,
	"NATS_RECONNECT_WAIT": "2s",
	"NATS_WORKERS":        8,
	"NATS_BUFFER_SIZE":    256,

	"PRESENCE_DEFAULT_TTL": "60s",

	"GATEWAY_KEEPALIVE_INTERVAL": "20s",
	"GATEWAY_MAX_MISSED_PINGS":   3,
	"GATEWAY_REFRESH_INTERVAL":   "30s",
	"GATEWAY_WRITE_TIMEOUT":      "10s",
	"GATEWAY_RPC_TIMEOUT":        "5s",

	"JWT_SECRET": "",

	"LOG_LEVEL":  "info",
	"LOG_FORMAT": "text",
	"LOG_OUTPUT": "stdout",
}

// LoadConfig reads .env (if present), an optional CONFIG_FILE and the process
// environment. Environment variables win over the file.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("Failed to read config file %s: %v", file, err)
		}
	}

	return &Config{
		Server: ServerConfig{
			Host:                v.GetString("SERVER_HOST"),
			MessageServicePort:  v.GetString("MESSAGE_SERVICE_PORT"),
			PresenceServicePort: v.GetString("PRESENCE_SERVICE_PORT"),
			GatewayPort:         v.GetString("GATEWAY_PORT"),
			PresenceMetricsPort: v.GetString("PRESENCE_METRICS_PORT"),
			MessageServiceAddr:  v.GetString("MESSAGE_SERVICE_ADDR"),
			PresenceServiceAddr: v.GetString("PRESENCE_SERVICE_ADDR"),
			ReadTimeout:         v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:        v.GetInt("SERVER_WRITE_TIMEOUT"),
			Environment:         v.GetString("ENVIRONMENT"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("MYSQL_HOST"),
			Port:         v.GetString("MYSQL_PORT"),
			Username:     v.GetString("MYSQL_USERNAME"),
			Password:     v.GetString("MYSQL_PASSWORD"),
			DatabaseName: v.GetString("MYSQL_DATABASE"),
			MaxOpenConns: v.GetInt("MYSQL_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("MYSQL_MAX_IDLE_CONNS"),
		},
		MongoDB: MongoDBConfig{
			Host:     v.GetString("MONGO_HOST"),
			Port:     v.GetString("MONGO_PORT"),
			Username: v.GetString("MONGO_USERNAME"),
			Password: v.GetString("MONGO_PASSWORD"),
			Database: v.GetString("MONGO_DATABASE"),
		},
		Postgres: PostgresConfig{
			Host:     v.GetString("POSTGRES_HOST"),
			Port:     v.GetString("POSTGRES_PORT"),
			Username: v.GetString("POSTGRES_USERNAME"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			Database: v.GetString("POSTGRES_DATABASE"),
			SSLMode:  v.GetString("POSTGRES_SSLMODE"),
			MaxConns: v.GetInt32("POSTGRES_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:                   v.GetString("REDIS_ADDR"),
			Password:               v.GetString("REDIS_PASSWORD"),
			DB:                     v.GetInt("REDIS_DB"),
			PoolSize:               v.GetInt("REDIS_POOL_SIZE"),
			ConfigureNotifications: v.GetBool("REDIS_CONFIGURE_NOTIFICATIONS"),
		},
		NATS: NATSConfig{
			URL:           v.GetString("NATS_URL"),
			SubjectPrefix: v.GetString("NATS_SUBJECT_PREFIX"),
			MaxReconnects: v.GetInt("NATS_MAX_RECONNECTS"),
			ReconnectWait: v.GetDuration("NATS_RECONNECT_WAIT"),
			Workers:       v.GetInt("NATS_WORKERS"),
			BufferSize:    v.GetInt("NATS_BUFFER_SIZE"),
		},
		Presence: PresenceConfig{
			DefaultTTL: v.GetDuration("PRESENCE_DEFAULT_TTL"),
		},
		Gateway: GatewayConfig{
			KeepaliveInterval: v.GetDuration("GATEWAY_KEEPALIVE_INTERVAL"),
			MaxMissedPings:    v.GetInt("GATEWAY_MAX_MISSED_PINGS"),
			RefreshInterval:   v.GetDuration("GATEWAY_REFRESH_INTERVAL"),
			WriteTimeout:      v.GetDuration("GATEWAY_WRITE_TIMEOUT"),
			RPCTimeout:        v.GetDuration("GATEWAY_RPC_TIMEOUT"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		Logging: LoggingConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Format:     v.GetString("LOG_FORMAT"),
			OutputPath: v.GetString("LOG_OUTPUT"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			cfg.MongoDB.Username,
			cfg.MongoDB.Password,
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}

// PostgresDSN builds a pgx connection string.
func (cfg *Config) PostgresDSN() string {
	sslMode := cfg.Postgres.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Postgres.Username,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.Database,
		sslMode,
	)
}

func (cfg *Config) IsProduction() bool {
	return strings.EqualFold(cfg.Server.Environment, "production")
}
