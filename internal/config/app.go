package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultConfigFile = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type ExchangeRateAPI struct {
	BaseURL string `mapstructure:"base_url"`
}

type Rates struct {
	CacheTTLSeconds        int `mapstructure:"cache_ttl_seconds"`
	FetchTimeoutSeconds    int `mapstructure:"fetch_timeout_seconds"`
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds"`
}

type MetadataAPI struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type MetadataCache struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

// Kafka publishing is off when Brokers is empty.
type Kafka struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type App struct {
	Environment string `mapstructure:"environment"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	App             App             `mapstructure:"app"`
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	DbServer        DbServer        `mapstructure:"db_server"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	ExchangeRateAPI ExchangeRateAPI `mapstructure:"exchange_rate_api"`
	Rates           Rates           `mapstructure:"rates"`
	MetadataAPI     MetadataAPI     `mapstructure:"metadata_api"`
	MetadataCache   MetadataCache   `mapstructure:"metadata_cache"`
	Kafka           Kafka           `mapstructure:"kafka"`
	Logging         Logging         `mapstructure:"logging"`
}

// Init loads .env (if present), config.yaml and environment overrides.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Load(defaultConfigFile)
}

// Load reads configFile and applies defaults and env bindings. A missing
// file is not an error; defaults and env vars still apply.
func Load(configFile string) (*AppConfig, error) {
	var cfg AppConfig

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("app.environment", "development")
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("exchange_rate_api.base_url", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("rates.cache_ttl_seconds", 3600)
	v.SetDefault("rates.fetch_timeout_seconds", 5)
	v.SetDefault("rates.refresh_interval_seconds", 3600)
	v.SetDefault("metadata_api.base_url", "https://api.microlink.io")
	v.SetDefault("metadata_api.timeout_seconds", 10)
	v.SetDefault("metadata_cache.max_items", 10000)
	v.SetDefault("metadata_cache.ttl_seconds", 900)
	v.SetDefault("kafka.topic", "gimie.products")
	v.SetDefault("logging.level", "info")

	_ = v.BindEnv("app.environment", "APP_ENV")

	// http server env vars
	_ = v.BindEnv("http_server.port", "PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// rates env vars
	_ = v.BindEnv("exchange_rate_api.base_url", "EXCHANGE_RATE_API_URL")
	_ = v.BindEnv("rates.cache_ttl_seconds", "RATES_CACHE_TTL_SECONDS")
	_ = v.BindEnv("rates.fetch_timeout_seconds", "RATES_FETCH_TIMEOUT_SECONDS")
	_ = v.BindEnv("rates.refresh_interval_seconds", "RATES_REFRESH_INTERVAL_SECONDS")

	// metadata env vars
	_ = v.BindEnv("metadata_api.base_url", "MICROLINK_API_URL")
	_ = v.BindEnv("metadata_api.api_key", "MICROLINK_API_KEY")
	_ = v.BindEnv("metadata_api.timeout_seconds", "MICROLINK_TIMEOUT_SECONDS")
	_ = v.BindEnv("metadata_cache.max_items", "METADATA_CACHE_MAX_ITEMS")
	_ = v.BindEnv("metadata_cache.ttl_seconds", "METADATA_CACHE_TTL_SECONDS")

	// kafka env vars
	_ = v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	_ = v.BindEnv("kafka.topic", "KAFKA_TOPIC")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Kafka.Brokers = splitBrokers(cfg.Kafka.Brokers)

	return &cfg, nil
}

// splitBrokers accepts both a yaml list and a comma separated env value.
func splitBrokers(in []string) []string {
	var out []string
	for _, item := range in {
		for _, b := range strings.Split(item, ",") {
			if b = strings.TrimSpace(b); b != "" {
				out = append(out, b)
			}
		}
	}
	return out
}
