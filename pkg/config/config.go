package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Geocode  GeocodeConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
	RateLimit    int
}

type ProviderConfig struct {
	ChatAPIKey   string
	ChatURL      string
	FusionAPIKey string
	FusionURL    string
	TimeoutSec   int
	MaxResults   int
}

type GeocodeConfig struct {
	URL        string
	TimeoutSec int
	UserAgent  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled      bool
	SearchTTLMin int
	SessionTTLHr int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/tablewise")

	viper.SetEnvPrefix("TABLEWISE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 1048576)
	viper.SetDefault("server.rateLimit", 60)

	viper.SetDefault("provider.chatURL", "https://api.yelp.com/ai/chat/v2")
	viper.SetDefault("provider.fusionURL", "https://api.yelp.com/v3")
	viper.SetDefault("provider.timeoutSec", 30)
	viper.SetDefault("provider.maxResults", 3)

	viper.SetDefault("geocode.url", "https://nominatim.openstreetmap.org")
	viper.SetDefault("geocode.timeoutSec", 10)
	viper.SetDefault("geocode.userAgent", "tablewise-backend/1.0")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.searchTTLMin", 10)
	viper.SetDefault("cache.sessionTTLHr", 24)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
