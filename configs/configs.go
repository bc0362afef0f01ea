package configs

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port     string
		LogLevel string
	}
	Storage struct {
		Driver string // "memory" or "postgres"
	}
	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	Bidding struct {
		MinIncrement   float64
		RateLimitRPS   float64
		RateLimitBurst int
	}
	Settlement struct {
		BatchLimit           int
		Workers              int
		NotifyTimeoutSeconds int
		ScanIntervalMinutes  int // 0 disables the periodic scan
	}
}

// LoadConfig reads configs/config.yaml when present and lets environment
// variables override any key (e.g. SERVER_PORT, SETTLEMENT_BATCHLIMIT).
func LoadConfig() (*Config, error) {
	// .env is optional; env vars set by the shell win either way
	_ = godotenv.Load("./configs/.env")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.loglevel", "info")
	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("bidding.minincrement", 5)
	viper.SetDefault("bidding.ratelimitrps", 1)
	viper.SetDefault("bidding.ratelimitburst", 3)
	viper.SetDefault("settlement.batchlimit", 5)
	viper.SetDefault("settlement.workers", 4)
	viper.SetDefault("settlement.notifytimeoutseconds", 10)
	viper.SetDefault("settlement.scanintervalminutes", 0)

	if err := viper.ReadInConfig(); err != nil {
		// Defaults and env vars are a complete configuration on their own
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configs: reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("configs: unmarshalling config: %w", err)
	}
	return &config, nil
}
