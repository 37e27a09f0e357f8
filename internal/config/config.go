package config

import (
	"github.com/driventix/service-hotel/internal/platform/config"
)

// ServiceConfig holds all configuration for the hotel service.
type ServiceConfig struct {
	Port               string
	AppEnv             string
	DBConfig           config.DatabaseConfig
	JWTConfig          config.JWTConfig
	KafkaConfig        config.KafkaConfig
	RedisConfig        config.RedisConfig
	HotelsCacheTTLSecs int
}

// Load reads configuration from environment variables.
func Load() (*ServiceConfig, error) {
	v, err := config.Load("HOTEL")
	if err != nil {
		return nil, err
	}

	v.SetDefault("DB_NAME", "hotel")
	v.SetDefault("HOTELS_CACHE_TTL_SECONDS", 30)

	return &ServiceConfig{
		Port:               config.GetServicePort(v, "SERVICE_PORT"),
		AppEnv:             config.GetAppEnv(v),
		DBConfig:           config.LoadDatabaseConfig(v, "DB_NAME"),
		JWTConfig:          config.LoadJWTConfig(v),
		KafkaConfig:        config.LoadKafkaConfig(v),
		RedisConfig:        config.LoadRedisConfig(v),
		HotelsCacheTTLSecs: v.GetInt("HOTELS_CACHE_TTL_SECONDS"),
	}, nil
}
