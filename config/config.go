// config/config.go
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type StorageConfig struct {
	// Driver selects the repository backend: "mongo" or "redis".
	Driver string `mapstructure:"driver"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

type CORSConfig struct {
	// Origins is a comma-separated allow-list added on top of the local
	// dev frontend origin.
	Origins string `mapstructure:"origins"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Redis   RedisConfig   `mapstructure:"redis"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// AllowedOrigins returns the CORS allow-list: the local dev frontend plus
// any origins configured via CORS_ORIGIN.
func (c Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173"}
	for _, origin := range strings.Split(c.CORS.Origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// LoadConfig reads config.yaml if present and overlays environment
// variables on top.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")
	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("cors.origins", "CORS_ORIGIN")

	viper.SetDefault("server.port", "3000")
	viper.SetDefault("storage.driver", "mongo")
	viper.SetDefault("mongo.dbName", "stockmaster")
	viper.SetDefault("redis.addr", "localhost:6379")

	// A missing config file is fine; env vars alone are enough.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
