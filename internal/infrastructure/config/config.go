package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,        default=8080"`
	Env         string `env:"ENV,         default=development"`
	JWTSecret   string `env:"JWT_SECRET,  required"`
	AdminAPIKey string `env:"ADMIN_API_KEY, required"`
	LogLevel    string `env:"LOG_LEVEL,   default=info"`
	UploadDir   string `env:"UPLOAD_DIR,  default=uploads"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=campus_events"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// The JWT secret and admin key have no defaults; the process refuses to
// start without them.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
