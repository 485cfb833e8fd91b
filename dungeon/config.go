package dungeon

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds process-level settings, read from the environment.
type Config struct {
	ServerPort int    `env:"SERVER_PORT,default=3000"`
	RedisURL   string `env:"REDIS_URL,default=redis://127.0.0.1:6379/"`
	GraphKey   string `env:"GRAPH_KEY,default=dungeon"`
}

// ConfigFromEnv decodes Config from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("dungeon: config: %w", err)
	}

	return cfg, nil
}
