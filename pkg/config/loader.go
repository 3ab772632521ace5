package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotEnv sync.Once

// Load parses environment variables into a fresh configuration struct of
// type T, using the struct's `env` tags. A .env file in the working
// directory is loaded once per process before the first parse; a missing
// file is not an error.
//
// Example:
//
//	type HTTPConfig struct {
//	    Timeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
//	    UserAgent string        `env:"HTTP_USER_AGENT,required"`
//	}
//
//	cfg, err := config.Load[HTTPConfig]()
func Load[T any]() (T, error) {
	loadDotEnv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParse, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure, for initialization paths
// where a bad environment should prevent startup.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("config: load failed: %v", err))
	}
	return cfg
}
