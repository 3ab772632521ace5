// Package config loads typed configuration structs from environment
// variables.
//
// It is a thin layer over caarlos0/env struct-tag parsing plus an optional
// .env file (via godotenv) that is read at most once per process. Each Load
// call returns a fresh value, so packages can declare their own config
// structs independently:
//
//	cfg, err := config.Load[transport.Config]()
//	if err != nil {
//	    return err
//	}
//
// Use MustLoad in initialization code where a misconfigured environment
// should prevent startup instead of surfacing later.
package config
