// Package config loads typed configuration structs from environment
// variables, with optional .env bootstrap for local development.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env loading. Each configuration type is
// parsed at most once per process and cached, so packages can call Load
// for the same type independently without re-reading the environment.
//
// # Usage
//
//	var cfg orchestrator.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Or, for configuration the process cannot start without:
//
//	var cfg evaluator.Config
//	config.MustLoad(&cfg)
package config
