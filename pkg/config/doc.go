// Package config loads tool configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with env tags:
//
//	type Config struct {
//	    Definition      string `env:"FSM_DEFINITION"`
//	    HistoryCapacity int    `env:"FSM_HISTORY_CAPACITY" envDefault:"10"`
//	}
//
//	if err := config.LoadEnv(); err != nil {
//	    return err
//	}
//	cfg, err := config.Parse[Config]()
//
// Variables already present in the environment take precedence over values
// from .env files. Errors can be compared with errors.Is against
// ErrLoadingEnvFile, ErrParsingConfig and ErrNilPointer.
package config
