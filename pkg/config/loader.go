package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by LoadEnv when no files are given.
const DefaultEnvFile = ".env"

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Without arguments it reads
// DefaultEnvFile if it exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into v according to its env tags.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Parse returns a new T populated from the environment.
func Parse[T any]() (T, error) {
	var v T
	if err := Load(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// MustLoad works like Load but panics if parsing fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
