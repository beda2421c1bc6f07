package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

func defaultEnvFile() string {
	if path := os.Getenv("ASKD_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

// readEnvFile reads KEY=VALUE pairs from a dotenv file. Keys are upper-cased.
// A missing file yields no values.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(v.AllKeys()))
	for _, key := range v.AllKeys() {
		values[strings.ToUpper(key)] = v.GetString(key)
	}
	return values, nil
}

// loadEnvFile exports the values of a dotenv file that are not already set
// in the environment.
func loadEnvFile(path string) error {
	values, err := readEnvFile(path)
	if err != nil {
		return err
	}
	for key, value := range values {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
