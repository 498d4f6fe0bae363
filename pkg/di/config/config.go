package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

// New reads the optional config.yaml from the working directory; every viper
// key has a default, so a missing file is fine.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{}
	return config, nil
}
