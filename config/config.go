package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Realtime   Realtime
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type Realtime struct {
	// Buffer is the per-subscriber event channel size; a full buffer drops
	// events and the refetch path covers the loss.
	Buffer int
	// OpTimeoutSeconds bounds individual store calls. Zero disables the bound.
	OpTimeoutSeconds int
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}
