package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Configuration struct {
	Server struct {
		Host string `envconfig:"SERVER_HOST"`
		Port string `envconfig:"SERVER_PORT"`
	}
	Database struct {
		Address      string `envconfig:"MONGO_ADDRESS"`
		DatabaseName string `envconfig:"MONGO_DATABASE"`
		Collection   string `envconfig:"MONGO_COLLECTION"`
	}
	Planner struct {
		Path          string `envconfig:"PLANNER_PATH"`
		TemplatePath  string `envconfig:"PLANNER_TEMPLATE"`
		PredefinedDir string `envconfig:"PLANNER_PREDEFINED_DIR"`
	}
	Stockfish struct {
		Path string   `envconfig:"STOCKFISH_PATH"`
		Args []string `envconfig:"STOCKFISH_ARGS"`
	}
}

func InitConfig() (*Configuration, error) {
	cfg := &Configuration{}
	err := envconfig.Process("", cfg)
	return cfg, err
}
