package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketConfig struct {
	Env string 	   `yaml:"env"`
	HTTPServer 	   `yaml:"http_server"`
	MarketDB 	   `yaml:"market_db"`
	LogConfig 	   `yaml:"log_config"`
	KafkaService   `yaml:"kafka-service"`
	JWT            `yaml:"jwt"`
	Referral       `yaml:"referral"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MarketDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel 	string 	`yaml:"log_level"`
	LogFormat 	string 	`yaml:"log_format"`
	LogOutput 	string 	`yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type JWT struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
}

type Referral struct {
	// CommissionUnit is the amount credited to a partner per converted
	// referral. The business has not finalized the real rate yet.
	CommissionUnit   float64 `yaml:"commission_unit" env-default:"1"`
	LeaderboardLimit int     `yaml:"leaderboard_limit" env-default:"10"`
}

func MustLoad() *MarketConfig {

	// Processing env config variable and file
	configPath := os.Getenv("MARKET_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MARKET_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg MarketConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
