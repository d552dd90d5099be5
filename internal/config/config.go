package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"sync"
)

type Config struct {
	Env   string `yaml:"env" env:"ENV" env-default:"local"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"DATABASE_NAME" env-default:"furnishdesk"`
	} `yaml:"mongo"`
	Smtp struct {
		Host     string `yaml:"host" env:"SMTP_HOST" env-default:""`
		Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"587"`
		User     string `yaml:"user" env:"SMTP_USER" env-default:""`
		Password string `yaml:"password" env:"SMTP_PASS" env-default:""`
		To       string `yaml:"to" env:"SMTP_TO" env-default:""`
		From     string `yaml:"from" env:"SMTP_FROM" env-default:""`
	} `yaml:"smtp"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:""`
		AdminId int64  `yaml:"admin_id" env:"TELEGRAM_ADMIN_ID" env-default:"0"`
	} `yaml:"telegram"`
	Listen struct {
		BindIP         string   `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port           string   `yaml:"port" env:"PORT" env-default:"8000"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"*"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			// fall back to environment only, the original deploy had no file
			if err = cleanenv.ReadEnv(instance); err != nil {
				desc, _ := cleanenv.GetDescription(instance, nil)
				err = fmt.Errorf("%s; %s", err, desc)
				instance = nil
				log.Fatal(err)
			}
		}
	})
	return instance
}
