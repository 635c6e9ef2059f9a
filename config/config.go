package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL          string `mapstructure:"base_url"`
		TransactionLimit int    `mapstructure:"transaction_limit"`
	} `mapstructure:"api"`
	Session struct {
		TokenFile string `mapstructure:"token_file"`
	} `mapstructure:"session"`
}

var AppConfig Config

// LoadConfig reads config.yml from the given path, falling back to
// built-in defaults when no file is present. The client must be runnable
// from a fresh checkout, so a missing config file is not fatal.
func LoadConfig(path string) {
	loadEnv()

	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("api.base_url", "http://localhost:8000/api/v1")
	viper.SetDefault("api.transaction_limit", 20)
	viper.SetDefault("session.token_file", defaultTokenFile())

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

// loadEnv loads environment variables from a .env file if one exists.
func loadEnv() {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return
	}
	_ = godotenv.Load(".env")
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".go-bank-client/token"
	}
	return filepath.Join(home, ".go-bank-client", "token")
}
