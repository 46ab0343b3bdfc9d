package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		Database string `yaml:"database"`
	} `yaml:"storage"`
	Blob struct {
		Endpoint      string `yaml:"endpoint"`
		Region        string `yaml:"region"`
		Bucket        string `yaml:"bucket"`
		AccessKey     string `yaml:"access_key"`
		SecretKey     string `yaml:"secret_key"`
		PublicBaseURL string `yaml:"public_base_url"`
	} `yaml:"blob"`
}

func LoadConfig() *Config {
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Printf("Failed to read config file, using defaults: %v", err)
	} else if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Failed to parse config file, using defaults: %v", err)
		config = defaultConfig()
	}

	// Credentials from the environment take precedence over the file
	if v := os.Getenv("LANSHARE_BLOB_ACCESS_KEY"); v != "" {
		config.Blob.AccessKey = v
	}
	if v := os.Getenv("LANSHARE_BLOB_SECRET_KEY"); v != "" {
		config.Blob.SecretKey = v
	}
	if v := os.Getenv("LANSHARE_PORT"); v != "" {
		config.Server.Port = v
	}

	return config
}

func defaultConfig() *Config {
	config := &Config{}
	config.Server.Host = "0.0.0.0"
	config.Server.Port = "8080"
	config.Storage.Database = "./lanshare.db"
	config.Blob.Endpoint = "http://localhost:9000"
	config.Blob.Region = "us-east-1"
	config.Blob.Bucket = "lanshare"
	return config
}
