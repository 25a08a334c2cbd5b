package main

import (
	"log"
	"strconv"

	"compliance-backend/internal/shared/utils"
)

// Config holds all configuration for the worker
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SalesEmail    string
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	redisDB, err := strconv.Atoi(utils.GetEnvVariable("REDIS_DB", "0"))
	if err != nil {
		redisDB = 0
	}

	cfg := &Config{
		RedisAddr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
		RedisPassword: utils.GetEnvVariable("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		SalesEmail:    utils.GetEnvVariable("LEADS_SALES_EMAIL", "sales@compliancehub.co.za"),
	}

	log.Printf("[Config] Redis: %s, Sales inbox: %s", cfg.RedisAddr, cfg.SalesEmail)

	return cfg
}
