package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	LogLevel string
	DevMode  bool

	// Optimizer hyperparameters
	LowerBound       float64
	UpperBound       float64
	EvaluationBudget int
	Limit            int
	ColonySize       int
	ModificationRate float64

	// Run settings
	Method       string // dengeli, garantici, temkinli
	RiskFreeRate float64
	TopK         int
	Seed         int64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		LowerBound:       getEnvAsFloat("ABC_LOWER_BOUND", 0),
		UpperBound:       getEnvAsFloat("ABC_UPPER_BOUND", 1),
		EvaluationBudget: getEnvAsInt("ABC_EVALUATION_BUDGET", 200000),
		Limit:            getEnvAsInt("ABC_LIMIT", 20),
		ColonySize:       getEnvAsInt("ABC_COLONY_SIZE", 50),
		ModificationRate: getEnvAsFloat("ABC_MODIFICATION_RATE", 0.1),
		Method:           getEnv("ABC_METHOD", "dengeli"),
		RiskFreeRate:     getEnvAsFloat("RISK_FREE_RATE", 0.0),
		TopK:             getEnvAsInt("PORTFOLIO_TOP_K", 10),
		Seed:             int64(getEnvAsInt("ABC_SEED", 0)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.ColonySize <= 0 {
		return fmt.Errorf("ABC_COLONY_SIZE must be positive")
	}
	if c.EvaluationBudget <= 0 {
		return fmt.Errorf("ABC_EVALUATION_BUDGET must be positive")
	}
	if c.LowerBound >= c.UpperBound {
		return fmt.Errorf("ABC_LOWER_BOUND must be below ABC_UPPER_BOUND")
	}
	if c.TopK <= 0 {
		return fmt.Errorf("PORTFOLIO_TOP_K must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
