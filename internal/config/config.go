package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"car-factory/internal/car"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultFactories = "ford,ford,ford,toyota"
	defaultWarmup    = "2,1,0,1"
)

// FactorySpec describes one factory of the plant and how many cars it has
// already built before the balancer takes it over.
type FactorySpec struct {
	Brand  string `yaml:"brand"`
	Warmup int    `yaml:"warmup"`
}

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// Plant Config
	BalancerType string
	Factories    []FactorySpec
	Requests     int
	PlantFile    string

	// Dealer Config
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

type plantFile struct {
	Balancer  string        `yaml:"balancer"`
	Factories []FactorySpec `yaml:"factories"`
}

func Load() (*Config, error) {
	return LoadFromFile(".env")
}

// LoadFromFile reads envFile into the environment, if it exists, without
// overriding variables that are already set, then loads the configuration.
func LoadFromFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	factories, err := getFactories()
	if err != nil {
		return nil, err
	}

	requests, err := getEnvInt("REQUESTS", 10)
	if err != nil {
		return nil, err
	}
	rateLimitRPS, err := getEnvFloat("RATE_LIMIT_RPS", 50)
	if err != nil {
		return nil, err
	}
	rateLimitBurst, err := getEnvInt("RATE_LIMIT_BURST", 100)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		BalancerType: getEnv("BALANCER_TYPE", "least-busy"),
		Factories:    factories,
		Requests:     requests,
		PlantFile:    os.Getenv("PLANT_FILE"),

		RateLimitRPS:    rateLimitRPS,
		RateLimitBurst:  rateLimitBurst,
		ShutdownTimeout: shutdownTimeout,
	}

	if config.PlantFile != "" {
		if err := config.applyPlantFile(config.PlantFile); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) applyPlantFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plant file: %w", err)
	}

	var plant plantFile
	if err := yaml.Unmarshal(content, &plant); err != nil {
		return fmt.Errorf("failed to parse plant file %s: %w", path, err)
	}

	if plant.Balancer != "" {
		c.BalancerType = plant.Balancer
	}
	// An explicit empty list is kept so that the balancer can reject it.
	if plant.Factories != nil {
		c.Factories = plant.Factories
	}
	return nil
}

// Validate checks the fields that can be judged on their own. An empty plant
// is left for the balancer constructor to refuse.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port cannot be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.Requests < 0 {
		return errors.New("requests cannot be negative")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("rate limit must be positive")
	}
	for i, f := range c.Factories {
		if _, err := car.ParseBrand(f.Brand); err != nil {
			return fmt.Errorf("factory %d: %w", i, err)
		}
		if f.Warmup < 0 {
			return fmt.Errorf("factory %d: warmup cannot be negative", i)
		}
	}
	return nil
}

func getFactories() ([]FactorySpec, error) {
	brandsEnv := os.Getenv("FACTORIES")
	warmupEnv := os.Getenv("WARMUP")
	if brandsEnv == "" {
		brandsEnv = defaultFactories
		if warmupEnv == "" {
			warmupEnv = defaultWarmup
		}
	}

	brands := splitList(brandsEnv)
	warmups := splitList(warmupEnv)
	if len(warmups) > len(brands) {
		return nil, fmt.Errorf("WARMUP lists %d values for %d factories", len(warmups), len(brands))
	}

	specs := make([]FactorySpec, len(brands))
	for i, brand := range brands {
		specs[i].Brand = brand
		if i < len(warmups) {
			n, err := strconv.Atoi(warmups[i])
			if err != nil {
				return nil, fmt.Errorf("invalid WARMUP value %q: %w", warmups[i], err)
			}
			specs[i].Warmup = n
		}
	}
	return specs, nil
}

func splitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// The numeric getters fall back to defaultValue only when key is unset. A
// value that does not parse is an error.

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return intVal, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return floatVal, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return duration, nil
}
