package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	LogLevel        string
	ShopcartAPIURL  string
	APIVariant      string
	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int
	NumWorkers      int
	StubAPIPort     string
}

// LoadConfig reads the environment. A .env file in the working directory
// is loaded first when present; real environment variables win.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShopcartAPIURL:  getEnv("SHOPCART_API_URL", "http://localhost:8081"),
		APIVariant:      getEnv("SHOPCART_API_VARIANT", "api"),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:   getEnv("RABBITMQ_QUEUE", "shopcart_console_actions"),
		ChannelPoolSize: getEnvAsInt("CHANNEL_POOL_SIZE", 10),
		NumWorkers:      getEnvAsInt("NUM_WORKERS", 5),
		StubAPIPort:     getEnv("STUB_API_PORT", "8081"),
	}
}

// ActivityEnabled reports whether action events should be published.
func (c *Config) ActivityEnabled() bool {
	return c.RabbitMQURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
