package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                   string
	GinMode                string        // release, debug or test
	LogLevel               string        // zap level name
	RedisURL               string        // Optional, shared rate-limit counters when set
	CORSAllowedOrigin      string        // Value for Access-Control-Allow-Origin
	GenerationDelay        time.Duration // Simulated floor plan generation time
	RateLimitRPS           float64       // Rate limit for general API endpoints (requests per second)
	RateLimitBurst         int           // Burst size for rate limiting
	RateLimitAuthRPS       float64       // Rate limit for login/register (stricter)
	RateLimitAuthBurst     int           // Burst size for login/register
	RateLimitGenerateRPS   float64       // Rate limit for floor plan generation (strictest)
	RateLimitGenerateBurst int           // Burst size for floor plan generation
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		GinMode:                ginMode(getEnv("GIN_MODE", "release")),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisURL:               getEnv("REDIS_URL", ""),
		CORSAllowedOrigin:      getEnv("CORS_ALLOWED_ORIGIN", "*"),
		GenerationDelay:        getEnvDuration("GENERATION_DELAY", 2*time.Second),
		RateLimitRPS:           getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:         getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:       getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst:     getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		RateLimitGenerateRPS:   getEnvFloat("RATE_LIMIT_GENERATE_RPS", 1),
		RateLimitGenerateBurst: getEnvInt("RATE_LIMIT_GENERATE_BURST", 3),
	}
}

// ginMode only passes through the modes gin accepts; gin.SetMode panics on anything else.
func ginMode(mode string) string {
	switch mode {
	case "debug", "release", "test":
		return mode
	}
	log.Printf("Unknown GIN_MODE %q, using release", mode)
	return "release"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvDuration accepts Go duration strings ("2s", "1500ms") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return d
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil && secs >= 0 {
		return time.Duration(secs * float64(time.Second))
	}
	return defaultValue
}
