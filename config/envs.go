package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings every command needs. All of them have defaults.
type Config struct {
	HostIP          string  // Host IP for the server
	RESTPort        int     // Port for the REST API
	GinMode         string  // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr       string  // Address of the redis instance backing the plan cache
	RedisPassword   string  // Password for redis, empty when none
	RedisDB         int     // Redis logical database
	CacheTTLSeconds int     // Lifetime of cached answers
	Gamma           float64 // Default discount factor
	DefaultReward   float64 // Default reward of a move
	FinishValue     float64 // Default value of the goal cell
	Iterations      int     // Default sweep cap
	Delta           float64 // Default convergence threshold
}

// Server holds the settings only the API server needs; they have no defaults.
type Server struct {
	DBHost        string // Hostname or IP address for the database
	DBPort        int    // Port number for the database
	DBUser        string // Username for the database
	DBPassword    string // Password for the database
	DBName        string // Name of the database
	JWTSecret     string // Secret key for JWT signing
	JWTIssuer     string // Issuer claim for JWTs
	JWTTTLMinutes int    // Lifetime of issued tokens
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig loads the .env file if present and reads the general settings.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsIntWithDefault("REDIS_DB", 0),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		Gamma:           getEnvAsFloatWithDefault("PLANNER_GAMMA", 0.9),
		DefaultReward:   getEnvAsFloatWithDefault("PLANNER_DEFAULT_REWARD", -1),
		FinishValue:     getEnvAsFloatWithDefault("PLANNER_FINISH_VALUE", 10),
		Iterations:      getEnvAsIntWithDefault("PLANNER_ITERATIONS", 100),
		Delta:           getEnvAsFloatWithDefault("PLANNER_DELTA", 0.001),
	}
}

// LoadServer reads the server-only settings, exiting if any of them is missing.
func LoadServer() Server {
	return Server{
		DBHost:        mustGetEnv("DB_HOST"),
		DBPort:        mustGetEnvAsInt("DB_PORT"),
		DBUser:        mustGetEnv("DB_USER"),
		DBPassword:    mustGetEnv("DB_PASS"),
		DBName:        mustGetEnv("DB_NAME"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		JWTIssuer:     mustGetEnv("JWT_ISSUER"),
		JWTTTLMinutes: getEnvAsIntWithDefault("JWT_TTL_MINUTES", 24*60),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values fall back to the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

// getEnvAsFloatWithDefault is getEnvWithDefault for floats. Unparsable values fall back to the default.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be a number, using %v: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
