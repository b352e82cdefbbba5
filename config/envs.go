package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	StorageFile  = "file"
	StorageGdata = "gdata"
	StorageRedis = "redis"
	StorageMongo = "mongo"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	StorageBackend   string // One of file, gdata, redis, mongo
	StorageDir       string // Root directory of the file backend
	GdataApp         string // Application name for the gdata backend
	RedisAddr        string // Address of the Redis server
	RedisTTLSeconds  int    // Expiry of stored mazes in Redis, 0 for none
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	MaxMazeDimension int    // Largest accepted width or height
}

// Envs holds the configuration loaded by Load.
var Envs Config

// Load reads the application configuration from the environment.
// Variables in a .env file are loaded first if it exists.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		StorageBackend:   getEnvWithDefault("STORAGE_BACKEND", StorageFile),
		StorageDir:       getEnvWithDefault("STORAGE_DIR", "mazes"),
		GdataApp:         getEnvWithDefault("GDATA_APP", "vinom_maze"),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisTTLSeconds:  getEnvAsIntWithDefault("REDIS_TTL_SECONDS", 0),
		DBHost:           getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:           getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:           getEnvWithDefault("DB_USER", ""),
		DBPassword:       getEnvWithDefault("DB_PASS", ""),
		DBName:           getEnvWithDefault("DB_NAME", "vinom"),
		MaxMazeDimension: getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 50),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer.
// A set but unparsable value logs a fatal error.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
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
