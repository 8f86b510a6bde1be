package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 30),
			Environment:  getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrDefault("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "upvy_user"),
			Password:     getEnvOrDefault("DB_PASSWORD", ""),
			DatabaseName: getEnvOrDefault("DB_NAME", "upvy_db"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USER", ""),
			Password: getEnvOrDefault("MONGO_PASSWORD", ""),
			Database: getEnvOrDefault("MONGO_DB", "upvy_media"),
		},
		Firebase: FirebaseConfig{
			ProjectID:           getEnvOrDefault("FIREBASE_PROJECT_ID", ""),
			CredentialsFilePath: getEnvOrDefault("FIREBASE_CREDENTIALS_PATH", ""),
			Enabled:             getEnvOrDefault("FIREBASE_ENABLED", "false") == "true",
		},
		Events: EventConfig{
			Workers:           getEnvIntOrDefault("EVENT_WORKERS", 5),
			ChannelBufferSize: getEnvIntOrDefault("EVENT_BUFFER_SIZE", 1000),
		},
		Feed: FeedConfig{
			PageSize:         getEnvIntOrDefault("FEED_PAGE_SIZE", 20),
			FollowingQuota:   getEnvIntOrDefault("FEED_FOLLOWING_QUOTA", 6),
			RecommendedQuota: getEnvIntOrDefault("FEED_RECOMMENDED_QUOTA", 6),
			PopularQuota:     getEnvIntOrDefault("FEED_POPULAR_QUOTA", 4),
			NewQuota:         getEnvIntOrDefault("FEED_NEW_QUOTA", 2),
			RandomQuota:      getEnvIntOrDefault("FEED_RANDOM_QUOTA", 2),
			NeighborFanOut:   getEnvIntOrDefault("FEED_NEIGHBOR_FAN_OUT", 50),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
