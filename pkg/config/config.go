package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"
	StoreMemory    = "memory"
)

type Config struct {
	ServerPort  string
	Environment string

	StoreDriver          string
	MongoURI             string
	DatabaseName         string
	FirebaseProject      string
	FirebaseCredentials  string
	FirebaseCredFile     string
	EnforceUniqueIndexes bool
	StoreTimeout         time.Duration

	JWTSecret string
	JWTExpiry int64

	CORSOrigins    []string
	RequireAuth    bool
	StrictNotFound bool
}

var defaultOrigins = []string{
	"https://myshop-606ef.firebaseapp.com",
	"https://myshop-606ef.web.app",
	"http://localhost:5173",
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:           getEnv("PORT", getEnv("SERVER_PORT", "5000")),
		Environment:          getEnv("ENVIRONMENT", "development"),
		StoreDriver:          strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURI:             getEnv("MONGODB_URI", defaultMongoURI()),
		DatabaseName:         getEnv("DB_NAME", "MyShop"),
		FirebaseProject:      getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials:  getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseCredFile:     getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		EnforceUniqueIndexes: getEnvAsBool("ENFORCE_UNIQUE_INDEXES", false),
		StoreTimeout:         time.Duration(getEnvAsInt64("STORE_TIMEOUT", 0)) * time.Second,
		JWTSecret:            getEnv("ACCESS_SECRET_TOKEN", getEnv("JWT_SECRET", "")),
		JWTExpiry:            getEnvAsInt64("JWT_EXPIRY", 7*24*60*60), // 7 days
		CORSOrigins:          splitCSV(getEnv("CORS_ORIGINS", strings.Join(defaultOrigins, ","))),
		RequireAuth:          getEnvAsBool("REQUIRE_AUTH", false),
		StrictNotFound:       getEnvAsBool("STRICT_NOT_FOUND", false),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMongo, StoreMemory:
	case StoreFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when STORE_DRIVER=%s", StoreFirestore)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.JWTSecret == "" {
		if c.Environment != "development" {
			return fmt.Errorf("ACCESS_SECRET_TOKEN is required outside development")
		}
		c.JWTSecret = "development-secret"
	}

	if c.JWTExpiry <= 0 {
		return fmt.Errorf("JWT_EXPIRY must be positive, got %d", c.JWTExpiry)
	}

	return nil
}

// defaultMongoURI mirrors the Atlas connection string used in production when
// database credentials are present and falls back to a local server otherwise.
func defaultMongoURI() string {
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" || pass == "" {
		return "mongodb://localhost:27017"
	}
	host := getEnv("DB_HOST", "cluster0.yrssrk8.mongodb.net")
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(user), url.QueryEscape(pass), host)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
