package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	NewRelic NewRelicConfig
	Upstream UpstreamConfig
	Region   RegionConfig
	Tariff   TariffConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// UpstreamConfig holds the endpoints of the external data providers.
type UpstreamConfig struct {
	OSRMBaseURL       string
	PhotonBaseURL     string
	OverpassEndpoints []string
	EventsBaseURL     string
	Timeout           time.Duration
}

// RegionConfig pins the service to its home region: result ranking for
// geocoding and the bounding boxes used by the upstream queries.
type RegionConfig struct {
	BiasLat      float64
	BiasLng      float64
	PhotonBBox   string
	OverpassBBox string
	CountryCode  string
	State        string
	City         string
	NearbyCities []string
}

// TariffConfig holds the tariff table source. When Path is empty the
// built-in table is used.
type TariffConfig struct {
	Path string
}

// Load loads configuration from environment variables. In a local
// environment a .env file is read first.
func Load() *Config {
	if getEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(); err == nil {
			log.Println("Loaded configuration from .env")
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Enabled:  getBoolEnv("REDIS_ENABLED", true),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "cityguide"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		Upstream: UpstreamConfig{
			OSRMBaseURL:       getEnv("OSRM_BASE_URL", "https://router.project-osrm.org"),
			PhotonBaseURL:     getEnv("PHOTON_BASE_URL", "https://photon.komoot.io"),
			OverpassEndpoints: getListEnv("OVERPASS_ENDPOINTS", []string{
				"https://overpass-api.de/api/interpreter",
				"https://overpass.kumi.systems/api/interpreter",
			}),
			EventsBaseURL: getEnv("EVENTS_BASE_URL", "https://party-insider.com/wp-json"),
			Timeout:       getDurationEnv("UPSTREAM_TIMEOUT", 15*time.Second),
		},
		Region: RegionConfig{
			BiasLat:      getFloatEnv("REGION_BIAS_LAT", 47.6779),
			BiasLng:      getFloatEnv("REGION_BIAS_LON", 9.1732),
			PhotonBBox:   getEnv("REGION_PHOTON_BBOX", "8.65,47.55,9.35,47.85"),
			OverpassBBox: getEnv("REGION_OVERPASS_BBOX", "47.64,9.13,47.71,9.22"),
			CountryCode:  getEnv("REGION_COUNTRY_CODE", "DE"),
			State:        getEnv("REGION_STATE", "Baden-Württemberg"),
			City:         getEnv("REGION_CITY", "Konstanz"),
			NearbyCities: getListEnv("REGION_NEARBY_CITIES", []string{
				"Kreuzlingen", "Allensbach", "Reichenau", "Radolfzell", "Meersburg",
			}),
		},
		Tariff: TariffConfig{
			Path: getEnv("TARIFF_CONFIG_PATH", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
