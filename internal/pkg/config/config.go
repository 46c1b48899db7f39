package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (base URLs, ports)
// - default: Values common across all environments (timeouts, tuning knobs)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Geo     GeoConfig
	Queue   QueueConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// APIConfig points at the external booking API server.
type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
}

// GeoConfig points at the third-party geocoding/maps provider.
type GeoConfig struct {
	BaseURL string        `envconfig:"GEO_BASE_URL" required:"true"`
	Where   string        `envconfig:"GEO_WHERE" default:"BUSINESS_TYPE='Barber Shop'"`
	Timeout time.Duration `envconfig:"GEO_TIMEOUT" default:"10s"`
}

type QueueConfig struct {
	// Minutes of service time assumed per queued customer when the server
	// supplies no wait estimate of its own.
	AvgServiceMinutes int `envconfig:"QUEUE_AVG_SERVICE_MINUTES" default:"30"`
}

type SessionConfig struct {
	// TokenPath is where the bearer token survives restarts. It is the one
	// piece of durable state this application keeps. Empty disables persistence.
	TokenPath string `envconfig:"SESSION_TOKEN_PATH" default:".barberbook_token"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		API: APIConfig{
			BaseURL: "http://localhost:15000/api",
			Timeout: 2 * time.Second,
		},
		Geo: GeoConfig{
			BaseURL: "http://localhost:15001/query",
			Where:   "BUSINESS_TYPE='Barber Shop'",
			Timeout: 2 * time.Second,
		},
		Queue: QueueConfig{
			AvgServiceMinutes: 30,
		},
		Session: SessionConfig{
			TokenPath: "", // In-memory only for tests
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
