package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
	OTP      OTPConfig
	Geocode  GeocodeConfig
	Outbox   OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	// seconds east of UTC
	TimeZoneOffset int `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type DispatchConfig struct {
	RequestTimeout  time.Duration `envconfig:"DISPATCH_REQUEST_TIMEOUT" default:"2m"`
	SweepInterval   time.Duration `envconfig:"DISPATCH_SWEEP_INTERVAL" default:"15s"`
	Rebroadcast     bool          `envconfig:"DISPATCH_REBROADCAST" default:"true"`
	MaxRounds       int           `envconfig:"DISPATCH_MAX_ROUNDS" default:"3"`
	CandidateRadius float64       `envconfig:"DISPATCH_CANDIDATE_RADIUS_KM" default:"10"`
	CandidateLimit  int           `envconfig:"DISPATCH_CANDIDATE_LIMIT" default:"10"`
	SiblingExpiry   time.Duration `envconfig:"DISPATCH_SIBLING_EXPIRY_TIMEOUT" default:"5s"`
}

type OTPConfig struct {
	MaxFailedAttempts int `envconfig:"OTP_MAX_FAILED_ATTEMPTS" default:"5"`
}

type GeocodeConfig struct {
	// empty disables geocoding
	APIKey string `envconfig:"GOOGLE_MAPS_API_KEY" default:""`
}

type OutboxConfig struct {
	// empty disables the relay
	AMQPURL      string        `envconfig:"OUTBOX_AMQP_URL" default:""`
	Exchange     string        `envconfig:"OUTBOX_EXCHANGE" default:"booking.notifications"`
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"8"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: time.Hour,
		},
		Dispatch: DispatchConfig{
			RequestTimeout:  time.Minute,
			SweepInterval:   time.Hour, // sweeps are triggered explicitly in tests
			Rebroadcast:     true,
			MaxRounds:       3,
			CandidateRadius: 10,
			CandidateLimit:  10,
			SiblingExpiry:   5 * time.Second,
		},
		OTP: OTPConfig{
			MaxFailedAttempts: 5,
		},
		Outbox: OutboxConfig{
			Exchange:     "booking.notifications",
			PollInterval: time.Second,
			BatchSize:    50,
			MaxAttempts:  8,
		},
	}
}
