package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Features  FeaturesConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ARTTOY_APP_ENV" required:"true"`
	Port         string `envconfig:"ARTTOY_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"ARTTOY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ARTTOY_LOG_WARN_STACK" default:"false"`
	FrontendURL  string `envconfig:"ARTTOY_FRONTEND_URL"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ARTTOY_DB_DSN"`
	Driver string `envconfig:"ARTTOY_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ARTTOY_DB_HOST"`
	LegacyPort     int    `envconfig:"ARTTOY_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ARTTOY_DB_USER"`
	LegacyPassword string `envconfig:"ARTTOY_DB_PASSWORD"`
	LegacyName     string `envconfig:"ARTTOY_DB_NAME"`
	LegacySSLMode  string `envconfig:"ARTTOY_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ARTTOY_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ARTTOY_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ARTTOY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ARTTOY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ARTTOY_REDIS_URL" required:"true"`
	Password     string        `envconfig:"ARTTOY_REDIS_PASSWORD"`
	DB           int           `envconfig:"ARTTOY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ARTTOY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ARTTOY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ARTTOY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ARTTOY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ARTTOY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ARTTOY_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ARTTOY_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"ARTTOY_JWT_EXPIRATION_MINUTES" default:"60"`
}

// RateLimitConfig mirrors the original deployment's global limiter:
// 300 requests per 10 minutes per client IP.
type RateLimitConfig struct {
	Window   time.Duration `envconfig:"ARTTOY_RATE_LIMIT_WINDOW" default:"10m"`
	IPLimit  int           `envconfig:"ARTTOY_RATE_LIMIT_IP_LIMIT" default:"300"`
	Disabled bool          `envconfig:"ARTTOY_RATE_LIMIT_DISABLED" default:"false"`
}

type FeaturesConfig struct {
	UseSQLite   bool `envconfig:"ARTTOY_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ARTTOY_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
