package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	App        App
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	Geo        Geo
	Pagination Pagination
}

type App struct {
	Name      string `env:"APP_NAME" env-default:"geo-backend"`
	Version   string `env:"APP_VERSION" env-default:"1.0.0"`
	APIPrefix string `env:"API_PREFIX" env-default:"/api/v1/geo"`
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT JWTConfig
}

type JWTConfig struct {
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	SigningKey     string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

// Geo holds the service operating region. The defaults cover Colombia,
// which is narrower than raw WGS84 bounds on purpose.
type Geo struct {
	DefaultCountry   string  `env:"GEO_DEFAULT_COUNTRY" env-default:"Colombia"`
	DefaultZoneColor string  `env:"GEO_DEFAULT_ZONE_COLOR" env-default:"#3498DB"`
	MinLatitude      float64 `env:"GEO_MIN_LATITUDE" env-default:"-5"`
	MaxLatitude      float64 `env:"GEO_MAX_LATITUDE" env-default:"13"`
	MinLongitude     float64 `env:"GEO_MIN_LONGITUDE" env-default:"-80"`
	MaxLongitude     float64 `env:"GEO_MAX_LONGITUDE" env-default:"-66"`
}

type Pagination struct {
	DefaultLimit int `env:"PAGINATION_DEFAULT_LIMIT" env-default:"100"`
	MaxLimit     int `env:"PAGINATION_MAX_LIMIT" env-default:"1000"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
