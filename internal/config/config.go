package config

import (
	"fmt"
	"time"

	"github.com/MasteriNeuron/ToDo-List-Project/internal/utils"

	"github.com/ilyakaznacheev/cleanenv"
)

// envDuration parses env as time.Duration: "10s", "5m" or bare number =
// seconds (e.g. "10" -> 10s).
type envDuration time.Duration

// SetValue implements cleanenv's Setter interface.
func (d *envDuration) SetValue(s string) error {
	v, err := utils.ParseDurationEnv(s)
	if err != nil {
		return err
	}
	*d = envDuration(v)
	return nil
}

func (d envDuration) Duration() time.Duration { return time.Duration(d) }

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	PG   PGConfig
	JWT  JWTConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	Port string `env:"HTTP_PORT" env-default:"8080"`

	// Value: "10s", "5m" or a number of seconds without suffix (e.g. 10).
	ReadTimeout  envDuration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout envDuration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  envDuration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type PGConfig struct {
	DSN string `env:"PG_DSN" env-required:"true"`
}

type JWTConfig struct {
	// Secret signs every issued token; rotating it logs everyone out.
	Secret string `env:"JWT_SECRET" env-required:"true"`
	// TTL is how long an issued token stays valid.
	TTL envDuration `env:"JWT_TTL" env-default:"1h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
