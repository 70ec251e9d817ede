package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	AppTitle    string `env:"APP_TITLE" envDefault:"identity-api"`
	AppVersion  string `env:"APP_VERSION" envDefault:"?.?"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Opciones de emisión de tokens. El secreto debe tener al menos 64
	// bytes para HMAC-SHA512; se valida al construir el TokenService.
	TokenSecretKey          string `env:"TOKEN_SECRET_KEY,required"`
	TokenIssuer             string `env:"TOKEN_ISSUER" envDefault:"identity-api"`
	TokenAudience           string `env:"TOKEN_AUDIENCE" envDefault:"identity-clients"`
	AccessExpiresInMinutes  int    `env:"ACCESS_EXPIRES_IN_MINUTES" envDefault:"60"`
	RefreshExpiresInMinutes int    `env:"REFRESH_EXPIRES_IN_MINUTES" envDefault:"1440"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
