package config

import "time"

type Config struct {
	Web    Web
	Cors   Cors
	DB     DB
	Images Images
	Rate   Rate
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:3000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string
}

type DB struct {
	URI         string `conf:"required"`
	Name        string `conf:"default:lessons"`
	InsecureTLS bool   `conf:"default:false"`
	Seed        bool   `conf:"default:false"`
}

type Images struct {
	Dir string `conf:"default:static/images"`
}

// Rate limiting stays off unless RPS is set above zero.
type Rate struct {
	RPS    float64       `conf:"default:0"`
	Burst  int           `conf:"default:5"`
	Expiry time.Duration `conf:"default:10m"`
}
