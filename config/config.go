package config

import "time"

type Config struct {
	Web      Web
	DB       DB
	Cors     Cors
	Session  Session
	Admin    Admin
	WhatsApp WhatsApp
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:8000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type DB struct {
	User       string `conf:"default:postgres"`
	Password   string `conf:"default:postgres,mask"`
	Host       string `conf:"default:localhost:5432"`
	Name       string `conf:"default:fanaka"`
	DisableTLS bool   `conf:"default:true"`
}

type Cors struct {
	Origin string `conf:"default:"`
}

type Session struct {
	Lifetime time.Duration `conf:"default:24h"`
}

type Admin struct {
	Email        string `conf:"default:admin@fanaka.co.ke"`
	PasswordHash string `conf:"mask"`
}

// WhatsApp holds the fixed recipient of checkout messages. Number is the
// shop's phone in international format, with or without the leading plus.
type WhatsApp struct {
	Number string `conf:"default:+254708921377"`
}
