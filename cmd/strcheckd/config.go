package main

import "time"

type appConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	Service         string        `env:"APP_NAME" envDefault:"strcheckd"`
	LogLevel        string        `env:"LOG_LEVEL"`
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	DefaultLang     string        `env:"DEFAULT_LANG" envDefault:"en"`
	MaxBatchItems   int           `env:"MAX_BATCH_ITEMS" envDefault:"100"`
}
