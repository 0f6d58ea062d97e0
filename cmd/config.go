package main

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	BotID          string        `env:"BOT_ID,required=true" validate:"required"`
	PingAt         string        `env:"PING_AT,default=13:45" validate:"required,datetime=15:04"`
	QueueFile      string        `env:"QUEUE_FILE,default=queue.json" validate:"required"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,default=sotd-badger" validate:"required"`
	Host           string        `env:"HOST,default=0.0.0.0"`
	Port           int           `env:"PORT,default=5000" validate:"min=1,max=65535"`
	LogLevel       string        `env:"LOG_LEVEL,default=INFO"`
	TickInterval   time.Duration `env:"TICK_INTERVAL,default=15s" validate:"min=1s,max=30m"`
	APIEndpoint    string        `env:"GROUPME_API_ENDPOINT,default=https://api.groupme.com/v3/bots/post" validate:"url"`
}

var validate = validator.New()

// Validate catches configuration mistakes at boot instead of at the
// first daily ping.
func (c Config) Validate() error {
	return validate.Struct(c)
}
