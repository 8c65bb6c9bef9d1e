package internal

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	BufferSize        int           `env:"BUFFER_SIZE,required=true" validate:"min=1"`
	SessionBufferSize int           `env:"SESSION_BUFFER_SIZE,required=true" validate:"min=1"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,required=true" validate:"oneof=DEBUG INFO WARN ERROR"`
	TranscriptLimit   *int          `env:"TRANSCRIPT_LIMIT"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true" validate:"min=1ms"`
}

var validate = validator.New()

// Validate applies the range checks go-env cannot express.
func (c Config) Validate() error {
	return validate.Struct(c)
}
