package internal

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		BufferSize:        64,
		SessionBufferSize: 16,
		BadgerFilepath:    "/var/lib/im-core/badger",
		LogLevel:          "INFO",
		RestartInterval:   time.Second,
	}
}

func TestConfig_Validate_OK(t *testing.T) {
	req := require.New(t)
	req.NoError(validConfig().Validate())
}

func TestConfig_Validate_Failures(t *testing.T) {
	req := require.New(t)

	config := validConfig()
	config.LogLevel = "VERBOSE"
	req.Error(config.Validate())

	config = validConfig()
	config.BufferSize = 0
	req.Error(config.Validate())

	config = validConfig()
	config.BadgerFilepath = ""
	req.Error(config.Validate())

	config = validConfig()
	config.RestartInterval = 0
	req.Error(config.Validate())
}
