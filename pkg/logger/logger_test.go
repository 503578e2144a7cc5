package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_LevelPerEnvironment(t *testing.T) {
	Init("development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init("production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Init("staging")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
