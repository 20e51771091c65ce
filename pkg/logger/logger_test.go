package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetMode(t *testing.T) {
	SetMode("debug")
	assert.Equal(t, zapcore.DebugLevel, Level())

	SetMode("release")
	assert.Equal(t, zapcore.InfoLevel, Level())
}

func TestInitConsole(t *testing.T) {
	InitConsole(false)
	assert.Equal(t, zapcore.WarnLevel, Level())
	assert.NotNil(t, Log)

	InitConsole(true)
	assert.Equal(t, zapcore.DebugLevel, Level())
}
