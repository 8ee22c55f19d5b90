package logger_test

import (
	"bytes"
	"testing"

	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		opts logger.Options
		want zapcore.Level
	}{
		{name: "default", opts: logger.Options{}, want: zapcore.InfoLevel},
		{name: "verbose", opts: logger.Options{Verbose: true}, want: zapcore.DebugLevel},
		{name: "quiet", opts: logger.Options{Quiet: true}, want: zapcore.WarnLevel},
		{name: "quiet wins over verbose", opts: logger.Options{Quiet: true, Verbose: true}, want: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.Level(tt.opts))
		})
	}
}

func TestNew_Gating(t *testing.T) {
	t.Run("default hides debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.Options{Output: &buf})
		log.Debug("hidden")
		log.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("verbose shows debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.Options{Verbose: true, Output: &buf})
		log.Debugf("fetching %s", "credentials")
		assert.Contains(t, buf.String(), "fetching credentials")
	})

	t.Run("quiet still reports errors", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.Options{Quiet: true, Output: &buf})
		log.Info("chatter")
		log.Error("boom")
		assert.NotContains(t, buf.String(), "chatter")
		assert.Contains(t, buf.String(), "boom")
	})
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logger.OrNop(nil))

	log := logger.Nop()
	assert.Same(t, log, logger.OrNop(log))
}
