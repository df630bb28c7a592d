package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavprovich/drivehub/pkg/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	log, err := logger.NewWithWriter(context.Background(), &logger.Config{
		Level:       "DEBUG",
		Format:      "json",
		ServiceName: "drivehub-test",
	}, &buf)
	require.NoError(t, err)

	log.Printf("cache %s", "ready")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cache ready", line["msg"])
	assert.Equal(t, "drivehub-test", line["service"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "http", line["component"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log, err := logger.NewWithWriter(context.Background(), &logger.Config{
		Level:  "warn",
		Format: "text",
	}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{name: "bad_level", cfg: logger.Config{Level: "verbose", Format: "json"}},
		{name: "bad_format", cfg: logger.Config{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := logger.New(context.Background(), &tt.cfg)
			assert.Error(t, err)
		})
	}
}
