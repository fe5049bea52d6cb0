package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drlibphonenumber/dr-libphonenumber-go/pkg/phonenumber/logging"
)

func TestMaskNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0129602189", "********89"},
		{"+60 12-960 2189", "*********89"},
		{"12", "[redacted]"},
		{"", "[redacted]"},
		{"abc", "[redacted]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.MaskNumber(tt.in), tt.in)
	}
}

func TestNumberAttrNeverLeaksInput(t *testing.T) {
	var buf bytes.Buffer
	h, err := logging.NewHandler("debug", "json", &buf)
	require.NoError(t, err)

	logger := logging.New(slog.New(h))
	logger.Warn(context.Background(), "rejected", logging.Number("number", "0129602189"), logging.Redacted("path"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "********89", record["number"])
	assert.Equal(t, logging.Placeholder(), record["path"])
	assert.NotContains(t, buf.String(), "0129602189")
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	h, err := logging.NewHandler("warn", "text", &buf)
	require.NoError(t, err)
	logger := logging.New(slog.New(h)).With("component", "test")
	logger.Info(context.Background(), "hidden")
	logger.Error(context.Background(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "component=test")

	_, err = logging.NewHandler("loud", "text", &buf)
	assert.Error(t, err)
	_, err = logging.NewHandler("info", "xml", &buf)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range tests {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDiscard(t *testing.T) {
	logger := logging.Discard()
	logger.Error(context.Background(), "dropped")
	assert.NotNil(t, logger.With("k", "v"))
}
