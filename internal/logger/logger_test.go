package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"ERROR", log.ErrorLevel},
		{"", log.InfoLevel},
		{"chatty", log.InfoLevel},
	}

	for _, tt := range tests {
		l := New(&bytes.Buffer{}, tt.in)
		assert.Equal(t, tt.want, l.GetLevel(), "level %q", tt.in)
	}
}

func TestNew_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info").WithPrefix("scraper")

	l.Debug("hidden")
	l.Info("cache refreshed", "repos", 25)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "scraper")
	assert.Contains(t, out, "cache refreshed")
	assert.Contains(t, out, "repos=25")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("dropped")
	assert.Equal(t, log.FatalLevel, l.GetLevel())
}
