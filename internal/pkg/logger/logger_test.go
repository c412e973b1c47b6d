package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout})
	})

	cases := []struct {
		level  string
		global zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			Configure(ConfigFromStrings(tc.level, "json"))
			assert.Equal(t, tc.global, zerolog.GlobalLevel())
		})
	}

	t.Run("Should write JSON lines tagged with the service", func(t *testing.T) {
		var buf bytes.Buffer
		Configure(Config{Level: InfoLevel, Output: &buf})

		Info().Str("userID", "user-1").Msg("Profile created")

		assert.Contains(t, buf.String(), `"service":"mentorly"`)
		assert.Contains(t, buf.String(), `"userID":"user-1"`)
		assert.Contains(t, buf.String(), `"message":"Profile created"`)
	})

	t.Run("Should drop errors when only fatal entries are enabled", func(t *testing.T) {
		var buf bytes.Buffer
		Configure(Config{Level: FatalLevel, Output: &buf})

		Error().Msg("suppressed")

		assert.Empty(t, buf.String())
	})
}
