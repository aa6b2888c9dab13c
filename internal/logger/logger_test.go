package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		wantLevel zerolog.Level
		expectErr bool
	}{
		{name: "empty config defaults to info", cfg: Config{}, wantLevel: zerolog.InfoLevel},
		{name: "debug level", cfg: Config{Level: "debug"}, wantLevel: zerolog.DebugLevel},
		{name: "warn to stderr", cfg: Config{Level: "warn", Output: "stderr"}, wantLevel: zerolog.WarnLevel},
		{name: "console format", cfg: Config{Format: "console"}, wantLevel: zerolog.InfoLevel},
		{name: "bad level", cfg: Config{Level: "chatty"}, expectErr: true},
		{name: "bad format", cfg: Config{Format: "xml"}, expectErr: true},
		{name: "bad output", cfg: Config{Output: "syslog"}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.cfg)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, log.GetLevel())
		})
	}
}
