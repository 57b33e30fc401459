package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr string
	}{
		{name: "console at info", level: "info", format: "console"},
		{name: "json at debug", level: "debug", format: "json"},
		{name: "unknown level", level: "verbose", format: "console", wantErr: "invalid log level"},
		{name: "unknown format", level: "info", format: "logfmt", wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLogger(tt.level, tt.format)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
