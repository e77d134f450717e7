package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"full", Config{Logger: Logger{LogLevel: "debug", FileLogName: "app.log", MaxSize: 10, RecentEntries: 256}}, false},
		{"bad_level", Config{Logger: Logger{LogLevel: "verbose"}}, true},
		{"negative_recent", Config{Logger: Logger{RecentEntries: -1}}, true},
		{"max_recent", Config{Logger: Logger{RecentEntries: 1_000_000}}, false},
		{"huge_recent", Config{Logger: Logger{RecentEntries: 1_000_001}}, true},
		{"negative_size", Config{Logger: Logger{MaxSize: -5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
