package server_test

import (
	"testing"

	"room-finder/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Memory", server.SourceMemory, true},
		{"Database", server.SourceDatabase, true},
		{"Storage", server.SourceStorage, true},
		{"Invalid", "ftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Source: tt.source}
			assert.Equal(t, tt.want, c.IsValidSource())
		})
	}
}
