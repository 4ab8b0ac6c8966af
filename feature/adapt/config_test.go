package adapt_test

import (
	"testing"

	"csv-adapter/feature/adapt"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidSink(t *testing.T) {
	tests := []struct {
		name string
		sink string
		want bool
	}{
		{"Directory", adapt.SinkDirectory, true},
		{"Storage", adapt.SinkStorage, true},
		{"Invalid", "ftp", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := adapt.Config{Sink: tt.sink}
			assert.Equal(t, tt.want, c.IsValidSink())
		})
	}
}
