package table_test

import (
	"testing"

	"csv-adapter/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSeparator(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want rune
	}{
		{"Comma", "mac,hostname\naa,web-1\n", ','},
		{"Semicolon", "mac;hostname\naa;web-1\n", ';'},
		{"Tab", "mac\thostname\naa\tweb-1\n", '\t'},
		{"Pipe", "mac|hostname\naa|web-1\n", '|'},
		// A semicolon on every line beats a comma on one line.
		{"MajorityWins", "mac;hostname\naa;web,extra\nbb;web-2\n", ';'},
		// Only the leading lines are inspected.
		{"IgnoresLaterLines", "a,b\n1,2\n3,4\n5;6\n7;8\n9;10\n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sep, err := table.DetectSeparator([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, sep)
		})
	}
}

func TestDetectSeparator_None(t *testing.T) {
	_, err := table.DetectSeparator([]byte("justonecolumn\nvalue\n"))
	assert.ErrorIs(t, err, table.ErrNoSeparator)
}
