package table_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"csv-adapter/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_HeaderAndRows(t *testing.T) {
	in := "mac,hostname\naa:bb,web-1\ncc:dd,web-2\n"

	tbl, err := table.Read(strings.NewReader(in), ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"mac", "hostname"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "aa:bb", tbl.Rows[0]["mac"])
	assert.Equal(t, "web-1", tbl.Rows[0]["hostname"])
	assert.Equal(t, "web-2", tbl.Rows[1]["hostname"])
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"RaggedRow", "a,b\n1,2,3\n"},
		{"BareQuote", "a,b\n\"x,2\ny\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Read(strings.NewReader(tt.in), ',')
			assert.Error(t, err)
		})
	}
}

func TestReadFile_DetectsSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("mac;hostname\naa:bb;web-1\n"), 0o644))

	tbl, sep, err := table.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, ';', sep)
	assert.Equal(t, []string{"mac", "hostname"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "web-1", tbl.Rows[0]["hostname"])
}

func TestReadFile_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2,3\n"), 0o644))

	_, _, err := table.ReadFile(path)
	var perr *table.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
}

func TestReadFile_Missing(t *testing.T) {
	_, _, err := table.ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	var perr *table.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestWrite_RoundTrip(t *testing.T) {
	tbl := &table.Table{
		Header: []string{"mac", "hostname"},
		Rows: []table.Row{
			{"mac": "aa:bb", "hostname": "web-1"},
			{"mac": "cc:dd", "hostname": "web-2"},
		},
	}

	out, err := tbl.Bytes(';')
	require.NoError(t, err)
	assert.Equal(t, "mac;hostname\naa:bb;web-1\ncc:dd;web-2\n", string(out))
}

func TestWrite_QuotesCellsContainingSeparator(t *testing.T) {
	tbl := &table.Table{
		Header: []string{"name"},
		Rows:   []table.Row{{"name": "a;b"}},
	}

	out, err := tbl.Bytes(';')
	require.NoError(t, err)
	assert.Equal(t, "name\n\"a;b\"\n", string(out))
}

func TestWrite_MissingCellsEmpty(t *testing.T) {
	tbl := &table.Table{
		Header: []string{"mac", "hostname"},
		Rows:   []table.Row{{"mac": "aa:bb"}},
	}

	out, err := tbl.Bytes(',')
	require.NoError(t, err)
	assert.Equal(t, "mac,hostname\naa:bb,\n", string(out))
}
