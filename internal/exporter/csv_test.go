package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "table.csv")

	err := WriteCSV(path, WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"1", "x"}, {"2", "y"}},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "x"}, {"2", "y"}}, rows)
}

func TestWriteCSVWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")

	err := WriteCSV(path, WriteOptions{
		Headers:   []string{"a"},
		Records:   [][]string{{"1"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\xef\xbb\xbf"))
}

func TestWriteCSVTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")

	require.NoError(t, WriteCSV(path, WriteOptions{
		Headers: []string{"a"},
		Records: [][]string{{"old"}, {"rows"}},
	}))
	require.NoError(t, WriteCSV(path, WriteOptions{
		Headers: []string{"a"},
		Records: [][]string{{"new"}},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old")
	assert.Contains(t, string(data), "new")
}

func TestWriteCSVQuotesEmbeddedCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")

	require.NoError(t, WriteCSV(path, WriteOptions{
		Headers: []string{"Item Name"},
		Records: [][]string{{"Sweater, Wool"}},
	}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Sweater, Wool", rows[1][0])
}
