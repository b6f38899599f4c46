package outwriter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"id": "p1", "score": 18}))
	assert.Equal(t, "{\n  \"id\": \"p1\",\n  \"score\": 18\n}\n", buf.String())

	err := writeJSON(&buf, make(chan int))
	assert.ErrorContains(t, err, "failed to encode JSON")
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		records  [][]string
		expected string
	}{
		{"header only", []string{"Metric", "Product 1"}, nil, "Metric,Product 1\n"},
		{"quoted cells", []string{"Metric", "Product 1"}, [][]string{{"Brand", "Smith, Jones & Co"}}, "Metric,Product 1\nBrand,\"Smith, Jones & Co\"\n"},
		{"embedded quotes", []string{"k"}, [][]string{{`say "hi"`}}, "k\n\"say \"\"hi\"\"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCSV(&buf, tt.header, tt.records))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteOutput(t *testing.T) {
	fileConfig := func(t *testing.T) *contract.Config {
		return &contract.Config{Output: schema.CSVOut, OutputFile: filepath.Join(t.TempDir(), "out.csv")}
	}

	t.Run("file", func(t *testing.T) {
		cfg := fileConfig(t)
		err := writeOutput(cfg, func(w io.Writer) error {
			_, err := io.WriteString(w, "Metric,Product 1\n")
			return err
		})
		require.NoError(t, err)

		content, err := os.ReadFile(cfg.OutputFile)
		require.NoError(t, err)
		assert.Equal(t, "Metric,Product 1\n", string(content))
	})

	t.Run("render error", func(t *testing.T) {
		err := writeOutput(fileConfig(t), func(io.Writer) error { return assert.AnError })
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("bad path", func(t *testing.T) {
		cfg := &contract.Config{OutputFile: filepath.Join(t.TempDir(), "missing", "out.txt")}
		err := writeOutput(cfg, func(io.Writer) error { return nil })
		assert.Error(t, err)
	})

	t.Run("every output mode has a label", func(t *testing.T) {
		for mode := range schema.ValidOutputModes {
			assert.NotEmpty(t, formatLabels[mode], "output mode %s", mode)
		}
	})
}
