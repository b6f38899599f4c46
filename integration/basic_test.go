//go:build basic

package integration

import (
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFromFile(t *testing.T) {
	file := writeProductsFixture(t)

	t.Run("table", func(t *testing.T) {
		out, err := runFoodrank(t, "compare", "5900000000001", "5900000000002",
			"--file", file, "--view", "table", "--color", "no")
		require.NoError(t, err)
		assert.Contains(t, out, "🔎 Source: products.json")
		assert.Contains(t, out, "📊 Comparing: Paprika Crisps ↔ Oat Bar")
		assert.Contains(t, out, "1.25 g ✗")
		assert.Contains(t, out, "0.05 g ✓")
		assert.Contains(t, out, "🏆 Healthiest: Oat Bar (score 18)")
	})

	t.Run("cards", func(t *testing.T) {
		out, err := runFoodrank(t, "compare", "5900000000001", "5900000000002", "5900000000003",
			"--file", file, "--view", "cards", "--card", "3", "--color", "no")
		require.NoError(t, err)
		assert.Contains(t, out, "[Cola]")
		assert.Contains(t, out, "← 3 of 3 →")
		assert.Contains(t, out, "🍬 High Sugar")
		assert.Contains(t, out, "Allergens: None declared")
	})

	t.Run("narrow terminal picks cards", func(t *testing.T) {
		out, err := runFoodrank(t, "compare", "5900000000001", "5900000000002",
			"--file", file, "--width", "60", "--color", "no")
		require.NoError(t, err)
		assert.Contains(t, out, "← 1 of 2 →")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runFoodrankStdout(t, "compare", "5900000000003", "5900000000002",
			"--file", file, "--output", "json")
		require.NoError(t, err)

		var result struct {
			WinnerIdx int `json:"winner_idx"`
			Rows      []struct {
				Key     string          `json:"key"`
				Ranking json.RawMessage `json:"ranking"`
			} `json:"rows"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, 1, result.WinnerIdx)
		for _, row := range result.Rows {
			if row.Key == "salt_g" {
				assert.Equal(t, "null", string(row.Ranking), "one reported salt value is not ranked")
			}
		}
	})

	t.Run("csv", func(t *testing.T) {
		out, err := runFoodrankStdout(t, "compare", "5900000000001", "5900000000002",
			"--file", file, "--output", "csv", "--precision", "1")
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []string{"Metric", "Product 1", "Product 2"}, records[0])
		found := false
		for _, r := range records {
			if r[0] == "Salt" {
				found = true
				assert.Equal(t, []string{"Salt", "1.3 g", "0.1 g"}, r)
			}
		}
		assert.True(t, found)
	})

	t.Run("parquet", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "comparison.parquet")
		out, err := runFoodrank(t, "compare", "5900000000001", "5900000000002",
			"--file", file, "--output", "parquet", "--output-file", outFile)
		require.NoError(t, err)
		assert.Contains(t, out, "💾 Wrote Parquet to "+outFile)
	})
}

func TestCompareErrors(t *testing.T) {
	file := writeProductsFixture(t)

	out, err := runFoodrank(t, "compare", "5900000000001", "--file", file)
	assert.Error(t, err)
	assert.Contains(t, out, "select at least 2 products to compare")

	out, err = runFoodrank(t, "compare", "5900000000001", "missing", "--file", file)
	assert.Error(t, err)
	assert.Contains(t, out, "product not found")

	out, err = runFoodrank(t, "compare", "a", "b", "--file", file, "--precision", "7")
	assert.Error(t, err)
	assert.Contains(t, out, "precision must be between")

	out, err = runFoodrank(t, "compare", "a", "b", "--file", file, "--output", "parquet")
	assert.Error(t, err)
	assert.Contains(t, out, "parquet output requires --output-file")
}

func TestSQLiteCatalog(t *testing.T) {
	file := writeProductsFixture(t)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	t.Setenv("FOODRANK_CATALOG_BACKEND", "sqlite")
	t.Setenv("FOODRANK_CATALOG_DB_CONNECT", dbPath)

	out, err := runFoodrank(t, "catalog", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully migrated")

	out, err = runFoodrank(t, "catalog", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 products")

	out, err = runFoodrank(t, "catalog", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Products: 3")

	out, err = runFoodrank(t, "catalog", "list", "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 3 products")

	out, err = runFoodrank(t, "compare", "5900000000002", "5900000000001", "--view", "table", "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "🔎 Source: sqlite catalog")
	assert.Contains(t, out, "🏆 Healthiest: Oat Bar (score 18)")

	out, err = runFoodrank(t, "catalog", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog cleared successfully.")
	assert.NoFileExists(t, dbPath)
}

func TestStaticCommands(t *testing.T) {
	out, err := runFoodrank(t, "rows", "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "🥗 Comparison Metrics")
	assert.Contains(t, out, "higher is better")

	out, err = runFoodrankStdout(t, "schema")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "foodrank product", doc["title"])

	out, err = runFoodrank(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "foodrank CLI")
}
