// Package main provides a performance benchmarking tool for the foodrank CLI.
// It generates synthetic catalogs of increasing size and measures how long a
// comparison takes when products come from a file versus the SQLite catalog,
// treating the first catalog run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - foodrank binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated product files and catalog databases
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/foodrank/schema"
)

// BenchmarkResult holds the result of a benchmark run (file average, cold run and average of warm runs).
type BenchmarkResult struct {
	CatalogSize int
	Command     string
	FileTime    string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir      string
	Timeout      time.Duration
	FileRuns     int
	CatalogRuns  int
	CatalogSizes []int
	CompareSizes []int // How many products each compare run lines up
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:      os.Args[1],
		Timeout:      2 * time.Minute,
		FileRuns:     3,
		CatalogRuns:  4,
		CatalogSizes: []int{100, 1_000, 10_000, 50_000},
		CompareSizes: []int{2, 4},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results, config)
}

// checkPrerequisites verifies that the foodrank binary exists and the work directory is usable.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("foodrank"); err != nil {
		return fmt.Errorf("foodrank binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// generateProducts builds a deterministic synthetic catalog.
func generateProducts(n int) []schema.Product {
	rng := rand.New(rand.NewPCG(42, uint64(n)))
	grades := []string{"A", "B", "C", "D", "E"}
	value := func(limit float64) *float64 {
		if rng.IntN(10) == 0 {
			return nil // About one in ten values is not reported
		}
		v := rng.Float64() * limit
		return &v
	}

	products := make([]schema.Product, n)
	for i := range products {
		grade := grades[rng.IntN(len(grades))]
		nova := fmt.Sprintf("%d", 1+rng.IntN(4))
		salt := value(3)
		products[i] = schema.Product{
			ProductID:          fmt.Sprintf("bench-%06d", i),
			ProductName:        fmt.Sprintf("Benchmark Product %d", i),
			Brand:              fmt.Sprintf("Brand %d", i%50),
			Category:           "benchmark",
			UnhealthinessScore: float64(1 + rng.IntN(100)),
			NutriScore:         &grade,
			NovaGroup:          &nova,
			Calories:           value(900),
			TotalFatG:          value(100),
			SaturatedFatG:      value(50),
			SugarsG:            value(100),
			SaltG:              salt,
			FibreG:             value(20),
			ProteinG:           value(40),
			CarbsG:             value(100),
			HighSalt:           salt != nil && *salt > 1.5,
		}
	}
	return products
}

// writeProductsFile writes a synthetic catalog of size n as JSON and returns its path.
func writeProductsFile(config BenchmarkConfig, n int) (string, error) {
	path := filepath.Join(config.WorkDir, fmt.Sprintf("products_%d.json", n))
	data, err := json.Marshal(generateProducts(n))
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o644)
}

// compareIDs picks ids spread across the catalog so lookups don't hit one page.
func compareIDs(catalogSize, count int) []string {
	ids := make([]string, count)
	for i := range ids {
		ids[i] = fmt.Sprintf("bench-%06d", (i*catalogSize)/count)
	}
	return ids
}

// runBenchmarks executes all benchmark tests across configured catalog sizes
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d catalog sizes, %v timeout, file: %d runs, catalog: %d runs\n",
		len(config.CatalogSizes), config.Timeout, config.FileRuns, config.CatalogRuns)

	for _, size := range config.CatalogSizes {
		fmt.Printf("Benchmarking catalog of %d products\n", size)

		file, err := writeProductsFile(config, size)
		if err != nil {
			return nil, fmt.Errorf("failed to generate products: %w", err)
		}

		dbPath := filepath.Join(config.WorkDir, fmt.Sprintf("catalog_%d.db", size))
		_ = os.Remove(dbPath)
		importStart := time.Now()
		if output, err := runFoodrank(config, []string{"catalog", "import", file}, dbPath); err != nil {
			return nil, fmt.Errorf("failed to import catalog: %v\nOutput: %s", err, output)
		}
		fmt.Printf("  Imported in %.3fs\n", time.Since(importStart).Seconds())

		for _, count := range config.CompareSizes {
			args := append([]string{"compare"}, compareIDs(size, count)...)
			args = append(args, "--view", "table", "--color", "no")
			results = append(results, runBenchmarkSuite(config, size, count, args, file, dbPath))
		}
	}

	return results, nil
}

// runBenchmarkSuite runs both file and catalog benchmarks for one compare invocation
func runBenchmarkSuite(config BenchmarkConfig, size, count int, args []string, file, dbPath string) BenchmarkResult {
	command := fmt.Sprintf("compare x%d", count)
	fmt.Printf("Running %s on %d products\n", command, size)

	average := func(times []float64) string {
		if len(times) == 0 {
			return "TIMEOUT"
		}
		var sum float64
		for _, t := range times {
			sum += t
		}
		return fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	// Phase 1: products file, parsed on every run
	fmt.Printf("  File phase (%d runs)\n", config.FileRuns)
	fileArgs := append(append([]string{}, args...), "--file", file)
	fileCold, fileWarm := runBenchmark(config, fileArgs, dbPath, config.FileRuns)
	var fileTimes []float64
	if fileCold > 0 {
		fileTimes = append([]float64{fileCold}, fileWarm...)
	}
	fileAvg := average(fileTimes)

	// Phase 2: SQLite catalog
	fmt.Printf("  Catalog phase (%d runs)\n", config.CatalogRuns)
	coldTime, warmTimes := runBenchmark(config, args, dbPath, config.CatalogRuns)
	warmAvg := average(warmTimes)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  File average: %s, Cold time: %s, Warm average: %s\n", fileAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		CatalogSize: size,
		Command:     command,
		FileTime:    fileAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a foodrank command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, args []string, dbPath string, numRuns int) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()
		output, err := runFoodrank(config, args, dbPath)
		if err == nil && isSuccess(output) {
			times = append(times, time.Since(start).Seconds())
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// runFoodrank runs one foodrank command against the SQLite catalog at dbPath.
func runFoodrank(config BenchmarkConfig, args []string, dbPath string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "foodrank", args...)
	cmd.Dir = config.WorkDir
	cmd.Env = append(os.Environ(), "FOODRANK_CATALOG_BACKEND=sqlite", "FOODRANK_CATALOG_DB_CONNECT="+dbPath)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output string) bool {
	return strings.Contains(output, "🏆 Healthiest:") && strings.Contains(output, "Compared")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/foodrank_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"catalog_size", "cmd", "file_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{fmt.Sprintf("%d", result.CatalogSize), result.Command, result.FileTime, result.ColdTime, result.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult, config BenchmarkConfig) {
	fmt.Printf("Benchmark complete\n")
	for _, count := range config.CompareSizes {
		command := fmt.Sprintf("compare x%d", count)
		fmt.Printf("Compare %d products:\n", count)
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %8d products: File: %s, Cold: %s, Warm: %s\n", result.CatalogSize, result.FileTime, result.ColdTime, result.WarmTime)
			}
		}
	}
	fmt.Printf("Benchmark script completed successfully\n")
}
