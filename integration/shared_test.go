//go:build basic || database

// Package integration contains end-to-end tests for the foodrank binary.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Database tests need Docker: go test -tags database ./integration
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	// sharedFoodrankPath holds the path to a shared foodrank binary built once for all tests.
	sharedFoodrankPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// productsFixture has three products: a salty snack, a healthy bar and a drink
// with most nutrition values missing.
const productsFixture = `[
  {
    "product_id": "5900000000001", "product_name": "Paprika Crisps", "brand": "Acme",
    "category": "snacks", "unhealthiness_score": 62, "nutri_score": "D", "nova_group": "4",
    "calories": 536, "total_fat_g": 34, "saturated_fat_g": 3.1, "sugars_g": 2.4,
    "salt_g": 1.25, "fibre_g": 4.4, "protein_g": 6.1, "carbs_g": 51,
    "additives_count": 3, "allergen_count": 1, "allergen_tags": "en:milk",
    "high_salt": true, "high_sat_fat": false
  },
  {
    "product_id": "5900000000002", "product_name": "Oat Bar", "brand": "Good Co",
    "category": "snacks", "unhealthiness_score": 18, "nutri_score": "A", "nova_group": "3",
    "calories": 402, "total_fat_g": 12, "saturated_fat_g": 1.8, "sugars_g": 14,
    "salt_g": 0.05, "fibre_g": 8.2, "protein_g": 9.4, "carbs_g": 60,
    "additives_count": 0, "allergen_count": 2, "allergen_tags": "en:gluten, en:oats"
  },
  {
    "product_id": "5900000000003", "product_name": "Cola", "unhealthiness_score": 40,
    "calories": 42, "sugars_g": 10.6, "high_sugar": true
  }
]`

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getFoodrankBinary returns the path to the foodrank binary, building it once if needed.
func getFoodrankBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "foodrank-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		foodrankPath := filepath.Join(tempDir, "foodrank")
		buildCmd := exec.Command("go", "build", "-o", foodrankPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if out, err := buildCmd.CombinedOutput(); err != nil {
			panic(fmt.Sprintf("failed to build foodrank binary: %v\n%s", err, out))
		}

		sharedFoodrankPath = foodrankPath
	})

	return sharedFoodrankPath
}

// writeProductsFixture writes the fixture to a temp file and returns its path.
func writeProductsFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(productsFixture), 0o600))
	return path
}

// runFoodrank runs the binary from a temp directory and returns stdout and stderr combined.
func runFoodrank(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getFoodrankBinary(), args...)
	cmd.Dir = t.TempDir() // Keep stray .foodrank.yaml or .env files out of the run
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

// runFoodrankStdout runs the binary and returns only stdout.
func runFoodrankStdout(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getFoodrankBinary(), args...)
	cmd.Dir = t.TempDir()
	output, err := cmd.Output()
	if err != nil {
		t.Logf("Command failed: %s", cmd.String())
	}
	return string(output), err
}
