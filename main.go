// main is the entry point for the foodrank CLI.
package main

import (
	"errors"
	"io/fs"

	"github.com/huangsam/foodrank/cmd"
	"github.com/huangsam/foodrank/internal/catalog"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; FOODRANK_* variables may come from the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		contract.LogWarn("Cannot load .env file", err)
	}

	cmd.SetCatalogManager(catalog.Manager)
	defer catalog.CloseCatalog()

	if err := cmd.Execute(); err != nil {
		catalog.CloseCatalog()
		contract.LogFatal("Error starting CLI", err)
	}
}
