package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/foodrank/internal/catalog"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// catalogManager is the global catalog manager instance.
var catalogManager contract.CatalogManager

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "foodrank",
	Short:              "Compare food products side by side and find the healthiest one.",
	Long:               `Foodrank lines up 2 to 4 food products, marks the best and worst value of every nutrition metric, and names the healthiest product.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigFile()

	// Set environment variable prefix
	viper.SetEnvPrefix("FOODRANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("fallback", contract.DefaultFallback)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("view", schema.AutoView)
	viper.SetDefault("limit", contract.DefaultListLimit)
	viper.SetDefault("catalog-backend", schema.SQLiteBackend)
	viper.SetDefault("catalog-db-connect", "")
	viper.SetDefault("color", "yes")
}

// setConfigFile points Viper at --config, or at .foodrank.yaml in the working or home directory.
func setConfigFile() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".foodrank") // Name of config file (without extension)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	setConfigFile()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}
	return nil
}

// sharedSetup unmarshals config and runs validation. The catalog is opened only when
// withCatalog is set and no products file was given.
func sharedSetup(args []string, withCatalog bool) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	input.ProductIDs = args

	// 4. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 5. Open the catalog with the validated config
	if !withCatalog || cfg.ProductFile != "" {
		return nil
	}
	return catalog.InitCatalog(cfg.CatalogBackend, cfg.CatalogDBConnect)
}

// sharedSetupWrapper adapts sharedSetup for commands that read products.
func sharedSetupWrapper(_ *cobra.Command, args []string) error {
	return sharedSetup(args, true)
}

// staticSetupWrapper adapts sharedSetup for commands that need no products.
func staticSetupWrapper(_ *cobra.Command, _ []string) error {
	return sharedSetup(nil, false)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetCatalogManager sets the global catalog manager.
func SetCatalogManager(mgr contract.CatalogManager) {
	catalogManager = mgr
}
