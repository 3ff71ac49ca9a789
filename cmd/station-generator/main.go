// Package main provides the CLI entrypoint for station-generator.
//
// station-generator turns a YAML weather station configuration into the Go
// setup code wiring sensors onto their firmware drivers:
//   - Parses the document and resolves every block against the registry
//   - Validates options with path-qualified diagnostics
//   - Generates a formatted setup file calling the driver setters
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"station-generator/internal/config"
	"station-generator/internal/diagnostic"
	"station-generator/internal/gen"

	// Integration packages register themselves with the registry.
	_ "station-generator/internal/components/misol"
	_ "station-generator/internal/components/misol/binarysensor"
	_ "station-generator/internal/components/misol/sensor"
	_ "station-generator/internal/components/misol/textsensor"
)

var (
	// Global flags
	verbose      bool
	outputDir    string
	packageName  string
	driverModule string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "station-generator",
	Short: "Weather station configuration compiler",
	Long: `station-generator compiles a declarative YAML configuration of a Misol
weather station into Go setup code for the firmware.

The configuration declares the station hub and the sensors to expose; the
generated file constructs each sensor, applies its options, and wires it onto
the station driver.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// validateCmd checks a configuration without generating anything
var validateCmd = &cobra.Command{
	Use:   "validate [config.yaml]",
	Short: "Validate a station configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := config.LoadFile(args[0])
		if err != nil {
			return err
		}

		res := doc.Validate()
		printDiagnostics(res)

		if res.HasErrors() {
			return fmt.Errorf("%s: %d error(s)", args[0], len(res.Errors))
		}

		logger.Info("configuration is valid", zap.String("file", args[0]))

		return nil
	},
}

// generateCmd validates and writes the setup file
var generateCmd = &cobra.Command{
	Use:   "generate [config.yaml]",
	Short: "Generate the station setup code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := config.LoadFile(args[0])
		if err != nil {
			return err
		}

		res := doc.Validate()
		printDiagnostics(res)

		if res.HasErrors() {
			return fmt.Errorf("%s: %d error(s)", args[0], len(res.Errors))
		}

		cfg := gen.DefaultGeneratorConfig()
		cfg.OutputDir = outputDir
		cfg.PackageName = packageName
		cfg.DriverModule = driverModule

		files, err := doc.Build(cfg)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
			return err
		}

		for _, f := range files {
			logger.Info("generated", zap.String("file", f.Filename), zap.String("dir", cfg.OutputDir))
		}

		return nil
	},
}

func printDiagnostics(res *diagnostic.Diagnostics) {
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	for _, e := range res.Errors {
		fmt.Fprintln(os.Stderr, "error:", e.String())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	generateCmd.Flags().StringVarP(&outputDir, "out", "o", gen.DefaultGeneratorConfig().OutputDir,
		"output directory for generated code")
	generateCmd.Flags().StringVar(&packageName, "package", gen.DefaultGeneratorConfig().PackageName,
		"package name of the generated file")
	generateCmd.Flags().StringVar(&driverModule, "driver-module", gen.DefaultGeneratorConfig().DriverModule,
		"import base of the firmware driver packages")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
