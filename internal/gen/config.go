package gen

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated setup file.
	Filename string
	// DriverModule is the import base for the firmware driver packages the
	// generated code calls into. The generator does not own those packages.
	DriverModule string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:  "main",
		OutputDir:    "./generated",
		Filename:     "station_setup.go",
		DriverModule: "station-firmware",
	}
}
