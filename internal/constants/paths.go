package constants

// Log file names.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.docket/logs/docket.log
	CLILogFileName = "docket.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global docket configuration file.
	// This file is located in the docket home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project-specific docket configuration
	// file. This file is located in the current working directory.
	ProjectConfigName = ".docket.yaml"
)
