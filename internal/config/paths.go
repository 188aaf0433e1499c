package config

import (
	"os"
	"path/filepath"

	"github.com/mrz1836/docket/internal/constants"
	"github.com/mrz1836/docket/internal/errors"
)

// DocketHome returns the docket home directory. If the DOCKET_HOME
// environment variable is set, it is used as is; otherwise the default is
// ~/.docket.
func DocketHome() (string, error) {
	if home := os.Getenv("DOCKET_HOME"); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.DocketHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.docket/config.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := DocketHome()
	if err != nil {
		return "", errors.Wrap(err, "get global config path")
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path of the project configuration
// file, looked up in the current working directory.
func ProjectConfigPath() string {
	return constants.ProjectConfigName
}

// ResolvePath returns the effective data file location: the configured path
// when set, otherwise the default under the docket home directory.
func (c *StoreConfig) ResolvePath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}

	home, err := DocketHome()
	if err != nil {
		return "", errors.Wrap(err, "resolve store path")
	}
	return filepath.Join(home, constants.StoreFileName), nil
}

// LogDir returns the directory holding the CLI log file.
func LogDir() (string, error) {
	home, err := DocketHome()
	if err != nil {
		return "", errors.Wrap(err, "resolve log directory")
	}
	return filepath.Join(home, constants.LogsDir), nil
}

// LogFilePath returns the full path to the CLI log file. This is useful for
// displaying the log location to users.
func LogFilePath() (string, error) {
	dir, err := LogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.CLILogFileName), nil
}
