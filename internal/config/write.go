package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/docket/internal/constants"
	"github.com/mrz1836/docket/internal/errors"
)

// SaveGlobal writes the configuration to the global config file
// (~/.docket/config.yaml). If a config file already exists, a timestamped
// backup is created first; backup failure is non-fatal.
//
// headerSource names what produced the write and appears in the generated
// header comment (e.g. "docket theme").
func SaveGlobal(cfg *Config, headerSource string) error {
	if err := Validate(cfg); err != nil {
		return errors.Wrap(err, "refusing to save invalid configuration")
	}

	home, err := DocketHome()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(home, constants.DirPerm); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	// Backup is best effort: the new config is still written when the copy
	// fails.
	if _, statErr := os.Stat(path); statErr == nil {
		backupPath := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102-150405"))
		_ = copyFile(path, backupPath)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	header := fmt.Sprintf("# docket configuration\n# %s on %s\n\n",
		headerSource, time.Now().Format(constants.TimeFormatISO))
	content := header + string(data)

	if err := os.WriteFile(path, []byte(content), constants.FilePerm); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// copyFile copies a file from src to dst with restrictive permissions.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) //#nosec G304 -- source is the docket config file
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, constants.FilePerm)
}
