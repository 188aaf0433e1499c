package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/docket/internal/constants"
	"github.com/mrz1836/docket/internal/domain"
	"github.com/mrz1836/docket/internal/tui"
)

// setTestHome points DOCKET_HOME at a temp directory and moves the working
// directory there so no project config leaks into the test. Colors are
// disabled for stable output assertions.
func setTestHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("DOCKET_HOME", home)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(home)

	return home
}

// storePath returns the default data file location under the test home.
func storePath(home string) string {
	return filepath.Join(home, constants.StoreFileName)
}

// readStoreFile decodes the data file for assertions.
func readStoreFile(t *testing.T, path string) domain.Groups {
	t.Helper()

	data, err := os.ReadFile(path) //nolint:gosec // test-owned path
	require.NoError(t, err)

	var groups domain.Groups
	require.NoError(t, json.Unmarshal(data, &groups))
	return groups
}

// writeStoreFile seeds the data file with the given document.
func writeStoreFile(t *testing.T, path string, groups domain.Groups) {
	t.Helper()

	data, err := json.MarshalIndent(groups, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(data, '\n'), 0o600))
}

// writeRawStoreFile writes arbitrary bytes to the default data file
// location, used to simulate a corrupted document.
func writeRawStoreFile(home string, data []byte) error {
	return os.WriteFile(storePath(home), data, 0o600)
}

// testFlags returns global flags suitable for non-interactive test runs.
func testFlags() *GlobalFlags {
	return &GlobalFlags{Output: OutputText}
}

// testTheme returns the default theme for tests that need one.
func testTheme() tui.Theme {
	return tui.DefaultTheme()
}
