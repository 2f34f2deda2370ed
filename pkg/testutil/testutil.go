package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// EnvPrefix is the prefix of every pathte environment variable.
const EnvPrefix = "PATHTE_"

// Isolate gives the test its own XDG config and state homes and log file.
// It returns the config home.
func Isolate(t *testing.T) string {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			// Setenv registers the restore, Unsetenv removes it for the test
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	root := t.TempDir()
	configHome := filepath.Join(root, "config")
	stateHome := filepath.Join(root, "state")
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv(EnvPrefix+"LOG_FILE", filepath.Join(stateHome, "pathte.log"))

	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return configHome
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ConfigFile writes content to the default config location under
// configHome and returns its path.
func ConfigFile(t *testing.T, configHome, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Join(configHome, "pathte"), "config.toml", content)
}
