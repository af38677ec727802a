package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Paintersrp/focusnest/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists writes a default config file when none exists and
// reports whether it created one.
func EnsureConfigExists(homeDir string) (bool, error) {
	configPath := GetConfigPath(homeDir)
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("failed to check config file existence: %w", err)
	}

	cfg := Default(homeDir)
	if err := cfg.Save(); err != nil {
		return false, &ConfigInitError{msg: fmt.Sprintf("failed to write default config: %v", err)}
	}
	return true, nil
}
