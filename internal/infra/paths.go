package infra

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	AppName = "tradescope"
)

// GetWorkspaceDir returns the root directory for all runtime data.
// A local "user_data" directory wins if it exists (portable/dev mode),
// otherwise the OS-standard data directory is used.
func GetWorkspaceDir() string {
	localDir := "user_data"
	if _, err := os.Stat(localDir); err == nil {
		return localDir
	}

	var baseDir string
	switch runtime.GOOS {
	case "windows":
		// %AppData%\tradescope
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			baseDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		// ~/Library/Application Support/tradescope
		home, _ := os.UserHomeDir()
		baseDir = filepath.Join(home, "Library", "Application Support")
	case "linux":
		// ~/.local/share/tradescope (XDG_DATA_HOME)
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome != "" {
			baseDir = dataHome
		} else {
			home, _ := os.UserHomeDir()
			baseDir = filepath.Join(home, ".local", "share")
		}
	default:
		return localDir
	}

	return filepath.Join(baseDir, AppName)
}

// EnsureDir creates the directory if it doesn't exist (0755).
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// ResolveConfigPath attempts to find config.yaml.
// Priority: 1. configs/ in the current dir, 2. OS config dir.
func ResolveConfigPath() string {
	defaultPath := filepath.Join("configs", "config.yaml")

	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath
	}

	configRoot, err := os.UserConfigDir()
	if err == nil {
		osPath := filepath.Join(configRoot, AppName, "config.yaml")
		if _, err := os.Stat(osPath); err == nil {
			return osPath
		}
	}

	// Let LoadConfig report the missing file
	return defaultPath
}

// TensorboardDir returns the directory training metrics are written under.
func TensorboardDir(cfg *Config) string {
	if cfg.FreqAI.Tensorboard.Logdir != "" {
		return cfg.FreqAI.Tensorboard.Logdir
	}
	return filepath.Join(GetWorkspaceDir(), "models", "freqai")
}
