package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig = ".config"
	appName   = "ecoscan"
	dbName    = "ecoscan.db"
	logName   = "ecoscan.log"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

// DB returns override when set, otherwise the default database location.
// The parent directory is created either way.
func DB(override string) (string, error) {
	if override != "" {
		if err := os.MkdirAll(filepath.Dir(override), 0o700); err != nil {
			return "", fmt.Errorf("failed to create database directory: %w", err)
		}
		return override, nil
	}
	return inDir(dbName)
}

func Log() (string, error) {
	return inDir(logName)
}

func inDir(name string) (string, error) {
	dir, err := EnsureDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
