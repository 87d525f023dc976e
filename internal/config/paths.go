package config

import (
	"errors"
	"os"
	"path/filepath"
)

func appConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", errors.New("config directory not found")
	}
	return filepath.Join(dir, "crawlcore"), nil
}

// DefaultBalancePath is where the balance file lives when CRAWLCORE_BALANCE
// is unset.
func DefaultBalancePath() (string, error) {
	dir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "balance.json"), nil
}
