package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/crawlcore/internal/game"
	"github.com/appengine-ltd/crawlcore/internal/logger"
)

// LoadBalance overlays the JSON file at path on the default balance. An
// empty path or a missing file yields the defaults.
func LoadBalance(path string) (*game.Balance, error) {
	b := game.DefaultBalance()
	if path == "" {
		return b, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Log.WithField("path", path).Info("balance file not found, using defaults")
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read balance: %w", err)
	}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("validate balance %s: %w", path, err)
	}
	logger.Log.WithField("path", path).Info("balance loaded")
	return b, nil
}

// SaveBalance writes b to path through a temp file and rename.
func SaveBalance(path string, b *game.Balance) error {
	if b == nil {
		return errors.New("save balance: nil balance")
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("save balance: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "balance-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
