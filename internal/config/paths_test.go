package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultBalancePathUnderConfigDir(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("HOME", root)

	path, err := DefaultBalancePath()
	if err != nil {
		t.Fatalf("default balance path: %v", err)
	}
	if filepath.Base(path) != "balance.json" {
		t.Fatalf("expected balance.json, got %s", path)
	}
	if filepath.Base(filepath.Dir(path)) != "crawlcore" {
		t.Fatalf("expected crawlcore dir, got %s", path)
	}
}
