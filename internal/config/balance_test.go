package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/crawlcore/internal/game"
)

func TestLoadBalanceMissingFileUsesDefaults(t *testing.T) {
	b, err := LoadBalance(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load balance: %v", err)
	}
	if b.Hunger.Start != game.DefaultBalance().Hunger.Start {
		t.Fatalf("expected default hunger start, got %d", b.Hunger.Start)
	}
}

func TestLoadBalanceOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.json")
	if err := os.WriteFile(path, []byte(`{"durations":{"poison_cap":25}}`), 0o600); err != nil {
		t.Fatalf("write balance: %v", err)
	}
	b, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("load balance: %v", err)
	}
	if b.Durations.PoisonCap != 25 {
		t.Fatalf("expected poison cap 25, got %d", b.Durations.PoisonCap)
	}
	if b.Durations.ConfusionCap != game.DefaultBalance().Durations.ConfusionCap {
		t.Fatalf("expected untouched confusion cap, got %d", b.Durations.ConfusionCap)
	}
}

func TestLoadBalanceRejectsBadThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.json")
	body := `{"hunger":{"thresholds":[10,5,20,30,40,50,60]}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write balance: %v", err)
	}
	if _, err := LoadBalance(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSaveBalanceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "balance.json")
	b := game.DefaultBalance()
	b.Food.RotEvery = 33
	if err := SaveBalance(path, b); err != nil {
		t.Fatalf("save balance: %v", err)
	}
	loaded, err := LoadBalance(path)
	if err != nil {
		t.Fatalf("load balance: %v", err)
	}
	if loaded.Food.RotEvery != 33 {
		t.Fatalf("expected rot interval 33, got %d", loaded.Food.RotEvery)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the balance file, got %d entries", len(entries))
	}
}
