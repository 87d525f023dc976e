package game

import (
	"strings"
	"testing"
)

func TestExecuteCommandHelpAndUnknown(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)

	res := s.ExecuteCommand("help")
	if !res.Handled || !strings.Contains(res.Message, "transform <form>") {
		t.Fatalf("expected help text, got %+v", res)
	}
	if res := s.ExecuteCommand("dance"); res.Handled {
		t.Fatalf("expected unknown command to be unhandled")
	}
	if res := s.ExecuteCommand("   "); res.Handled {
		t.Fatalf("expected blank input to be unhandled")
	}
}

func TestExecuteCommandStatus(t *testing.T) {
	s, _ := newTestSession(t, SpeciesTroll)
	res := s.ExecuteCommand("status")
	for _, want := range []string{"Tester", "XL 1", "satiated", "Durations: none"} {
		if !strings.Contains(res.Message, want) {
			t.Fatalf("expected %q in status:\n%s", want, res.Message)
		}
	}
}

func TestExecuteCommandGiveStacksFood(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)

	res := s.ExecuteCommand("give bread ration 3")
	if res.Message != "a) bread ration" {
		t.Fatalf("expected give message, got %q", res.Message)
	}
	s.ExecuteCommand("give bread ration 2")
	inv := s.ExecuteCommand("inventory")
	if !strings.Contains(inv.Message, "a) 5 bread ration") {
		t.Fatalf("expected a stack of 5, got %q", inv.Message)
	}
	if res := s.ExecuteCommand("give mithril widget"); res.Message != "No such item." {
		t.Fatalf("expected unknown item, got %q", res.Message)
	}
}

func TestExecuteCommandGain(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	res := s.ExecuteCommand("gain 140")
	if !strings.Contains(res.Message, "now level 5") {
		t.Fatalf("expected level 5, got %q", res.Message)
	}
	if res := s.ExecuteCommand("gain lots"); !strings.Contains(res.Message, "positive") {
		t.Fatalf("expected a usage error, got %q", res.Message)
	}
}

func TestExecuteCommandWait(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	res := s.ExecuteCommand("wait 5")
	if res.TurnsAdvanced != 5 || s.Turn != 5 {
		t.Fatalf("expected 5 turns, got %d (turn %d)", res.TurnsAdvanced, s.Turn)
	}
	if res.Death != nil {
		t.Fatalf("expected to survive, got %+v", res.Death)
	}
}

func TestExecuteCommandDrainKills(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	res := s.ExecuteCommand("drain str 20")
	if res.Death == nil || res.Death.Method != KilledByWeakness {
		t.Fatalf("expected death by weakness, got %+v", res.Death)
	}
	if s.Player.Str() >= 1 {
		t.Fatalf("expected Str below 1, got %d", s.Player.Str())
	}
}

func TestExecuteCommandTransform(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	res := s.ExecuteCommand("transform spider")
	if s.Player.Form != FormSpider || s.Player.Durations.Get(DurTransformation) != 30 {
		t.Fatalf("expected 30 turns of spider form, got %+v", res)
	}
	s.ExecuteCommand("untransform")
	if s.Player.Form != FormNone {
		t.Fatalf("expected normal form, got %s", s.Player.Form)
	}
	if res := s.ExecuteCommand("transform teapot"); res.Message != "No such form." {
		t.Fatalf("expected unknown form, got %q", res.Message)
	}
}

func TestExecuteCommandWearAndRemove(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	s.ExecuteCommand("give leather armour")

	res := s.ExecuteCommand("wear leather armour")
	if !strings.HasPrefix(res.Message, "AC ") {
		t.Fatalf("expected AC summary, got %q", res.Message)
	}
	if _, ok := s.Player.Equipped(EquipBodyArmour); !ok {
		t.Fatalf("expected armour to be worn")
	}
	s.ExecuteCommand("remove body armour")
	if _, ok := s.Player.Equipped(EquipBodyArmour); ok {
		t.Fatalf("expected armour to be removed")
	}
	if res := s.ExecuteCommand("remove amulet"); res.Message != "You aren't wearing anything there." {
		t.Fatalf("expected empty slot message, got %q", res.Message)
	}
}

func TestSplitTrailingNumber(t *testing.T) {
	n, rest := splitTrailingNumber([]string{"meat", "ration", "4"}, 1)
	if n != 4 || strings.Join(rest, " ") != "meat ration" {
		t.Fatalf("expected 4 and meat ration, got %d %v", n, rest)
	}
	n, rest = splitTrailingNumber([]string{"fruit"}, 1)
	if n != 1 || len(rest) != 1 {
		t.Fatalf("expected fallback, got %d %v", n, rest)
	}
}
