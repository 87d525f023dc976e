package game

import "testing"

func TestCarryingCapacity(t *testing.T) {
	p := NewPlayer(PlayerConfig{Species: SpeciesHuman}, 1, nil)
	if got := CarryingCapacity(p, Overloaded); got != 4300 {
		t.Fatalf("expected 4300, got %d", got)
	}
	if got := CarryingCapacity(p, Unencumbered); got != 4300*5/6 {
		t.Fatalf("expected %d, got %d", 4300*5/6, got)
	}
	if got := CarryingCapacity(p, Encumbered); got != 4300*11/12 {
		t.Fatalf("expected %d, got %d", 4300*11/12, got)
	}
}

func TestBurdenStates(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	for i := 0; i < 5; i++ {
		s.ExecuteCommand("give plate mail")
	}
	if s.Player.BurdenState != Unencumbered {
		t.Fatalf("expected unencumbered at %d, got %s", s.Player.Burden, s.Player.BurdenState)
	}

	s.ExecuteCommand("give plate mail")
	if s.Player.BurdenState != Encumbered {
		t.Fatalf("expected encumbered at %d, got %s", s.Player.Burden, s.Player.BurdenState)
	}
	if !log.Contains("You are being weighed down by all of your possessions.") {
		t.Fatalf("expected burden message, got %+v", log.Lines)
	}

	s.ExecuteCommand("give plate mail")
	if s.Player.BurdenState != Overloaded {
		t.Fatalf("expected overloaded at %d, got %s", s.Player.Burden, s.Player.BurdenState)
	}
	if got := HungerRate(s.Player); got != 3+int(Overloaded) {
		t.Fatalf("expected burden to raise the hunger rate, got %d", got)
	}
}
