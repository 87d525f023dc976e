package game

import "testing"

func TestHungerStateBoundaries(t *testing.T) {
	b := DefaultBalance()
	tests := []struct {
		hunger int
		want   HungerState
	}{
		{hunger: 0, want: HungerStarving},
		{hunger: 1000, want: HungerStarving},
		{hunger: 1001, want: HungerNearStarving},
		{hunger: 2066, want: HungerVeryHungry},
		{hunger: 2600, want: HungerHungry},
		{hunger: 2601, want: HungerSatiated},
		{hunger: 6999, want: HungerSatiated},
		{hunger: 7000, want: HungerFull},
		{hunger: 9000, want: HungerVeryFull},
		{hunger: 11000, want: HungerEngorged},
	}
	for _, tc := range tests {
		if got := hungerStateFor(tc.hunger, b); got != tc.want {
			t.Fatalf("expected %s at %d, got %s", tc.want, tc.hunger, got)
		}
	}
}

func TestHungerRateBaseline(t *testing.T) {
	human := NewPlayer(PlayerConfig{Species: SpeciesHuman}, 1, nil)
	if got := HungerRate(human); got != 3 {
		t.Fatalf("expected human hunger rate 3, got %d", got)
	}
	troll := NewPlayer(PlayerConfig{Species: SpeciesTroll}, 1, nil)
	if got := HungerRate(troll); got != 6 {
		t.Fatalf("expected troll hunger rate 6, got %d", got)
	}
}

func TestHungerRateNeverBelowOne(t *testing.T) {
	p := NewPlayer(PlayerConfig{Species: SpeciesHuman}, 1, nil)
	p.Form = FormAir
	p.Mutations.Levels[MutationSlowMetabolism] = 3

	if got := HungerRate(p); got != 1 {
		t.Fatalf("expected hunger rate floor of 1, got %d", got)
	}
}

func TestHungerRateCountsRings(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	mustWear(t, s, giveItem(t, s, "ring of hunger"))
	mustWear(t, s, giveItem(t, s, "ring of regeneration"))

	if got := HungerRate(s.Player); got != 3+4+2 {
		t.Fatalf("expected hunger rate 9, got %d", got)
	}
}

func TestMakeHungryAnnouncesDownwardTransition(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	s.SetHunger(2700, true)

	s.MakeHungry(200, false, false)
	if s.Player.HungerState != HungerHungry {
		t.Fatalf("expected hungry, got %s", s.Player.HungerState)
	}
	if !log.Contains("You are feeling hungry.") {
		t.Fatalf("expected hunger message, got %+v", log.Lines)
	}
}

func TestLessenHungerIsQuietWhenCrossingUpwards(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	s.SetHunger(2500, true)
	log.Drain()

	s.LessenHunger(100000, false)
	if s.Player.Hunger != s.Balance.Hunger.Max {
		t.Fatalf("expected hunger capped at %d, got %d", s.Balance.Hunger.Max, s.Player.Hunger)
	}
	if len(log.Lines) != 0 {
		t.Fatalf("expected no message for a state improvement, got %+v", log.Lines)
	}
}

func TestSmallChangeDescribedWithoutStateChange(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	s.SetHunger(5000, true)

	s.MakeHungry(50, false, false)
	if !log.Contains("You feel slightly more hungry.") {
		t.Fatalf("expected slight hunger message, got %+v", log.Lines)
	}
}

func TestMummyIgnoresHunger(t *testing.T) {
	s, _ := newTestSession(t, SpeciesMummy)
	before := s.Player.Hunger

	s.MakeHungry(5000, false, false)
	if s.Player.Hunger != before {
		t.Fatalf("expected hunger unchanged at %d, got %d", before, s.Player.Hunger)
	}
}

func TestCalcHungerForThirstyVampire(t *testing.T) {
	p := NewPlayer(PlayerConfig{Species: SpeciesVampire}, 1, nil)

	p.HungerState = HungerVeryHungry
	if got := CalcHunger(p, 100); got != 50 {
		t.Fatalf("expected half cost, got %d", got)
	}
	p.HungerState = HungerNearStarving
	if got := CalcHunger(p, 100); got != 0 {
		t.Fatalf("expected no cost, got %d", got)
	}
	p.HungerState = HungerFull
	if got := CalcHunger(p, 100); got != 100 {
		t.Fatalf("expected full cost, got %d", got)
	}
}

func TestStarvingVampireDoesNotRegenerate(t *testing.T) {
	p := NewPlayer(PlayerConfig{Species: SpeciesVampire}, 1, nil)
	p.HungerState = HungerStarving
	if got := PlayerRegen(p); got != 0 {
		t.Fatalf("expected no regeneration, got %d", got)
	}

	p.HungerState = HungerEngorged
	if got := PlayerRegen(p); got <= 0 {
		t.Fatalf("expected regeneration when engorged, got %d", got)
	}
}
