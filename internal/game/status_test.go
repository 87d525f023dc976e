package game

import "testing"

func TestPoisonIsCapped(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	if !s.PoisonPlayer(30, false) {
		t.Fatalf("expected poison to take hold")
	}
	s.PoisonPlayer(30, false)

	if got := s.Player.Durations.Get(DurPoisoning); got != s.Balance.Durations.PoisonCap {
		t.Fatalf("expected poison capped at %d, got %d", s.Balance.Durations.PoisonCap, got)
	}
	if !log.Contains("You are more poisoned.") {
		t.Fatalf("expected more poisoned message, got %+v", log.Lines)
	}
}

func TestPoisonResistance(t *testing.T) {
	s, _ := newTestSession(t, SpeciesNaga)
	if s.PoisonPlayer(10, false) {
		t.Fatalf("expected naga to resist poison")
	}
	if !s.PoisonPlayer(10, true) {
		t.Fatalf("expected forced poison to apply")
	}
	if got := s.Player.Durations.Get(DurPoisoning); got != 10 {
		t.Fatalf("expected 10 turns of poison, got %d", got)
	}
}

func TestClarityBlocksConfusion(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	mustWear(t, s, giveItem(t, s, "amulet of clarity"))

	if s.ConfusePlayer(10, true) {
		t.Fatalf("expected clarity to block confusion")
	}
	if !log.Contains("You feel momentarily confused.") {
		t.Fatalf("expected resisted message, got %+v", log.Lines)
	}
	if !s.ConfusePlayer(10, false) {
		t.Fatalf("expected unresistable confusion to apply")
	}
}

func TestResistSlowAmulet(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	if !s.SlowPlayer(500) {
		t.Fatalf("expected slow to apply")
	}
	if got := s.Player.Durations.Get(DurSlow); got != s.Balance.Durations.SlowCap {
		t.Fatalf("expected slow capped at %d, got %d", s.Balance.Durations.SlowCap, got)
	}

	s, _ = newTestSession(t, SpeciesHuman)
	mustWear(t, s, giveItem(t, s, "amulet of resist slowing"))
	if s.SlowPlayer(10) {
		t.Fatalf("expected the amulet to block slowing")
	}
}

func TestHasteCaps(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	s.HastePlayer(500)
	if got := s.Player.Durations.Get(DurHaste); got != 80 {
		t.Fatalf("expected haste capped at 80, got %d", got)
	}

	s, _ = newTestSession(t, SpeciesHuman)
	mustWear(t, s, giveItem(t, s, "amulet of resist slowing"))
	s.HastePlayer(500)
	if got := s.Player.Durations.Get(DurHaste); got != 100 {
		t.Fatalf("expected haste capped at 100 with the amulet, got %d", got)
	}
}

func TestGoBerserk(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	p := s.Player
	baseMax := p.HPMax
	baseStr := p.Str()

	if !s.GoBerserk(true) {
		t.Fatalf("expected to go berserk")
	}
	if got := p.Durations.Get(DurBerserk); got != 10 {
		t.Fatalf("expected 10 turns of berserk, got %d", got)
	}
	if p.HPMax != baseMax*15/10 || p.HP != p.HPMax {
		t.Fatalf("expected HP %d/%d, got %d/%d", baseMax*15/10, baseMax*15/10, p.HP, p.HPMax)
	}
	if p.Str() != baseStr+5 {
		t.Fatalf("expected might to add 5 Str, got %d", p.Str()-baseStr)
	}
	if !p.Durations.Active(DurHaste) {
		t.Fatalf("expected berserk to haste")
	}
	if s.GoBerserk(true) {
		t.Fatalf("expected a second berserk to be refused")
	}
}

func TestMummyCannotBerserk(t *testing.T) {
	s, log := newTestSession(t, SpeciesMummy)
	if s.GoBerserk(true) {
		t.Fatalf("expected mummy to be refused")
	}
	if !log.Contains("lifeless body") {
		t.Fatalf("expected refusal message, got %+v", log.Lines)
	}
}

func TestMightWearsOff(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	base := s.Player.Str()
	if !s.ApplyDuration(DurMight, 1) {
		t.Fatalf("expected might to apply")
	}
	if s.Player.Str() != base+5 {
		t.Fatalf("expected Str %d, got %d", base+5, s.Player.Str())
	}

	s.AdvanceTurn()
	if s.Player.Durations.Active(DurMight) {
		t.Fatalf("expected might to expire")
	}
	if !log.Contains("You feel a little less mighty now.") {
		t.Fatalf("expected wear off message, got %+v", log.Lines)
	}
	if s.Player.Str() != base {
		t.Fatalf("expected Str back to %d, got %d", base, s.Player.Str())
	}
}

func TestApplyDurationRejectsBadInput(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	if s.ApplyDuration(DurRegeneration, 0) {
		t.Fatalf("expected zero turns to be rejected")
	}
	if s.ApplyDuration(NumDurations, 5) {
		t.Fatalf("expected an invalid id to be rejected")
	}
	s.ApplyDuration(DurRegeneration, 500)
	if got := s.Player.Durations.Get(DurRegeneration); got != 100 {
		t.Fatalf("expected regeneration capped at 100, got %d", got)
	}
}
