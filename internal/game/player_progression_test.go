package game

import "testing"

func TestExpNeeded(t *testing.T) {
	tests := []struct {
		level int
		sp    Species
		want  int
	}{
		{level: 1, sp: SpeciesHuman, want: 0},
		{level: 2, sp: SpeciesHuman, want: 9},
		{level: 3, sp: SpeciesHuman, want: 29},
		{level: 4, sp: SpeciesHuman, want: 69},
		{level: 5, sp: SpeciesHuman, want: 139},
		{level: 13, sp: SpeciesHuman, want: 28999},
		{level: 2, sp: SpeciesTroll, want: 13},
		{level: 5, sp: SpeciesTroll, want: 208},
	}
	for _, tc := range tests {
		if got := ExpNeeded(tc.level, tc.sp); got != tc.want {
			t.Fatalf("expected ExpNeeded(%d, %s)=%d, got %d", tc.level, tc.sp, tc.want, got)
		}
	}
}

func TestTrollGainsFourLevelsAtOnce(t *testing.T) {
	s, log := newTestSession(t, SpeciesTroll)
	p := s.Player
	if p.HPMax != 18 || p.MPMax != 0 || p.MaxStats[StatStrength] != 13 {
		t.Fatalf("expected a fresh troll at 18 HP, 0 MP, Str 13, got %d, %d, %d", p.HPMax, p.MPMax, p.MaxStats[StatStrength])
	}

	s.GainExp(209)

	if p.XL != 5 || p.MaxXL != 5 {
		t.Fatalf("expected XL 5, got XL %d max %d", p.XL, p.MaxXL)
	}
	// each level rolls 4 HP, plus 1 always and 1 on even levels
	if p.HPBase != 40 || p.HPMax != 40 {
		t.Fatalf("expected 40 base and max HP, got %d and %d", p.HPBase, p.HPMax)
	}
	// 1 MP per level, minus 1 on levels not divisible by 3
	if p.MPBase != 1 || p.MPMax != 1 {
		t.Fatalf("expected 1 base and max MP, got %d and %d", p.MPBase, p.MPMax)
	}
	// level 3 raises strength twice: the attribute increase and the troll rule
	if p.MaxStats[StatStrength] != 15 {
		t.Fatalf("expected strength 15, got %d", p.MaxStats[StatStrength])
	}
	if !log.Contains("You have reached level 5!") {
		t.Fatalf("expected level 5 message, got %+v", log.Lines)
	}
}

func TestLevelChangeIsIdempotent(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	p := s.Player
	s.GainExp(500)
	xl, hp, mp := p.XL, p.HPMax, p.MPMax

	s.LevelChange(false)
	if p.XL != xl || p.HPMax != hp || p.MPMax != mp {
		t.Fatalf("expected no change, got XL %d->%d HP %d->%d MP %d->%d", xl, p.XL, hp, p.HPMax, mp, p.MPMax)
	}
}

func TestRegainedLevelsWelcomeBack(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	p := s.Player
	s.GainExp(140)
	if p.XL != 5 {
		t.Fatalf("expected XL 5, got %d", p.XL)
	}
	hpBase, mpBase := p.HPBase, p.MPBase
	strength := p.MaxStats[StatStrength]

	p.XL = 3
	p.Skills[SkillFighting] = 10
	s.LevelChange(false)
	if p.XL != 5 || p.MaxXL != 5 {
		t.Fatalf("expected XL 5 again, got %d (max %d)", p.XL, p.MaxXL)
	}
	if !log.Contains("Welcome back to level 4!") {
		t.Fatalf("expected welcome back message, got %+v", log.Lines)
	}
	if p.HPBase != hpBase+8 || p.MPBase != mpBase+2 {
		t.Fatalf("expected base HP %d and MP %d, got %d and %d", hpBase+8, mpBase+2, p.HPBase, p.MPBase)
	}
	if want := RealHP(p, true, false); p.HPMax != want {
		t.Fatalf("expected HP ceiling recomputed to %d, got %d", want, p.HPMax)
	}
	if p.HP > p.HPMax {
		t.Fatalf("expected HP within ceiling, got %d/%d", p.HP, p.HPMax)
	}
	if p.MaxStats[StatStrength] != strength {
		t.Fatalf("expected no stat gain on regained levels, got Str %d -> %d", strength, p.MaxStats[StatStrength])
	}
}

func TestGainExpRespectsCaps(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	p := s.Player
	b := s.Balance.Experience

	s.GainExp(b.Cap + 1000)
	if p.Experience != b.Cap {
		t.Fatalf("expected experience capped at %d, got %d", b.Cap, p.Experience)
	}
	if p.ExpAvailable != b.PoolCap {
		t.Fatalf("expected pool capped at %d, got %d", b.PoolCap, p.ExpAvailable)
	}
	if p.XL != b.MaxLevel {
		t.Fatalf("expected max level %d, got %d", b.MaxLevel, p.XL)
	}
	if !log.Contains("the final one!") {
		t.Fatalf("expected final level message")
	}
}

func TestArchmagiRobeQuartersExperience(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	idx := giveItem(t, s, "robe")
	s.Player.Inventory[idx].Special = int(EgoArchmagi)
	mustWear(t, s, idx)

	if got := s.GainExp(8); got != 2 {
		t.Fatalf("expected 2 experience, got %d", got)
	}
}

func TestVampireLevelHookRuns(t *testing.T) {
	s, log := newTestSession(t, SpeciesVampire)
	s.GainExp(50)
	if s.Player.XL != 3 {
		t.Fatalf("expected XL 3, got %d", s.Player.XL)
	}
	if !log.Contains("transform into a vampire bat") {
		t.Fatalf("expected bat form message, got %+v", log.Lines)
	}
}
