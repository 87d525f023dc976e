package game

import (
	"strings"
	"testing"
)

func TestResistancesAreClamped(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	p := s.Player
	p.Mutations.Levels[MutationHeatResistance] = 3
	s.ApplyDuration(DurResistFire, 10)
	if got := ResFire(p, FullResist); got != 3 {
		t.Fatalf("expected rF capped at 3, got %d", got)
	}

	s, _ = newTestSession(t, SpeciesMummy)
	mustWear(t, s, giveItem(t, s, "ring of ice"))
	mustWear(t, s, giveItem(t, s, "ring of ice"))
	mustWear(t, s, giveItem(t, s, "ice dragon armour"))
	if got := ResFire(s.Player, FullResist); got != -3 {
		t.Fatalf("expected rF floored at -3, got %d", got)
	}

	s, _ = newTestSession(t, SpeciesHuman)
	p = s.Player
	p.Mutations.Levels[MutationShockResistance] = 1
	s.ApplyDuration(DurInsulation, 10)
	mustWear(t, s, giveItem(t, s, "storm dragon armour"))
	if err := s.Wield(giveItem(t, s, "staff of air")); err != nil {
		t.Fatalf("wield staff: %v", err)
	}
	if got := ResElec(p, FullResist); got != 3 {
		t.Fatalf("expected rElec capped at 3, got %d", got)
	}
	if got := ResPoison(p, FullResist); got != 0 {
		t.Fatalf("expected no rPois, got %d", got)
	}
}

func TestRecomputeMatchesCalculators(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	mustWear(t, s, giveItem(t, s, "scale mail"))
	d := s.Recompute()

	if d.AC != PlayerAC(s.Player) {
		t.Fatalf("expected AC %d, got %d", PlayerAC(s.Player), d.AC)
	}
	if d.HungerRate != HungerRate(s.Player) {
		t.Fatalf("expected hunger rate %d, got %d", HungerRate(s.Player), d.HungerRate)
	}
	if s.Player.Derived != d {
		t.Fatalf("expected the snapshot to be stored on the player")
	}
	if !strings.Contains(d.String(), "AC ") {
		t.Fatalf("expected AC in %q", d.String())
	}
}

func TestHelplessEvasionFloor(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	p := s.Player
	p.Skills[SkillDodging] = 20
	if PlayerEvasion(p) <= 2 {
		t.Fatalf("expected a trained dodger to evade, got %d", PlayerEvasion(p))
	}

	s.Paralyse(5)
	if got := PlayerEvasion(p); got != 2 {
		t.Fatalf("expected paralysed EV 2, got %d", got)
	}

	p.Mutations.Levels[MutationRepulsionField] = 2
	if got := PlayerEvasion(p); got != 5 {
		t.Fatalf("expected repulsion to lift paralysed EV to 5, got %d", got)
	}

	s, _ = newTestSession(t, SpeciesKobold)
	s.Player.Skills[SkillDodging] = 20
	s.Petrify(5)
	if got := PlayerEvasion(s.Player); got != 3 {
		t.Fatalf("expected petrified kobold EV 3, got %d", got)
	}
}

func TestBerserkersAreLoud(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	if CheckStealth(s.Player) <= 0 {
		t.Fatalf("expected some stealth")
	}
	s.GoBerserk(false)
	if got := CheckStealth(s.Player); got != 0 {
		t.Fatalf("expected no stealth while berserk, got %d", got)
	}
}

type testPiece struct {
	name string
	race ArmourRace
	ego  ArmourEgo
	plus int
}

// dressed builds a session wearing pieces, then lets setup adjust the
// player before a calculator is read.
func dressed(t *testing.T, sp Species, pieces []testPiece, setup func(p *PlayerState)) *PlayerState {
	t.Helper()
	s, _ := newTestSession(t, sp)
	for _, piece := range pieces {
		idx := giveItem(t, s, piece.name)
		it := &s.Player.Inventory[idx]
		it.Race = piece.race
		it.Special = int(piece.ego)
		it.Plus = piece.plus
		mustWear(t, s, idx)
	}
	if setup != nil {
		setup(s.Player)
	}
	return s.Player
}

func TestPlayerACModifiers(t *testing.T) {
	tests := []struct {
		name    string
		species Species
		pieces  []testPiece
		setup   func(p *PlayerState)
		want    int
	}{
		{name: "untrained scale mail", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail"}}, want: 5},
		{
			name: "armour skill scales body armour", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail"}},
			setup: func(p *PlayerState) { p.Skills[SkillArmour] = 15 }, want: 10,
		},
		{
			name: "elven armour on an elf", species: SpeciesHighElf, pieces: []testPiece{{name: "scale mail", race: RaceElven}},
			setup: func(p *PlayerState) { p.Skills[SkillArmour] = 14 }, want: 10,
		},
		{
			name: "elven armour on a human", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail", race: RaceElven}},
			setup: func(p *PlayerState) { p.Skills[SkillArmour] = 14 }, want: 9,
		},
		{name: "dwarven armour on a dwarf", species: SpeciesMountainDwarf, pieces: []testPiece{{name: "scale mail", race: RaceDwarven}}, want: 6},
		{name: "dwarven armour on a human", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail", race: RaceDwarven}}, want: 5},
		{
			name: "deformed body halves base body armour", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail"}},
			setup: func(p *PlayerState) { p.Mutations.Levels[MutationDeformed] = 1 }, want: 2,
		},
		{
			name: "deformed body with armour skill", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail"}},
			setup: func(p *PlayerState) {
				p.Mutations.Levels[MutationDeformed] = 1
				p.Skills[SkillArmour] = 15
			},
			want: 7,
		},
		{
			name: "protection rings", species: SpeciesHuman,
			pieces: []testPiece{{name: "ring of protection", plus: 3}, {name: "ring of protection", plus: 2}},
			want:   5,
		},
		{
			name: "protection rings over armour", species: SpeciesHuman,
			pieces: []testPiece{{name: "scale mail"}, {name: "ring of protection", plus: 3}, {name: "ring of protection", plus: 2}},
			want:   10,
		},
		{
			name: "troll hide and tough skin", species: SpeciesTroll,
			setup: func(p *PlayerState) { p.Mutations.Levels[MutationToughSkin] = 2 }, want: 5,
		},
		{
			name: "statue form replaces natural armour", species: SpeciesTroll,
			setup: func(p *PlayerState) {
				p.Mutations.Levels[MutationToughSkin] = 2
				p.Skills[SkillEarthMagic] = 10
				p.Form = FormStatue
			},
			want: 22,
		},
		{
			name: "lich form keeps natural armour", species: SpeciesTroll,
			setup: func(p *PlayerState) {
				p.Mutations.Levels[MutationToughSkin] = 2
				p.Skills[SkillNecromancy] = 12
				p.Form = FormLich
			},
			want: 10,
		},
	}
	for _, tc := range tests {
		p := dressed(t, tc.species, tc.pieces, tc.setup)
		if got := PlayerAC(p); got != tc.want {
			t.Fatalf("%s: expected AC %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestPlayerEvasionModifiers(t *testing.T) {
	dodger := func(p *PlayerState) {
		p.Skills[SkillDodging] = 10
		p.Stats[StatStrength] = 8
		p.Stats[StatDexterity] = 16
	}
	tests := []struct {
		name    string
		species Species
		pieces  []testPiece
		setup   func(p *PlayerState)
		want    int
	}{
		{name: "bare", species: SpeciesHuman, want: 10},
		{name: "dodging skill", species: SpeciesHuman, setup: dodger, want: 17},
		{name: "shield penalty", species: SpeciesHuman, pieces: []testPiece{{name: "shield"}}, setup: dodger, want: 15},
		{
			name: "large torso softens a shield", species: SpeciesTroll, pieces: []testPiece{{name: "large shield"}},
			setup: func(p *PlayerState) { p.Stats[StatDexterity] = 6 }, want: 5,
		},
		{
			name: "heavy armour cancels dodging", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail"}},
			setup: dodger, want: 7,
		},
		{
			name: "trained heavy armour", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail"}},
			setup: func(p *PlayerState) {
				dodger(p)
				p.Skills[SkillArmour] = 20
				p.Stats[StatStrength] = 15
			},
			want: 11,
		},
		{name: "ponderous body armour", species: SpeciesHuman, pieces: []testPiece{{name: "robe", ego: EgoPonderousness}}, want: 8},
		{
			name: "ponderous body armour on a dodger", species: SpeciesHuman,
			pieces: []testPiece{{name: "robe", ego: EgoPonderousness}}, setup: dodger, want: 15,
		},
		{name: "ponderous boots", species: SpeciesHuman, pieces: []testPiece{{name: "boots", ego: EgoPonderousness}}, want: 10},
		{name: "ponderous cloak", species: SpeciesHuman, pieces: []testPiece{{name: "cloak", ego: EgoPonderousness}}, want: 10},
	}
	for _, tc := range tests {
		p := dressed(t, tc.species, tc.pieces, tc.setup)
		if got := PlayerEvasion(p); got != tc.want {
			t.Fatalf("%s: expected EV %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestCheckStealthModifiers(t *testing.T) {
	sneak := func(extra func(p *PlayerState)) func(p *PlayerState) {
		return func(p *PlayerState) {
			p.Stats[StatDexterity] = 10
			p.Skills[SkillStealth] = 10
			p.BurdenState = Unencumbered
			if extra != nil {
				extra(p)
			}
		}
	}
	wet := func(p *PlayerState) { p.Surroundings.InWater = true }
	tests := []struct {
		name    string
		species Species
		pieces  []testPiece
		setup   func(p *PlayerState)
		want    int
	}{
		{name: "plain", species: SpeciesHuman, setup: sneak(nil), want: 180},
		{name: "encumbered", species: SpeciesHuman, setup: sneak(func(p *PlayerState) { p.BurdenState = Encumbered }), want: 90},
		{name: "overloaded", species: SpeciesHuman, setup: sneak(func(p *PlayerState) { p.BurdenState = Overloaded }), want: 36},
		{name: "elven boots", species: SpeciesHuman, pieces: []testPiece{{name: "boots", race: RaceElven}}, setup: sneak(nil), want: 200},
		{
			name: "elven boots of stealth", species: SpeciesHuman,
			pieces: []testPiece{{name: "boots", race: RaceElven, ego: EgoStealth}}, setup: sneak(nil), want: 250,
		},
		{name: "elven cloak", species: SpeciesHuman, pieces: []testPiece{{name: "cloak", race: RaceElven}}, setup: sneak(nil), want: 200},
		{
			name: "encumbered in an elven cloak", species: SpeciesHuman, pieces: []testPiece{{name: "cloak", race: RaceElven}},
			setup: sneak(func(p *PlayerState) { p.BurdenState = Encumbered }), want: 110,
		},
		{name: "heavy armour", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail"}}, setup: sneak(nil), want: 145},
		{name: "elven heavy armour", species: SpeciesHuman, pieces: []testPiece{{name: "scale mail", race: RaceElven}}, setup: sneak(nil), want: 180},
		{name: "wading", species: SpeciesHuman, setup: sneak(wet), want: 90},
		{name: "wading in an elven cloak", species: SpeciesHuman, pieces: []testPiece{{name: "cloak", race: RaceElven}}, setup: sneak(wet), want: 100},
		{name: "merfolk swimming", species: SpeciesMerfolk, setup: sneak(wet), want: 230},
	}
	for _, tc := range tests {
		p := dressed(t, tc.species, tc.pieces, tc.setup)
		if got := CheckStealth(p); got != tc.want {
			t.Fatalf("%s: expected stealth %d, got %d", tc.name, tc.want, got)
		}
	}
}
