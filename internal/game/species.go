package game

import "strings"

type Species int

const (
	SpeciesHuman Species = iota
	SpeciesHighElf
	SpeciesGreyElf
	SpeciesDeepElf
	SpeciesSludgeElf
	SpeciesMountainDwarf
	SpeciesHalfling
	SpeciesHillOrc
	SpeciesKobold
	SpeciesMummy
	SpeciesNaga
	SpeciesGnome
	SpeciesOgre
	SpeciesTroll
	SpeciesOgreMage
	SpeciesRedDraconian
	SpeciesWhiteDraconian
	SpeciesGreenDraconian
	SpeciesYellowDraconian
	SpeciesGreyDraconian
	SpeciesBlackDraconian
	SpeciesPurpleDraconian
	SpeciesMottledDraconian
	SpeciesPaleDraconian
	SpeciesBaseDraconian
	SpeciesCentaur
	SpeciesDemigod
	SpeciesSpriggan
	SpeciesMinotaur
	SpeciesDemonspawn
	SpeciesGhoul
	SpeciesKenku
	SpeciesMerfolk
	SpeciesVampire
	numSpecies
)

type Genus int

const (
	GenusNone Genus = iota
	GenusElf
	GenusDwarf
	GenusOrc
	GenusDraconian
)

type UndeadState int

const (
	Alive UndeadState = iota
	SemiUndead
	HungryDead
	FullyUndead
)

type BodySize int

const (
	SizeTiny BodySize = iota
	SizeLittle
	SizeSmall
	SizeMedium
	SizeLarge
	SizeBig
	SizeGiant
	SizeHuge
)

// SpeciesTraits holds every per-species coefficient the calculators read.
type SpeciesTraits struct {
	Name        string
	Genus       Genus
	Race        ArmourRace
	Size        BodySize
	TorsoSize   BodySize
	ExpMod      int
	MRPerLevel  int
	StealthMult int
	Undead      UndeadState
	LikesChunks bool
	Swims       bool
	SmallRace   bool
	BaseHP      int
	BaseMP      int
	BaseStats   [numStats]int
	Innate      map[Mutation]int
	Levels      []levelRule
}

type levelOp int

const (
	lvAlways levelOp = iota
	lvEvery
	lvNotEvery
	lvBelow
	lvAt
	lvAbove
)

type levelCheck struct {
	op levelOp
	n  int
}

func (c levelCheck) matches(level int) bool {
	switch c.op {
	case lvAlways:
		return true
	case lvEvery:
		return c.n > 0 && level%c.n == 0
	case lvNotEvery:
		return c.n > 0 && level%c.n != 0
	case lvBelow:
		return level < c.n
	case lvAt:
		return level == c.n
	case lvAbove:
		return level > c.n
	default:
		return false
	}
}

func always() levelCheck       { return levelCheck{op: lvAlways} }
func every(n int) levelCheck    { return levelCheck{op: lvEvery, n: n} }
func notEvery(n int) levelCheck { return levelCheck{op: lvNotEvery, n: n} }
func below(n int) levelCheck    { return levelCheck{op: lvBelow, n: n} }
func at(n int) levelCheck       { return levelCheck{op: lvAt, n: n} }
func above(n int) levelCheck    { return levelCheck{op: lvAbove, n: n} }

// levelRule fires on a new experience level when every check matches.
// A stat gain picks one of stats (coinflip for two) or any stat when randomStat is set.
type levelRule struct {
	when        []levelCheck
	hp          int
	mp          int
	stats       []Stat
	randomStat  bool
	message     string
	mutation    Mutation
	hasMutation bool
	hook        func(s *Session, level int)
}

func (r levelRule) matches(level int) bool {
	for _, c := range r.when {
		if !c.matches(level) {
			return false
		}
	}
	return true
}

func rule(hp, mp int, when ...levelCheck) levelRule {
	return levelRule{when: when, hp: hp, mp: mp}
}

func statRule(stats []Stat, when ...levelCheck) levelRule {
	return levelRule{when: when, stats: stats}
}

func randomStatRule(when ...levelCheck) levelRule {
	return levelRule{when: when, randomStat: true}
}

func messageRule(msg string, when ...levelCheck) levelRule {
	return levelRule{when: when, message: msg}
}

func mutationRule(mut Mutation, msg string, when ...levelCheck) levelRule {
	return levelRule{when: when, mutation: mut, hasMutation: true, message: msg}
}

var (
	statsStr    = []Stat{StatStrength}
	statsDex    = []Stat{StatDexterity}
	statsInt    = []Stat{StatIntelligence}
	statsIntDex = []Stat{StatIntelligence, StatDexterity}
	statsStrDex = []Stat{StatStrength, StatDexterity}
	statsDexStr = []Stat{StatDexterity, StatStrength}
	statsIntStr = []Stat{StatIntelligence, StatStrength}
)

func draconianLevels(colourMsg string, extra ...levelRule) []levelRule {
	rules := []levelRule{
		messageRule(colourMsg, at(7)),
		rule(1, 0, every(3)),
		{when: []levelCheck{above(7), every(4)}, randomStat: true, message: "Your scales feel tougher."},
	}
	return append(rules, extra...)
}

var speciesTable = [numSpecies]SpeciesTraits{
	SpeciesHuman: {
		Name: "Human", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 10, MRPerLevel: 3, StealthMult: 15,
		BaseHP: 12, BaseMP: 1, BaseStats: [numStats]int{8, 8, 8},
		Levels: []levelRule{randomStatRule(every(5))},
	},
	SpeciesHighElf: {
		Name: "High Elf", Genus: GenusElf, Race: RaceElven, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 15, MRPerLevel: 4, StealthMult: 15,
		BaseHP: 10, BaseMP: 2, BaseStats: [numStats]int{7, 10, 9},
		Levels: []levelRule{rule(-1, 0, notEvery(3)), rule(0, 1, every(2)), statRule(statsIntDex, every(3))},
	},
	SpeciesGreyElf: {
		Name: "Grey Elf", Genus: GenusElf, Race: RaceElven, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 4, StealthMult: 15,
		BaseHP: 9, BaseMP: 2, BaseStats: [numStats]int{6, 10, 10},
		Levels: []levelRule{rule(-1, 0, below(14)), rule(0, 1, notEvery(3)), statRule(statsIntDex, every(4))},
	},
	SpeciesDeepElf: {
		Name: "Deep Elf", Genus: GenusElf, Race: RaceElven, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 4, StealthMult: 15,
		BaseHP: 8, BaseMP: 3, BaseStats: [numStats]int{5, 12, 9},
		Levels: []levelRule{rule(-1, 0, below(17)), rule(-1, 0, every(3)), rule(0, 1, always()), statRule(statsInt, every(4))},
	},
	SpeciesSludgeElf: {
		Name: "Sludge Elf", Genus: GenusElf, Race: RaceElven, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 12, MRPerLevel: 4, StealthMult: 15,
		BaseHP: 10, BaseMP: 1, BaseStats: [numStats]int{7, 9, 8},
		Levels: []levelRule{rule(-1, 0, notEvery(3)), rule(0, 1, every(3)), statRule(statsIntDex, every(4))},
	},
	SpeciesMountainDwarf: {
		Name: "Mountain Dwarf", Genus: GenusDwarf, Race: RaceDwarven, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 13, MRPerLevel: 4, StealthMult: 15,
		BaseHP: 15, BaseMP: 0, BaseStats: [numStats]int{10, 6, 6},
		Levels: []levelRule{rule(1, 0, every(2)), rule(0, -1, every(3)), statRule(statsStr, every(4))},
	},
	SpeciesHalfling: {
		Name: "Halfling", Size: SizeSmall, TorsoSize: SizeSmall, ExpMod: 10, MRPerLevel: 3, StealthMult: 18, SmallRace: true,
		BaseHP: 10, BaseMP: 0, BaseStats: [numStats]int{6, 7, 11},
		Levels: []levelRule{statRule(statsDex, every(5)), rule(-1, 0, below(17)), rule(-1, 0, every(2))},
	},
	SpeciesHillOrc: {
		Name: "Hill Orc", Genus: GenusOrc, Race: RaceOrcish, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 10, MRPerLevel: 3, StealthMult: 15,
		BaseHP: 15, BaseMP: 0, BaseStats: [numStats]int{10, 6, 6},
		Levels: []levelRule{rule(1, 0, every(2)), rule(0, -1, every(3)), statRule(statsStr, every(5))},
	},
	SpeciesKobold: {
		Name: "Kobold", Size: SizeSmall, TorsoSize: SizeSmall, ExpMod: 10, MRPerLevel: 3, StealthMult: 18, SmallRace: true, LikesChunks: true,
		BaseHP: 10, BaseMP: 0, BaseStats: [numStats]int{7, 7, 10},
		Levels: []levelRule{statRule(statsStrDex, every(5)), rule(-1, 0, below(17)), rule(-1, 0, every(2))},
	},
	SpeciesMummy: {
		Name: "Mummy", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 15, MRPerLevel: 3, StealthMult: 15, Undead: FullyUndead,
		BaseHP: 12, BaseMP: 0, BaseStats: [numStats]int{11, 7, 7},
		Innate: map[Mutation]int{MutationTormentResistance: 1, MutationNegativeEnergyResistance: 3, MutationColdResistance: 1, MutationPoisonResistance: 1},
		Levels: []levelRule{
			messageRule("You feel more in touch with the powers of death.", at(13)),
			messageRule("You can now infuse your body with magic to restore decomposition.", at(13)),
			messageRule("You feel more in touch with the powers of death.", at(26)),
		},
	},
	SpeciesNaga: {
		Name: "Naga", Size: SizeLarge, TorsoSize: SizeMedium, ExpMod: 12, MRPerLevel: 5, StealthMult: 18,
		BaseHP: 14, BaseMP: 0, BaseStats: [numStats]int{8, 8, 7},
		Innate: map[Mutation]int{MutationPoisonResistance: 1, MutationDeformed: 1},
		Levels: []levelRule{rule(1, 0, always()), randomStatRule(every(4)), messageRule("Your skin feels tougher.", every(3))},
	},
	SpeciesGnome: {
		Name: "Gnome", Size: SizeSmall, TorsoSize: SizeSmall, ExpMod: 11, MRPerLevel: 6, StealthMult: 18, SmallRace: true,
		BaseHP: 10, BaseMP: 1, BaseStats: [numStats]int{6, 9, 9},
		Levels: []levelRule{rule(-1, 0, below(13)), rule(-1, 0, every(3)), statRule(statsIntDex, every(4))},
	},
	SpeciesOgre: {
		Name: "Ogre", Size: SizeLarge, TorsoSize: SizeLarge, ExpMod: 14, MRPerLevel: 3, StealthMult: 9, LikesChunks: true,
		BaseHP: 17, BaseMP: 0, BaseStats: [numStats]int{13, 4, 6},
		Levels: ogreTrollLevels,
	},
	SpeciesTroll: {
		Name: "Troll", Size: SizeLarge, TorsoSize: SizeLarge, ExpMod: 15, MRPerLevel: 3, StealthMult: 9, LikesChunks: true,
		BaseHP: 18, BaseMP: 0, BaseStats: [numStats]int{13, 4, 6},
		Innate: map[Mutation]int{MutationClaws: 3, MutationRegeneration: 2},
		Levels: ogreTrollLevels,
	},
	SpeciesOgreMage: {
		Name: "Ogre-Mage", Size: SizeLarge, TorsoSize: SizeLarge, ExpMod: 15, MRPerLevel: 5, StealthMult: 9,
		BaseHP: 15, BaseMP: 2, BaseStats: [numStats]int{11, 9, 5},
		Levels: []levelRule{rule(1, 0, always()), statRule(statsIntStr, every(5))},
	},
	SpeciesRedDraconian: {
		Name: "Red Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start taking on a fiery red colour.", mutationRule(MutationHeatResistance, "", at(14))),
	},
	SpeciesWhiteDraconian: {
		Name: "White Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start taking on an icy white colour.", mutationRule(MutationColdResistance, "", at(14))),
	},
	SpeciesGreenDraconian: {
		Name: "Green Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start taking on a green colour.", mutationRule(MutationPoisonResistance, "", at(7))),
	},
	SpeciesYellowDraconian: {
		Name: "Yellow Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start taking on a golden yellow colour."),
	},
	SpeciesGreyDraconian: {
		Name: "Grey Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{10, 6, 7},
		Levels: []levelRule{
			messageRule("Your scales start turning grey.", at(7)),
			rule(1, 0, every(3)),
			rule(1, 0, every(3), above(7)),
			messageRule("Your scales feel tougher.", above(7), every(2)),
			randomStatRule(above(7), every(3)),
			randomStatRule(at(4)),
			randomStatRule(at(7)),
		},
	},
	SpeciesBlackDraconian: {
		Name: "Black Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start turning black.", mutationRule(MutationShockResistance, "", at(18))),
	},
	SpeciesPurpleDraconian: {
		Name: "Purple Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 6, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start taking on a rich purple colour."),
	},
	SpeciesMottledDraconian: {
		Name: "Mottled Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start taking on a weird mottled pattern."),
	},
	SpeciesPaleDraconian: {
		Name: "Pale Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels("Your scales start fading to a pale grey colour."),
	},
	SpeciesBaseDraconian: {
		Name: "Draconian", Genus: GenusDraconian, Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 13, BaseMP: 0, BaseStats: [numStats]int{9, 8, 6},
		Levels: draconianLevels(""),
	},
	SpeciesCentaur: {
		Name: "Centaur", Size: SizeLarge, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 9,
		BaseHP: 16, BaseMP: 0, BaseStats: [numStats]int{10, 5, 8},
		Innate: map[Mutation]int{MutationDeformed: 1, MutationFast: 1, MutationHooves: 3},
		Levels: []levelRule{statRule(statsDexStr, every(4)), rule(1, 0, every(2)), rule(0, -1, every(3))},
	},
	SpeciesDemigod: {
		Name: "Demigod", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 16, MRPerLevel: 4, StealthMult: 15,
		BaseHP: 14, BaseMP: 2, BaseStats: [numStats]int{11, 11, 11},
		Levels: []levelRule{randomStatRule(every(2)), rule(1, 0, every(2)), rule(0, 1, notEvery(3))},
	},
	SpeciesSpriggan: {
		Name: "Spriggan", Size: SizeLittle, TorsoSize: SizeLittle, ExpMod: 13, MRPerLevel: 7, StealthMult: 18, SmallRace: true,
		BaseHP: 8, BaseMP: 2, BaseStats: [numStats]int{4, 9, 11},
		Levels: []levelRule{rule(-1, 0, below(17)), rule(-1, 0, notEvery(3)), rule(0, 1, always()), statRule(statsIntDex, every(5))},
	},
	SpeciesMinotaur: {
		Name: "Minotaur", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 12,
		BaseHP: 15, BaseMP: 0, BaseStats: [numStats]int{12, 5, 5},
		Levels: []levelRule{rule(1, -1, every(2)), statRule(statsDexStr, every(4))},
	},
	SpeciesDemonspawn: {
		Name: "Demonspawn", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 14, MRPerLevel: 3, StealthMult: 15,
		BaseHP: 12, BaseMP: 1, BaseStats: [numStats]int{8, 9, 8},
		Levels: []levelRule{randomStatRule(every(4))},
	},
	SpeciesGhoul: {
		Name: "Ghoul", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 12, MRPerLevel: 3, StealthMult: 15, Undead: HungryDead, LikesChunks: true,
		BaseHP: 14, BaseMP: 0, BaseStats: [numStats]int{11, 5, 7},
		Innate: map[Mutation]int{MutationTormentResistance: 1, MutationNegativeEnergyResistance: 3, MutationColdResistance: 1, MutationPoisonResistance: 1, MutationClaws: 1, MutationCarnivorous: 3},
		Levels: []levelRule{rule(1, 0, every(2)), rule(0, -1, every(3)), statRule(statsStr, every(5))},
	},
	SpeciesKenku: {
		Name: "Kenku", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 13, MRPerLevel: 3, StealthMult: 15,
		BaseHP: 11, BaseMP: 1, BaseStats: [numStats]int{6, 8, 9},
		Levels: []levelRule{
			rule(-1, 0, below(17)),
			rule(-1, 0, every(3)),
			randomStatRule(every(4)),
			messageRule("You have gained the ability to fly.", at(5)),
			messageRule("You can now fly continuously.", at(15)),
		},
	},
	SpeciesMerfolk: {
		Name: "Merfolk", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 12, MRPerLevel: 3, StealthMult: 15, Swims: true,
		BaseHP: 12, BaseMP: 0, BaseStats: [numStats]int{8, 7, 9},
		Levels: []levelRule{rule(1, 0, notEvery(3)), randomStatRule(every(5))},
	},
	SpeciesVampire: {
		Name: "Vampire", Size: SizeMedium, TorsoSize: SizeMedium, ExpMod: 15, MRPerLevel: 4, StealthMult: 18, Undead: SemiUndead,
		BaseHP: 12, BaseMP: 1, BaseStats: [numStats]int{7, 10, 9},
		Innate: map[Mutation]int{MutationFangs: 3},
	},
}

// The hooks reach back into speciesTable through the session, so they are
// attached after the table is initialised.
func init() {
	attachLevelHook(SpeciesDemonspawn, demonicPowerHook)
	attachLevelHook(SpeciesVampire, vampireLevelHook)
}

func attachLevelHook(sp Species, hook func(s *Session, level int)) {
	t := &speciesTable[sp]
	t.Levels = append([]levelRule{{when: []levelCheck{always()}, hook: hook}}, t.Levels...)
}

var ogreTrollLevels = []levelRule{
	rule(1, 0, always()),
	rule(1, 0, every(2)),
	rule(0, -1, notEvery(3)),
	statRule(statsStr, every(3)),
}

// Traits returns the table entry for s. Unknown species read as Human.
func (s Species) Traits() SpeciesTraits {
	if s < 0 || s >= numSpecies {
		reportInvariant(InvariantStat, "species %d out of range", int(s))
		return speciesTable[SpeciesHuman]
	}
	return speciesTable[s]
}

func (s Species) String() string {
	return s.Traits().Name
}

func (s Species) IsDraconian() bool {
	return s.Traits().Genus == GenusDraconian
}

// LookupSpecies resolves a species by name, tolerating small typos.
func LookupSpecies(name string) (Species, bool) {
	names := make([]string, numSpecies)
	for i := range speciesTable {
		names[i] = strings.ToLower(speciesTable[i].Name)
	}
	idx, ok := fuzzyIndex(name, names)
	if !ok {
		return SpeciesHuman, false
	}
	return Species(idx), true
}

func demonicPowerHook(s *Session, level int) {
	p := s.Player
	thresholds := []int{4, 9, 14, 19, 24}
	n := p.DemonicPowers
	if n >= len(thresholds) {
		if n == len(thresholds) && level == 27 {
			s.gainDemonicPower()
		}
		return
	}
	prev := 0
	if n > 0 {
		prev = thresholds[n-1]
	}
	target := thresholds[n]
	if level <= prev {
		return
	}
	if level == target || (level < target && s.Rng.OneChanceIn(3)) {
		s.gainDemonicPower()
	}
}

func vampireLevelHook(s *Session, level int) {
	p := s.Player
	switch level {
	case 3:
		if p.HungerState > HungerSatiated {
			s.emit("If you weren't so full you could now transform into a vampire bat.", ChannelIntrinsicGain)
		} else {
			s.emit("You can now transform into a vampire bat.", ChannelIntrinsicGain)
		}
	case 6:
		s.emit("You can now bottle potions of blood from chopped up corpses.", ChannelIntrinsicGain)
	case 13:
		prefix := "strangely "
		if p.HungerState < HungerSatiated {
			prefix = ""
		}
		s.emit("You feel "+prefix+"in touch with the powers of death.", ChannelIntrinsicGain)
	}
}
