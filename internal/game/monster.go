package game

import "strings"

type MonsterID int

const (
	MonsterNone MonsterID = iota
	MonsterRat
	MonsterJackal
	MonsterGoblin
	MonsterHobgoblin
	MonsterOrc
	MonsterHuman
	MonsterElf
	MonsterKobold
	MonsterGnoll
	MonsterOgre
	MonsterTroll
	MonsterYak
	MonsterKillerBee
	MonsterUglyThing
	MonsterVeryUglyThing
	MonsterOoze
	MonsterAngel
	MonsterGiantFrog
	MonsterGastronok
	MonsterGiantSlug
	numMonsters
)

type MonsterIntel int

const (
	IntelBrainless MonsterIntel = iota
	IntelAnimal
	IntelHuman
)

type ChunkEffect int

const (
	ChunkClean ChunkEffect = iota
	ChunkMutagen
	ChunkNoxious
	ChunkNoCorpse
)

func (c ChunkEffect) String() string {
	switch c {
	case ChunkClean:
		return "clean"
	case ChunkMutagen:
		return "mutagenic"
	case ChunkNoxious:
		return "noxious"
	default:
		return "no corpse"
	}
}

type MonsterInfo struct {
	Name      string
	Intel     MonsterIntel
	HasBlood  bool
	Effect    ChunkEffect
	MaxChunks int
	Mass      int
	Holy      bool
	// Kin is the player species eating this counts as cannibalism for.
	Kin Species
	// HasKin is false for monsters no species is related to.
	HasKin bool
}

var monsterTable = [numMonsters]MonsterInfo{
	MonsterNone:          {Name: "buggy", Effect: ChunkNoCorpse},
	MonsterRat:           {Name: "rat", Intel: IntelAnimal, HasBlood: true, Effect: ChunkClean, MaxChunks: 1, Mass: 200},
	MonsterJackal:        {Name: "jackal", Intel: IntelAnimal, HasBlood: true, Effect: ChunkClean, MaxChunks: 2, Mass: 350},
	MonsterGoblin:        {Name: "goblin", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 3, Mass: 400},
	MonsterHobgoblin:     {Name: "hobgoblin", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 4, Mass: 500},
	MonsterOrc:           {Name: "orc", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 5, Mass: 600, Kin: SpeciesHillOrc, HasKin: true},
	MonsterHuman:         {Name: "human", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 5, Mass: 550, Kin: SpeciesHuman, HasKin: true},
	MonsterElf:           {Name: "elf", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 4, Mass: 450, Kin: SpeciesHighElf, HasKin: true},
	MonsterKobold:        {Name: "kobold", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 3, Mass: 400, Kin: SpeciesKobold, HasKin: true},
	MonsterGnoll:         {Name: "gnoll", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 5, Mass: 750},
	MonsterOgre:          {Name: "ogre", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 10, Mass: 1300, Kin: SpeciesOgre, HasKin: true},
	MonsterTroll:         {Name: "troll", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 10, Mass: 1500, Kin: SpeciesTroll, HasKin: true},
	MonsterYak:           {Name: "yak", Intel: IntelAnimal, HasBlood: true, Effect: ChunkClean, MaxChunks: 12, Mass: 1200},
	MonsterKillerBee:     {Name: "killer bee", Intel: IntelBrainless, HasBlood: false, Effect: ChunkClean, MaxChunks: 1, Mass: 150},
	MonsterUglyThing:     {Name: "ugly thing", Intel: IntelAnimal, HasBlood: true, Effect: ChunkMutagen, MaxChunks: 5, Mass: 600},
	MonsterVeryUglyThing: {Name: "very ugly thing", Intel: IntelAnimal, HasBlood: true, Effect: ChunkMutagen, MaxChunks: 8, Mass: 750},
	MonsterOoze:          {Name: "ooze", Intel: IntelBrainless, HasBlood: false, Effect: ChunkNoxious, MaxChunks: 2, Mass: 300},
	MonsterAngel:         {Name: "angel", Intel: IntelHuman, HasBlood: true, Effect: ChunkClean, MaxChunks: 6, Mass: 800, Holy: true},
	MonsterGiantFrog:     {Name: "giant frog", Intel: IntelAnimal, HasBlood: true, Effect: ChunkClean, MaxChunks: 3, Mass: 500},
	MonsterGastronok:     {Name: "Gastronok", Intel: IntelHuman, HasBlood: false, Effect: ChunkClean, MaxChunks: 4, Mass: 700},
	MonsterGiantSlug:     {Name: "giant slug", Intel: IntelBrainless, HasBlood: false, Effect: ChunkClean, MaxChunks: 4, Mass: 700},
}

func (m MonsterID) valid() bool {
	return m > MonsterNone && m < numMonsters
}

// monsterInfo returns the catalog entry. Malformed ids read as a monster that
// leaves no corpse.
func monsterInfo(m MonsterID) MonsterInfo {
	if !m.valid() {
		reportInvariant(InvariantCorpseMonster, "monster id %d out of range", int(m))
		return monsterTable[MonsterNone]
	}
	return monsterTable[m]
}

func LookupMonster(name string) (MonsterID, bool) {
	names := make([]string, numMonsters)
	for i := range monsterTable {
		if i == int(MonsterNone) {
			continue
		}
		names[i] = strings.ToLower(monsterTable[i].Name)
	}
	idx, ok := fuzzyIndex(name, names)
	if !ok {
		return MonsterNone, false
	}
	return MonsterID(idx), true
}

// NewChunk makes a stack of fresh chunks from m.
func NewChunk(m MonsterID, qty int, b *Balance) Item {
	return Item{
		Class:     ClassFood,
		SubType:   int(FoodChunk),
		Quantity:  qty,
		Monster:   m,
		Freshness: b.Food.ChunkFreshness,
		TypeKnown: true,
	}
}

func NewCorpse(m MonsterID, b *Balance) Item {
	return Item{
		Class:     ClassCorpse,
		SubType:   int(CorpseBody),
		Quantity:  1,
		Monster:   m,
		Freshness: b.Food.ChunkFreshness,
		TypeKnown: true,
	}
}
