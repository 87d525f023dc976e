package game

// foodSpec describes one kind of permanent food or chunk.
type foodSpec struct {
	name      string
	nutrition int
	turns     int
	mass      int
	meaty     bool
	veggie    bool
}

var foodTable = [numFoodTypes]foodSpec{
	FoodMeatRation:  {name: "meat ration", nutrition: 5000, turns: 3, mass: 80, meaty: true},
	FoodBreadRation: {name: "bread ration", nutrition: 4400, turns: 3, mass: 80, veggie: true},
	FoodFruit:       {name: "fruit", nutrition: 850, turns: 1, mass: 20, veggie: true},
	FoodRoyalJelly:  {name: "royal jelly", nutrition: 2000, turns: 1, mass: 55},
	FoodPizza:       {name: "pizza", nutrition: 1500, turns: 1, mass: 40},
	FoodBeefJerky:   {name: "beef jerky", nutrition: 800, turns: 1, mass: 20, meaty: true},
	FoodChunk:       {name: "chunk of flesh", nutrition: 1000, turns: 2, mass: 100, meaty: true},
}

func foodInfoFor(t FoodType) (foodSpec, bool) {
	if t < 0 || t >= numFoodTypes {
		return foodSpec{}, false
	}
	return foodTable[t], true
}

func foodIsMeaty(it Item) bool {
	info, ok := foodInfoFor(FoodType(it.SubType))
	return it.Class == ClassFood && ok && info.meaty
}

func foodIsVeggie(it Item) bool {
	info, ok := foodInfoFor(FoodType(it.SubType))
	return it.Class == ClassFood && ok && info.veggie
}

func foodTurns(it Item) int {
	info, ok := foodInfoFor(FoodType(it.SubType))
	if !ok || it.Class != ClassFood {
		return 1
	}
	return info.turns
}

// FoodValue is the nutrition one unit gives this player after diet penalties.
func FoodValue(p *PlayerState, it Item) int {
	info, ok := foodInfoFor(FoodType(it.SubType))
	if !ok || it.Class != ClassFood {
		return 0
	}
	b := p.balance().Food
	value := info.nutrition
	if info.veggie {
		value = value * (100 - b.CarnivorePenalty*p.MutationLevel(MutationCarnivorous)) / 100
	}
	if info.meaty {
		value = value * (100 - b.HerbivorePenalty*p.MutationLevel(MutationHerbivorous)) / 100
	}
	return maxInt(value, 0)
}

// YouFoodless is true for species that never eat.
func YouFoodless(p *PlayerState) bool {
	return p.IsUndead() == FullyUndead
}

// likesChunks covers chunk-loving species, carnivores and, unless
// permanent is set, a fully attuned amulet of the gourmand.
func likesChunks(p *PlayerState, permanent bool) bool {
	if p.traits().LikesChunks || p.MutationLevel(MutationCarnivorous) > 0 {
		return true
	}
	return !permanent && p.WearingAmulet(AmuletGourmand, true) &&
		p.Gourmand >= p.balance().Food.GourmandMax
}

// CorpseIntelligence prefers the original monster when it is valid.
func CorpseIntelligence(it Item) MonsterIntel {
	if it.OrigMonster.valid() {
		return monsterTable[it.OrigMonster].Intel
	}
	return monsterInfo(it.Monster).Intel
}

// DetermineChunkEffect resolves a raw chunk hazard for this player. Ghouls
// and vampires treat every hazard as clean.
func DetermineChunkEffect(p *PlayerState, effect ChunkEffect) ChunkEffect {
	switch effect {
	case ChunkNoxious, ChunkMutagen:
		if p.Species == SpeciesGhoul || p.Species == SpeciesVampire {
			return ChunkClean
		}
	}
	return effect
}

func chunkEffectOf(p *PlayerState, it Item) ChunkEffect {
	return DetermineChunkEffect(p, monsterInfo(it.Monster).Effect)
}

func carrion(it Item) bool {
	return it.IsChunk() || it.Class == ClassCorpse
}

func IsMutagenic(p *PlayerState, it Item) bool {
	return carrion(it) && chunkEffectOf(p, it) == ChunkMutagen
}

func IsNoxious(p *PlayerState, it Item) bool {
	return carrion(it) && chunkEffectOf(p, it) == ChunkNoxious
}

// IsForbiddenFood applies god conduct. Zin forbids intelligent corpses;
// the good gods and Beogh forbid cannibalism; good gods forbid holy flesh.
func IsForbiddenFood(p *PlayerState, it Item) bool {
	if !carrion(it) {
		return false
	}
	if p.God == GodZin && CorpseIntelligence(it) >= IntelHuman {
		return true
	}
	info := monsterInfo(it.Monster)
	if (p.God.goodGod() || p.God == GodBeogh) && cannibalism(p, info) {
		return true
	}
	return p.God.goodGod() && info.Holy
}

func cannibalism(p *PlayerState, info MonsterInfo) bool {
	if !info.HasKin {
		return false
	}
	if genus := p.traits().Genus; genus != GenusNone {
		return info.Kin.Traits().Genus == genus
	}
	return info.Kin == p.Species
}

func IsBadFood(p *PlayerState, it Item) bool {
	return IsMutagenic(p, it) || IsForbiddenFood(p, it) || IsNoxious(p, it)
}

// IsInedible reports food the player cannot eat at all right now.
func IsInedible(p *PlayerState, it Item) bool {
	if YouFoodless(p) {
		return true
	}
	switch it.Class {
	case ClassFood:
		return !canEat(p, it, false, nil)
	case ClassCorpse:
		if it.SubType == int(CorpseSkeleton) {
			return true
		}
		if p.Species == SpeciesVampire {
			return !monsterInfo(it.Monster).HasBlood
		}
		chunk := it
		chunk.Class = ClassFood
		chunk.SubType = int(FoodChunk)
		return IsInedible(p, chunk)
	}
	return false
}

// IsPreferredFood highlights food a strict carnivore or herbivore craves.
func IsPreferredFood(p *PlayerState, it Item) bool {
	if YouFoodless(p) || p.Species == SpeciesVampire || it.Class != ClassFood {
		return false
	}
	if IsBadFood(p, it) {
		return false
	}
	if p.MutationLevel(MutationCarnivorous) == 3 {
		return foodIsMeaty(it)
	}
	if p.MutationLevel(MutationHerbivorous) == 3 {
		return foodIsVeggie(it)
	}
	return false
}

// canEat is the eligibility check. fail receives the refusal message.
func canEat(p *PlayerState, it Item, checkHunger bool, fail func(string)) bool {
	refuse := func(msg string) bool {
		if fail != nil {
			fail(msg)
		}
		return false
	}
	if it.Class != ClassFood && it.Class != ClassCorpse {
		return refuse("You can't eat that!")
	}
	// mutagenic chunks give no nutrition, so hunger does not gate them
	if IsMutagenic(p, it) {
		checkHunger = false
	}
	if YouFoodless(p) {
		return refuse("You can't eat.")
	}
	if checkHunger && p.HungerState == HungerEngorged {
		return refuse("You're too full to eat anything.")
	}
	if IsNoxious(p, it) {
		return refuse("It is completely inedible.")
	}
	if p.Species == SpeciesVampire {
		if it.Is(ClassCorpse, int(CorpseBody)) {
			return true
		}
		return refuse("Blech - you need blood!")
	}
	if it.Class == ClassCorpse {
		return false
	}
	switch {
	case foodIsVeggie(it):
		if p.MutationLevel(MutationCarnivorous) == 3 {
			return refuse("Sorry, you're a carnivore.")
		}
	case foodIsMeaty(it):
		if p.MutationLevel(MutationHerbivorous) == 3 {
			return refuse("Sorry, you're a herbivore.")
		}
		if it.IsChunk() && checkHunger && !likesChunks(p, false) {
			return refuse("You aren't quite hungry enough to eat that!")
		}
	}
	return true
}

// CanEat reports whether the player may eat it, explaining a refusal
// unless suppressMsg is set.
func (s *Session) CanEat(it Item, suppressMsg, checkHunger bool) bool {
	var fail func(string)
	if !suppressMsg {
		fail = func(msg string) { s.emit(msg, ChannelPlain) }
	}
	return canEat(s.Player, it, checkHunger, fail)
}
