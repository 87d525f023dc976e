package game

import (
	"slices"
	"strings"
)

// EatFood eats from the pack slot, or with slot -1 tries nearby chunks
// first and then the best pack food.
func (s *Session) EatFood(slot int) bool {
	p := s.Player
	if YouFoodless(p) {
		s.emit("You can't eat.", ChannelPlain)
		return false
	}
	if slot == -1 {
		if s.PromptEatChunks(false) {
			return true
		}
		if p.Species == SpeciesVampire {
			s.emit("There's nothing here to drain!", ChannelPlain)
			return false
		}
		idx, ok := s.bestPackFood()
		if !ok {
			s.emit("You aren't carrying any food.", ChannelPlain)
			return false
		}
		slot = idx
	}
	it, ok := p.ItemAt(slot)
	if !ok {
		s.emit("You don't have that item.", ChannelPlain)
		return false
	}
	if !s.CanEat(*it, false, true) {
		return false
	}
	return s.EatItem(PackFood(slot))
}

func (s *Session) bestPackFood() (int, bool) {
	p := s.Player
	candidates := make([]foodCandidate, 0, len(p.Inventory))
	for i := range p.Inventory {
		it := &p.Inventory[i]
		if it.Defined() && it.Class == ClassFood && !IsBadFood(p, *it) && canEat(p, *it, true, nil) {
			candidates = append(candidates, foodCandidate{ref: PackFood(i), item: it})
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}
	sortCandidates(p, candidates)
	return candidates[0].ref.Pack, true
}

// EatItem starts eating. Vampires drain corpses instead.
func (s *Session) EatItem(ref FoodRef) bool {
	p := s.Player
	it := ref.resolve(p)
	if it == nil {
		return false
	}
	if it.Is(ClassCorpse, int(CorpseBody)) {
		if p.Species != SpeciesVampire {
			return false
		}
		return s.vampireConsumeCorpse(ref.Floor)
	}
	if it.Class != ClassFood {
		return false
	}
	s.startDelay(newEatDelay(ref, it))
	oneOf := ""
	if it.Quantity > 1 {
		oneOf = "one of "
	}
	s.emitf(ChannelPlain, "You start eating %sthe %s.", oneOf, it.DisplayName())
	return true
}

func (s *Session) vampireConsumeCorpse(corpse *Item) bool {
	p := s.Player
	if corpse == nil || !corpse.Is(ClassCorpse, int(CorpseBody)) {
		return false
	}
	info := monsterInfo(corpse.Monster)
	if !info.HasBlood {
		s.emit("There is no blood in this body!", ChannelPlain)
		return false
	}
	duration := stepdown(1+info.MaxChunks/3, 6, 6, 12, 12)

	s.emitf(ChannelFood, "You begin to drink blood from the %s.", corpse.DisplayName())
	// some nutrition up front in case of interruption
	s.LessenHunger(p.balance().Food.VampireDrink, true)
	s.startDelay(&FeedVampireDelay{Corpse: corpse, Pos: p.Pos, Left: duration - 1})
	return true
}

// FinishEatingItem applies the effects of one unit and removes it.
func (s *Session) FinishEatingItem(ref FoodRef) {
	p := s.Player
	it := ref.resolve(p)
	if it == nil {
		return
	}
	food := *it
	if food.IsChunk() {
		s.eatChunk(food)
	} else {
		value := FoodValue(p, food)
		if value <= 0 {
			reportInvariant(InvariantStat, "%s gives no nutrition", food.DisplayName())
		}
		s.finishedEatingMessage(FoodType(food.SubType))
		s.LessenHunger(value, true)
	}
	ref.consume(p)
	s.foodChange(false)
	s.updateBurden()
}

func (s *Session) finishedEatingMessage(t FoodType) {
	p := s.Player
	herbivorous := p.MutationLevel(MutationHerbivorous) > 0
	carnivorous := p.MutationLevel(MutationCarnivorous) > 0
	probe := Item{Class: ClassFood, SubType: int(t)}

	if herbivorous {
		if foodIsMeaty(probe) {
			s.emit("Blech - you need greens!", ChannelFood)
			return
		}
	} else {
		switch t {
		case FoodMeatRation:
			s.emit("That meat ration really hit the spot!", ChannelFood)
			return
		case FoodBeefJerky:
			if s.Rng.OneChanceIn(4) {
				s.emit("That beef jerky was jerk-a-riffic!", ChannelFood)
			} else {
				s.emit("That beef jerky was delicious!", ChannelFood)
			}
			return
		}
	}

	if carnivorous {
		if foodIsVeggie(probe) {
			s.emit("Blech - you need meat!", ChannelFood)
			return
		}
	} else {
		switch t {
		case FoodBreadRation:
			s.emit("That bread ration really hit the spot!", ChannelFood)
			return
		case FoodFruit:
			s.emit(s.flavour("eating_fruit", "Eugh, buggy fruit."), ChannelFood)
		}
	}

	switch t {
	case FoodRoyalJelly:
		s.emit("That royal jelly was delicious!", ChannelFood)
	case FoodPizza:
		s.emit(s.flavour("eating_pizza", "Bleh, bug pizza."), ChannelFood)
	}
}

// flavour picks a random line from a balance text pool.
func (s *Session) flavour(pool, fallback string) string {
	lines := s.Player.balance().Flavour[pool]
	if len(lines) == 0 {
		return fallback
	}
	return lines[s.Rng.Random2(len(lines))]
}

func (s *Session) eatChunk(food Item) {
	p := s.Player
	switch chunkEffectOf(p, food) {
	case ChunkMutagen:
		s.emit("This meat tastes really weird.", ChannelFood)
		s.RandomMutation("mutagenic meat")
	case ChunkClean:
		if p.Species == SpeciesGhoul {
			s.healFromFood(1 + s.Rng.Random2Avg(5+p.XL, 3))
		}
		s.emit("This raw flesh "+s.chunkFlavourPhrase(likesChunks(p, true)), ChannelFood)
		s.LessenHunger(FoodValue(p, food), true)
	default:
		reportInvariant(InvariantCorpseMonster, "chunk of %s has effect %s", monsterInfo(food.Monster).Name, chunkEffectOf(p, food))
		s.emit("This flesh tastes buggy!", ChannelWarn)
	}
}

func (s *Session) chunkFlavourPhrase(likes bool) string {
	p := s.Player
	if p.Species == SpeciesGhoul {
		return "tastes great!"
	}
	if likes {
		return "tastes great."
	}
	full := p.balance().Food.GourmandMax
	switch g := p.Gourmand; {
	case g >= full:
		if s.Rng.OneChanceIn(1000) {
			return "tastes like chicken!"
		}
		return "tastes great."
	case g > full*75/100:
		return "tastes very good."
	case g > full*50/100:
		return "tastes good."
	case g > full*25/100:
		return "is not very appetising."
	}
	return "tastes terrible."
}

func (s *Session) healFromFood(hp int) {
	if hp > 0 {
		s.IncHP(hp, false)
	}
	if s.Player.Rotted() > 0 {
		s.emit("You feel more resilient.", ChannelRecovery)
		s.UnrotHP(1)
	}
	s.CalcHP()
	s.CalcMP()
}

type foodCandidate struct {
	ref  FoodRef
	item *Item
}

func boolKey(b bool) int {
	if b {
		return 1
	}
	return 0
}

// eatOrder compares two foods: inedible last, permanent food before
// perishables, hazardous perishables after safe ones, then oldest first.
func eatOrder(p *PlayerState, a, b Item) int {
	if d := boolKey(IsInedible(p, a)) - boolKey(IsInedible(p, b)); d != 0 {
		return d
	}
	if d := boolKey(a.IsPerishable()) - boolKey(b.IsPerishable()); d != 0 {
		return d
	}
	if !a.IsPerishable() {
		return 0
	}
	if d := boolKey(IsBadFood(p, a)) - boolKey(IsBadFood(p, b)); d != 0 {
		return d
	}
	return a.Freshness - b.Freshness
}

func sortCandidates(p *PlayerState, c []foodCandidate) {
	slices.SortStableFunc(c, func(a, b foodCandidate) int {
		return eatOrder(p, *a.item, *b.item)
	})
}

// SortFoodByEatOrder orders items in place for eating. Equal items keep
// their relative order.
func SortFoodByEatOrder(p *PlayerState, items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return eatOrder(p, a, b)
	})
}

// PromptEatChunks offers floor and pack chunks, oldest first. Safe chunks
// are eaten without asking when no hostile is in view. onlyAuto never
// prompts. Reports whether something was eaten.
func (s *Session) PromptEatChunks(onlyAuto bool) bool {
	p := s.Player
	if p.MutationLevel(MutationHerbivorous) == 3 || YouFoodless(p) {
		return false
	}
	vampire := p.Species == SpeciesVampire

	var chunks []foodCandidate
	for _, it := range s.Terrain.ItemsAt(p.Pos) {
		if it == nil || !it.Defined() {
			continue
		}
		if vampire {
			if !it.Is(ClassCorpse, int(CorpseBody)) || !monsterInfo(it.Monster).HasBlood {
				continue
			}
		} else if !it.IsChunk() || IsBadFood(p, *it) {
			continue
		}
		chunks = append(chunks, foodCandidate{ref: FloorFood(it), item: it})
	}
	if !vampire {
		for i := range p.Inventory {
			it := &p.Inventory[i]
			if !it.Defined() || !it.IsChunk() || IsBadFood(p, *it) {
				continue
			}
			chunks = append(chunks, foodCandidate{ref: PackFood(i), item: it})
		}
	}
	if len(chunks) == 0 {
		return false
	}
	sortCandidates(p, chunks)

	// undead keep their chunks unless a ghoul needs the healing
	noAuto := p.IsUndead() != Alive && !(p.Species == SpeciesGhoul && p.Rotted() > 0)
	safe := !s.hostileNearby()
	for _, c := range chunks {
		name := c.item.DisplayName()
		oneOf := ""
		if c.item.Quantity > 1 {
			oneOf = "one of "
		}
		verb := "Eat"
		if vampire {
			verb = "Drink blood from"
		}

		auto := !IsBadFood(p, *c.item) && safe && !(onlyAuto && noAuto)
		if !auto && onlyAuto {
			return false
		}
		if !auto && !s.yesNo(verb+" "+oneOf+article(name)+"?") {
			continue
		}
		if !s.CanEat(*c.item, false, true) {
			continue
		}
		if auto {
			verb = "Eating"
			if vampire {
				verb = "Drinking blood from"
			}
			s.emit(verb+" "+oneOf+article(name)+".", ChannelPlain)
		}
		return s.EatItem(c.ref)
	}
	return false
}

func article(name string) string {
	if name == "" {
		return name
	}
	if strings.ContainsRune("aeiouAEIOU", rune(name[0])) {
		return "an " + name
	}
	return "a " + name
}
