package game

import "testing"

func TestChunkHazards(t *testing.T) {
	b := DefaultBalance()
	human := NewPlayer(PlayerConfig{Species: SpeciesHuman}, 1, b)
	ghoul := NewPlayer(PlayerConfig{Species: SpeciesGhoul}, 1, b)

	ugly := NewChunk(MonsterUglyThing, 1, b)
	ooze := NewChunk(MonsterOoze, 1, b)
	rat := NewChunk(MonsterRat, 1, b)

	if !IsBadFood(human, ugly) || !IsMutagenic(human, ugly) {
		t.Fatalf("expected ugly thing chunk to be mutagenic for a human")
	}
	if !IsNoxious(human, ooze) {
		t.Fatalf("expected ooze chunk to be noxious for a human")
	}
	if IsBadFood(human, rat) {
		t.Fatalf("expected rat chunk to be safe")
	}
	if IsBadFood(ghoul, ugly) || IsBadFood(ghoul, ooze) {
		t.Fatalf("expected ghoul to treat hazardous chunks as clean")
	}
}

func TestDetermineChunkEffectIsStable(t *testing.T) {
	effects := []ChunkEffect{ChunkClean, ChunkMutagen, ChunkNoxious, ChunkNoCorpse}
	for _, sp := range []Species{SpeciesHuman, SpeciesGhoul, SpeciesVampire, SpeciesKobold} {
		p := NewPlayer(PlayerConfig{Species: sp}, 1, nil)
		for _, e := range effects {
			once := DetermineChunkEffect(p, e)
			if twice := DetermineChunkEffect(p, once); twice != once {
				t.Fatalf("%s: expected %s to be stable, got %s", sp, once, twice)
			}
		}
	}
}

func TestForbiddenFood(t *testing.T) {
	b := DefaultBalance()
	goblin := NewChunk(MonsterGoblin, 1, b)
	human := NewChunk(MonsterHuman, 1, b)
	angel := NewChunk(MonsterAngel, 1, b)
	rat := NewChunk(MonsterRat, 1, b)

	zin := NewPlayer(PlayerConfig{Species: SpeciesHuman, God: GodZin}, 1, b)
	if !IsForbiddenFood(zin, goblin) {
		t.Fatalf("expected Zin to forbid intelligent flesh")
	}
	if IsForbiddenFood(zin, rat) {
		t.Fatalf("expected Zin to allow animal flesh")
	}

	elyvilon := NewPlayer(PlayerConfig{Species: SpeciesHuman, God: GodElyvilon}, 1, b)
	if !IsForbiddenFood(elyvilon, human) {
		t.Fatalf("expected cannibalism to be forbidden")
	}
	if !IsForbiddenFood(elyvilon, angel) {
		t.Fatalf("expected holy flesh to be forbidden")
	}
	if IsForbiddenFood(elyvilon, goblin) {
		t.Fatalf("expected goblin flesh to be allowed for a human of Elyvilon")
	}

	beogh := NewPlayer(PlayerConfig{Species: SpeciesHillOrc, God: GodBeogh}, 1, b)
	if !IsForbiddenFood(beogh, NewChunk(MonsterOrc, 1, b)) {
		t.Fatalf("expected Beogh to forbid orcs eating orcs")
	}

	atheist := NewPlayer(PlayerConfig{Species: SpeciesHuman}, 1, b)
	if IsForbiddenFood(atheist, human) {
		t.Fatalf("expected no conduct without a god")
	}
	if IsForbiddenFood(zin, catalogItem(t, "bread ration")) {
		t.Fatalf("expected permanent food never to be forbidden")
	}
}

func catalogItem(t *testing.T, name string) Item {
	t.Helper()
	it, ok := CatalogItem(name)
	if !ok {
		t.Fatalf("catalog has no %q", name)
	}
	return it
}

func TestFoodValueDietPenalty(t *testing.T) {
	p := NewPlayer(PlayerConfig{Species: SpeciesHuman}, 1, nil)
	meat := catalogItem(t, "meat ration")
	bread := catalogItem(t, "bread ration")

	if got := FoodValue(p, meat); got != 5000 {
		t.Fatalf("expected 5000, got %d", got)
	}
	p.Mutations.Levels[MutationHerbivorous] = 1
	if got := FoodValue(p, meat); got != 3350 {
		t.Fatalf("expected 3350 for a herbivore, got %d", got)
	}
	if got := FoodValue(p, bread); got != 4400 {
		t.Fatalf("expected bread unaffected, got %d", got)
	}
}

func TestSortFoodByEatOrder(t *testing.T) {
	b := DefaultBalance()
	p := NewPlayer(PlayerConfig{Species: SpeciesHuman}, 1, b)

	oldRat := NewChunk(MonsterRat, 1, b)
	oldRat.Freshness = 20
	freshRat := NewChunk(MonsterRat, 1, b)
	freshRat.Freshness = 50
	ugly := NewChunk(MonsterUglyThing, 1, b)
	ugly.Freshness = 10
	ooze := NewChunk(MonsterOoze, 1, b)
	ooze.Freshness = 5
	bread := catalogItem(t, "bread ration")

	items := []Item{ooze, freshRat, bread, ugly, oldRat}
	SortFoodByEatOrder(p, items)

	want := []Item{bread, oldRat, freshRat, ugly, ooze}
	for i := range want {
		if items[i].Monster != want[i].Monster || items[i].Freshness != want[i].Freshness || items[i].SubType != want[i].SubType {
			t.Fatalf("position %d: expected %s, got %s", i, want[i].DisplayName(), items[i].DisplayName())
		}
	}
}

func TestCanEatRefusals(t *testing.T) {
	s, log := newTestSession(t, SpeciesVampire)
	bread := catalogItem(t, "bread ration")
	if s.CanEat(bread, false, true) {
		t.Fatalf("expected vampire to refuse bread")
	}
	if !log.Contains("Blech - you need blood!") {
		t.Fatalf("expected blood message, got %+v", log.Lines)
	}

	s, log = newTestSession(t, SpeciesHuman)
	s.SetHunger(s.Balance.Hunger.Max, true)
	if s.CanEat(bread, false, true) {
		t.Fatalf("expected engorged player to refuse food")
	}
	if !log.Contains("You're too full to eat anything.") {
		t.Fatalf("expected too full message, got %+v", log.Lines)
	}

	s, log = newTestSession(t, SpeciesHuman)
	if s.CanEat(NewChunk(MonsterRat, 1, s.Balance), false, true) {
		t.Fatalf("expected satiated human to pass on a chunk")
	}
	if !log.Contains("You aren't quite hungry enough to eat that!") {
		t.Fatalf("expected not hungry message, got %+v", log.Lines)
	}
	if s.CanEat(catalogItem(t, "dagger"), false, true) {
		t.Fatalf("expected weapons to be inedible")
	}
}

func TestEatBreadRation(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	giveItem(t, s, "bread ration")
	start := s.Player.Hunger

	res := s.ExecuteCommand("eat bread ration")
	if !res.Handled || res.Death != nil {
		t.Fatalf("expected a handled command, got %+v", res)
	}
	if res.TurnsAdvanced != 3 {
		t.Fatalf("expected 3 turns, got %d", res.TurnsAdvanced)
	}
	if want := start - 3*3 + 4400; s.Player.Hunger != want {
		t.Fatalf("expected hunger %d, got %d", want, s.Player.Hunger)
	}
	if !log.Contains("That bread ration really hit the spot!") {
		t.Fatalf("expected eating message, got %+v", log.Lines)
	}
	if _, ok := s.Player.FindItem("bread ration"); ok {
		t.Fatalf("expected bread ration to be consumed")
	}
}

func TestKoboldAutoEatsFloorChunk(t *testing.T) {
	s, log := newTestSession(t, SpeciesKobold)
	s.Terrain.(*FlatTerrain).Drop(s.Player.Pos, NewChunk(MonsterRat, 1, s.Balance))

	if !s.PromptEatChunks(true) {
		t.Fatalf("expected the chunk to be eaten")
	}
	if s.Player.Delay == nil || s.Player.Delay.Name() != "eat" {
		t.Fatalf("expected an eat delay, got %v", s.Player.Delay)
	}
	if !log.Contains("Eating a rat chunk.") {
		t.Fatalf("expected auto eat message, got %+v", log.Lines)
	}
}

func TestAutoEatSkipsHazardousChunks(t *testing.T) {
	s, _ := newTestSession(t, SpeciesKobold)
	s.Terrain.(*FlatTerrain).Drop(s.Player.Pos, NewChunk(MonsterUglyThing, 1, s.Balance))

	if s.PromptEatChunks(true) {
		t.Fatalf("expected mutagenic chunk to be left alone")
	}
}

func TestVampireDrinksCorpse(t *testing.T) {
	s, _ := newTestSession(t, SpeciesVampire)
	s.SetHunger(2000, true)
	s.Terrain.(*FlatTerrain).Drop(s.Player.Pos, NewCorpse(MonsterYak, s.Balance))

	if !s.EatFood(-1) {
		t.Fatalf("expected vampire to start drinking")
	}
	if s.Player.Hunger != 2000+s.Balance.Food.VampireDrink {
		t.Fatalf("expected up front nutrition, got %d", s.Player.Hunger)
	}
	if s.Player.Delay == nil || s.Player.Delay.Name() != "feed" {
		t.Fatalf("expected a feed delay, got %v", s.Player.Delay)
	}
}

func TestVampireFindsNoBlood(t *testing.T) {
	s, log := newTestSession(t, SpeciesVampire)
	if s.EatFood(-1) {
		t.Fatalf("expected nothing to drain")
	}
	if !log.Contains("There's nothing here to drain!") {
		t.Fatalf("expected drain message, got %+v", log.Lines)
	}
}

func TestChunkHungerGateIgnoresHungerLevel(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	s.SetHunger(s.Balance.Hunger.Thresholds[1], true)
	if s.Player.HungerState > HungerVeryHungry {
		t.Fatalf("expected a very hungry player, got %s", s.Player.HungerState)
	}
	chunk := NewChunk(MonsterRat, 1, s.Balance)
	if s.CanEat(chunk, false, true) {
		t.Fatalf("expected a human to pass on a chunk however hungry")
	}
	if !log.Contains("You aren't quite hungry enough to eat that!") {
		t.Fatalf("expected not hungry message, got %+v", log.Lines)
	}
	if !s.CanEat(chunk, true, false) {
		t.Fatalf("expected the chunk to be edible without the hunger check")
	}

	kobold, _ := newTestSession(t, SpeciesKobold)
	if !kobold.CanEat(chunk, true, true) {
		t.Fatalf("expected a kobold to eat chunks with the hunger check")
	}
}
