package game

import (
	"errors"
	"fmt"
)

// Balance holds tuned game constants. It round-trips through JSON so a
// balance file can override any part of it.
type Balance struct {
	Hunger     HungerBalance     `json:"hunger"`
	Food       FoodBalance       `json:"food"`
	Durations  DurationBalance   `json:"durations"`
	Experience ExperienceBalance `json:"experience"`
	Regen      RegenBalance      `json:"regen"`
	// ScaleAC is the AC per mutation level in hundredths, keyed by mutation name.
	ScaleAC map[string][4]int `json:"scale_ac"`
	// ScaleDexPenalty is the dexterity lost per mutation level.
	ScaleDexPenalty map[string][4]int `json:"scale_dex_penalty"`
	// Flavour pools pick a random line for finished-eating messages.
	Flavour map[string][]string `json:"flavour"`
}

type HungerBalance struct {
	Start int `json:"start"`
	Max   int `json:"max"`
	// Thresholds are the upper bounds of starving through very full, in order.
	Thresholds [7]int `json:"thresholds"`
	// ExtraCostAbove gates invisibility and haste hunger.
	ExtraCostAbove int `json:"extra_cost_above"`
}

type FoodBalance struct {
	ChunkFreshness int `json:"chunk_freshness"`
	RottenAt       int `json:"rotten_at"`
	RotEvery       int `json:"rot_every"`
	GourmandMax    int `json:"gourmand_max"`
	// HerbivorePenalty and CarnivorePenalty are the percent of nutrition lost
	// from disliked food per mutation level.
	HerbivorePenalty int `json:"herbivore_penalty"`
	CarnivorePenalty int `json:"carnivore_penalty"`
	// VampireDrink is the nutrition per turn of draining a corpse.
	VampireDrink int `json:"vampire_drink"`
}

type DurationBalance struct {
	PoisonCap       int `json:"poison_cap"`
	ConfusionCap    int `json:"confusion_cap"`
	SlowCap         int `json:"slow_cap"`
	HasteCap        int `json:"haste_cap"`
	HasteAmuletCap  int `json:"haste_amulet_cap"`
	DiseaseCap      int `json:"disease_cap"`
	ParalysisCap    int `json:"paralysis_cap"`
	RottingCap      int `json:"rotting_cap"`
	ExhaustionTurns int `json:"exhaustion_turns"`
}

type ExperienceBalance struct {
	Cap      int `json:"cap"`
	PoolCap  int `json:"pool_cap"`
	MaxLevel int `json:"max_level"`
}

type RegenBalance struct {
	// Unit is the accumulator size that yields one point.
	Unit       int `json:"unit"`
	MPBase     int `json:"mp_base"`
	SoftCap    int `json:"soft_cap"`
	MinHPRegen int `json:"min_hp_regen"`
}

var defaultBalance = DefaultBalance()

func DefaultBalance() *Balance {
	return &Balance{
		Hunger: HungerBalance{
			Start:          6000,
			Max:            12000,
			Thresholds:     [7]int{1000, 1533, 2066, 2600, 7000, 9000, 11000},
			ExtraCostAbove: 40,
		},
		Food: FoodBalance{
			ChunkFreshness:   210,
			RottenAt:         99,
			RotEvery:         10,
			GourmandMax:      2000,
			HerbivorePenalty: 33,
			CarnivorePenalty: 33,
			VampireDrink:     500,
		},
		Durations: DurationBalance{
			PoisonCap:       40,
			ConfusionCap:    40,
			SlowCap:         100,
			HasteCap:        80,
			HasteAmuletCap:  100,
			DiseaseCap:      210,
			ParalysisCap:    13,
			RottingCap:      40,
			ExhaustionTurns: 12,
		},
		Experience: ExperienceBalance{
			Cap:      8999999,
			PoolCap:  20000,
			MaxLevel: 27,
		},
		Regen: RegenBalance{
			Unit:       100,
			MPBase:     7,
			SoftCap:    20,
			MinHPRegen: 1,
		},
		ScaleAC: map[string][4]int{
			"tough skin":          {0, 100, 200, 300},
			"grey scales":         {0, 100, 200, 300},
			"shaggy fur":          {0, 100, 200, 300},
			"blue scales":         {0, 100, 200, 300},
			"speckled scales":     {0, 100, 200, 300},
			"iridescent scales":   {0, 100, 200, 300},
			"patterned scales":    {0, 100, 200, 300},
			"green scales":        {0, 100, 300, 500},
			"nacreous scales":     {0, 100, 300, 500},
			"smooth black scales": {0, 100, 300, 500},
			"white scales":        {0, 100, 300, 500},
			"ridged grey scales":  {0, 200, 400, 600},
			"yellow scales":       {0, 200, 400, 600},
			"purple scales":       {0, 200, 400, 600},
			"black scales":        {0, 300, 600, 900},
			"boney plates":        {0, 200, 300, 400},
			"red scales":          {0, 100, 200, 400},
			"indigo scales":       {0, 200, 300, 500},
			"brown scales":        {0, 200, 400, 500},
			"orange scales":       {0, 100, 300, 400},
			"knobbly red scales":  {0, 200, 500, 700},
			"metallic scales":     {0, 300, 700, 1000},
		},
		ScaleDexPenalty: map[string][4]int{
			"black scales":       {0, 1, 2, 3},
			"boney plates":       {0, 1, 2, 3},
			"ridged grey scales": {0, 1, 1, 2},
			"metallic scales":    {0, 2, 3, 4},
			"yellow scales":      {0, 0, 1, 2},
			"knobbly red scales": {0, 0, 1, 2},
		},
		Flavour: map[string][]string{
			"eating_fruit": {
				"That fruit was delicious!",
				"Mmmm... juicy.",
				"That was a refreshing snack.",
			},
			"eating_pizza": {
				"Mmm... anchovies.",
				"Mmm... extra cheese.",
				"Mmm... mushrooms.",
			},
		},
	}
}

// Validate rejects balance files that would break the step functions.
func (b *Balance) Validate() error {
	if b == nil {
		return errors.New("balance is nil")
	}
	prev := 0
	for i, t := range b.Hunger.Thresholds {
		if t <= prev {
			return fmt.Errorf("hunger threshold %d (%d) must exceed %d", i, t, prev)
		}
		prev = t
	}
	if b.Hunger.Max <= prev {
		return fmt.Errorf("hunger max %d must exceed the last threshold %d", b.Hunger.Max, prev)
	}
	if b.Hunger.Start <= 0 || b.Hunger.Start > b.Hunger.Max {
		return fmt.Errorf("hunger start must be between 1 and %d, got %d", b.Hunger.Max, b.Hunger.Start)
	}
	if b.Regen.Unit < 1 {
		return fmt.Errorf("regen unit must be positive, got %d", b.Regen.Unit)
	}
	if b.Food.RotEvery < 1 {
		return fmt.Errorf("rot interval must be positive, got %d", b.Food.RotEvery)
	}
	if b.Experience.MaxLevel < 1 || b.Experience.MaxLevel > 27 {
		return fmt.Errorf("max level must be between 1 and 27, got %d", b.Experience.MaxLevel)
	}
	for name := range b.ScaleAC {
		if _, ok := mutationByName(name); !ok {
			return fmt.Errorf("scale_ac: unknown mutation %q", name)
		}
	}
	for name := range b.ScaleDexPenalty {
		if _, ok := mutationByName(name); !ok {
			return fmt.Errorf("scale_dex_penalty: unknown mutation %q", name)
		}
	}
	return nil
}

func (b *Balance) scaleAC(p *PlayerState) int {
	total := 0
	for name, levels := range b.ScaleAC {
		m, ok := mutationByName(name)
		if !ok {
			continue
		}
		total += levels[clamp(p.MutationLevel(m), 0, 3)]
	}
	return total
}

func (b *Balance) scaleDexPenalty(p *PlayerState) int {
	total := 0
	for name, levels := range b.ScaleDexPenalty {
		m, ok := mutationByName(name)
		if !ok {
			continue
		}
		total += levels[clamp(p.MutationLevel(m), 0, 3)]
	}
	return total
}
