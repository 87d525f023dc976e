package game

import (
	"fmt"
	"math/rand/v2"
)

type Stat int

const (
	StatStrength Stat = iota
	StatIntelligence
	StatDexterity
	numStats

	// StatRandom asks ModifyStat to pick one.
	StatRandom Stat = -1
)

var statNames = [numStats]string{"strength", "intelligence", "dexterity"}

func (s Stat) String() string {
	if s < 0 || s >= numStats {
		return "random"
	}
	return statNames[s]
}

type God int

const (
	GodNone God = iota
	GodZin
	GodShiningOne
	GodElyvilon
	GodBeogh
)

// goodGod gods forbid cannibalism.
func (g God) goodGod() bool {
	return g == GodZin || g == GodShiningOne || g == GodElyvilon
}

type Skill int

const (
	SkillFighting Skill = iota
	SkillArmour
	SkillDodging
	SkillStealth
	SkillSpellcasting
	SkillNecromancy
	SkillIceMagic
	SkillFireMagic
	SkillEarthMagic
	SkillAirMagic
	SkillPoisonMagic
	SkillEnchantments
	SkillInvocations
	numSkills
)

type Skills [numSkills]int

type HungerState int

const (
	HungerStarving HungerState = iota
	HungerNearStarving
	HungerVeryHungry
	HungerHungry
	HungerSatiated
	HungerFull
	HungerVeryFull
	HungerEngorged
)

var hungerStateNames = []string{"starving", "near starving", "very hungry", "hungry", "satiated", "full", "very full", "engorged"}

func (h HungerState) String() string {
	if h < 0 || int(h) >= len(hungerStateNames) {
		return "unknown"
	}
	return hungerStateNames[h]
}

// BurdenState values double as the stealth divisor and hunger penalty.
type BurdenState int

const (
	Unencumbered BurdenState = 0
	Encumbered   BurdenState = 2
	Overloaded   BurdenState = 5
)

func (b BurdenState) String() string {
	switch b {
	case Unencumbered:
		return "unencumbered"
	case Encumbered:
		return "burdened"
	default:
		return "overloaded"
	}
}

type Spell int

const (
	SpellMagicDart Spell = iota
	SpellFireball
	SpellDelayedFireball
	SpellIcyArmour
	SpellStoneskin
	SpellSwiftness
	SpellNecromutation
)

var spellDifficulty = map[Spell]int{
	SpellMagicDart:       1,
	SpellFireball:        5,
	SpellDelayedFireball: 7,
	SpellIcyArmour:       1,
	SpellStoneskin:       2,
	SpellSwiftness:       2,
	SpellNecromutation:   8,
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Surroundings caches what the terrain says about the player's square.
// AdvanceTurn refreshes it before derived stats are computed.
type Surroundings struct {
	Feature FeatureKind `json:"feature"`
	Trap    TrapKind    `json:"trap"`
	InWater bool        `json:"in_water"`
}

type PlayerState struct {
	Name       string  `json:"name"`
	Species    Species `json:"species"`
	Background string  `json:"background"`
	God        God     `json:"god"`
	Piety      int     `json:"piety"`

	XL           int `json:"xl"`
	MaxXL        int `json:"max_xl"`
	Experience   int `json:"experience"`
	ExpAvailable int `json:"exp_available"`

	// HPBase is the potential before skill, form and mutation scaling.
	// HPRot is the rotted part of it.
	HP     int `json:"hp"`
	HPMax  int `json:"hp_max"`
	HPBase int `json:"hp_base"`
	HPRot  int `json:"hp_rot"`

	MP      int `json:"mp"`
	MPMax   int `json:"mp_max"`
	MPBase  int `json:"mp_base"`
	MPDrain int `json:"mp_drain"`

	// MaxStats are permanent values. Stats adds the active modifiers.
	MaxStats [numStats]int `json:"max_stats"`
	Stats    [numStats]int `json:"stats"`

	Hunger      int         `json:"hunger"`
	HungerState HungerState `json:"hunger_state"`
	Burden      int         `json:"burden"`
	BurdenState BurdenState `json:"burden_state"`

	Inventory     []Item         `json:"inventory"`
	Equip         Equipment      `json:"equip"`
	Mutations     MutationSet    `json:"mutations"`
	DemonicPowers int            `json:"demonic_powers"`
	Gourmand      int            `json:"gourmand"`
	Durations     Durations      `json:"durations"`
	Disease       int            `json:"disease"`
	Rotting       int            `json:"rotting"`
	Form          Transformation `json:"form"`
	Skills        Skills         `json:"skills"`
	Spells        []Spell        `json:"spells"`

	Pos          Position     `json:"pos"`
	Surroundings Surroundings `json:"surroundings"`
	Delay        Delay        `json:"-"`
	Derived      DerivedStats `json:"derived"`

	Balance *Balance `json:"-"`

	hpCarry int
	mpCarry int
}

type PlayerConfig struct {
	Name       string
	Species    Species
	Background string
	God        God
	Skills     Skills
	Spells     []Spell
}

var playerNames = []string{
	"Rowan", "Avery", "Kai", "Riley", "Quinn",
	"Jordan", "Morgan", "Taylor", "Reese", "Casey",
	"Blake", "Jamie", "Cameron", "Dakota", "Skyler",
	"Phoenix", "Sage", "River", "Emery", "Finley",
}

// NewPlayer builds a level 1 character. An empty name draws one from the seed.
func NewPlayer(cfg PlayerConfig, seed int64, b *Balance) *PlayerState {
	if b == nil {
		b = DefaultBalance()
	}
	traits := cfg.Species.Traits()
	name := cfg.Name
	if name == "" {
		name = generateName(seededRNG(seed))
	}
	p := &PlayerState{
		Name:       name,
		Species:    cfg.Species,
		Background: cfg.Background,
		God:        cfg.God,
		XL:         1,
		MaxXL:      1,
		HPBase:     traits.BaseHP,
		MPBase:     traits.BaseMP,
		MaxStats:   traits.BaseStats,
		Hunger:     b.Hunger.Start,
		Inventory:  make([]Item, 0, InventorySize),
		Equip:      NewEquipment(),
		Mutations:  NewMutationSet(traits.Innate),
		Skills:     cfg.Skills,
		Spells:     append([]Spell(nil), cfg.Spells...),
		Balance:    b,
	}
	p.refreshStats()
	p.HungerState = hungerStateFor(p.Hunger, b)
	p.CalcHP()
	p.CalcMP()
	p.HP = p.HPMax
	p.MP = p.MPMax
	return p
}

func generateName(rng *rand.Rand) string {
	return playerNames[rng.IntN(len(playerNames))]
}

func (p *PlayerState) balance() *Balance {
	if p == nil || p.Balance == nil {
		return defaultBalance
	}
	return p.Balance
}

func (p *PlayerState) Str() int { return p.Stats[StatStrength] }
func (p *PlayerState) Int() int { return p.Stats[StatIntelligence] }
func (p *PlayerState) Dex() int { return p.Stats[StatDexterity] }

func (p *PlayerState) traits() SpeciesTraits {
	return p.Species.Traits()
}

// IsUndead reports the species' undead state.
func (p *PlayerState) IsUndead() UndeadState {
	return p.traits().Undead
}

func (p *PlayerState) knowsSpell(sp Spell) bool {
	for _, known := range p.Spells {
		if known == sp {
			return true
		}
	}
	return false
}

// MutationLevel is the active level of m. Vampires lose access to
// acquired mutations as their blood runs low.
func (p *PlayerState) MutationLevel(m Mutation) int {
	if p == nil {
		return 0
	}
	level := p.Mutations.Level(m)
	if p.IsUndead() != SemiUndead || level == 0 || physicalMutation(m) {
		return level
	}
	if innate := p.Mutations.Innate[m]; innate >= level {
		return level
	}
	switch {
	case p.HungerState == HungerEngorged:
		return level
	case p.HungerState >= HungerFull:
		return minInt(level, 2)
	case p.HungerState == HungerSatiated:
		return minInt(level, 1)
	default:
		return 0
	}
}

func physicalMutation(m Mutation) bool {
	switch m {
	case MutationStrong, MutationClever, MutationAgile, MutationWeak, MutationDopey,
		MutationClumsy, MutationStrongStiff, MutationFlexibleWeak:
		return true
	}
	return false
}

// Airborne covers levitation and the flying forms.
func (p *PlayerState) Airborne() bool {
	return p.Durations.Active(DurLevitation) || p.Form == FormDragon || p.Form == FormBat
}

type FlightMode int

const (
	FlightNone FlightMode = iota
	FlightLevitate
	FlightFly
)

func (p *PlayerState) flightMode() FlightMode {
	if p.Form == FormDragon || p.Form == FormBat {
		return FlightFly
	}
	if !p.Durations.Active(DurLevitation) {
		return FlightNone
	}
	if p.WearingAmulet(AmuletControlledFlight, true) {
		return FlightFly
	}
	return FlightLevitate
}

// lightFlight is the kenku bonus for flying with a light pack.
func (p *PlayerState) lightFlight() bool {
	return p.Species == SpeciesKenku && p.flightMode() == FlightFly &&
		p.Burden < CarryingCapacity(p, Unencumbered)*70/100
}

func (p *PlayerState) inWater() bool {
	return p.Surroundings.InWater && !p.Airborne()
}

func (p *PlayerState) swimming() bool {
	return p.inWater() && p.canSwim()
}

func (p *PlayerState) canSwim() bool {
	return p.traits().Swims && !isShapechanged(p.Form)
}

func (p *PlayerState) cannotMove() bool {
	return p.Durations.Active(DurParalysis) || p.Durations.Active(DurPetrified)
}

// BodySize is the size used for evasion. Forms override the species value.
func (p *PlayerState) BodySize() BodySize {
	if size, ok := p.Form.Traits().size(); ok {
		return size
	}
	return p.traits().Size
}

// TorsoSize is the part that wears armour and wields weapons.
func (p *PlayerState) TorsoSize() BodySize {
	if size, ok := p.Form.Traits().size(); ok {
		return size
	}
	return p.traits().TorsoSize
}

var bodyWeights = map[BodySize]int{
	SizeTiny:   150,
	SizeLittle: 300,
	SizeSmall:  425,
	SizeMedium: 550,
	SizeLarge:  1300,
	SizeBig:    1500,
	SizeGiant:  1800,
	SizeHuge:   2200,
}

func (p *PlayerState) BodyWeight() int {
	if p.Form == FormAir {
		return 0
	}
	weight := bodyWeights[p.BodySize()]
	if p.Form == FormStatue {
		weight *= 2
	}
	return weight
}

func (p *PlayerState) String() string {
	if p == nil {
		return "<no player>"
	}
	return fmt.Sprintf("%s the %s (XL %d)", p.Name, p.Species, p.XL)
}
