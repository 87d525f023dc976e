package game

import (
	"sort"
	"strconv"
	"strings"
)

type Mutation int

const (
	MutationToughSkin Mutation = iota
	MutationStrong
	MutationClever
	MutationAgile
	MutationWeak
	MutationDopey
	MutationClumsy
	MutationStrongStiff
	MutationFlexibleWeak
	MutationRobust
	MutationFrail
	MutationFast
	MutationFastMetabolism
	MutationSlowMetabolism
	MutationRegeneration
	MutationHeatResistance
	MutationColdResistance
	MutationShockResistance
	MutationPoisonResistance
	MutationNegativeEnergyResistance
	MutationMagicResistance
	MutationTormentResistance
	MutationTeleport
	MutationTeleportControl
	MutationClarity
	MutationDeformed
	MutationHooves
	MutationClaws
	MutationFangs
	MutationCarnivorous
	MutationHerbivorous
	MutationGourmand
	MutationRepulsionField
	MutationShaggyFur
	MutationGreyScales
	MutationBoneyPlates
	MutationRedScales
	MutationNacreousScales
	MutationGrey2Scales
	MutationMetallicScales
	MutationBlackScales
	MutationWhiteScales
	MutationYellowScales
	MutationBrownScales
	MutationBlueScales
	MutationPurpleScales
	MutationSpeckledScales
	MutationOrangeScales
	MutationIndigoScales
	MutationRed2Scales
	MutationIridescentScales
	MutationPatternedScales
	MutationGreenScales
	MutationBlack2Scales
	numMutations
)

type mutationInfo struct {
	name     string
	maxLevel int
	gain     string
	lose     string
	// random mutations only pick from these.
	random bool
	// demonspawn powers only pick from these.
	demonic bool
}

var mutationTable = [numMutations]mutationInfo{
	MutationToughSkin:                {name: "tough skin", maxLevel: 3, gain: "Your skin toughens.", lose: "Your skin feels delicate.", random: true},
	MutationStrong:                   {name: "strong", maxLevel: 3, gain: "Your muscles feel sore.", lose: "You feel weak.", random: true},
	MutationClever:                   {name: "clever", maxLevel: 3, gain: "Your head aches.", lose: "You feel dopey.", random: true},
	MutationAgile:                    {name: "agile", maxLevel: 3, gain: "You feel agile.", lose: "You feel clumsy.", random: true},
	MutationWeak:                     {name: "weak", maxLevel: 3, gain: "You feel weak.", lose: "Your muscles feel sore.", random: true},
	MutationDopey:                    {name: "dopey", maxLevel: 3, gain: "You feel dopey.", lose: "Your head aches.", random: true},
	MutationClumsy:                   {name: "clumsy", maxLevel: 3, gain: "You feel clumsy.", lose: "You feel agile.", random: true},
	MutationStrongStiff:              {name: "strong stiff", maxLevel: 3, gain: "Your muscles feel sore.", lose: "Your muscles feel loose.", random: true},
	MutationFlexibleWeak:             {name: "flexible weak", maxLevel: 3, gain: "Your muscles feel loose.", lose: "Your muscles feel sore.", random: true},
	MutationRobust:                   {name: "robust", maxLevel: 3, gain: "You feel robust.", lose: "You feel a little frail.", random: true},
	MutationFrail:                    {name: "frail", maxLevel: 3, gain: "You feel frail.", lose: "You feel robust.", random: true},
	MutationFast:                     {name: "fast", maxLevel: 3, gain: "You feel quick.", lose: "You feel sluggish.", random: true},
	MutationFastMetabolism:           {name: "fast metabolism", maxLevel: 3, gain: "You feel a little hungry.", lose: "Your metabolism slows.", random: true},
	MutationSlowMetabolism:           {name: "slow metabolism", maxLevel: 3, gain: "Your metabolism slows.", lose: "You feel a little hungry.", random: true},
	MutationRegeneration:             {name: "regeneration", maxLevel: 3, gain: "Your wounds heal more quickly.", lose: "Your wounds heal more slowly.", random: true, demonic: true},
	MutationHeatResistance:           {name: "heat resistance", maxLevel: 3, gain: "You feel a sudden chill.", lose: "You feel hot for a moment.", random: true, demonic: true},
	MutationColdResistance:           {name: "cold resistance", maxLevel: 3, gain: "You feel hot for a moment.", lose: "You feel a sudden chill.", random: true, demonic: true},
	MutationShockResistance:          {name: "shock resistance", maxLevel: 1, gain: "You feel insulated.", lose: "You feel conductive.", random: true},
	MutationPoisonResistance:         {name: "poison resistance", maxLevel: 1, gain: "You feel healthy.", lose: "You feel a little less healthy.", random: true, demonic: true},
	MutationNegativeEnergyResistance: {name: "negative energy resistance", maxLevel: 3, gain: "You feel negative.", lose: "You feel positive.", demonic: true},
	MutationMagicResistance:          {name: "magic resistance", maxLevel: 3, gain: "You feel resistant to magic.", lose: "You feel vulnerable to magic.", random: true, demonic: true},
	MutationTormentResistance:        {name: "torment resistance", maxLevel: 1, gain: "You feel a strange anaesthesia.", lose: "You feel a strange sensation.", demonic: true},
	MutationTeleport:                 {name: "teleportitis", maxLevel: 3, gain: "You feel weirdly uncertain.", lose: "You feel stable.", random: true},
	MutationTeleportControl:          {name: "teleport control", maxLevel: 1, gain: "You feel controlled.", lose: "You feel random.", random: true},
	MutationClarity:                  {name: "clarity", maxLevel: 1, gain: "Your thoughts seem clearer.", lose: "Your thinking seems confused.", random: true},
	MutationDeformed:                 {name: "deformed body", maxLevel: 1, gain: "Your body twists and deforms.", lose: "Your body's shape seems more normal.", random: true},
	MutationHooves:                   {name: "hooves", maxLevel: 3, gain: "Your feet shrivel into cloven hooves.", lose: "Your hooves expand and flesh out into feet!", random: true},
	MutationClaws:                    {name: "claws", maxLevel: 3, gain: "Your fingernails lengthen.", lose: "Your claws retract.", random: true},
	MutationFangs:                    {name: "fangs", maxLevel: 3, gain: "Your teeth lengthen.", lose: "Your teeth shrink.", random: true},
	MutationCarnivorous:              {name: "carnivore", maxLevel: 3, gain: "You hunger for flesh.", lose: "You feel able to eat a more balanced diet.", random: true},
	MutationHerbivorous:              {name: "herbivore", maxLevel: 3, gain: "You hunger for vegetation.", lose: "You feel able to eat a more balanced diet.", random: true},
	MutationGourmand:                 {name: "gourmand", maxLevel: 1, gain: "You feel able to eat anything.", lose: "Your appetite grows pickier."},
	MutationRepulsionField:           {name: "repulsion field", maxLevel: 3, gain: "You begin to radiate repulsive energy.", lose: "You feel attractive.", random: true, demonic: true},
	MutationShaggyFur:                {name: "shaggy fur", maxLevel: 3, gain: "Fur sprouts all over your body.", lose: "You shed all your fur.", random: true},
	MutationGreyScales:               {name: "grey scales", maxLevel: 3, gain: "Your skin takes on a fine grey colour.", lose: "Your grey scales disappear.", random: true},
	MutationBoneyPlates:              {name: "boney plates", maxLevel: 3, gain: "You grow protective plates of bone.", lose: "Your bony plates shrink away.", random: true},
	MutationRedScales:                {name: "red scales", maxLevel: 3, gain: "Red scales grow over part of your body.", lose: "Your red scales disappear.", random: true, demonic: true},
	MutationNacreousScales:           {name: "nacreous scales", maxLevel: 3, gain: "Smooth nacreous scales grow over your body.", lose: "Your nacreous scales disappear.", random: true},
	MutationGrey2Scales:              {name: "ridged grey scales", maxLevel: 3, gain: "Ridged grey scales grow over your body.", lose: "Your ridged grey scales disappear.", random: true},
	MutationMetallicScales:           {name: "metallic scales", maxLevel: 3, gain: "Glossy metallic scales grow over your body.", lose: "Your metallic scales disappear.", random: true},
	MutationBlackScales:              {name: "black scales", maxLevel: 3, gain: "Thick black scales grow over your body.", lose: "Your black scales disappear.", random: true, demonic: true},
	MutationWhiteScales:              {name: "white scales", maxLevel: 3, gain: "White scales grow over your body.", lose: "Your white scales disappear.", random: true},
	MutationYellowScales:             {name: "yellow scales", maxLevel: 3, gain: "Yellow scales grow over your body.", lose: "Your yellow scales disappear.", random: true},
	MutationBrownScales:              {name: "brown scales", maxLevel: 3, gain: "Brown scales grow over your body.", lose: "Your brown scales disappear.", random: true},
	MutationBlueScales:               {name: "blue scales", maxLevel: 3, gain: "Blue scales grow over your body.", lose: "Your blue scales disappear.", random: true},
	MutationPurpleScales:             {name: "purple scales", maxLevel: 3, gain: "Purple scales grow over your body.", lose: "Your purple scales disappear.", random: true},
	MutationSpeckledScales:           {name: "speckled scales", maxLevel: 3, gain: "Speckled scales grow over your body.", lose: "Your speckled scales disappear.", random: true},
	MutationOrangeScales:             {name: "orange scales", maxLevel: 3, gain: "Orange scales grow over your body.", lose: "Your orange scales disappear.", random: true},
	MutationIndigoScales:             {name: "indigo scales", maxLevel: 3, gain: "Indigo scales grow over your body.", lose: "Your indigo scales disappear.", random: true},
	MutationRed2Scales:               {name: "knobbly red scales", maxLevel: 3, gain: "Knobbly red scales grow over your body.", lose: "Your knobbly red scales disappear.", random: true},
	MutationIridescentScales:         {name: "iridescent scales", maxLevel: 3, gain: "Iridescent scales grow over your body.", lose: "Your iridescent scales disappear.", random: true},
	MutationPatternedScales:          {name: "patterned scales", maxLevel: 3, gain: "Patterned scales grow over your body.", lose: "Your patterned scales disappear.", random: true},
	MutationGreenScales:              {name: "green scales", maxLevel: 3, gain: "Green scales grow over part of your body.", lose: "Your green scales disappear.", random: true},
	MutationBlack2Scales:             {name: "smooth black scales", maxLevel: 3, gain: "Smooth black scales grow over your body.", lose: "Your smooth black scales disappear.", random: true},
}

func (m Mutation) valid() bool {
	return m >= 0 && m < numMutations
}

func (m Mutation) String() string {
	if !m.valid() {
		return "unknown mutation"
	}
	return mutationTable[m].name
}

func (m Mutation) MaxLevel() int {
	if !m.valid() {
		return 0
	}
	return mutationTable[m].maxLevel
}

// LookupMutation resolves a mutation by name, tolerating small typos.
func LookupMutation(name string) (Mutation, bool) {
	names := make([]string, numMutations)
	for i := range mutationTable {
		names[i] = mutationTable[i].name
	}
	idx, ok := fuzzyIndex(name, names)
	if !ok {
		return 0, false
	}
	return Mutation(idx), true
}

var mutationNames = func() map[string]Mutation {
	out := make(map[string]Mutation, numMutations)
	for i := range mutationTable {
		out[mutationTable[i].name] = Mutation(i)
	}
	return out
}()

func mutationByName(name string) (Mutation, bool) {
	m, ok := mutationNames[name]
	return m, ok
}

// MutationSet tracks current levels and the innate floor that cannot be lost.
type MutationSet struct {
	Levels map[Mutation]int `json:"levels"`
	Innate map[Mutation]int `json:"innate"`
}

func NewMutationSet(innate map[Mutation]int) MutationSet {
	set := MutationSet{
		Levels: make(map[Mutation]int, len(innate)),
		Innate: make(map[Mutation]int, len(innate)),
	}
	for m, lvl := range innate {
		if !m.valid() {
			continue
		}
		lvl = clamp(lvl, 0, m.MaxLevel())
		set.Levels[m] = lvl
		set.Innate[m] = lvl
	}
	return set
}

// Level reads a mutation level. Invalid ids count as zero.
func (ms MutationSet) Level(m Mutation) int {
	if !m.valid() {
		reportInvariant(InvariantMutationID, "mutation id %d out of range", int(m))
		return 0
	}
	return ms.Levels[m]
}

func (ms *MutationSet) ensure() {
	if ms.Levels == nil {
		ms.Levels = make(map[Mutation]int)
	}
	if ms.Innate == nil {
		ms.Innate = make(map[Mutation]int)
	}
}

// Gain raises m by one level. It reports false at the cap.
func (ms *MutationSet) Gain(m Mutation) bool {
	if !m.valid() {
		reportInvariant(InvariantMutationID, "gain of mutation id %d", int(m))
		return false
	}
	ms.ensure()
	if ms.Levels[m] >= m.MaxLevel() {
		return false
	}
	ms.Levels[m]++
	return true
}

// Lose drops m by one level, never below its innate level.
func (ms *MutationSet) Lose(m Mutation) bool {
	if !m.valid() {
		reportInvariant(InvariantMutationID, "loss of mutation id %d", int(m))
		return false
	}
	ms.ensure()
	if ms.Levels[m] <= ms.Innate[m] {
		return false
	}
	ms.Levels[m]--
	if ms.Levels[m] == 0 {
		delete(ms.Levels, m)
	}
	return true
}

// PermaMutate raises both the level and the innate floor.
func (ms *MutationSet) PermaMutate(m Mutation, levels int) int {
	if !m.valid() {
		reportInvariant(InvariantMutationID, "perma mutation id %d", int(m))
		return 0
	}
	ms.ensure()
	gained := 0
	for i := 0; i < levels && ms.Levels[m] < m.MaxLevel(); i++ {
		ms.Levels[m]++
		gained++
	}
	if ms.Levels[m] > ms.Innate[m] {
		ms.Innate[m] = ms.Levels[m]
	}
	return gained
}

// Active lists mutations with a non-zero level, ordered by id.
func (ms MutationSet) Active() []Mutation {
	out := make([]Mutation, 0, len(ms.Levels))
	for m, lvl := range ms.Levels {
		if lvl > 0 {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (ms MutationSet) Describe() string {
	active := ms.Active()
	if len(active) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(active))
	for _, m := range active {
		parts = append(parts, m.String()+" "+strconv.Itoa(ms.Levels[m]))
	}
	return strings.Join(parts, ", ")
}

func mutationPool(filter func(mutationInfo) bool) []Mutation {
	out := make([]Mutation, 0, numMutations)
	for i := range mutationTable {
		if filter(mutationTable[i]) {
			out = append(out, Mutation(i))
		}
	}
	return out
}

// Mutate applies one level of m, announcing it. Returns false when nothing changed.
func (s *Session) Mutate(m Mutation, reason string) bool {
	if s == nil || s.Player == nil {
		return false
	}
	p := s.Player
	if !p.Mutations.Gain(m) {
		return false
	}
	s.emit(mutationTable[m].gain, ChannelMutation)
	s.onMutationChanged(m)
	s.log().WithField("mutation", m.String()).WithField("reason", reason).Debug("mutation gained")
	return true
}

// RandomMutation picks a random eligible mutation that is not yet maxed.
func (s *Session) RandomMutation(reason string) bool {
	if s == nil || s.Player == nil {
		return false
	}
	if s.Player.WearingAmulet(AmuletResistMutation, true) && !s.Rng.OneChanceIn(10) {
		s.emit("You feel odd for a moment.", ChannelMutation)
		return false
	}
	pool := mutationPool(func(info mutationInfo) bool { return info.random })
	for tries := 0; tries < 8 && len(pool) > 0; tries++ {
		m := pool[s.Rng.Random2(len(pool))]
		if s.Mutate(m, reason) {
			return true
		}
	}
	return false
}

// DeleteMutation removes one level of m if it is not innate.
func (s *Session) DeleteMutation(m Mutation) bool {
	if s == nil || s.Player == nil {
		return false
	}
	if !s.Player.Mutations.Lose(m) {
		return false
	}
	s.emit(mutationTable[m].lose, ChannelMutation)
	s.onMutationChanged(m)
	return true
}

func (s *Session) permaMutate(m Mutation, levels int) {
	if s.Player.Mutations.PermaMutate(m, levels) > 0 {
		s.emit(mutationTable[m].gain, ChannelMutation)
		s.onMutationChanged(m)
	}
}

func (s *Session) gainDemonicPower() {
	p := s.Player
	pool := mutationPool(func(info mutationInfo) bool { return info.demonic })
	candidates := pool[:0:0]
	for _, m := range pool {
		if p.Mutations.Level(m) < m.MaxLevel() {
			candidates = append(candidates, m)
		}
	}
	p.DemonicPowers++
	if len(candidates) == 0 {
		return
	}
	m := candidates[s.Rng.Random2(len(candidates))]
	s.emit("Your demonic ancestry asserts itself...", ChannelIntrinsicGain)
	s.permaMutate(m, 1)
}

func (s *Session) onMutationChanged(m Mutation) {
	switch m {
	case MutationStrong, MutationWeak, MutationStrongStiff, MutationFlexibleWeak:
		s.updateBurden()
	case MutationRobust, MutationFrail:
		s.CalcHP()
	}
}
