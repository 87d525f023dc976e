package game

import (
	"fmt"
	"strings"
)

type ObjectClass int

const (
	ClassNone ObjectClass = iota
	ClassWeapon
	ClassArmour
	ClassRing
	ClassAmulet
	ClassStaff
	ClassFood
	ClassCorpse
	ClassPotion
	ClassMisc
)

var classNames = map[ObjectClass]string{
	ClassNone:   "nothing",
	ClassWeapon: "weapon",
	ClassArmour: "armour",
	ClassRing:   "ring",
	ClassAmulet: "amulet",
	ClassStaff:  "staff",
	ClassFood:   "food",
	ClassCorpse: "corpse",
	ClassPotion: "potion",
	ClassMisc:   "misc",
}

func (c ObjectClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

type WeaponType int

const (
	WeaponDagger WeaponType = iota
	WeaponShortSword
	WeaponLongSword
	WeaponMace
	WeaponHandAxe
	WeaponSpear
	WeaponQuarterstaff
)

type WeaponBrand int

const (
	BrandNone WeaponBrand = iota
	BrandFlaming
	BrandFreezing
	BrandHolyWrath
	BrandElectrocution
	BrandVenom
	BrandProtection
	BrandDraining
	BrandSpeed
	BrandVampiricism
)

type ArmourType int

const (
	ArmourRobe ArmourType = iota
	ArmourLeather
	ArmourRingMail
	ArmourScaleMail
	ArmourChainMail
	ArmourSplintMail
	ArmourBandedMail
	ArmourPlateMail
	ArmourCrystalPlate
	ArmourAnimalSkin
	ArmourTrollHide
	ArmourTrollLeather
	ArmourSteamDragonHide
	ArmourSteamDragon
	ArmourMottledDragonHide
	ArmourMottledDragon
	ArmourFireDragon
	ArmourIceDragon
	ArmourStormDragon
	ArmourGoldDragon
	ArmourSwampDragon
	ArmourCloak
	ArmourHelmet
	ArmourCap
	ArmourGloves
	ArmourBoots
	ArmourBuckler
	ArmourShield
	ArmourLargeShield
	numArmourTypes
)

type ArmourEgo int

const (
	EgoNone ArmourEgo = iota
	EgoRunning
	EgoFireResistance
	EgoColdResistance
	EgoPoisonResistance
	EgoSeeInvisible
	EgoDarkness
	EgoStrength
	EgoDexterity
	EgoIntelligence
	EgoPonderousness
	EgoLevitation
	EgoMagicResistance
	EgoProtection
	EgoStealth
	EgoResistance
	EgoPositiveEnergy
	EgoArchmagi
	EgoPreservation
	EgoReflection
)

type ArmourRace int

const (
	RaceNone ArmourRace = iota
	RaceElven
	RaceDwarven
	RaceOrcish
)

type RingType int

const (
	RingRegeneration RingType = iota
	RingProtection
	RingProtectionFromFire
	RingPoisonResistance
	RingProtectionFromCold
	RingStrength
	RingSlaying
	RingSeeInvisible
	RingInvisibility
	RingHunger
	RingTeleportation
	RingEvasion
	RingSustainAbilities
	RingSustenance
	RingDexterity
	RingIntelligence
	RingWizardry
	RingMagicalPower
	RingLevitation
	RingLifeProtection
	RingProtectionFromMagic
	RingFire
	RingIce
	RingTeleportControl
)

type AmuletType int

const (
	AmuletRage AmuletType = iota
	AmuletResistSlow
	AmuletClarity
	AmuletWarding
	AmuletResistCorrosion
	AmuletGourmand
	AmuletConservation
	AmuletControlledFlight
	AmuletInaccuracy
	AmuletResistMutation
)

type StaffType int

const (
	StaffWizardry StaffType = iota
	StaffPower
	StaffFire
	StaffCold
	StaffPoison
	StaffEnergy
	StaffDeath
	StaffConjuration
	StaffEnchantment
	StaffSummoning
	StaffAir
	StaffEarth
	StaffChanneling
)

type FoodType int

const (
	FoodMeatRation FoodType = iota
	FoodBreadRation
	FoodFruit
	FoodRoyalJelly
	FoodPizza
	FoodBeefJerky
	FoodChunk
	numFoodTypes
)

type CorpseType int

const (
	CorpseBody CorpseType = iota
	CorpseSkeleton
)

type UnrandID int

const (
	UnrandNone UnrandID = iota
	UnrandVampiresTooth
	UnrandStaffOfOlgreb
)

// ArtefactProp names a randomly assigned artefact property.
type ArtefactProp int

const (
	PropAC ArtefactProp = iota
	PropEvasion
	PropStrength
	PropIntelligence
	PropDexterity
	PropFire
	PropCold
	PropElectricity
	PropPoison
	PropNegativeEnergy
	PropMagic
	PropStealth
	PropMetabolism
	PropAccuracy
	PropDamage
	PropTeleportation
	PropLevitate
)

type Item struct {
	Name       string               `json:"name,omitempty"`
	Class      ObjectClass          `json:"class"`
	SubType    int                  `json:"sub_type"`
	Quantity   int                  `json:"quantity"`
	Plus       int                  `json:"plus,omitempty"`
	Plus2      int                  `json:"plus2,omitempty"`
	Special    int                  `json:"special,omitempty"`
	Race       ArmourRace           `json:"race,omitempty"`
	Unrand     UnrandID             `json:"unrand,omitempty"`
	Props      map[ArtefactProp]int `json:"props,omitempty"`
	TypeKnown  bool                 `json:"type_known"`
	PropsKnown bool                 `json:"props_known"`
	// Freshness counts down for perishables. Lower is older.
	Freshness int       `json:"freshness,omitempty"`
	Monster   MonsterID `json:"monster,omitempty"`
	// OrigMonster overrides Monster for intelligence checks when set.
	OrigMonster MonsterID `json:"orig_monster,omitempty"`
}

func (it Item) Defined() bool {
	return it.Class != ClassNone && it.Quantity > 0
}

func (it Item) IsArtefact() bool {
	return len(it.Props) > 0
}

func (it Item) Brand() WeaponBrand {
	if it.Class != ClassWeapon {
		return BrandNone
	}
	return WeaponBrand(it.Special)
}

func (it Item) Ego() ArmourEgo {
	if it.Class != ClassArmour {
		return EgoNone
	}
	return ArmourEgo(it.Special)
}

func (it Item) Is(class ObjectClass, subType int) bool {
	return it.Class == class && it.SubType == subType
}

func (it Item) IsChunk() bool {
	return it.Is(ClassFood, int(FoodChunk))
}

func (it Item) IsPerishable() bool {
	return it.IsChunk() || it.Class == ClassCorpse
}

// IsRotten reports chunks and corpses past the rot threshold.
func (it Item) IsRotten(b *Balance) bool {
	return it.IsPerishable() && it.Freshness <= b.Food.RottenAt
}

type armourSpec struct {
	name string
	slot EquipSlot
	ac   int
	ev   int
	mass int
	// light armour does not hamper dodging or stealth.
	light bool
}

var armourTable = [numArmourTypes]armourSpec{
	ArmourRobe:              {name: "robe", slot: EquipBodyArmour, ac: 2, ev: 0, mass: 60, light: true},
	ArmourLeather:           {name: "leather armour", slot: EquipBodyArmour, ac: 3, ev: -1, mass: 150, light: true},
	ArmourRingMail:          {name: "ring mail", slot: EquipBodyArmour, ac: 4, ev: -2, mass: 250},
	ArmourScaleMail:         {name: "scale mail", slot: EquipBodyArmour, ac: 5, ev: -3, mass: 350},
	ArmourChainMail:         {name: "chain mail", slot: EquipBodyArmour, ac: 6, ev: -4, mass: 400},
	ArmourSplintMail:        {name: "splint mail", slot: EquipBodyArmour, ac: 8, ev: -5, mass: 450},
	ArmourBandedMail:        {name: "banded mail", slot: EquipBodyArmour, ac: 7, ev: -4, mass: 500},
	ArmourPlateMail:         {name: "plate mail", slot: EquipBodyArmour, ac: 10, ev: -6, mass: 650},
	ArmourCrystalPlate:      {name: "crystal plate mail", slot: EquipBodyArmour, ac: 14, ev: -8, mass: 1200},
	ArmourAnimalSkin:        {name: "animal skin", slot: EquipBodyArmour, ac: 2, ev: 0, mass: 100, light: true},
	ArmourTrollHide:         {name: "troll hide", slot: EquipBodyArmour, ac: 2, ev: -1, mass: 220},
	ArmourTrollLeather:      {name: "troll leather armour", slot: EquipBodyArmour, ac: 4, ev: -1, mass: 220},
	ArmourSteamDragonHide:   {name: "steam dragon hide", slot: EquipBodyArmour, ac: 2, ev: 0, mass: 120, light: true},
	ArmourSteamDragon:       {name: "steam dragon armour", slot: EquipBodyArmour, ac: 5, ev: 0, mass: 120, light: true},
	ArmourMottledDragonHide: {name: "mottled dragon hide", slot: EquipBodyArmour, ac: 2, ev: -1, mass: 150, light: true},
	ArmourMottledDragon:     {name: "mottled dragon armour", slot: EquipBodyArmour, ac: 6, ev: -1, mass: 150, light: true},
	ArmourFireDragon:        {name: "dragon armour", slot: EquipBodyArmour, ac: 8, ev: -2, mass: 220},
	ArmourIceDragon:         {name: "ice dragon armour", slot: EquipBodyArmour, ac: 8, ev: -2, mass: 220},
	ArmourStormDragon:       {name: "storm dragon armour", slot: EquipBodyArmour, ac: 10, ev: -5, mass: 250},
	ArmourGoldDragon:        {name: "gold dragon armour", slot: EquipBodyArmour, ac: 12, ev: -9, mass: 300},
	ArmourSwampDragon:       {name: "swamp dragon armour", slot: EquipBodyArmour, ac: 7, ev: -2, mass: 200},
	ArmourCloak:             {name: "cloak", slot: EquipCloak, ac: 1, ev: 0, mass: 40},
	ArmourHelmet:            {name: "helmet", slot: EquipHelmet, ac: 1, ev: 0, mass: 80},
	ArmourCap:               {name: "cap", slot: EquipHelmet, ac: 0, ev: 0, mass: 40},
	ArmourGloves:            {name: "gloves", slot: EquipGloves, ac: 1, ev: 0, mass: 20},
	ArmourBoots:             {name: "boots", slot: EquipBoots, ac: 1, ev: 0, mass: 30},
	ArmourBuckler:           {name: "buckler", slot: EquipShield, ac: 1, ev: -1, mass: 90},
	ArmourShield:            {name: "shield", slot: EquipShield, ac: 3, ev: -2, mass: 150},
	ArmourLargeShield:       {name: "large shield", slot: EquipShield, ac: 5, ev: -4, mass: 250},
}

func armourSpecFor(it Item) (armourSpec, bool) {
	if it.Class != ClassArmour || it.SubType < 0 || it.SubType >= int(numArmourTypes) {
		return armourSpec{}, false
	}
	return armourTable[it.SubType], true
}

// armourAC and armourEV read the base properties of an armour item.
func armourAC(it Item) int {
	spec, _ := armourSpecFor(it)
	return spec.ac
}

func armourEV(it Item) int {
	spec, _ := armourSpecFor(it)
	return spec.ev
}

func isLightArmour(it Item) bool {
	if it.Race == RaceElven {
		return true
	}
	spec, ok := armourSpecFor(it)
	return ok && spec.light
}

var weaponMass = map[WeaponType]int{
	WeaponDagger:       20,
	WeaponShortSword:   100,
	WeaponLongSword:    160,
	WeaponMace:         140,
	WeaponHandAxe:      80,
	WeaponSpear:        50,
	WeaponQuarterstaff: 180,
}

// itemMass is the weight of a single unit.
func itemMass(it Item) int {
	switch it.Class {
	case ClassWeapon:
		if m, ok := weaponMass[WeaponType(it.SubType)]; ok {
			return m
		}
		return 100
	case ClassArmour:
		spec, _ := armourSpecFor(it)
		return spec.mass
	case ClassRing, ClassAmulet:
		return 10
	case ClassStaff:
		return 130
	case ClassFood:
		if info, ok := foodInfoFor(FoodType(it.SubType)); ok {
			return info.mass
		}
		return 50
	case ClassCorpse:
		if it.SubType == int(CorpseSkeleton) {
			return monsterInfo(it.Monster).Mass / 2
		}
		return monsterInfo(it.Monster).Mass
	case ClassPotion:
		return 40
	default:
		return 100
	}
}

// DisplayName describes an item for messages.
func (it Item) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	switch it.Class {
	case ClassWeapon:
		return weaponName(it)
	case ClassArmour:
		spec, _ := armourSpecFor(it)
		return withPlus(it.Plus, racePrefix(it.Race)+spec.name)
	case ClassRing:
		return "ring of " + ringNames[RingType(it.SubType)]
	case ClassAmulet:
		return "amulet of " + amuletNames[AmuletType(it.SubType)]
	case ClassStaff:
		return "staff of " + staffNames[StaffType(it.SubType)]
	case ClassFood:
		info, _ := foodInfoFor(FoodType(it.SubType))
		if it.IsChunk() {
			return monsterInfo(it.Monster).Name + " chunk"
		}
		return info.name
	case ClassCorpse:
		if it.SubType == int(CorpseSkeleton) {
			return monsterInfo(it.Monster).Name + " skeleton"
		}
		return monsterInfo(it.Monster).Name + " corpse"
	default:
		return it.Class.String()
	}
}

func weaponName(it Item) string {
	switch it.Unrand {
	case UnrandVampiresTooth:
		return "Vampire's Tooth"
	case UnrandStaffOfOlgreb:
		return "staff of Olgreb"
	}
	names := map[WeaponType]string{
		WeaponDagger:       "dagger",
		WeaponShortSword:   "short sword",
		WeaponLongSword:    "long sword",
		WeaponMace:         "mace",
		WeaponHandAxe:      "hand axe",
		WeaponSpear:        "spear",
		WeaponQuarterstaff: "quarterstaff",
	}
	name := names[WeaponType(it.SubType)]
	if name == "" {
		name = "weapon"
	}
	return withPlus(it.Plus, name)
}

func withPlus(plus int, name string) string {
	if plus == 0 {
		return name
	}
	return fmt.Sprintf("%+d %s", plus, name)
}

func racePrefix(r ArmourRace) string {
	switch r {
	case RaceElven:
		return "elven "
	case RaceDwarven:
		return "dwarven "
	case RaceOrcish:
		return "orcish "
	default:
		return ""
	}
}

var ringNames = map[RingType]string{
	RingRegeneration:        "regeneration",
	RingProtection:          "protection",
	RingProtectionFromFire:  "protection from fire",
	RingPoisonResistance:    "poison resistance",
	RingProtectionFromCold:  "protection from cold",
	RingStrength:            "strength",
	RingSlaying:             "slaying",
	RingSeeInvisible:        "see invisible",
	RingInvisibility:        "invisibility",
	RingHunger:              "hunger",
	RingTeleportation:       "teleportation",
	RingEvasion:             "evasion",
	RingSustainAbilities:    "sustain abilities",
	RingSustenance:          "sustenance",
	RingDexterity:           "dexterity",
	RingIntelligence:        "intelligence",
	RingWizardry:            "wizardry",
	RingMagicalPower:        "magical power",
	RingLevitation:          "levitation",
	RingLifeProtection:      "life protection",
	RingProtectionFromMagic: "protection from magic",
	RingFire:                "fire",
	RingIce:                 "ice",
	RingTeleportControl:     "teleport control",
}

var amuletNames = map[AmuletType]string{
	AmuletRage:             "rage",
	AmuletResistSlow:       "resist slowing",
	AmuletClarity:          "clarity",
	AmuletWarding:          "warding",
	AmuletResistCorrosion:  "resist corrosion",
	AmuletGourmand:         "the gourmand",
	AmuletConservation:     "conservation",
	AmuletControlledFlight: "controlled flight",
	AmuletInaccuracy:       "inaccuracy",
	AmuletResistMutation:   "resist mutation",
}

var staffNames = map[StaffType]string{
	StaffWizardry:    "wizardry",
	StaffPower:       "power",
	StaffFire:        "fire",
	StaffCold:        "cold",
	StaffPoison:      "poison",
	StaffEnergy:      "energy",
	StaffDeath:       "death",
	StaffConjuration: "conjuration",
	StaffEnchantment: "enchantment",
	StaffSummoning:   "summoning",
	StaffAir:         "air",
	StaffEarth:       "earth",
	StaffChanneling:  "channeling",
}

// CatalogItem builds a known item from a display name, e.g. "ring of protection".
// Returns false when nothing matches.
func CatalogItem(name string) (Item, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	entries := catalogEntries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.name
	}
	idx, ok := fuzzyIndex(name, keys)
	if !ok {
		return Item{}, false
	}
	it := entries[idx].item
	it.Quantity = 1
	it.TypeKnown = true
	it.PropsKnown = true
	return it, true
}

type catalogEntry struct {
	name string
	item Item
}

func catalogEntries() []catalogEntry {
	out := make([]catalogEntry, 0, 96)
	for i := ArmourType(0); i < numArmourTypes; i++ {
		out = append(out, catalogEntry{name: armourTable[i].name, item: Item{Class: ClassArmour, SubType: int(i)}})
	}
	for t, n := range ringNames {
		out = append(out, catalogEntry{name: "ring of " + n, item: Item{Class: ClassRing, SubType: int(t)}})
	}
	for t, n := range amuletNames {
		out = append(out, catalogEntry{name: "amulet of " + n, item: Item{Class: ClassAmulet, SubType: int(t)}})
	}
	for t, n := range staffNames {
		out = append(out, catalogEntry{name: "staff of " + n, item: Item{Class: ClassStaff, SubType: int(t)}})
	}
	for t := FoodType(0); t < numFoodTypes; t++ {
		if t == FoodChunk {
			continue
		}
		out = append(out, catalogEntry{name: foodTable[t].name, item: Item{Class: ClassFood, SubType: int(t)}})
	}
	out = append(out,
		catalogEntry{name: "dagger", item: Item{Class: ClassWeapon, SubType: int(WeaponDagger)}},
		catalogEntry{name: "long sword", item: Item{Class: ClassWeapon, SubType: int(WeaponLongSword)}},
		catalogEntry{name: "mace", item: Item{Class: ClassWeapon, SubType: int(WeaponMace)}},
		catalogEntry{name: "vampire's tooth", item: Item{Class: ClassWeapon, SubType: int(WeaponDagger), Special: int(BrandVampiricism), Unrand: UnrandVampiresTooth}},
	)
	// map iteration order is random; keep lookups stable.
	sortCatalog(out)
	return out
}
