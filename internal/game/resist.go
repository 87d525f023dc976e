package game

// ResistQuery selects which sources a resistance calculator counts.
// AssumeKnown includes properties the player has not identified yet.
type ResistQuery struct {
	AssumeKnown bool
	Temp        bool
	Items       bool
}

// FullResist counts every source, as gameplay does.
var FullResist = ResistQuery{AssumeKnown: true, Temp: true, Items: true}

func ResFire(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	rf := 0
	if q.Items {
		rf += p.wearingRing(RingProtectionFromFire, q.AssumeKnown)
		rf += p.wearingRing(RingFire, q.AssumeKnown)
		rf -= p.wearingRing(RingIce, q.AssumeKnown)
		rf += p.wieldingStaff(StaffFire, q.AssumeKnown)

		rf += 2 * p.bodyArmourIs(ArmourFireDragon)
		rf += p.bodyArmourIs(ArmourGoldDragon)
		rf -= p.bodyArmourIs(ArmourIceDragon)

		rf += p.WearingEgo(EquipAllArmour, EgoFireResistance)
		rf += p.WearingEgo(EquipAllArmour, EgoResistance)
		rf += p.ScanArtefacts(PropFire, q.AssumeKnown)
	}

	if p.Species == SpeciesMummy {
		rf--
	}
	rf += p.MutationLevel(MutationHeatResistance)

	if q.Temp {
		if p.Durations.Active(DurResistFire) {
			rf++
		}
		if p.Durations.Active(DurFireShield) {
			rf += 2
		}
		rf += p.Form.Traits().Fire
	}
	return clamp(rf, -3, 3)
}

func ResCold(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	rc := 0
	if q.Temp {
		if p.Durations.Active(DurResistCold) {
			rc++
		}
		if p.Durations.Active(DurFireShield) {
			rc -= 2
		}
		rc += p.Form.Traits().Cold
		if p.IsUndead() == SemiUndead {
			switch {
			case p.HungerState <= HungerNearStarving:
				rc += 2
			case p.HungerState < HungerSatiated:
				rc++
			}
		}
	}

	if q.Items {
		rc += p.wearingRing(RingProtectionFromCold, q.AssumeKnown)
		rc += p.wearingRing(RingIce, q.AssumeKnown)
		rc -= p.wearingRing(RingFire, q.AssumeKnown)
		rc += p.wieldingStaff(StaffCold, q.AssumeKnown)

		rc += 2 * p.bodyArmourIs(ArmourIceDragon)
		rc += p.bodyArmourIs(ArmourGoldDragon)
		rc -= p.bodyArmourIs(ArmourFireDragon)

		rc += p.WearingEgo(EquipAllArmour, EgoColdResistance)
		rc += p.WearingEgo(EquipAllArmour, EgoResistance)
		rc += p.ScanArtefacts(PropCold, q.AssumeKnown)
	}

	rc += p.MutationLevel(MutationColdResistance)
	if p.MutationLevel(MutationShaggyFur) == 3 {
		rc++
	}
	return clamp(rc, -3, 3)
}

// ResSteam is innate or from steam dragon armour, plus half of fire resistance.
func ResSteam(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	res := 0
	if p.Species == SpeciesPaleDraconian && p.XL > 5 {
		res += 2
	}
	if q.Items {
		res += 2 * p.bodyArmourIs(ArmourSteamDragon)
	}
	return res + ResFire(p, q)/2
}

// ResPoison is either 0 or 1.
func ResPoison(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	rp := 0
	if q.Items {
		rp += p.wearingRing(RingPoisonResistance, q.AssumeKnown)
		rp += p.wieldingStaff(StaffPoison, q.AssumeKnown)
		if p.wieldingUnrand(UnrandStaffOfOlgreb) {
			rp++
		}
		rp += p.WearingEgo(EquipAllArmour, EgoPoisonResistance)
		rp += p.bodyArmourIs(ArmourGoldDragon)
		rp += p.bodyArmourIs(ArmourSwampDragon)
		rp += p.ScanArtefacts(PropPoison, q.AssumeKnown)
	}

	rp += p.MutationLevel(MutationPoisonResistance)

	if q.Temp {
		if p.IsUndead() == SemiUndead && p.HungerState < HungerSatiated {
			rp++
		}
		if p.Durations.Active(DurResistPoison) {
			rp++
		}
		rp += p.Form.Traits().Poison
	}
	return clamp(rp, 0, 1)
}

func ResElec(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	re := 0
	if q.Temp {
		if p.Durations.Active(DurInsulation) {
			re++
		}
		re += p.Form.Traits().Elec
		re = minInt(re, 1)
	}
	if q.Items {
		re += p.wieldingStaff(StaffAir, q.AssumeKnown)
		re += p.bodyArmourIs(ArmourStormDragon)
		re += p.ScanArtefacts(PropElectricity, q.AssumeKnown)
	}
	if p.Species == SpeciesBlackDraconian && p.XL > 17 {
		re++
	}
	if p.MutationLevel(MutationShockResistance) > 0 {
		re++
	}
	return clamp(re, 0, 3)
}

// ResAcid only counts the innate scales while the body is the player's own.
func ResAcid(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	res := 0
	if p.Form.Traits().KeepsBody {
		if p.Species == SpeciesYellowDraconian && p.XL >= 7 {
			res += 2
		}
		res += p.MutationLevel(MutationYellowScales) * 2 / 3
	}
	if q.Items && p.WearingAmulet(AmuletResistCorrosion, q.AssumeKnown) {
		res++
	}
	return res
}

// AcidResistFactor is the percentage of acid damage that gets through.
func AcidResistFactor(p *PlayerState) int {
	res := ResAcid(p, FullResist)
	switch {
	case res <= 0:
		return 100
	case res == 1:
		return 50
	case res == 2:
		return 34
	}
	factor := 30
	for i := 2; i < res && factor >= 20; i++ {
		factor = factor * 90 / 100
	}
	return factor
}

// ProtLife is the negative energy resistance, 0 to 3.
func ProtLife(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	pl := 0
	if p.IsUndead() == SemiUndead {
		switch p.HungerState {
		case HungerStarving, HungerNearStarving:
			pl = 3
		case HungerVeryHungry, HungerHungry:
			pl = 2
		case HungerSatiated:
			pl = 1
		}
	}
	// piety above 150 grants more
	if p.God == GodShiningOne && p.Piety > pl*50 {
		pl = p.Piety / 50
	}
	if q.Temp {
		pl += p.Form.Traits().Life
	}
	if q.Items {
		if p.WearingAmulet(AmuletWarding, q.AssumeKnown) {
			pl++
		}
		pl += p.wearingRing(RingLifeProtection, q.AssumeKnown)
		pl += p.WearingEgo(EquipAllArmour, EgoPositiveEnergy)
		pl += p.ScanArtefacts(PropNegativeEnergy, q.AssumeKnown)
	}
	pl += p.MutationLevel(MutationNegativeEnergyResistance)
	return clamp(pl, 0, 3)
}

func ResTorment(p *PlayerState) bool {
	if p == nil {
		return false
	}
	return p.MutationLevel(MutationTormentResistance) > 0 || p.Form == FormLich ||
		(p.IsUndead() == SemiUndead && p.HungerState == HungerStarving)
}

// ResAsphyx covers the undead and the forms that do not breathe.
func ResAsphyx(p *PlayerState) bool {
	if p == nil {
		return false
	}
	u := p.IsUndead()
	if u == FullyUndead || u == HungryDead {
		return true
	}
	return p.Form.Traits().Asphyx
}

func ResRotting(p *PlayerState) bool {
	if p == nil {
		return false
	}
	switch p.IsUndead() {
	case FullyUndead, HungryDead:
		return true
	case SemiUndead:
		return p.HungerState < HungerSatiated
	}
	return false
}

func ControlTeleport(p *PlayerState, q ResistQuery) bool {
	if p == nil {
		return false
	}
	return (q.Temp && p.Durations.Active(DurControlTeleport)) ||
		(q.Items && p.wearingRing(RingTeleportControl, q.AssumeKnown) > 0) ||
		p.MutationLevel(MutationTeleportControl) > 0
}

func MentalClarity(p *PlayerState, q ResistQuery) int {
	if p == nil {
		return 0
	}
	mc := p.MutationLevel(MutationClarity)
	if q.Items {
		if it := p.equipped(EquipAmulet); it != nil && it.SubType == int(AmuletClarity) && known(it, q.AssumeKnown) {
			mc += 3
		}
	}
	return minInt(mc, 3)
}

func SustainAbilities(p *PlayerState, q ResistQuery) int {
	if p == nil || !q.Items {
		return 0
	}
	return p.wearingRing(RingSustainAbilities, q.AssumeKnown)
}

func ResCorrosion(p *PlayerState, q ResistQuery) bool {
	return p != nil && q.Items && p.WearingAmulet(AmuletResistCorrosion, q.AssumeKnown)
}

// ItemConserve guards consumables against fire and cold.
func ItemConserve(p *PlayerState, q ResistQuery) bool {
	return p != nil && q.Items && p.WearingAmulet(AmuletConservation, q.AssumeKnown)
}

// SpellSchool names the schools that can be enhanced.
type SpellSchool int

const (
	SchoolConjuration SpellSchool = iota
	SchoolEnchantment
	SchoolSummoning
	SchoolNecromancy
	SchoolFire
	SchoolIce
	SchoolEarth
	SchoolAir
	SchoolPoison
	SchoolEnergy
	numSchools
)

var schoolStaves = [numSchools]StaffType{
	SchoolConjuration: StaffConjuration,
	SchoolEnchantment: StaffEnchantment,
	SchoolSummoning:   StaffSummoning,
	SchoolNecromancy:  StaffDeath,
	SchoolFire:        StaffFire,
	SchoolIce:         StaffCold,
	SchoolEarth:       StaffEarth,
	SchoolAir:         StaffAir,
	SchoolPoison:      StaffPoison,
	SchoolEnergy:      StaffEnergy,
}

// SpecSchool is the enhancement level for a spell school.
func SpecSchool(p *PlayerState, school SpellSchool, assumeKnown bool) int {
	if p == nil || school < 0 || school >= numSchools {
		return 0
	}
	spec := p.wieldingStaff(schoolStaves[school], assumeKnown)
	switch school {
	case SchoolConjuration, SchoolEnchantment, SchoolSummoning:
		spec += p.WearingEgo(EquipBodyArmour, EgoArchmagi)
	case SchoolNecromancy:
		spec += p.WearingEgo(EquipBodyArmour, EgoArchmagi)
		if p.Species == SpeciesMummy {
			if p.XL >= 13 {
				spec++
			}
			if p.XL >= 26 {
				spec++
			}
		}
		if p.Species == SpeciesVampire && p.XL >= 13 && p.HungerState < HungerSatiated {
			spec++
		}
		if p.Form == FormLich {
			spec++
		}
	case SchoolFire:
		spec += p.wearingRing(RingFire, assumeKnown)
		if p.Durations.Active(DurFireShield) {
			spec++
		}
	case SchoolIce:
		spec += p.wearingRing(RingIce, assumeKnown)
	case SchoolEarth:
		if p.Form == FormAir {
			spec--
		}
	case SchoolPoison:
		if p.wieldingUnrand(UnrandStaffOfOlgreb) {
			spec++
		}
	}
	return spec
}
