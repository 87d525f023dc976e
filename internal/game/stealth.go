package game

func stealthMultiplier(p *PlayerState) int {
	if p.Species != SpeciesVampire {
		return p.traits().StealthMult
	}
	switch {
	case p.HungerState == HungerStarving:
		return 21
	case p.Form == FormBat || p.HungerState <= HungerNearStarving:
		return 20
	case p.HungerState < HungerSatiated:
		return 19
	default:
		return 18
	}
}

// CheckStealth scores how quietly the player moves. Berserkers make noise.
func CheckStealth(p *PlayerState) int {
	if p == nil || p.Durations.Active(DurBerserk) {
		return 0
	}
	stealth := p.Dex() * 3
	if skill := p.Skills[SkillStealth]; skill > 0 {
		stealth += skill * stealthMultiplier(p)
	}

	if p.BurdenState > Unencumbered {
		stealth /= int(p.BurdenState)
	}
	if p.Durations.Active(DurConfusion) {
		stealth /= 3
	}

	if body := p.equipped(EquipBodyArmour); body != nil && !isLightArmour(*body) {
		stealth -= itemMass(*body) / 10
	}
	if cloak := p.equipped(EquipCloak); cloak != nil && cloak.Race == RaceElven {
		stealth += 20
	}
	if boots := p.equipped(EquipBoots); boots != nil {
		if boots.Ego() == EgoStealth {
			stealth += 50
		}
		if boots.Race == RaceElven {
			stealth += 20
		}
	}
	if p.Durations.Active(DurStealth) {
		stealth += 80
	}
	stealth += p.ScanArtefacts(PropStealth, true)

	switch {
	case p.Airborne():
		stealth += 10
	case p.inWater():
		if p.Species == SpeciesMerfolk {
			stealth += 50
		} else if !p.canSwim() {
			stealth /= 2
		}
	case p.MutationLevel(MutationHooves) > 0:
		stealth -= 10
	}

	if p.Durations.Active(DurSilence) {
		stealth -= 50
	}
	return maxInt(stealth, 0)
}
