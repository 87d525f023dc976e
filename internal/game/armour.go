package game

// armourRacialBonus rewards matching racial armour. Dwarven make is good
// for everyone; Beogh strengthens orcish gear with piety.
func armourRacialBonus(p *PlayerState, it *Item) int {
	bonus := 0
	if it.Race == RaceDwarven {
		bonus += 4
	}
	race := p.traits().Race
	if race == RaceNone || it.Race != race {
		return bonus
	}
	if race == RaceElven {
		bonus += 2
	} else {
		bonus += 4
	}
	if race == RaceOrcish && p.God == GodBeogh {
		switch {
		case p.Piety >= 185:
			bonus += bonus * 9 / 4
		case p.Piety >= 160:
			bonus += bonus * 2
		case p.Piety >= 120:
			bonus += bonus * 7 / 4
		case p.Piety >= 80:
			bonus += bonus * 5 / 4
		case p.Piety >= 40:
			bonus += bonus * 3 / 4
		default:
			bonus += bonus / 4
		}
	}
	return bonus
}

// PlayerAC is the armour class. Work is in hundredths and truncated once.
func PlayerAC(p *PlayerState) int {
	if p == nil {
		return 0
	}
	return playerAC100(p) / 100
}

func playerAC100(p *PlayerState) int {
	ac := 0
	for _, piece := range p.wornArmour(true) {
		base := armourAC(*piece.item) * 100
		racial := armourRacialBonus(p, piece.item)
		ac += base * (30 + 2*p.Skills[SkillArmour] + racial) / 30
		ac += piece.item.Plus * 100
		if piece.slot == EquipBodyArmour && p.MutationLevel(MutationDeformed) > 0 {
			ac -= base / 2
		}
	}

	ac += p.ringPlus(RingProtection) * 100
	if p.WieldingBrand(BrandProtection) {
		ac += 500
	}
	if p.WearingEgo(EquipShield, EgoProtection) > 0 {
		ac += 300
	}
	ac += p.ScanArtefacts(PropAC, true) * 100

	// a ring of flames melts icy armour
	if p.Durations.Active(DurIcyArmour) && !p.Durations.Active(DurFireShield) {
		ac += 400 + 100*p.Skills[SkillIceMagic]/3
	}
	if p.Durations.Active(DurStonemail) {
		ac += 500 + 100*p.Skills[SkillEarthMagic]/2
	}
	if p.Durations.Active(DurStoneskin) {
		ac += 200 + 100*p.Skills[SkillEarthMagic]/5
	}

	if p.Form == FormAir {
		return p.Skills[SkillAirMagic] * 300 / 2
	}
	traits := p.Form.Traits()
	if traits.ACDiv > 0 {
		ac += traits.ACBase + 100*(p.Skills[traits.ACSkill]+traits.ACSkillOffset)/traits.ACDiv
	}
	switch p.Form {
	case FormIceBeast:
		if p.Durations.Active(DurIcyArmour) {
			ac += 100 + 100*p.Skills[SkillIceMagic]/4
		}
	case FormStatue:
		if p.Durations.Active(DurStoneskin) || p.Durations.Active(DurStonemail) {
			ac += 100 + 100*p.Skills[SkillEarthMagic]/4
		}
	}
	if traits.KeepsBody {
		ac += speciesAC(p)
		ac += p.balance().scaleAC(p)
	}
	return ac
}

func speciesAC(p *PlayerState) int {
	switch {
	case p.Species.IsDraconian():
		if p.XL < 8 {
			return 200
		}
		if p.Species == SpeciesGreyDraconian {
			return 100 + 100*(p.XL-4)/2
		}
		return 100 + 100*p.XL/4
	case p.Species == SpeciesNaga:
		return 100 * p.XL / 3
	case p.Species == SpeciesOgre:
		return 100
	case p.Species == SpeciesTroll, p.Species == SpeciesCentaur:
		return 300
	}
	return 0
}

// LightArmour reports bare or light body armour.
func LightArmour(p *PlayerState) bool {
	it := p.equipped(EquipBodyArmour)
	return it == nil || isLightArmour(*it)
}
