package game

func repulsionBonus(p *PlayerState) int {
	if lvl := p.MutationLevel(MutationRepulsionField); lvl > 0 {
		return 2*lvl - 1
	}
	return 0
}

// PlayerEvasion is the evasion score. A helpless player keeps only a
// small size-based floor.
func PlayerEvasion(p *PlayerState) int {
	if p == nil {
		return 0
	}
	sizeFactor := int(SizeMedium) - int(p.BodySize())

	if p.cannotMove() {
		return maxInt(1, 2+sizeFactor+repulsionBonus(p))
	}

	ev := 10 + 2*sizeFactor
	dodging := p.Skills[SkillDodging]
	dodge := (dodging*p.Dex() + 7) / (20 - sizeFactor)
	dodge = minInt(dodge, dodging*(7+sizeFactor)/9)

	for _, piece := range p.wornArmour(false) {
		if piece.slot == EquipBodyArmour {
			continue
		}
		pen := armourEV(*piece.item)
		if piece.slot == EquipShield && pen < 0 && p.TorsoSize() > SizeMedium {
			pen += int(p.TorsoSize() - SizeMedium)
		}
		if pen < 0 {
			ev += pen
		}
	}

	if body := p.equipped(EquipBodyArmour); body != nil {
		pen := armourEV(*body)
		size := p.BodySize()
		if size < SizeSmall || size > SizeLarge {
			pen -= int(size-SizeMedium) * pen / 4
			pen = minInt(pen, 0)
		}
		change := minInt(pen+p.Skills[SkillArmour]*p.Str()/60, pen/2)
		ev += change
		if !isLightArmour(*body) {
			dodge += (pen*30 + 15) / maxInt(p.Str(), 1)
		}
	}

	if dodge > 0 {
		ev += dodge
	}
	if p.Durations.Active(DurForescry) {
		ev += 8
	}
	if p.Durations.Active(DurStonemail) {
		ev -= 2
	}
	ev += p.ringPlus(RingEvasion)
	ev += p.ScanArtefacts(PropEvasion, true)
	ev -= 2 * p.WearingEgo(EquipBodyArmour, EgoPonderousness)
	ev += repulsionBonus(p)
	ev += p.Form.Traits().EV

	switch {
	case p.Species == SpeciesMerfolk && p.swimming():
		ev += minInt(9, maxInt(2, ev/4))
	case p.Species == SpeciesKenku && p.flightMode() == FlightFly:
		ev += minInt(9, maxInt(1, ev/5))
	}
	return ev
}
