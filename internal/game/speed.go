package game

// MovementSpeed is the time one step takes, 10 being normal.
func MovementSpeed(p *PlayerState) int {
	if p == nil {
		return 10
	}
	if p.swimming() {
		return 6
	}
	mv := p.Form.Traits().BaseMove
	if mv <= 0 {
		mv = 10
	}
	if p.WearingEgo(EquipBoots, EgoRunning) > 0 {
		mv -= 2
	}
	mv += 2 * p.WearingEgo(EquipAllArmour, EgoPonderousness)
	if p.lightFlight() {
		mv--
	}
	if p.Durations.Active(DurSwiftness) && !p.inWater() {
		if p.flightMode() == FlightFly {
			mv -= 4
		} else {
			mv -= 2
		}
	}
	if lvl := p.MutationLevel(MutationFast); lvl > 0 {
		mv -= lvl + 1
	}
	switch p.BurdenState {
	case Encumbered:
		mv++
	case Overloaded:
		mv += 3
	}
	mv = maxInt(mv, 6)
	if p.Species == SpeciesNaga && !isShapechanged(p.Form) {
		mv = mv * 14 / 10
	}
	return mv
}

// ActionSpeed is the time a normal action takes, 10 being normal.
func ActionSpeed(p *PlayerState) int {
	if p == nil {
		return 10
	}
	ps := 10
	if p.Durations.Active(DurSlow) {
		ps *= 2
	}
	if p.Durations.Active(DurHaste) {
		ps /= 2
	}
	if mult := p.Form.Traits().SpeedMult; mult > 0 {
		ps = ps * mult / 10
	}
	return ps
}
