package game

const stonemailBurden = 800

// CarryingCapacity is the weight limit below which the player is in bs.
func CarryingCapacity(p *PlayerState, bs BurdenState) int {
	if p == nil {
		return 0
	}
	limit := 3500 + p.Str()*100
	if p.Airborne() {
		limit += 1000
	}
	switch bs {
	case Unencumbered:
		return limit * 5 / 6
	case Encumbered:
		return limit * 11 / 12
	default:
		return limit
	}
}

// TotalBurden is the weight of the pack plus any stonemail.
func TotalBurden(p *PlayerState) int {
	if p == nil {
		return 0
	}
	total := 0
	if p.Durations.Active(DurStonemail) {
		total += stonemailBurden
	}
	for _, it := range p.Inventory {
		if !it.Defined() {
			continue
		}
		total += itemMass(it) * it.Quantity
	}
	return total
}

func burdenStateFor(p *PlayerState, burden int) BurdenState {
	switch {
	case burden < CarryingCapacity(p, Unencumbered):
		return Unencumbered
	case burden < CarryingCapacity(p, Encumbered):
		return Encumbered
	default:
		return Overloaded
	}
}

// updateBurden recomputes weight and state, announcing any change.
func (s *Session) updateBurden() {
	p := s.Player
	wasLight := p.lightFlight()
	old := p.BurdenState

	p.Burden = TotalBurden(p)
	p.BurdenState = burdenStateFor(p, p.Burden)

	if p.BurdenState != old {
		switch p.BurdenState {
		case Unencumbered:
			s.emit("Your possessions no longer seem quite so burdensome.", ChannelRecovery)
		case Encumbered:
			s.emit("You are being weighed down by all of your possessions.", ChannelWarn)
		case Overloaded:
			s.emit("You are being crushed by all of your possessions.", ChannelWarn)
		}
		s.log().WithField("burden", p.BurdenState.String()).Debug("burden changed")
	}

	if isLight := p.lightFlight(); isLight != wasLight {
		if isLight {
			s.emit("You feel quicker in the air.", ChannelRecovery)
		} else {
			s.emit("You feel heavier in the air.", ChannelWarn)
		}
	}
}
