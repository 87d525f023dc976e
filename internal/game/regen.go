package game

// PlayerRegen is the HP regeneration rate in accumulator units per turn.
func PlayerRegen(p *PlayerState) int {
	if p == nil {
		return 0
	}
	rb := p.balance().Regen
	rr := p.HPMax / 3
	if rr > rb.SoftCap {
		rr = rb.SoftCap + (rr-rb.SoftCap)/2
	}

	rr += 40 * p.wearingRing(RingRegeneration, true)
	if p.Durations.Active(DurRegeneration) {
		rr += 100
	}
	if p.Species != SpeciesTroll && p.bodyArmourIs(ArmourTrollLeather) > 0 {
		rr += 30
	}
	rr += 20 * p.MutationLevel(MutationRegeneration)

	if (p.Species == SpeciesGhoul && (p.Form == FormNone || p.Form == FormBladeHands)) || p.Form == FormAir {
		rr /= 2
	}

	if p.Species == SpeciesVampire {
		switch p.HungerState {
		case HungerStarving:
			return 0
		case HungerNearStarving, HungerVeryHungry, HungerHungry:
			return rr / 2
		case HungerSatiated:
			return rr
		case HungerFull, HungerVeryFull:
			return rr + 10
		default:
			return rr + 20
		}
	}
	return maxInt(rr, rb.MinHPRegen)
}

// MagicRegen is the MP regeneration rate in accumulator units per turn.
func MagicRegen(p *PlayerState) int {
	if p == nil || p.MPMax == 0 {
		return 0
	}
	return p.balance().Regen.MPBase + p.MPMax/2
}
