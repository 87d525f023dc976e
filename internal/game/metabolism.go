package game

const (
	faintHunger  = 500
	starveHunger = 100
)

// hungerStateFor maps the hunger counter onto its state.
func hungerStateFor(hunger int, b *Balance) HungerState {
	t := b.Hunger.Thresholds
	switch {
	case hunger <= t[0]:
		return HungerStarving
	case hunger <= t[1]:
		return HungerNearStarving
	case hunger <= t[2]:
		return HungerVeryHungry
	case hunger <= t[3]:
		return HungerHungry
	case hunger < t[4]:
		return HungerSatiated
	case hunger < t[5]:
		return HungerFull
	case hunger < t[6]:
		return HungerVeryFull
	default:
		return HungerEngorged
	}
}

// HungerRate is the nutrition spent per turn. It never drops below one.
func HungerRate(p *PlayerState) int {
	if p == nil {
		return 1
	}
	if p.Form == FormBat {
		return 1
	}
	hunger := 3
	if p.Form == FormAir {
		hunger = 0
	}

	if p.Species == SpeciesTroll {
		hunger += 3
	}
	if p.Durations.Active(DurRegeneration) {
		hunger += 4
	}
	if p.Hunger >= p.balance().Hunger.ExtraCostAbove {
		if p.Durations.Active(DurInvisibility) {
			hunger += 5
		}
		if p.Durations.Active(DurHaste) && !p.Durations.Active(DurBerserk) {
			hunger += 5
		}
	}

	vampire := p.Species == SpeciesVampire
	if vampire {
		switch p.HungerState {
		case HungerStarving, HungerNearStarving:
			hunger -= 3
		case HungerVeryHungry:
			hunger -= 2
		case HungerHungry:
			hunger--
		case HungerFull:
			hunger++
		case HungerVeryFull:
			hunger += 2
		case HungerEngorged:
			hunger += 3
		}
	} else {
		hunger += p.MutationLevel(MutationFastMetabolism)
		switch slow := p.MutationLevel(MutationSlowMetabolism); {
		case slow > 2:
			hunger -= 2
		case slow > 0:
			hunger--
		}
	}

	hunger += 2 * p.wearingRing(RingRegeneration, true)
	hunger += 4 * p.wearingRing(RingHunger, true)
	hunger -= 2 * p.wearingRing(RingSustenance, true)

	if p.WieldingBrand(BrandVampiricism) {
		tooth := p.wieldingUnrand(UnrandVampiresTooth)
		switch {
		case !vampire && tooth:
			hunger += 9
		case !vampire:
			hunger += 6
		case tooth:
			hunger += 2
		default:
			hunger++
		}
	}
	if p.Species != SpeciesTroll && p.bodyArmourIs(ArmourTrollLeather) > 0 {
		hunger++
	}
	hunger += p.ScanArtefacts(PropMetabolism, true)
	hunger += int(p.BurdenState)

	return maxInt(hunger, 1)
}

// CalcHunger scales a spell or ability food cost. Thirsty vampires pay
// half, nearly drained ones nothing.
func CalcHunger(p *PlayerState, cost int) int {
	if p.IsUndead() == SemiUndead && p.HungerState < HungerSatiated {
		if p.HungerState <= HungerNearStarving {
			return 0
		}
		return cost / 2
	}
	return cost
}

// MakeHungry spends nutrition. reducible applies CalcHunger first.
func (s *Session) MakeHungry(amount int, suppressMsg, reducible bool) {
	p := s.Player
	if p.IsUndead() == FullyUndead {
		return
	}
	if reducible {
		amount = CalcHunger(p, amount)
	}
	if amount == 0 {
		return
	}
	p.Hunger = maxInt(p.Hunger-amount, 0)
	if !s.foodChange(suppressMsg) && !suppressMsg {
		s.describeFoodChange(-amount)
	}
}

// LessenHunger adds nutrition up to the configured maximum.
func (s *Session) LessenHunger(amount int, suppressMsg bool) {
	p := s.Player
	if p.IsUndead() == FullyUndead || amount <= 0 {
		return
	}
	p.Hunger = minInt(p.Hunger+amount, p.balance().Hunger.Max)
	if !s.foodChange(suppressMsg) && !suppressMsg {
		s.describeFoodChange(amount)
	}
}

// SetHunger puts the counter at an absolute value.
func (s *Session) SetHunger(amount int, suppressMsg bool) {
	p := s.Player
	p.Hunger = clamp(amount, 0, p.balance().Hunger.Max)
	s.foodChange(suppressMsg)
}

// foodChange refreshes the hunger state and reports whether it moved.
func (s *Session) foodChange(suppressMsg bool) bool {
	p := s.Player
	b := p.balance()
	if p.Hunger < 0 || p.Hunger > b.Hunger.Max {
		reportInvariant(InvariantHungerRange, "hunger %d outside 0..%d", p.Hunger, b.Hunger.Max)
		p.Hunger = clamp(p.Hunger, 0, b.Hunger.Max)
	}
	next := hungerStateFor(p.Hunger, b)
	if next == p.HungerState {
		return false
	}
	hungrier := next < p.HungerState
	p.HungerState = next

	// vampire mutations and resistances follow the blood level
	if p.IsUndead() == SemiUndead {
		p.refreshStats()
		s.CalcHP()
		s.updateBurden()
	}
	if suppressMsg || !hungrier {
		return true
	}

	vampire := p.Species == SpeciesVampire
	switch next {
	case HungerStarving:
		if vampire {
			s.emit("You feel devoid of blood!", ChannelFood)
		} else {
			s.emit("You are starving!", ChannelFood)
		}
	case HungerNearStarving:
		if vampire {
			s.emit("You feel almost devoid of blood!", ChannelFood)
		} else {
			s.emit("You are near starving!", ChannelFood)
		}
	case HungerVeryHungry, HungerHungry:
		very := ""
		if next == HungerVeryHungry {
			very = "very "
		}
		if vampire {
			s.emit("You feel "+very+"thirsty.", ChannelFood)
		} else {
			s.emit("You are feeling "+very+"hungry.", ChannelFood)
		}
	}
	return true
}

func (s *Session) describeFoodChange(increment int) {
	magnitude := increment
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude == 0 {
		return
	}
	msg := "You feel "
	switch {
	case magnitude <= 100:
		msg += "slightly "
	case magnitude <= 350:
		msg += "somewhat "
	case magnitude <= 800:
		msg += "quite a bit "
	default:
		msg += "a lot "
	}
	if (s.Player.HungerState > HungerSatiated) != (increment < 0) {
		msg += "more "
	} else {
		msg += "less "
	}
	if s.Player.Species == SpeciesVampire {
		msg += "thirsty."
	} else {
		msg += "hungry."
	}
	s.emit(msg, ChannelFood)
}

// checkStarvation faints a starving player now and then and reports
// death once nothing is left.
func (s *Session) checkStarvation() *DeathCause {
	p := s.Player
	if p.IsUndead() != Alive || p.Hunger > faintHunger {
		return nil
	}
	if p.Hunger <= starveHunger {
		s.emit("You have starved to death.", ChannelDanger)
		return &DeathCause{Method: KilledByStarvation, Source: "starvation"}
	}
	if !p.cannotMove() && s.Rng.OneChanceIn(40) {
		s.emit("You lose consciousness!", ChannelDanger)
		s.Paralyse(5 + s.Rng.Random2(8))
	}
	return nil
}
