package game

import "github.com/sirupsen/logrus"

// TurnReport is what one AdvanceTurn produced. Death is nil unless the
// player died this turn; ending the game is up to the caller.
type TurnReport struct {
	Turn    int
	Derived DerivedStats
	Death   *DeathCause
}

// AdvanceTurn runs one player turn: durations decay, the surroundings and
// burden are rescanned, derived stats are recomputed, then hunger,
// regeneration and poison tick and the active delay continues.
func (s *Session) AdvanceTurn() TurnReport {
	p := s.Player
	s.Turn++

	s.decayDurations()
	s.refreshSurroundings()
	s.updateBurden()
	derived := s.Recompute()

	report := TurnReport{Turn: s.Turn, Derived: derived}
	if death := s.tickNeeds(derived); death != nil {
		report.Death = death
		s.log().WithFields(logrus.Fields{
			"method": death.Method.String(),
			"source": death.Source,
		}).Info("player died")
		return report
	}

	s.rotPack()
	s.tickGourmand()
	if !p.cannotMove() {
		s.continueDelay()
	}

	// eating or a duration ending may have moved the snapshot
	report.Derived = s.Recompute()
	return report
}

func (s *Session) refreshSurroundings() {
	p := s.Player
	feature := s.Terrain.FeatureAt(p.Pos)
	p.Surroundings = Surroundings{
		Feature: feature,
		Trap:    s.Terrain.TrapAt(p.Pos),
		InWater: feature == FeatureShallowWater || feature == FeatureDeepWater,
	}
}

// tickNeeds spends nutrition and regenerates HP and MP. Poison damage is
// dealt last so regeneration cannot mask a killing dose.
func (s *Session) tickNeeds(d DerivedStats) *DeathCause {
	p := s.Player
	unit := s.Balance.Regen.Unit

	if p.IsUndead() != FullyUndead {
		p.Hunger = maxInt(p.Hunger-d.HungerRate, 0)
		s.foodChange(false)
	}
	if death := s.checkStarvation(); death != nil {
		return death
	}

	if p.HP < p.HPMax && p.Disease == 0 {
		p.hpCarry += d.HPRegen
		for p.hpCarry >= unit {
			p.hpCarry -= unit
			s.IncHP(1, false)
		}
	} else {
		p.hpCarry = 0
	}
	if p.MP < p.MPMax {
		p.mpCarry += d.MPRegen
		for p.mpCarry >= unit {
			p.mpCarry -= unit
			s.IncMP(1, false)
		}
	} else {
		p.mpCarry = 0
	}

	return s.tickPoison()
}

// rotPack ages perishables every RotEvery turns. Chunks that run out of
// freshness rot away.
func (s *Session) rotPack() {
	p := s.Player
	every := s.Balance.Food.RotEvery
	if every < 1 || s.Turn%every != 0 {
		return
	}
	for i := range p.Inventory {
		it := &p.Inventory[i]
		if !it.Defined() || !it.IsPerishable() {
			continue
		}
		it.Freshness--
		if it.Freshness > 0 {
			continue
		}
		s.emitf(ChannelPlain, "Your %s rot away.", it.DisplayName())
		p.decInvQuantity(i, it.Quantity)
	}
}

// tickGourmand builds up the amulet's chunk bonus while it is worn.
func (s *Session) tickGourmand() {
	p := s.Player
	if !p.WearingAmulet(AmuletGourmand, true) {
		p.Gourmand = 0
		return
	}
	p.Gourmand = minInt(p.Gourmand+1, s.Balance.Food.GourmandMax)
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
