package game

import "github.com/sirupsen/logrus"

// ExpNeeded is the experience a species must exceed to stand at level.
func ExpNeeded(level int, sp Species) int {
	if level <= 1 {
		return 0
	}
	var points int
	switch {
	case level == 2:
		points = 10
	case level == 3:
		points = 30
	case level == 4:
		points = 70
	case level < 13:
		lev := level - 4
		points = 10 + 10*lev + (60 << lev)
	default:
		lev := level - 12
		points = 15500 + 10500*lev + 3000*lev*lev
	}
	return (points - 1) * sp.Traits().ExpMod / 10
}

// GainExp adds experience and the skill pool, then levels the player up as
// far as the new total allows. It returns the amount actually gained.
func (s *Session) GainExp(amount int) int {
	p := s.Player
	if amount < 1 {
		return 0
	}
	if p.WearingEgo(EquipBodyArmour, EgoArchmagi) > 0 {
		amount = divRandRound(amount, 4, s.Rng)
	}
	exp := s.Balance.Experience
	before := p.Experience
	p.Experience = minInt(p.Experience+amount, exp.Cap)
	p.ExpAvailable = minInt(p.ExpAvailable+amount, exp.PoolCap)

	gained := p.Experience - before
	s.log().WithFields(logrus.Fields{
		"gained":     gained,
		"experience": p.Experience,
	}).Debug("experience gained")

	s.LevelChange(false)
	return gained
}

// LevelChange raises XL while experience exceeds the next threshold. Levels
// below MaxXL were reached before and only restore a little HP and MP.
func (s *Session) LevelChange(skipAttributeIncrease bool) {
	p := s.Player
	maxLevel := s.Balance.Experience.MaxLevel

	for p.XL < maxLevel && p.Experience > ExpNeeded(p.XL+1, p.Species) {
		p.XL++

		if p.XL <= p.MaxXL {
			s.emitf(ChannelIntrinsicGain, "Welcome back to level %d!", p.XL)
			s.IncHP(4, true)
			s.IncMP(1, true)
		} else {
			s.gainNewLevel(skipAttributeIncrease)
		}

		s.DeflateHP(p.HPMax, false)
		s.CalcHP()
		s.CalcMP()
	}
	s.Recompute()
}

// gainNewLevel applies the rewards of a level reached for the first time.
func (s *Session) gainNewLevel(skipAttributeIncrease bool) {
	p := s.Player
	if p.XL == s.Balance.Experience.MaxLevel {
		s.emitf(ChannelIntrinsicGain, "You have reached level %d, the final one!", p.XL)
	} else {
		s.emitf(ChannelIntrinsicGain, "You have reached level %d!", p.XL)
	}

	s.IncHP(s.levelHPRoll(), true)
	s.IncMP(1, true)

	if p.XL%3 == 0 && !skipAttributeIncrease {
		s.attributeIncrease()
	}

	hpAdjust, mpAdjust := s.applyLevelRules(p.XL)
	if hpAdjust != 0 {
		s.IncMaxHP(hpAdjust)
	}
	if mpAdjust != 0 {
		s.IncMaxMP(mpAdjust)
	}

	p.MaxXL = p.XL
	s.log().WithField("xl", p.XL).Info("level gained")
}

func (s *Session) levelHPRoll() int {
	switch xl := s.Player.XL; {
	case xl > 21:
		if coinflip(s.Rng) {
			return 3
		}
		return 2
	case xl > 12:
		return 3 + s.Rng.Random2(3)
	default:
		return 4 + s.Rng.Random2(4)
	}
}

// applyLevelRules runs the species level table and returns the summed
// base HP and MP adjustments.
func (s *Session) applyLevelRules(level int) (hp, mp int) {
	for _, r := range s.Player.traits().Levels {
		if !r.matches(level) {
			continue
		}
		hp += r.hp
		mp += r.mp
		if r.message != "" {
			s.emit(r.message, ChannelIntrinsicGain)
		}
		switch {
		case r.randomStat:
			s.ModifyStat(StatRandom, 1, false, "level gain")
		case len(r.stats) == 1:
			s.ModifyStat(r.stats[0], 1, false, "level gain")
		case len(r.stats) > 1:
			s.ModifyStat(r.stats[s.Rng.Random2(len(r.stats))], 1, false, "level gain")
		}
		if r.hasMutation {
			s.permaMutate(r.mutation, 1)
		}
		if r.hook != nil {
			r.hook(s, level)
		}
	}
	return hp, mp
}
