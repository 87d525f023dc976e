package game

// PoisonPlayer adds poison unless resisted. force skips the resistance check.
func (s *Session) PoisonPlayer(amount int, force bool) bool {
	p := s.Player
	if amount <= 0 || (!force && ResPoison(p, ResistQuery{AssumeKnown: true, Temp: true, Items: true}) > 0) {
		return false
	}
	old := p.Durations.Get(DurPoisoning)
	next := minInt(old+amount, p.balance().Durations.PoisonCap)
	p.Durations.set(DurPoisoning, next)
	if next > old {
		if old > 0 {
			s.emit("You are more poisoned.", ChannelWarn)
		} else {
			s.emit("You are poisoned.", ChannelWarn)
		}
	}
	return true
}

func (s *Session) ReducePoison(amount int) {
	p := s.Player
	if p.Durations.Get(DurPoisoning) == 0 || amount <= 0 {
		return
	}
	left := p.Durations.Get(DurPoisoning) - amount
	if left <= 0 {
		p.Durations.clear(DurPoisoning)
		s.emit("You feel better.", ChannelRecovery)
		return
	}
	p.Durations.set(DurPoisoning, left)
	s.emit("You feel a little better.", ChannelRecovery)
}

// ConfusePlayer is blocked by clarity when resistable.
func (s *Session) ConfusePlayer(amount int, resistable bool) bool {
	p := s.Player
	if amount <= 0 {
		return false
	}
	if resistable && p.WearingAmulet(AmuletClarity, true) {
		s.emit("You feel momentarily confused.", ChannelPlain)
		return false
	}
	old := p.Durations.Get(DurConfusion)
	next := minInt(old+amount, p.balance().Durations.ConfusionCap)
	p.Durations.set(DurConfusion, next)
	if next > old {
		if old > 0 {
			s.emit("You are more confused.", ChannelWarn)
		} else {
			s.emit("You are confused.", ChannelWarn)
		}
	}
	return true
}

func (s *Session) ReduceConfusion(amount int) {
	p := s.Player
	if p.Durations.Get(DurConfusion) == 0 || amount <= 0 {
		return
	}
	left := p.Durations.Get(DurConfusion) - amount
	if left <= 0 {
		p.Durations.clear(DurConfusion)
		s.emit("You feel less confused.", ChannelRecovery)
		return
	}
	p.Durations.set(DurConfusion, left)
}

func (s *Session) SlowPlayer(amount int) bool {
	p := s.Player
	if amount <= 0 {
		return false
	}
	if p.WearingAmulet(AmuletResistSlow, true) {
		s.emit("You feel momentarily lethargic.", ChannelPlain)
		if amu := p.equipped(EquipAmulet); amu != nil {
			amu.TypeKnown = true
		}
		return false
	}
	limit := p.balance().Durations.SlowCap
	cur := p.Durations.Get(DurSlow)
	if cur >= limit {
		s.emit("You already are as slow as you could be.", ChannelPlain)
		return true
	}
	if cur == 0 {
		s.emit("You feel yourself slow down.", ChannelWarn)
	} else {
		s.emit("You feel as though you will be slow longer.", ChannelWarn)
	}
	p.Durations.set(DurSlow, minInt(cur+amount, limit))
	return true
}

func (s *Session) HastePlayer(amount int) {
	p := s.Player
	if amount <= 0 {
		return
	}
	amulet := p.WearingAmulet(AmuletResistSlow, true)
	limit := p.balance().Durations.HasteCap
	if amulet {
		limit = p.balance().Durations.HasteAmuletCap
		s.emit("Your amulet glows brightly.", ChannelPlain)
		if amu := p.equipped(EquipAmulet); amu != nil {
			amu.TypeKnown = true
		}
	}
	cur := p.Durations.Get(DurHaste)
	switch {
	case cur == 0:
		s.emit("You feel yourself speed up.", ChannelDuration)
	case cur > limit:
		s.emit("You already have as much speed as you can handle.", ChannelPlain)
	default:
		s.emit("You feel as though your hastened speed will last longer.", ChannelDuration)
	}
	p.Durations.set(DurHaste, minInt(cur+amount, limit))
}

// DiseasePlayer fails for the undead.
func (s *Session) DiseasePlayer(amount int) bool {
	p := s.Player
	if p.IsUndead() != Alive || amount <= 0 {
		return false
	}
	s.emit("You feel ill.", ChannelWarn)
	p.Disease = minInt(p.Disease+amount, p.balance().Durations.DiseaseCap)
	return true
}

func (s *Session) RotPlayer(amount int) bool {
	p := s.Player
	if amount <= 0 {
		return false
	}
	if ResRotting(p) {
		s.emit("You feel terrible.", ChannelPlain)
		return false
	}
	if p.Rotting < p.balance().Durations.RottingCap {
		if p.Rotting > 0 {
			s.emit("You feel your flesh rotting away!", ChannelWarn)
		} else {
			s.emit("You feel your flesh start to rot away!", ChannelWarn)
		}
		p.Rotting += amount
	}
	return true
}

// Paralyse only lengthens a short paralysis, or a long one by luck.
func (s *Session) Paralyse(strength int) {
	s.immobilise(DurParalysis, strength)
}

func (s *Session) Petrify(strength int) {
	s.immobilise(DurPetrified, strength)
}

func (s *Session) immobilise(id DurationID, strength int) {
	p := s.Player
	cur := p.Durations.Get(id)
	if cur > 0 {
		s.emit("You still haven't the ability to move!", ChannelWarn)
	} else {
		s.emit("You suddenly lose the ability to move!", ChannelWarn)
	}
	if strength > cur && (cur < 3 || s.Rng.OneChanceIn(cur)) {
		cur = strength
	}
	p.Durations.set(id, minInt(cur, p.balance().Durations.ParalysisCap))
}

// CanGoBerserk is a refusal check. verbose explains the refusal.
func (s *Session) CanGoBerserk(verbose bool) bool {
	p := s.Player
	switch {
	case p.Durations.Active(DurBerserk):
		if verbose {
			s.emit("You're already berserk!", ChannelPlain)
		}
		return false
	case p.Durations.Active(DurExhausted):
		if verbose {
			s.emit("You're too exhausted to go berserk.", ChannelPlain)
		}
		return false
	case p.IsUndead() != Alive && (p.IsUndead() != SemiUndead || p.HungerState <= HungerSatiated):
		if verbose {
			s.emit("You cannot raise a blood rage in your lifeless body.", ChannelPlain)
		}
		return false
	}
	return true
}

// berserkWeaponCheck asks before raging with something that is not a melee weapon.
func (s *Session) berserkWeaponCheck() bool {
	it := s.Player.equipped(EquipWeapon)
	if it == nil || it.Class == ClassWeapon || it.Class == ClassStaff {
		return true
	}
	if !s.yesNo("Do you really want to go berserk while wielding " + it.DisplayName() + "?") {
		s.emit("Okay, then.", ChannelPlain)
		return false
	}
	return true
}

func (s *Session) GoBerserk(intentional bool) bool {
	if !s.CanGoBerserk(intentional) {
		return false
	}
	if intentional && !s.berserkWeaponCheck() {
		return false
	}
	p := s.Player
	s.emit("A red film seems to cover your vision as you go berserk!", ChannelDuration)
	s.emit("You feel yourself moving faster!", ChannelDuration)
	s.emit("You feel mighty!", ChannelDuration)

	turns := 10 + s.Rng.Random2Avg(19, 2)
	p.Durations.set(DurBerserk, p.Durations.Get(DurBerserk)+turns)
	s.CalcHP()
	p.HP = p.HP * 15 / 10
	s.DeflateHP(p.HPMax, false)

	p.Durations.set(DurMight, p.Durations.Get(DurMight)+turns)
	p.refreshStats()
	s.HastePlayer(turns)
	s.log().WithField("turns", turns).Debug("berserk")
	return true
}

func (s *Session) endBerserk() {
	p := s.Player
	p.HP = (p.HP + 1) * 2 / 3
	s.CalcHP()
	p.Durations.set(DurExhausted, p.balance().Durations.ExhaustionTurns+s.Rng.Random2(p.balance().Durations.ExhaustionTurns))
	s.emit("You are exhausted.", ChannelWarn)
	s.SlowPlayer(4 + s.Rng.Random2(4))
}
