package game

// decayDurations runs once per turn before anything reads the durations.
// Poison is ticked separately because it also deals damage.
func (s *Session) decayDurations() {
	p := s.Player
	for id := DurationID(0); id < NumDurations; id++ {
		switch id {
		case DurSlow:
			s.decSlow()
			continue
		case DurHaste:
			s.decHaste()
			continue
		case DurPoisoning:
			continue
		}
		if p.Durations[id] == 0 {
			continue
		}
		p.Durations[id]--
		if p.Durations[id] == 0 {
			s.emit(durationTable[id].wearOff, ChannelDuration)
			s.onDurationEnd(id)
		}
	}
	s.decDisease()
	s.decRotting()
}

func (s *Session) onDurationEnd(id DurationID) {
	switch id {
	case DurBerserk:
		s.endBerserk()
	case DurMight:
		s.Player.refreshStats()
		s.updateBurden()
	case DurLevitation, DurControlledFlight:
		s.updateBurden()
	case DurTransformation:
		s.Untransform()
	}
}

// decSlow wears slow off five times faster under a resist-slow amulet.
func (s *Session) decSlow() {
	p := s.Player
	cur := p.Durations[DurSlow]
	switch {
	case cur > 1:
		if p.WearingAmulet(AmuletResistSlow, true) {
			p.Durations[DurSlow] = maxInt(cur-5, 1)
		} else {
			p.Durations[DurSlow]--
		}
	case cur == 1:
		s.emit(durationTable[DurSlow].wearOff, ChannelDuration)
		p.Durations[DurSlow] = 0
	}
}

// decHaste keeps haste longer under a resist-slow amulet and jitters near expiry.
func (s *Session) decHaste() {
	p := s.Player
	cur := p.Durations[DurHaste]
	switch {
	case cur > 1:
		if !p.WearingAmulet(AmuletResistSlow, true) || coinflip(s.Rng) {
			p.Durations[DurHaste]--
		}
		if p.Durations[DurHaste] == 6 {
			s.emit("Your extra speed is starting to run out.", ChannelDuration)
			if coinflip(s.Rng) {
				p.Durations[DurHaste]--
			}
		}
	case cur == 1:
		s.emit(durationTable[DurHaste].wearOff, ChannelDuration)
		p.Durations[DurHaste] = 0
	}
}

func (s *Session) decDisease() {
	p := s.Player
	if p.Disease <= 0 {
		return
	}
	p.Disease--
	if p.Disease > 5 && (p.Species == SpeciesKobold ||
		p.Durations.Active(DurRegeneration) ||
		p.MutationLevel(MutationRegeneration) == 3) {
		p.Disease -= 2
	}
	if p.Disease <= 0 {
		p.Disease = 0
		s.emit("You feel your health improve.", ChannelRecovery)
	}
}

func (s *Session) decRotting() {
	p := s.Player
	if p.Rotting <= 0 {
		return
	}
	p.Rotting--
	if s.Rng.OneChanceIn(10) {
		s.emit("You feel your flesh rotting away.", ChannelWarn)
		s.RotHP(1)
	}
}

// tickPoison deals one point of damage per poisoned turn. It returns the
// death cause when the poison kills.
func (s *Session) tickPoison() *DeathCause {
	p := s.Player
	if p.Durations[DurPoisoning] == 0 {
		return nil
	}
	p.Durations[DurPoisoning]--
	if p.Durations[DurPoisoning] == 0 {
		s.emit(durationTable[DurPoisoning].wearOff, ChannelRecovery)
	}
	return s.DecHP(1, true, KilledByPoison, "poison")
}
