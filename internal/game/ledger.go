package game

// IncHP heals up to the ceiling. maxToo also raises the base potential.
func (s *Session) IncHP(gain int, maxToo bool) {
	p := s.Player
	if gain < 1 {
		return
	}
	p.HP += gain
	if maxToo {
		s.IncMaxHP(gain)
	}
	if p.HP > p.HPMax {
		p.HP = p.HPMax
	}
}

// DecHP removes hit points. Without fatal the player is left on 1 HP.
// With fatal, reaching 0 returns the death cause for the caller to handle.
func (s *Session) DecHP(loss int, fatal bool, method KillMethod, source string) *DeathCause {
	p := s.Player
	if !fatal && p.HP < 1 {
		p.HP = 1
	}
	if !fatal && loss >= p.HP {
		loss = p.HP - 1
	}
	if loss < 1 {
		return nil
	}
	p.HP -= loss
	if p.HP <= 0 {
		p.HP = 0
		return &DeathCause{Method: method, Source: source}
	}
	return nil
}

func (s *Session) IncMP(gain int, maxToo bool) {
	p := s.Player
	if gain < 1 {
		return
	}
	p.MP += gain
	if maxToo {
		s.IncMaxMP(gain)
	}
	if p.MP > p.MPMax {
		p.MP = p.MPMax
	}
}

func (s *Session) DecMP(loss int) {
	p := s.Player
	if loss < 1 {
		return
	}
	p.MP = maxInt(p.MP-loss, 0)
}

// EnoughHP keeps at least one hit point in reserve.
func (s *Session) EnoughHP(minimum int, suppressMsg bool) bool {
	if s.Player.HP < minimum+1 {
		if !suppressMsg {
			s.emit("You haven't enough vitality at the moment.", ChannelPlain)
		}
		return false
	}
	return true
}

func (s *Session) EnoughMP(minimum int, suppressMsg bool) bool {
	if s.Player.MP < minimum {
		if !suppressMsg {
			s.emit("You haven't enough magic at the moment.", ChannelPlain)
		}
		return false
	}
	return true
}

func (s *Session) RotHP(loss int) {
	if loss < 1 {
		return
	}
	s.Player.HPRot += loss
	s.CalcHP()
}

func (s *Session) UnrotHP(recovered int) {
	if recovered < 1 {
		return
	}
	s.Player.HPRot = maxInt(s.Player.HPRot-recovered, 0)
	s.CalcHP()
}

// Rotted is the ceiling lost to rot.
func (p *PlayerState) Rotted() int {
	return p.HPRot
}

func (s *Session) DrainMP(loss int) {
	if loss < 1 {
		return
	}
	s.Player.MPDrain += loss
	s.CalcMP()
}

func (s *Session) IncMaxHP(gain int) {
	s.Player.HPBase += gain
	s.CalcHP()
}

func (s *Session) DecMaxHP(loss int) {
	s.Player.HPBase -= loss
	s.CalcHP()
}

func (s *Session) IncMaxMP(gain int) {
	s.Player.MPBase += gain
	s.CalcMP()
}

func (s *Session) DecMaxMP(loss int) {
	s.Player.MPBase -= loss
	s.CalcMP()
}

// DeflateHP caps HP at level, or with floor raises it to level.
func (s *Session) DeflateHP(level int, floor bool) {
	p := s.Player
	if floor && p.HP < level {
		p.HP = level
	} else if !floor && p.HP > level {
		p.HP = level
	}
	p.clampResources()
}

func (s *Session) SetHP(amount int, maxToo bool) {
	p := s.Player
	p.HP = amount
	if maxToo && p.HPMax != amount {
		p.HPBase = amount
		s.CalcHP()
	}
	p.clampResources()
}

func (s *Session) SetMP(amount int, maxToo bool) {
	p := s.Player
	p.MP = amount
	if maxToo && p.MPMax != amount {
		p.MPBase = amount
		s.CalcMP()
	}
	p.clampResources()
}

func (s *Session) CalcHP() { s.Player.CalcHP() }

func (s *Session) CalcMP() { s.Player.CalcMP() }

// CalcHP re-derives the HP ceiling and pulls HP under it.
func (p *PlayerState) CalcHP() {
	p.HPMax = RealHP(p, true, false)
	p.clampResources()
}

func (p *PlayerState) CalcMP() {
	p.MPMax = RealMP(p)
	p.clampResources()
}

// RealHP is the HP ceiling. trans applies berserk and form multipliers;
// rotted adds back what rot has taken.
func RealHP(p *PlayerState, trans, rotted bool) int {
	hp := p.HPBase - p.HPRot
	hp += p.XL * p.Skills[SkillFighting] / 5
	if trans {
		if p.Durations.Active(DurBerserk) {
			hp = hp * 15 / 10
		}
		hp = hp * p.Form.Traits().HPMult / 10
	}
	if rotted {
		hp += p.HPRot
	}
	hp = hp * (10 + p.MutationLevel(MutationRobust) - p.MutationLevel(MutationFrail)) / 10
	return maxInt(hp, 1)
}

func RealMP(p *PlayerState) int {
	mp := p.MPBase
	spellExtra := p.XL * p.Skills[SkillSpellcasting] / 4
	invocExtra := p.XL * p.Skills[SkillInvocations] / 6
	mp += maxInt(spellExtra, invocExtra)
	mp = stepdown(mp, 9, 18, 45, 100)
	mp -= p.MPDrain
	mp += MagicalPower(p)
	if mp > 50 {
		mp = 50 + (mp-50)/2
	}
	return maxInt(mp, 0)
}

func (p *PlayerState) clampResources() {
	if p.HP > p.HPMax {
		p.HP = p.HPMax
	}
	if p.HP < 0 {
		p.HP = 0
	}
	if p.MP > p.MPMax {
		p.MP = p.MPMax
	}
	if p.MP < 0 {
		p.MP = 0
	}
}
