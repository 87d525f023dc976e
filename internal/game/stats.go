package game

var statKillMethods = [numStats]KillMethod{KilledByWeakness, KilledByStupidity, KilledByClumsiness}

var statGainWords = [numStats][2]string{
	{"stronger", "weaker"},
	{"clever", "stupid"},
	{"agile", "clumsy"},
}

// StatModifier sums the temporary and equipment adjustments to a stat.
func StatModifier(p *PlayerState, stat Stat) int {
	if p == nil {
		return 0
	}
	switch stat {
	case StatStrength:
		return strengthModifier(p)
	case StatIntelligence:
		return intModifier(p)
	case StatDexterity:
		return dexModifier(p)
	}
	reportInvariant(InvariantStat, "stat modifier for stat %d", int(stat))
	return 0
}

func strengthModifier(p *PlayerState) int {
	result := 0
	if p.Durations.Active(DurMight) {
		result += 5
	}
	result += 3 * p.WearingEgo(EquipAllArmour, EgoStrength)
	result += p.Wearing(EquipRingsPlus, int(RingStrength), true)
	result += p.ScanArtefacts(PropStrength, true)
	result += p.MutationLevel(MutationStrong) - p.MutationLevel(MutationWeak)
	result += p.MutationLevel(MutationStrongStiff) - p.MutationLevel(MutationFlexibleWeak)
	result += p.Form.Traits().Str
	return result
}

func intModifier(p *PlayerState) int {
	result := 0
	result += 3 * p.WearingEgo(EquipAllArmour, EgoIntelligence)
	result += p.Wearing(EquipRingsPlus, int(RingIntelligence), true)
	result += p.ScanArtefacts(PropIntelligence, true)
	result += p.MutationLevel(MutationClever) - p.MutationLevel(MutationDopey)
	result += p.Form.Traits().Int
	return result
}

func dexModifier(p *PlayerState) int {
	result := 0
	result += 3 * p.WearingEgo(EquipAllArmour, EgoDexterity)
	result += p.Wearing(EquipRingsPlus, int(RingDexterity), true)
	result += p.ScanArtefacts(PropDexterity, true)
	result += p.MutationLevel(MutationAgile) - p.MutationLevel(MutationClumsy)
	result += p.MutationLevel(MutationFlexibleWeak) - p.MutationLevel(MutationStrongStiff)
	result -= p.balance().scaleDexPenalty(p)
	result += p.Form.Traits().Dex
	return result
}

// refreshStats rebuilds current stats from the permanent values.
func (p *PlayerState) refreshStats() {
	for st := Stat(0); st < numStats; st++ {
		p.Stats[st] = p.MaxStats[st] + StatModifier(p, st)
	}
}

// ModifyStat permanently changes a stat. A drop below 1 is returned as a
// death cause; the stat is not clamped.
func (s *Session) ModifyStat(stat Stat, amount int, suppressMsg bool, cause string) *DeathCause {
	if amount == 0 {
		return nil
	}
	p := s.Player
	if stat == StatRandom {
		stat = Stat(s.Rng.Random2(int(numStats)))
	}
	if stat < 0 || stat >= numStats {
		reportInvariant(InvariantStat, "modify of stat %d", int(stat))
		return nil
	}
	if amount < 0 && p.Delay != nil {
		s.interruptDelay("stat change")
	}
	if !suppressMsg {
		if amount > 0 {
			s.emit("You feel "+statGainWords[stat][0]+".", ChannelIntrinsicGain)
		} else {
			s.emit("You feel "+statGainWords[stat][1]+".", ChannelWarn)
		}
	}
	p.MaxStats[stat] += amount
	p.refreshStats()

	var death *DeathCause
	if amount < 0 && p.Stats[stat] < 1 {
		death = &DeathCause{Method: statKillMethods[stat], Source: cause}
	}
	if stat == StatStrength {
		s.updateBurden()
	}
	return death
}

func (s *Session) attributeIncrease() {
	s.emit("Your experience leads to an increase in your attributes!", ChannelIntrinsicGain)
	stat := StatStrength
	if s.Stats != nil {
		stat = s.Stats.ChooseStat()
	}
	if stat < 0 || stat >= numStats {
		stat = Stat(s.Rng.Random2(int(numStats)))
	}
	s.ModifyStat(stat, 1, false, "level gain")
}
