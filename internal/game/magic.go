package game

// MagicResistance is the player's resistance to hostile enchantments.
func MagicResistance(p *PlayerState) int {
	if p == nil {
		return 0
	}
	mr := p.XL * p.traits().MRPerLevel
	mr += p.ScanArtefacts(PropMagic, true)
	mr += 30 * p.WearingEgo(EquipAllArmour, EgoMagicResistance)
	mr += 40 * p.wearingRing(RingProtectionFromMagic, true)
	mr += 2 * p.Skills[SkillEnchantments]
	mr += 30 * p.MutationLevel(MutationMagicResistance)
	mr += p.Form.Traits().MR
	return maxInt(mr, 0)
}

// YouResistMagic rolls a saving throw against an enchantment of power.
func YouResistMagic(p *PlayerState, rng Random, power int) bool {
	ench := stepdown(power, 30, 40, 100, 120)
	roll := rng.Random2(100) + rng.Random2(101)
	return roll < 100+MagicResistance(p)-ench
}

// SpellLevels are the free memorisation slots.
func SpellLevels(p *PlayerState) int {
	if p == nil {
		return 0
	}
	levels := minInt((p.XL-1)+2*p.Skills[SkillSpellcasting], 99)
	fireballFree := p.knowsSpell(SpellDelayedFireball)
	for _, sp := range p.Spells {
		if sp == SpellFireball && fireballFree {
			continue
		}
		levels -= spellDifficulty[sp]
	}
	return maxInt(levels, 0)
}

// TeleportChance is the per-turn weight of random teleportation.
func TeleportChance(p *PlayerState) int {
	if p == nil {
		return 0
	}
	return 8*p.wearingRing(RingTeleportation, true) +
		3*p.MutationLevel(MutationTeleport) +
		p.ScanArtefacts(PropTeleportation, true)
}

// Slaying returns the to-hit and damage bonuses from rings, artefacts
// and the slaying duration.
func Slaying(p *PlayerState) (hit, dam int) {
	if p == nil {
		return 0, 0
	}
	hit = p.ringPlus(RingSlaying) + p.ScanArtefacts(PropAccuracy, true)
	dam = p.Wearing(EquipRingsPlus2, int(RingSlaying), true) + p.ScanArtefacts(PropDamage, true)
	if d := p.Durations.Get(DurSlaying); d > 0 {
		bonus := minInt(d/13, 6)
		hit += bonus
		dam += bonus
	}
	return hit, dam
}

// MagicalPower is the MP granted by equipment.
func MagicalPower(p *PlayerState) int {
	if p == nil {
		return 0
	}
	return 13*p.wieldingStaff(StaffPower, true) + 9*p.wearingRing(RingMagicalPower, true)
}

// MagAbil is the spell power enhancement from wizardry. scaled weights it
// by intelligence.
func MagAbil(p *PlayerState, scaled bool) int {
	if p == nil {
		return 0
	}
	ret := 3*p.wearingRing(RingWizardry, true) +
		4*p.wieldingStaff(StaffWizardry, true) +
		2*p.WearingEgo(EquipBodyArmour, EgoArchmagi)
	if scaled {
		ret = ret * p.Int() / 10
	}
	return ret
}
