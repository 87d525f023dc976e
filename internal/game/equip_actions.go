package game

import "fmt"

// youCanWear checks body and form restrictions for putting it in slot.
func youCanWear(p *PlayerState, slot EquipSlot, it Item) error {
	if p.Form.Traits().blocks(slot) {
		return fmt.Errorf("%s in %s form: %w", slot, p.Form, ErrCannotWear)
	}
	sub := ArmourType(it.SubType)
	switch slot {
	case EquipBodyArmour:
		if p.TorsoSize() > SizeMedium && sub != ArmourRobe && sub != ArmourAnimalSkin {
			return fmt.Errorf("%s is too small: %w", it.DisplayName(), ErrCannotWear)
		}
	case EquipHelmet:
		horned := p.Species == SpeciesMinotaur || p.Species.IsDraconian() || p.Species == SpeciesKenku
		if horned && sub == ArmourHelmet {
			return fmt.Errorf("helmets do not fit your head: %w", ErrCannotWear)
		}
	case EquipBoots:
		if p.Species == SpeciesNaga || p.Species == SpeciesCentaur || p.Species == SpeciesKenku {
			return fmt.Errorf("boots do not fit your feet: %w", ErrCannotWear)
		}
	case EquipGloves:
		if p.MutationLevel(MutationClaws) >= 3 {
			return fmt.Errorf("gloves do not fit over your claws: %w", ErrCannotWear)
		}
	}
	return nil
}

// wearSlot picks the slot for it. Rings take the left hand first.
func (p *PlayerState) wearSlot(it Item) (EquipSlot, error) {
	switch it.Class {
	case ClassRing:
		if p.Equip.Slots[EquipLeftRing] < 0 {
			return EquipLeftRing, nil
		}
		if p.Equip.Slots[EquipRightRing] < 0 {
			return EquipRightRing, nil
		}
		return EquipRightRing, fmt.Errorf("both ring fingers: %w", ErrSlotOccupied)
	case ClassAmulet:
		return EquipAmulet, nil
	case ClassArmour:
		spec, ok := armourSpecFor(it)
		if !ok {
			return 0, fmt.Errorf("%s: %w", it.DisplayName(), ErrWrongSlot)
		}
		return spec.slot, nil
	default:
		return 0, fmt.Errorf("%s cannot be worn: %w", it.DisplayName(), ErrWrongSlot)
	}
}

// Wear puts on armour or jewellery from the pack.
func (s *Session) Wear(idx int) error {
	p := s.Player
	it, ok := p.ItemAt(idx)
	if !ok {
		return fmt.Errorf("wear %s: %w", invLetter(idx), ErrNoSuchItem)
	}
	if slot, worn := p.slotOf(idx); worn {
		return fmt.Errorf("already in %s: %w", slot, ErrSlotOccupied)
	}
	slot, err := p.wearSlot(*it)
	if err != nil {
		return fmt.Errorf("wear: %w", err)
	}
	if p.Equip.Slots[slot] >= 0 {
		return fmt.Errorf("wear: %s: %w", slot, ErrSlotOccupied)
	}
	if err := youCanWear(p, slot, *it); err != nil {
		return fmt.Errorf("wear: %w", err)
	}

	s.interruptDelay("equipment change")
	p.Equip.Slots[slot] = idx
	p.Equip.Melded[slot] = false
	it.TypeKnown = true
	s.emitf(ChannelPlain, "You are now wearing %s.", it.DisplayName())
	s.equipmentChanged()
	return nil
}

// Wield takes a pack item into the weapon hand, replacing what was there.
func (s *Session) Wield(idx int) error {
	p := s.Player
	it, ok := p.ItemAt(idx)
	if !ok {
		return fmt.Errorf("wield %s: %w", invLetter(idx), ErrNoSuchItem)
	}
	if slot, worn := p.slotOf(idx); worn && slot != EquipWeapon {
		return fmt.Errorf("wield: worn as %s: %w", slot, ErrSlotOccupied)
	}
	if p.Form.Traits().blocks(EquipWeapon) {
		return fmt.Errorf("wield in %s form: %w", p.Form, ErrCannotWear)
	}
	if p.Durations.Active(DurBerserk) {
		s.emit("You are too berserk!", ChannelPlain)
		return fmt.Errorf("wield while berserk: %w", ErrCannotWear)
	}

	s.interruptDelay("equipment change")
	p.Equip.Slots[EquipWeapon] = idx
	p.Equip.Melded[EquipWeapon] = false
	s.emitf(ChannelPlain, "You are wielding %s.", it.DisplayName())
	s.equipmentChanged()
	return nil
}

// Remove empties slot. Melded items stay put until the form ends.
func (s *Session) Remove(slot EquipSlot) error {
	p := s.Player
	if slot < 0 || slot >= NumEquip {
		return fmt.Errorf("remove: %w", ErrWrongSlot)
	}
	idx := p.Equip.Slots[slot]
	if idx < 0 {
		return fmt.Errorf("remove %s: %w", slot, ErrNotEquipped)
	}
	if p.Equip.Melded[slot] {
		return fmt.Errorf("remove %s while melded: %w", slot, ErrCannotWear)
	}

	s.interruptDelay("equipment change")
	p.Equip.Slots[slot] = -1
	if it, ok := p.ItemAt(idx); ok {
		if slot == EquipWeapon {
			s.emitf(ChannelPlain, "You are no longer wielding %s.", it.DisplayName())
		} else {
			s.emitf(ChannelPlain, "You take off %s.", it.DisplayName())
		}
	}
	s.equipmentChanged()
	return nil
}

func (s *Session) equipmentChanged() {
	p := s.Player
	p.refreshStats()
	s.CalcHP()
	s.CalcMP()
	s.updateBurden()
	s.Recompute()
}
