package game

type EquipSlot int

const (
	EquipWeapon EquipSlot = iota
	EquipCloak
	EquipHelmet
	EquipGloves
	EquipBoots
	EquipShield
	EquipBodyArmour
	EquipLeftRing
	EquipRightRing
	EquipAmulet
	NumEquip

	// Query-only pseudo slots.
	EquipStaff
	EquipRings
	EquipRingsPlus
	EquipRingsPlus2
	EquipAllArmour
)

var slotNames = map[EquipSlot]string{
	EquipWeapon:     "weapon",
	EquipCloak:      "cloak",
	EquipHelmet:     "helmet",
	EquipGloves:     "gloves",
	EquipBoots:      "boots",
	EquipShield:     "shield",
	EquipBodyArmour: "body armour",
	EquipLeftRing:   "left ring",
	EquipRightRing:  "right ring",
	EquipAmulet:     "amulet",
	EquipStaff:      "staff",
	EquipRings:      "rings",
	EquipRingsPlus:  "rings plus",
	EquipRingsPlus2: "rings plus2",
	EquipAllArmour:  "all armour",
}

func (s EquipSlot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return "unknown slot"
}

// Equipment maps real slots to pack indices (-1 is empty). Melded slots keep
// their item but contribute nothing while a transformation is active.
type Equipment struct {
	Slots  [NumEquip]int  `json:"slots"`
	Melded [NumEquip]bool `json:"melded"`
}

func NewEquipment() Equipment {
	var eq Equipment
	for i := range eq.Slots {
		eq.Slots[i] = -1
	}
	return eq
}

func slotAccepts(slot EquipSlot, it Item) bool {
	switch slot {
	case EquipWeapon:
		return true
	case EquipLeftRing, EquipRightRing:
		return it.Class == ClassRing
	case EquipAmulet:
		return it.Class == ClassAmulet
	default:
		spec, ok := armourSpecFor(it)
		return ok && spec.slot == slot
	}
}

// equipped returns the active item in a real slot. Empty, melded and
// invalid slots yield nil; invalid ones are reported.
func (p *PlayerState) equipped(slot EquipSlot) *Item {
	if p == nil || slot < 0 || slot >= NumEquip {
		return nil
	}
	idx := p.Equip.Slots[slot]
	if idx < 0 || p.Equip.Melded[slot] {
		return nil
	}
	if idx >= len(p.Inventory) || !p.Inventory[idx].Defined() {
		reportInvariant(InvariantSlotIndex, "%s slot points at empty pack index %d", slot, idx)
		return nil
	}
	it := &p.Inventory[idx]
	if !slotAccepts(slot, *it) {
		reportInvariant(InvariantSlotCategory, "%s slot holds %s", slot, it.Class)
		return nil
	}
	return it
}

// Equipped is the read-only form of equipped for callers outside the core.
func (p *PlayerState) Equipped(slot EquipSlot) (Item, bool) {
	it := p.equipped(slot)
	if it == nil {
		return Item{}, false
	}
	return *it, true
}

func (p *PlayerState) slotOf(idx int) (EquipSlot, bool) {
	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		if p.Equip.Slots[slot] == idx {
			return slot, true
		}
	}
	return 0, false
}

func known(it *Item, assumeKnown bool) bool {
	return assumeKnown || it.TypeKnown
}

// Wearing counts equipped items of subType in slot. Pseudo slots cover the
// wielded staff, both rings, and the summed plus/plus2 of matching rings.
func (p *PlayerState) Wearing(slot EquipSlot, subType int, assumeKnown bool) int {
	switch slot {
	case EquipWeapon:
		if it := p.equipped(EquipWeapon); it != nil && it.Is(ClassWeapon, subType) {
			return 1
		}
		return 0
	case EquipStaff:
		if it := p.equipped(EquipWeapon); it != nil && it.Is(ClassStaff, subType) && known(it, assumeKnown) {
			return 1
		}
		return 0
	case EquipRings, EquipRingsPlus, EquipRingsPlus2:
		total := 0
		for _, ring := range []EquipSlot{EquipLeftRing, EquipRightRing} {
			it := p.equipped(ring)
			if it == nil || it.SubType != subType {
				continue
			}
			switch slot {
			case EquipRings:
				if known(it, assumeKnown) {
					total++
				}
			case EquipRingsPlus:
				total += it.Plus
			case EquipRingsPlus2:
				total += it.Plus2
			}
		}
		return total
	case EquipAllArmour:
		return 0
	default:
		if it := p.equipped(slot); it != nil && it.SubType == subType && known(it, assumeKnown) {
			return 1
		}
		return 0
	}
}

func (p *PlayerState) wearingRing(r RingType, assumeKnown bool) int {
	return p.Wearing(EquipRings, int(r), assumeKnown)
}

func (p *PlayerState) ringPlus(r RingType) int {
	return p.Wearing(EquipRingsPlus, int(r), true)
}

func (p *PlayerState) wieldingStaff(st StaffType, assumeKnown bool) int {
	return p.Wearing(EquipStaff, int(st), assumeKnown)
}

func (p *PlayerState) bodyArmourIs(a ArmourType) int {
	return p.Wearing(EquipBodyArmour, int(a), true)
}

// WearingEgo counts worn armour with ego in slot, or across every armour
// slot for EquipAllArmour.
func (p *PlayerState) WearingEgo(slot EquipSlot, ego ArmourEgo) int {
	if slot == EquipAllArmour {
		total := 0
		for s := EquipCloak; s <= EquipBodyArmour; s++ {
			total += p.WearingEgo(s, ego)
		}
		return total
	}
	if slot < EquipCloak || slot > EquipBodyArmour {
		return 0
	}
	if it := p.equipped(slot); it != nil && it.Ego() == ego {
		return 1
	}
	return 0
}

// WieldingBrand reports a wielded weapon with brand b. Non-weapons never count.
func (p *PlayerState) WieldingBrand(b WeaponBrand) bool {
	it := p.equipped(EquipWeapon)
	return it != nil && it.Class == ClassWeapon && it.Brand() == b
}

func (p *PlayerState) wieldingUnrand(u UnrandID) bool {
	it := p.equipped(EquipWeapon)
	return it != nil && it.Class == ClassWeapon && it.Unrand == u
}

// ScanArtefacts sums an artefact property over every active slot. Only
// weapons count in the weapon hand.
func (p *PlayerState) ScanArtefacts(prop ArtefactProp, assumeKnown bool) int {
	total := 0
	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		it := p.equipped(slot)
		if it == nil || !it.IsArtefact() {
			continue
		}
		if slot == EquipWeapon && it.Class != ClassWeapon {
			continue
		}
		if !assumeKnown && !it.PropsKnown {
			continue
		}
		total += it.Props[prop]
	}
	return total
}

// ItemsGiveAbility reports whether any equipped item other than pack index
// skip grants the evokable ability behind prop.
func (p *PlayerState) ItemsGiveAbility(skip int, prop ArtefactProp) bool {
	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		idx := p.Equip.Slots[slot]
		if idx < 0 || idx == skip {
			continue
		}
		it := p.equipped(slot)
		if it == nil || (slot == EquipWeapon && it.Class != ClassWeapon) {
			continue
		}
		if it.Class == ClassRing {
			switch {
			case prop == PropLevitate && it.SubType == int(RingLevitation),
				prop == PropTeleportation && it.SubType == int(RingTeleportation):
				return true
			}
		}
		if it.IsArtefact() && it.Props[prop] != 0 {
			return true
		}
	}
	return false
}

// WearingAmulet reports amulet a, including the intrinsic sources that
// behave like one.
func (p *PlayerState) WearingAmulet(a AmuletType, assumeKnown bool) bool {
	if p == nil {
		return false
	}
	switch a {
	case AmuletControlledFlight:
		if p.Durations.Active(DurControlledFlight) || p.Species.IsDraconian() ||
			p.Form == FormDragon || p.Form == FormBat {
			return true
		}
	case AmuletClarity:
		if p.Mutations.Level(MutationClarity) > 0 {
			return true
		}
	case AmuletResistCorrosion, AmuletConservation:
		if p.WearingEgo(EquipCloak, EgoPreservation) > 0 {
			return true
		}
	}
	it := p.equipped(EquipAmulet)
	return it != nil && it.SubType == int(a) && known(it, assumeKnown)
}

// wornArmour lists active armour pieces from cloak to body armour.
func (p *PlayerState) wornArmour(skipShield bool) []armourPiece {
	out := make([]armourPiece, 0, 6)
	for slot := EquipCloak; slot <= EquipBodyArmour; slot++ {
		if skipShield && slot == EquipShield {
			continue
		}
		if it := p.equipped(slot); it != nil {
			out = append(out, armourPiece{slot: slot, item: it})
		}
	}
	return out
}

type armourPiece struct {
	slot EquipSlot
	item *Item
}
