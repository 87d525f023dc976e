package game

import (
	"errors"
	"fmt"
)

// CheckInvariants reports every broken state invariant at once. Nil means
// the player is consistent.
func (p *PlayerState) CheckInvariants() error {
	if p == nil {
		return nil
	}
	var errs []error
	fail := func(kind InvariantKind, format string, args ...any) {
		errs = append(errs, &InvariantError{Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	if p.HP < 0 || p.HP > p.HPMax {
		fail(InvariantResourceBounds, "hp %d outside 0..%d", p.HP, p.HPMax)
	}
	if p.MP < 0 || p.MP > p.MPMax {
		fail(InvariantResourceBounds, "mp %d outside 0..%d", p.MP, p.MPMax)
	}
	if ceiling := p.balance().Hunger.Max; p.Hunger < 0 || p.Hunger > ceiling {
		fail(InvariantHungerRange, "hunger %d outside 0..%d", p.Hunger, ceiling)
	}
	if !p.Form.valid() {
		fail(InvariantTransformation, "form %d", int(p.Form))
	} else if (p.Form == FormNone) != (p.Durations[DurTransformation] == 0) {
		fail(InvariantTransformation, "form %s with %d turns left", p.Form, p.Durations[DurTransformation])
	}

	for id, turns := range p.Durations {
		if turns < 0 {
			fail(InvariantDuration, "%s at %d", DurationID(id), turns)
		}
	}

	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		idx := p.Equip.Slots[slot]
		if idx < 0 {
			continue
		}
		if idx >= len(p.Inventory) || !p.Inventory[idx].Defined() {
			fail(InvariantSlotIndex, "%s slot points at empty pack index %d", slot, idx)
			continue
		}
		if it := p.Inventory[idx]; !slotAccepts(slot, it) {
			fail(InvariantSlotCategory, "%s slot holds %s", slot, it.Class)
		}
	}

	for _, m := range p.Mutations.Active() {
		if !m.valid() {
			fail(InvariantMutationID, "mutation %d", int(m))
			continue
		}
		if lvl := p.Mutations.Level(m); lvl > m.MaxLevel() {
			fail(InvariantMutationID, "%s at level %d", m, lvl)
		}
	}

	for i, it := range p.Inventory {
		if it.Defined() && (it.Class == ClassCorpse || it.IsChunk()) && !it.Monster.valid() {
			fail(InvariantCorpseMonster, "pack %s holds corpse of monster %d", invLetter(i), int(it.Monster))
		}
	}

	return errors.Join(errs...)
}
