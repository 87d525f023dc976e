package game

import (
	"fmt"
	"strings"
)

// InventorySize is the number of pack letters. Emptied stacks leave a hole
// so equipment indices stay valid.
const InventorySize = 52

func invLetter(idx int) string {
	if idx < 26 {
		return string(rune('a' + idx))
	}
	return string(rune('A' + idx - 26))
}

// AddItem places it in the first free pack slot, merging food of the same kind.
func (p *PlayerState) AddItem(it Item) (int, error) {
	if p == nil {
		return -1, ErrNoSuchItem
	}
	if !it.Defined() {
		return -1, fmt.Errorf("add item: %w", ErrNoSuchItem)
	}
	for i := range p.Inventory {
		cur := &p.Inventory[i]
		if cur.Defined() && stackable(*cur, it) {
			cur.Quantity += it.Quantity
			if it.Freshness < cur.Freshness {
				cur.Freshness = it.Freshness
			}
			return i, nil
		}
	}
	for i := range p.Inventory {
		if !p.Inventory[i].Defined() {
			p.Inventory[i] = it
			return i, nil
		}
	}
	if len(p.Inventory) >= InventorySize {
		return -1, fmt.Errorf("add item: pack is full")
	}
	p.Inventory = append(p.Inventory, it)
	return len(p.Inventory) - 1, nil
}

func stackable(a, b Item) bool {
	if a.Class != ClassFood || b.Class != ClassFood || a.SubType != b.SubType {
		return false
	}
	return !a.IsChunk() || a.Monster == b.Monster
}

// ItemAt returns the pack item at idx, or false when the slot is empty.
func (p *PlayerState) ItemAt(idx int) (*Item, bool) {
	if p == nil || idx < 0 || idx >= len(p.Inventory) {
		return nil, false
	}
	if !p.Inventory[idx].Defined() {
		return nil, false
	}
	return &p.Inventory[idx], true
}

// FindItem resolves a pack item by letter or by name.
func (p *PlayerState) FindItem(query string) (int, bool) {
	if p == nil {
		return -1, false
	}
	query = strings.TrimSpace(query)
	if len(query) == 1 {
		for i := range p.Inventory {
			if invLetter(i) == query && p.Inventory[i].Defined() {
				return i, true
			}
		}
	}
	names := make([]string, len(p.Inventory))
	for i, it := range p.Inventory {
		if it.Defined() {
			names[i] = strings.ToLower(it.DisplayName())
		}
	}
	return fuzzyIndex(query, names)
}

// decInvQuantity removes n units, unequipping the stack when it runs out.
func (p *PlayerState) decInvQuantity(idx, n int) {
	it, ok := p.ItemAt(idx)
	if !ok {
		return
	}
	it.Quantity -= n
	if it.Quantity > 0 {
		return
	}
	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		if p.Equip.Slots[slot] == idx {
			p.Equip.Slots[slot] = -1
			p.Equip.Melded[slot] = false
		}
	}
	p.Inventory[idx] = Item{}
}

func (p *PlayerState) InventoryNames() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.Inventory))
	for _, it := range p.Inventory {
		if it.Defined() {
			out = append(out, it.DisplayName())
		}
	}
	return out
}

func (p *PlayerState) describeInventory(b *Balance) string {
	lines := make([]string, 0, len(p.Inventory))
	for i, it := range p.Inventory {
		if !it.Defined() {
			continue
		}
		line := fmt.Sprintf("%s) %s", invLetter(i), it.DisplayName())
		if it.Quantity > 1 {
			line = fmt.Sprintf("%s) %d %s", invLetter(i), it.Quantity, it.DisplayName())
		}
		if slot, ok := p.slotOf(i); ok {
			line += " (" + slot.String() + ")"
		}
		if it.IsRotten(b) {
			line += " (rotten)"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "You aren't carrying anything."
	}
	return strings.Join(lines, "\n")
}
