package game

import (
	"errors"
	"testing"
)

func TestWearErrors(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)

	if err := s.Wear(5); !errors.Is(err, ErrNoSuchItem) {
		t.Fatalf("expected ErrNoSuchItem, got %v", err)
	}

	dagger := giveItem(t, s, "dagger")
	if err := s.Wear(dagger); !errors.Is(err, ErrWrongSlot) {
		t.Fatalf("expected ErrWrongSlot for a weapon, got %v", err)
	}

	mail := giveItem(t, s, "chain mail")
	mustWear(t, s, mail)
	if err := s.Wear(mail); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied for a worn item, got %v", err)
	}
	robe := giveItem(t, s, "robe")
	if err := s.Wear(robe); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied for a full slot, got %v", err)
	}
}

func TestThirdRingDoesNotFit(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	mustWear(t, s, giveItem(t, s, "ring of evasion"))
	mustWear(t, s, giveItem(t, s, "ring of strength"))

	third := giveItem(t, s, "ring of dexterity")
	if err := s.Wear(third); !errors.Is(err, ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
}

func TestNagaCannotWearBoots(t *testing.T) {
	s, _ := newTestSession(t, SpeciesNaga)
	boots := giveItem(t, s, "boots")

	if err := s.Wear(boots); !errors.Is(err, ErrCannotWear) {
		t.Fatalf("expected ErrCannotWear, got %v", err)
	}
	if _, ok := s.Player.Equipped(EquipBoots); ok {
		t.Fatalf("expected boots slot to stay empty")
	}
}

func TestProtectionRingsAddAC(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	p := s.Player
	before := playerAC100(p)

	first := giveItem(t, s, "ring of protection")
	p.Inventory[first].Plus = 3
	second := giveItem(t, s, "ring of protection")
	p.Inventory[second].Plus = 2
	mustWear(t, s, first)
	mustWear(t, s, second)

	if got := playerAC100(p) - before; got != 500 {
		t.Fatalf("expected +500 AC100 from rings, got %d", got)
	}
}

func TestRemove(t *testing.T) {
	s, log := newTestSession(t, SpeciesHuman)
	if err := s.Remove(EquipCloak); !errors.Is(err, ErrNotEquipped) {
		t.Fatalf("expected ErrNotEquipped, got %v", err)
	}

	cloak := giveItem(t, s, "cloak")
	mustWear(t, s, cloak)
	if err := s.Remove(EquipCloak); err != nil {
		t.Fatalf("remove cloak: %v", err)
	}
	if !log.Contains("You take off cloak.") {
		t.Fatalf("expected take off message, got %+v", log.Lines)
	}
	if _, ok := s.Player.Equipped(EquipCloak); ok {
		t.Fatalf("expected cloak slot to be empty")
	}
}

func TestSpiderFormMeldsArmour(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	p := s.Player
	mustWear(t, s, giveItem(t, s, "plate mail"))
	withArmour := PlayerAC(p)

	if !s.Transform(FormSpider, 20) {
		t.Fatalf("expected transformation to succeed")
	}
	if !p.Equip.Melded[EquipBodyArmour] {
		t.Fatalf("expected body armour to meld")
	}
	if _, ok := p.Equipped(EquipBodyArmour); ok {
		t.Fatalf("expected melded armour to be inactive")
	}
	if err := s.Remove(EquipBodyArmour); !errors.Is(err, ErrCannotWear) {
		t.Fatalf("expected melded armour to stay on, got %v", err)
	}
	if err := s.Wear(giveItem(t, s, "cloak")); !errors.Is(err, ErrCannotWear) {
		t.Fatalf("expected spider form to block cloaks, got %v", err)
	}

	s.Untransform()
	if p.Equip.Melded[EquipBodyArmour] {
		t.Fatalf("expected armour to unmeld")
	}
	if got := PlayerAC(p); got != withArmour {
		t.Fatalf("expected AC %d back, got %d", withArmour, got)
	}
}

func TestWieldWhileBerserk(t *testing.T) {
	s, _ := newTestSession(t, SpeciesHuman)
	dagger := giveItem(t, s, "dagger")
	s.Player.Durations.set(DurBerserk, 5)

	if err := s.Wield(dagger); !errors.Is(err, ErrCannotWear) {
		t.Fatalf("expected berserk to block wielding, got %v", err)
	}
}
