package game

import "strings"

type Transformation int

const (
	FormNone Transformation = iota
	FormSpider
	FormBat
	FormStatue
	FormDragon
	FormLich
	FormIceBeast
	FormSerpentOfHell
	FormAir
	FormBladeHands
	numForms
)

// TransformTraits are the per-form coefficients the calculators read.
// AC is in hundredths: ACBase + 100*(skill+ACSkillOffset)/ACDiv.
type TransformTraits struct {
	Name         string
	Size         BodySize
	HasSize      bool
	Shapechanged bool
	// KeepsBody leaves species and mutation armour in place.
	KeepsBody     bool
	HPMult        int
	Str, Int, Dex int

	ACBase        int
	ACSkill       Skill
	ACSkillOffset int
	ACDiv         int

	Fire, Cold, Poison, Elec, Life int
	MR                             int
	EV                             int
	// SpeedMult scales action time, in tenths.
	SpeedMult int
	BaseMove  int
	Asphyx    bool

	Blocks []EquipSlot
	Onset  string
	End    string
}

var allArmourSlots = []EquipSlot{EquipCloak, EquipHelmet, EquipGloves, EquipBoots, EquipShield, EquipBodyArmour}

func withWeapon(slots []EquipSlot) []EquipSlot {
	return append([]EquipSlot{EquipWeapon}, slots...)
}

var formTable = [numForms]TransformTraits{
	FormNone: {
		Name: "none", KeepsBody: true, HPMult: 10, SpeedMult: 10, BaseMove: 10,
	},
	FormSpider: {
		Name: "spider", Size: SizeTiny, HasSize: true, Shapechanged: true, HPMult: 10, Dex: 5,
		ACBase: 200, ACSkill: SkillPoisonMagic, ACDiv: 6, SpeedMult: 10, BaseMove: 8,
		Blocks: withWeapon(allArmourSlots),
		Onset:  "You turn into a venomous arachnid creature.",
		End:    "Your transformation has ended.",
	},
	FormBat: {
		Name: "bat", Size: SizeTiny, HasSize: true, Shapechanged: true, HPMult: 10, Str: -5, Dex: 5,
		SpeedMult: 10, BaseMove: 5,
		Blocks: withWeapon(allArmourSlots),
		Onset:  "You turn into a bat.",
		End:    "You feel less batty.",
	},
	FormStatue: {
		Name: "statue", Shapechanged: true, HPMult: 15, Str: 2, Dex: -2,
		ACBase: 1700, ACSkill: SkillEarthMagic, ACDiv: 2,
		Poison: 1, Elec: 1, Life: 1, EV: -5, SpeedMult: 15, BaseMove: 10, Asphyx: true,
		Blocks: []EquipSlot{EquipCloak, EquipBodyArmour},
		Onset:  "You turn into a living statue of rough stone.",
		End:    "You revert to your normal fleshy form.",
	},
	FormDragon: {
		Name: "dragon", Size: SizeHuge, HasSize: true, Shapechanged: true, HPMult: 16, Str: 10,
		ACBase: 700, ACSkill: SkillFireMagic, ACDiv: 3,
		Fire: 2, Cold: -1, Poison: 1, SpeedMult: 10, BaseMove: 10,
		Blocks: withWeapon(allArmourSlots),
		Onset:  "You turn into a fearsome dragon!",
		End:    "Your transformation has ended.",
	},
	FormLich: {
		Name: "lich", KeepsBody: true, HPMult: 10, Str: 3,
		ACBase: 300, ACSkill: SkillNecromancy, ACDiv: 6,
		Cold: 1, Poison: 1, Life: 3, MR: 50, SpeedMult: 10, BaseMove: 10, Asphyx: true,
		Onset: "Your body is suffused with negative energy!",
		End:   "You feel yourself come back to life.",
	},
	FormIceBeast: {
		Name: "ice beast", Size: SizeLarge, HasSize: true, Shapechanged: true, HPMult: 12,
		ACBase: 500, ACSkill: SkillIceMagic, ACSkillOffset: 1, ACDiv: 4,
		Fire: -1, Cold: 3, Poison: 1, SpeedMult: 10, BaseMove: 10,
		Blocks: []EquipSlot{EquipWeapon, EquipGloves, EquipBoots, EquipShield, EquipBodyArmour},
		Onset:  "You turn into a creature of crystalline ice.",
		End:    "You warm up again.",
	},
	FormSerpentOfHell: {
		Name: "serpent of hell", Size: SizeHuge, HasSize: true, Shapechanged: true, HPMult: 10, Str: 13,
		ACBase: 1000, ACSkill: SkillFireMagic, ACDiv: 3,
		Fire: 2, Poison: 1, Life: 2, SpeedMult: 12, BaseMove: 10, Asphyx: true,
		Blocks: withWeapon(allArmourSlots),
		Onset:  "You transform into a huge demonic serpent!",
		End:    "Your transformation has ended.",
	},
	FormAir: {
		Name: "air", Size: SizeMedium, HasSize: true, Shapechanged: true, HPMult: 10, Dex: 8,
		Fire: -2, Cold: -2, Poison: 1, Elec: 2, EV: 20, SpeedMult: 10, BaseMove: 10, Asphyx: true,
		Blocks: append(withWeapon(allArmourSlots), EquipLeftRing, EquipRightRing, EquipAmulet),
		Onset:  "You feel diffuse...",
		End:    "Your body solidifies.",
	},
	FormBladeHands: {
		Name: "blade hands", KeepsBody: true, HPMult: 10, SpeedMult: 10, BaseMove: 10,
		Blocks: []EquipSlot{EquipWeapon, EquipGloves, EquipShield},
		Onset:  "Your hands turn into razor-sharp scythe blades.",
		End:    "Your hands revert to their normal proportions.",
	},
}

func (t Transformation) valid() bool {
	return t >= 0 && t < numForms
}

// Traits returns the table entry. Invalid forms read as no form.
func (t Transformation) Traits() TransformTraits {
	if !t.valid() {
		reportInvariant(InvariantTransformation, "form %d out of range", int(t))
		return formTable[FormNone]
	}
	return formTable[t]
}

func (t Transformation) String() string {
	return t.Traits().Name
}

func (tt TransformTraits) size() (BodySize, bool) {
	return tt.Size, tt.HasSize
}

func (tt TransformTraits) blocks(slot EquipSlot) bool {
	for _, b := range tt.Blocks {
		if b == slot {
			return true
		}
	}
	return false
}

func isShapechanged(t Transformation) bool {
	return t.Traits().Shapechanged
}

func LookupTransformation(name string) (Transformation, bool) {
	names := make([]string, numForms)
	for i := range formTable {
		names[i] = formTable[i].Name
	}
	idx, ok := fuzzyIndex(strings.ToLower(name), names)
	if !ok {
		return FormNone, false
	}
	return Transformation(idx), true
}

// Transform enters form for turns. Re-entering the current form extends it.
func (s *Session) Transform(form Transformation, turns int) bool {
	p := s.Player
	if !form.valid() || turns <= 0 {
		return false
	}
	if form == FormNone {
		s.Untransform()
		return true
	}
	if u := p.IsUndead(); u == FullyUndead || u == HungryDead {
		s.emit("Your unliving flesh cannot be transformed in this way.", ChannelPlain)
		return false
	}
	if p.Form == form {
		s.emit("You extend your transformation's duration.", ChannelDuration)
		p.Durations.set(DurTransformation, minInt(p.Durations.Get(DurTransformation)+turns, 100))
		return true
	}
	if p.Form != FormNone {
		s.Untransform()
	}

	traits := form.Traits()
	for _, slot := range traits.Blocks {
		if it := p.equipped(slot); it != nil {
			s.emit("Your "+it.DisplayName()+" melds into your body.", ChannelPlain)
			p.Equip.Melded[slot] = true
		}
	}
	p.Form = form
	p.Durations.set(DurTransformation, turns)
	s.emit(traits.Onset, ChannelDuration)

	p.refreshStats()
	p.HP = p.HP * traits.HPMult / 10
	s.CalcHP()
	s.CalcMP()
	s.updateBurden()
	s.log().WithField("form", form.String()).Debug("transformed")
	return true
}

// Untransform restores the normal body and unmelds equipment.
func (s *Session) Untransform() {
	p := s.Player
	if p.Form == FormNone {
		return
	}
	traits := p.Form.Traits()
	p.Form = FormNone
	p.Durations.clear(DurTransformation)
	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		p.Equip.Melded[slot] = false
	}
	s.emit(traits.End, ChannelDuration)
	p.refreshStats()
	s.CalcHP()
	s.CalcMP()
	s.updateBurden()
}
