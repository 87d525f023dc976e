package game

import "fmt"

// DerivedStats is the per-turn snapshot of every calculator. Consumers read
// it after AdvanceTurn instead of recomputing.
type DerivedStats struct {
	AC          int `json:"ac"`
	EV          int `json:"ev"`
	MR          int `json:"mr"`
	Stealth     int `json:"stealth"`
	HPRegen     int `json:"hp_regen"`
	MPRegen     int `json:"mp_regen"`
	HungerRate  int `json:"hunger_rate"`
	MoveSpeed   int `json:"move_speed"`
	ActionSpeed int `json:"action_speed"`
	SpellLevels int `json:"spell_levels"`
	Capacity    int `json:"capacity"`
	TeleChance  int `json:"tele_chance"`
	SlayHit     int `json:"slay_hit"`
	SlayDam     int `json:"slay_dam"`

	ResFire   int  `json:"res_fire"`
	ResCold   int  `json:"res_cold"`
	ResElec   int  `json:"res_elec"`
	ResPoison int  `json:"res_poison"`
	ResAcid   int  `json:"res_acid"`
	ResSteam  int  `json:"res_steam"`
	ProtLife  int  `json:"prot_life"`
	Clarity   int  `json:"clarity"`
	Torment   bool `json:"res_torment"`
	Rotting   bool `json:"res_rotting"`
	Asphyx    bool `json:"res_asphyx"`
}

// ComputeDerived runs every calculator against p. It has no side effects.
func ComputeDerived(p *PlayerState) DerivedStats {
	if p == nil {
		return DerivedStats{}
	}
	hit, dam := Slaying(p)
	return DerivedStats{
		AC:          PlayerAC(p),
		EV:          PlayerEvasion(p),
		MR:          MagicResistance(p),
		Stealth:     CheckStealth(p),
		HPRegen:     PlayerRegen(p),
		MPRegen:     MagicRegen(p),
		HungerRate:  HungerRate(p),
		MoveSpeed:   MovementSpeed(p),
		ActionSpeed: ActionSpeed(p),
		SpellLevels: SpellLevels(p),
		Capacity:    CarryingCapacity(p, Overloaded),
		TeleChance:  TeleportChance(p),
		SlayHit:     hit,
		SlayDam:     dam,

		ResFire:   ResFire(p, FullResist),
		ResCold:   ResCold(p, FullResist),
		ResElec:   ResElec(p, FullResist),
		ResPoison: ResPoison(p, FullResist),
		ResAcid:   ResAcid(p, FullResist),
		ResSteam:  ResSteam(p, FullResist),
		ProtLife:  ProtLife(p, FullResist),
		Clarity:   MentalClarity(p, FullResist),
		Torment:   ResTorment(p),
		Rotting:   ResRotting(p),
		Asphyx:    ResAsphyx(p),
	}
}

// Recompute refreshes stats, pool ceilings and the derived snapshot.
func (s *Session) Recompute() DerivedStats {
	p := s.Player
	p.refreshStats()
	p.CalcHP()
	p.CalcMP()
	p.Derived = ComputeDerived(p)
	return p.Derived
}

func (d DerivedStats) String() string {
	return fmt.Sprintf("AC %d  EV %d  MR %d  Stealth %d\n"+
		"rF %+d  rC %+d  rElec %d  rPois %d  rN %d  rAcid %d\n"+
		"Regen %d/%d  Hunger %d  Move %d  Act %d  Spell levels %d",
		d.AC, d.EV, d.MR, d.Stealth,
		d.ResFire, d.ResCold, d.ResElec, d.ResPoison, d.ProtLife, d.ResAcid,
		d.HPRegen, d.MPRegen, d.HungerRate, d.MoveSpeed, d.ActionSpeed, d.SpellLevels)
}
