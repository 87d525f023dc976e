package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandResult is what a console command did. Gameplay messages still go
// to the session's MessageSink; Message is the console's own summary.
type CommandResult struct {
	Handled       bool
	Message       string
	TurnsAdvanced int
	Death         *DeathCause
}

// maxWaitTurns bounds wait and the turns spent finishing a started meal.
const maxWaitTurns = 200

const commandHelp = "Commands: status, inventory, eat [item], wear <item>, wield <item>, remove <slot|item>, " +
	"give <item> [n], chunks <monster> [n], corpse <monster>, gain <xp>, poison <n>, confuse <n>, slow <n>, " +
	"haste <n>, berserk, transform <form> [turns], untransform, mutate [mutation], drain <stat> [n], " +
	"buff <duration> [turns], hunger <n>, wait [turns]."

// ExecuteCommand runs one wizard console command against the session.
func (s *Session) ExecuteCommand(raw string) CommandResult {
	command := strings.TrimSpace(strings.ToLower(raw))
	if command == "" {
		return CommandResult{Handled: false}
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return CommandResult{Handled: false}
	}

	switch fields[0] {
	case "commands", "help":
		return CommandResult{Handled: true, Message: commandHelp}
	case "status", "stats":
		return CommandResult{Handled: true, Message: s.describeStatus()}
	case "inventory", "inv":
		return CommandResult{Handled: true, Message: s.Player.describeInventory(s.Balance)}
	case "eat":
		return s.executeEatCommand(fields[1:])
	case "wear", "puton":
		return s.executeWearCommand(fields[1:])
	case "wield":
		return s.executeWieldCommand(fields[1:])
	case "remove", "takeoff":
		return s.executeRemoveCommand(fields[1:])
	case "give":
		return s.executeGiveCommand(fields[1:])
	case "chunks":
		return s.executeChunksCommand(fields[1:])
	case "corpse":
		return s.executeCorpseCommand(fields[1:])
	case "gain":
		return s.executeGainCommand(fields[1:])
	case "poison", "confuse", "slow", "haste", "hunger":
		return s.executeAmountCommand(fields[0], fields[1:])
	case "berserk":
		return s.executeBerserkCommand()
	case "transform":
		return s.executeTransformCommand(fields[1:])
	case "untransform":
		s.Untransform()
		return CommandResult{Handled: true, Message: "Form: " + s.Player.Form.String()}
	case "mutate":
		return s.executeMutateCommand(fields[1:])
	case "drain":
		return s.executeDrainCommand(fields[1:])
	case "buff":
		return s.executeBuffCommand(fields[1:])
	case "wait", "rest":
		return s.executeWaitCommand(fields[1:])
	default:
		return CommandResult{Handled: false}
	}
}

func (s *Session) describeStatus() string {
	p := s.Player
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p)
	fmt.Fprintf(&b, "HP %d/%d  MP %d/%d  Str %d  Int %d  Dex %d\n",
		p.HP, p.HPMax, p.MP, p.MPMax, p.Str(), p.Int(), p.Dex())
	fmt.Fprintf(&b, "XL %d  Exp %d (next %d)  Pool %d\n",
		p.XL, p.Experience, ExpNeeded(p.XL+1, p.Species), p.ExpAvailable)
	fmt.Fprintf(&b, "Hunger %d (%s)  Burden %d (%s)  Form %s\n",
		p.Hunger, p.HungerState, p.Burden, p.BurdenState, p.Form)

	active := p.ActiveDurations()
	parts := make([]string, 0, len(active))
	for _, id := range active {
		parts = append(parts, fmt.Sprintf("%s %d", id, p.Durations[id]))
	}
	if len(parts) == 0 {
		parts = append(parts, "none")
	}
	fmt.Fprintf(&b, "Durations: %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(&b, "Mutations: %s\n", p.Mutations.Describe())
	b.WriteString(p.Derived.String())
	return b.String()
}

func (s *Session) executeEatCommand(fields []string) CommandResult {
	slot := -1
	if len(fields) > 0 {
		idx, ok := s.Player.FindItem(strings.Join(fields, " "))
		if !ok {
			return CommandResult{Handled: true, Message: "You don't have that item."}
		}
		slot = idx
	}
	if !s.EatFood(slot) {
		return CommandResult{Handled: true, Message: "Nothing eaten."}
	}
	res := s.runDelay()
	res.Message = fmt.Sprintf("Ate over %d turn(s); hunger %d (%s).",
		res.TurnsAdvanced, s.Player.Hunger, s.Player.HungerState)
	return res
}

// runDelay advances turns until the active delay ends or the player dies.
func (s *Session) runDelay() CommandResult {
	res := CommandResult{Handled: true}
	for s.Player.Delay != nil && res.TurnsAdvanced < maxWaitTurns {
		report := s.AdvanceTurn()
		res.TurnsAdvanced++
		if report.Death != nil {
			res.Death = report.Death
			break
		}
	}
	return res
}

func (s *Session) executeWearCommand(fields []string) CommandResult {
	if len(fields) == 0 {
		return CommandResult{Handled: true, Message: "Usage: wear <item>"}
	}
	idx, ok := s.Player.FindItem(strings.Join(fields, " "))
	if !ok {
		return CommandResult{Handled: true, Message: "You don't have that item."}
	}
	if err := s.Wear(idx); err != nil {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Wear failed: %v", err)}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("AC %d  EV %d", s.Player.Derived.AC, s.Player.Derived.EV)}
}

func (s *Session) executeWieldCommand(fields []string) CommandResult {
	if len(fields) == 0 {
		return CommandResult{Handled: true, Message: "Usage: wield <item>"}
	}
	idx, ok := s.Player.FindItem(strings.Join(fields, " "))
	if !ok {
		return CommandResult{Handled: true, Message: "You don't have that item."}
	}
	if err := s.Wield(idx); err != nil {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Wield failed: %v", err)}
	}
	return CommandResult{Handled: true, Message: "Wielded."}
}

func (s *Session) executeRemoveCommand(fields []string) CommandResult {
	if len(fields) == 0 {
		return CommandResult{Handled: true, Message: "Usage: remove <slot|item>"}
	}
	query := strings.Join(fields, " ")
	slot, ok := lookupSlot(query)
	if !ok {
		idx, found := s.Player.FindItem(query)
		if !found {
			return CommandResult{Handled: true, Message: "You aren't wearing that."}
		}
		if slot, ok = s.Player.slotOf(idx); !ok {
			return CommandResult{Handled: true, Message: "You aren't wearing that."}
		}
	}
	if err := s.Remove(slot); err != nil {
		if errors.Is(err, ErrNotEquipped) {
			return CommandResult{Handled: true, Message: "You aren't wearing anything there."}
		}
		return CommandResult{Handled: true, Message: fmt.Sprintf("Remove failed: %v", err)}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("AC %d  EV %d", s.Player.Derived.AC, s.Player.Derived.EV)}
}

func lookupSlot(name string) (EquipSlot, bool) {
	names := make([]string, NumEquip)
	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		names[slot] = slotNames[slot]
	}
	idx, ok := fuzzyIndex(name, names)
	if !ok {
		return 0, false
	}
	return EquipSlot(idx), true
}

func (s *Session) executeGiveCommand(fields []string) CommandResult {
	n, rest := splitTrailingNumber(fields, 1)
	if len(rest) == 0 {
		return CommandResult{Handled: true, Message: "Usage: give <item> [n]"}
	}
	it, ok := CatalogItem(strings.Join(rest, " "))
	if !ok {
		return CommandResult{Handled: true, Message: "No such item."}
	}
	if it.Class == ClassFood {
		it.Quantity = n
	}
	idx, err := s.Player.AddItem(it)
	if err != nil {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Give failed: %v", err)}
	}
	s.updateBurden()
	return CommandResult{Handled: true, Message: fmt.Sprintf("%s) %s", invLetter(idx), it.DisplayName())}
}

func (s *Session) executeChunksCommand(fields []string) CommandResult {
	n, rest := splitTrailingNumber(fields, 1)
	if len(rest) == 0 {
		return CommandResult{Handled: true, Message: "Usage: chunks <monster> [n]"}
	}
	m, ok := LookupMonster(strings.Join(rest, " "))
	if !ok {
		return CommandResult{Handled: true, Message: "No such monster."}
	}
	it := NewChunk(m, n, s.Balance)
	idx, err := s.Player.AddItem(it)
	if err != nil {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Give failed: %v", err)}
	}
	s.updateBurden()
	return CommandResult{Handled: true, Message: fmt.Sprintf("%s) %d %s", invLetter(idx), n, it.DisplayName())}
}

// executeCorpseCommand drops a fresh corpse under the player.
func (s *Session) executeCorpseCommand(fields []string) CommandResult {
	if len(fields) == 0 {
		return CommandResult{Handled: true, Message: "Usage: corpse <monster>"}
	}
	m, ok := LookupMonster(strings.Join(fields, " "))
	if !ok {
		return CommandResult{Handled: true, Message: "No such monster."}
	}
	floor, ok := s.Terrain.(interface{ Drop(Position, Item) })
	if !ok {
		return CommandResult{Handled: true, Message: "This terrain does not take floor items."}
	}
	it := NewCorpse(m, s.Balance)
	floor.Drop(s.Player.Pos, it)
	return CommandResult{Handled: true, Message: "A " + it.DisplayName() + " lies here."}
}

func (s *Session) executeGainCommand(fields []string) CommandResult {
	if len(fields) == 0 {
		return CommandResult{Handled: true, Message: "Usage: gain <xp>"}
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil || amount < 1 {
		return CommandResult{Handled: true, Message: "Experience must be a positive number."}
	}
	gained := s.GainExp(amount)
	return CommandResult{Handled: true, Message: fmt.Sprintf("Gained %d experience; now level %d.", gained, s.Player.XL)}
}

func (s *Session) executeAmountCommand(verb string, fields []string) CommandResult {
	if len(fields) == 0 {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Usage: %s <n>", verb)}
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil || amount < 0 {
		return CommandResult{Handled: true, Message: "Amount must be a non-negative number."}
	}
	p := s.Player
	switch verb {
	case "poison":
		s.PoisonPlayer(amount, false)
	case "confuse":
		s.ConfusePlayer(amount, true)
	case "slow":
		s.SlowPlayer(amount)
	case "haste":
		s.HastePlayer(amount)
	case "hunger":
		s.SetHunger(amount, false)
	}
	s.Recompute()
	return CommandResult{Handled: true, Message: fmt.Sprintf("poison %d  confusion %d  slow %d  haste %d  hunger %d (%s)",
		p.Durations[DurPoisoning], p.Durations[DurConfusion], p.Durations[DurSlow], p.Durations[DurHaste],
		p.Hunger, p.HungerState)}
}

func (s *Session) executeBerserkCommand() CommandResult {
	if !s.GoBerserk(true) {
		return CommandResult{Handled: true, Message: "You fail to go berserk."}
	}
	s.Recompute()
	return CommandResult{Handled: true, Message: fmt.Sprintf("Berserk for %d turns; HP %d/%d.",
		s.Player.Durations[DurBerserk], s.Player.HP, s.Player.HPMax)}
}

func (s *Session) executeTransformCommand(fields []string) CommandResult {
	turns, rest := splitTrailingNumber(fields, 30)
	if len(rest) == 0 {
		return CommandResult{Handled: true, Message: "Usage: transform <form> [turns]"}
	}
	form, ok := LookupTransformation(strings.Join(rest, " "))
	if !ok {
		return CommandResult{Handled: true, Message: "No such form."}
	}
	if !s.Transform(form, turns) {
		return CommandResult{Handled: true, Message: "The transformation fails."}
	}
	s.Recompute()
	return CommandResult{Handled: true, Message: fmt.Sprintf("Form %s for %d turns.", s.Player.Form, s.Player.Durations[DurTransformation])}
}

func (s *Session) executeMutateCommand(fields []string) CommandResult {
	var changed bool
	if len(fields) == 0 {
		changed = s.RandomMutation("wizard")
	} else {
		m, ok := LookupMutation(strings.Join(fields, " "))
		if !ok {
			return CommandResult{Handled: true, Message: "No such mutation."}
		}
		changed = s.Mutate(m, "wizard")
	}
	if !changed {
		return CommandResult{Handled: true, Message: "Nothing happens."}
	}
	s.Recompute()
	return CommandResult{Handled: true, Message: "Mutations: " + s.Player.Mutations.Describe()}
}

func (s *Session) executeDrainCommand(fields []string) CommandResult {
	amount, rest := splitTrailingNumber(fields, 1)
	if len(rest) == 0 {
		return CommandResult{Handled: true, Message: "Usage: drain <str|int|dex> [n]"}
	}
	stat, ok := lookupStat(rest[0])
	if !ok {
		return CommandResult{Handled: true, Message: "No such stat."}
	}
	death := s.ModifyStat(stat, -amount, false, "wizard drain")
	s.Recompute()
	res := CommandResult{Handled: true, Death: death,
		Message: fmt.Sprintf("%s is now %d.", stat, s.Player.Stats[stat])}
	if death != nil {
		res.Message += " " + death.Method.String() + "."
	}
	return res
}

func lookupStat(name string) (Stat, bool) {
	switch name {
	case "str", "s":
		return StatStrength, true
	case "int", "i":
		return StatIntelligence, true
	case "dex", "d":
		return StatDexterity, true
	}
	idx, ok := fuzzyIndex(name, statNames[:])
	if !ok {
		return 0, false
	}
	return Stat(idx), true
}

func (s *Session) executeBuffCommand(fields []string) CommandResult {
	turns, rest := splitTrailingNumber(fields, 20)
	if len(rest) == 0 {
		return CommandResult{Handled: true, Message: "Usage: buff <duration> [turns]"}
	}
	id, ok := LookupDuration(strings.Join(rest, " "))
	if !ok {
		return CommandResult{Handled: true, Message: "No such duration."}
	}
	if !s.ApplyDuration(id, turns) {
		return CommandResult{Handled: true, Message: "Nothing happens."}
	}
	s.Recompute()
	return CommandResult{Handled: true, Message: fmt.Sprintf("%s %d", id, s.Player.Durations[id])}
}

func (s *Session) executeWaitCommand(fields []string) CommandResult {
	turns, _ := splitTrailingNumber(fields, 1)
	turns = clamp(turns, 1, maxWaitTurns)
	res := CommandResult{Handled: true}
	for res.TurnsAdvanced < turns {
		report := s.AdvanceTurn()
		res.TurnsAdvanced++
		if report.Death != nil {
			res.Death = report.Death
			res.Message = "You die: " + report.Death.Method.String() + "."
			return res
		}
	}
	res.Message = fmt.Sprintf("Waited %d turn(s). HP %d/%d  MP %d/%d  Hunger %s.",
		res.TurnsAdvanced, s.Player.HP, s.Player.HPMax, s.Player.MP, s.Player.MPMax, s.Player.HungerState)
	return res
}

// splitTrailingNumber peels a trailing count off fields. Non-positive or
// missing counts give fallback.
func splitTrailingNumber(fields []string, fallback int) (int, []string) {
	if len(fields) == 0 {
		return fallback, fields
	}
	last := fields[len(fields)-1]
	n, err := strconv.Atoi(last)
	if err != nil {
		return fallback, fields
	}
	if n < 1 {
		n = fallback
	}
	return n, fields[:len(fields)-1]
}
