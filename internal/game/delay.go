package game

import "github.com/sirupsen/logrus"

// Delay is a multi-turn action. AdvanceTurn steps it once per turn until
// it reports completion, then calls Finish. An invalid delay is interrupted.
type Delay interface {
	Name() string
	Valid(s *Session) bool
	// Step spends one turn and reports whether the action is complete.
	Step(s *Session) bool
	Finish(s *Session)
	Interrupted(s *Session)
}

// FoodRef points at food in the pack or on the floor.
type FoodRef struct {
	Pack  int
	Floor *Item
}

func PackFood(idx int) FoodRef { return FoodRef{Pack: idx} }

func FloorFood(it *Item) FoodRef { return FoodRef{Pack: -1, Floor: it} }

func (r FoodRef) resolve(p *PlayerState) *Item {
	if r.Floor != nil {
		if !r.Floor.Defined() {
			return nil
		}
		return r.Floor
	}
	it, ok := p.ItemAt(r.Pack)
	if !ok {
		return nil
	}
	return it
}

// consume removes one unit from wherever the food lives.
func (r FoodRef) consume(p *PlayerState) {
	if r.Floor != nil {
		r.Floor.Quantity--
		if r.Floor.Quantity <= 0 {
			*r.Floor = Item{}
		}
		return
	}
	p.decInvQuantity(r.Pack, 1)
}

// EatDelay finishes eating after the food's eating time.
type EatDelay struct {
	Food    FoodRef
	Left    int
	subType int
	monster MonsterID
}

func newEatDelay(ref FoodRef, it *Item) *EatDelay {
	return &EatDelay{Food: ref, Left: foodTurns(*it) - 1, subType: it.SubType, monster: it.Monster}
}

func (d *EatDelay) Name() string { return "eat" }

func (d *EatDelay) Valid(s *Session) bool {
	it := d.Food.resolve(s.Player)
	return it != nil && it.Class == ClassFood && it.SubType == d.subType && it.Monster == d.monster
}

func (d *EatDelay) Step(*Session) bool {
	if d.Left <= 0 {
		return true
	}
	d.Left--
	return false
}

func (d *EatDelay) Finish(s *Session) {
	s.FinishEatingItem(d.Food)
}

func (d *EatDelay) Interrupted(s *Session) {
	s.emit("You stop eating.", ChannelPlain)
}

// FeedVampireDelay drains a corpse a little every turn.
type FeedVampireDelay struct {
	Corpse *Item
	Pos    Position
	Left   int
}

func (d *FeedVampireDelay) Name() string { return "feed" }

func (d *FeedVampireDelay) Valid(s *Session) bool {
	p := s.Player
	return d.Corpse != nil && d.Corpse.Is(ClassCorpse, int(CorpseBody)) &&
		p.Pos == d.Pos && p.HungerState < HungerEngorged
}

func (d *FeedVampireDelay) Step(s *Session) bool {
	s.LessenHunger(s.Player.balance().Food.VampireDrink, true)
	if d.Left <= 0 {
		return true
	}
	d.Left--
	return false
}

func (d *FeedVampireDelay) Finish(s *Session) {
	s.emit("You finish drinking.", ChannelFood)
	if d.Corpse != nil && d.Corpse.Defined() {
		d.Corpse.SubType = int(CorpseSkeleton)
	}
	s.foodChange(false)
}

func (d *FeedVampireDelay) Interrupted(s *Session) {
	if s.Player.HungerState == HungerEngorged {
		s.emit("You can't drink any more.", ChannelFood)
		return
	}
	s.emit("You stop draining the corpse.", ChannelPlain)
}

// startDelay replaces any running delay.
func (s *Session) startDelay(d Delay) {
	if s.Player.Delay != nil {
		s.interruptDelay("new action")
	}
	s.Player.Delay = d
}

// interruptDelay cancels the running delay, if any.
func (s *Session) interruptDelay(reason string) {
	d := s.Player.Delay
	if d == nil {
		return
	}
	s.Player.Delay = nil
	d.Interrupted(s)
	s.log().WithFields(logrus.Fields{"delay": d.Name(), "reason": reason}).Debug("delay interrupted")
}

// continueDelay runs one turn of the active delay.
func (s *Session) continueDelay() {
	d := s.Player.Delay
	if d == nil {
		return
	}
	if !d.Valid(s) {
		s.interruptDelay("no longer valid")
		return
	}
	if d.Step(s) {
		s.Player.Delay = nil
		d.Finish(s)
	}
}
