package game

import (
	"errors"
	"fmt"

	"github.com/appengine-ltd/crawlcore/internal/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoSuchItem   = errors.New("no such item")
	ErrWrongSlot    = errors.New("item does not fit that slot")
	ErrSlotOccupied = errors.New("slot already occupied")
	ErrCannotWear   = errors.New("cannot use that slot in current form")
	ErrNotEquipped  = errors.New("nothing equipped in that slot")
)

type InvariantKind int

const (
	InvariantSlotCategory InvariantKind = iota
	InvariantSlotIndex
	InvariantCorpseMonster
	InvariantMutationID
	InvariantResourceBounds
	InvariantHungerRange
	InvariantDuration
	InvariantStat
	InvariantTransformation
)

var invariantNames = map[InvariantKind]string{
	InvariantSlotCategory:   "slot_category",
	InvariantSlotIndex:      "slot_index",
	InvariantCorpseMonster:  "corpse_monster",
	InvariantMutationID:     "mutation_id",
	InvariantResourceBounds: "resource_bounds",
	InvariantHungerRange:    "hunger_range",
	InvariantDuration:       "duration",
	InvariantStat:           "stat",
	InvariantTransformation: "transformation",
}

func (k InvariantKind) String() string {
	if name, ok := invariantNames[k]; ok {
		return name
	}
	return fmt.Sprintf("invariant(%d)", int(k))
}

// InvariantError describes a state that should be impossible.
type InvariantError struct {
	Kind   InvariantKind
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %s violated: %s", e.Kind, e.Detail)
}

// reportInvariant panics in crawldebug builds and logs otherwise. Callers
// continue with a zero contribution after it returns.
func reportInvariant(kind InvariantKind, format string, args ...any) {
	err := &InvariantError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
	if debugAssertions {
		panic(err)
	}
	logger.Log.WithFields(logrus.Fields{
		"invariant": kind.String(),
	}).Warn(err.Detail)
}

type KillMethod int

const (
	KilledByNothing KillMethod = iota
	KilledByWeakness
	KilledByStupidity
	KilledByClumsiness
	KilledByStarvation
	KilledByPoison
	KilledByDamage
)

var killMethodNames = map[KillMethod]string{
	KilledByNothing:    "nothing",
	KilledByWeakness:   "weakness",
	KilledByStupidity:  "stupidity",
	KilledByClumsiness: "clumsiness",
	KilledByStarvation: "starvation",
	KilledByPoison:     "poison",
	KilledByDamage:     "damage",
}

func (k KillMethod) String() string {
	if name, ok := killMethodNames[k]; ok {
		return name
	}
	return "unknown"
}

// DeathCause is returned by mutators whose effect would kill the player.
// Ending the game is left to the caller.
type DeathCause struct {
	Method KillMethod
	Source string
}

func (d *DeathCause) String() string {
	if d == nil {
		return ""
	}
	if d.Source == "" {
		return "killed by " + d.Method.String()
	}
	return fmt.Sprintf("killed by %s (%s)", d.Method, d.Source)
}
