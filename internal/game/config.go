package game

import (
	"fmt"
)

type SessionConfig struct {
	Player  PlayerConfig
	Seed    int64
	Balance *Balance

	// Collaborators default to an in-memory log, flat floor, no monsters,
	// a seeded RNG and a strength-first stat chooser.
	Messages MessageSink
	Terrain  Terrain
	Monsters MonsterQuery
	Stats    StatChooser
	Rng      Random
}

func (c SessionConfig) Validate() error {
	if c.Player.Species < 0 || c.Player.Species >= numSpecies {
		return fmt.Errorf("invalid species: %d", int(c.Player.Species))
	}

	if c.Player.God < GodNone || c.Player.God > GodBeogh {
		return fmt.Errorf("invalid god: %d", int(c.Player.God))
	}

	for sk, level := range c.Player.Skills {
		if level < 0 || level > 27 {
			return fmt.Errorf("skill %d must be between 0 and 27, got %d", sk, level)
		}
	}

	if len(c.Player.Spells) > 25 {
		return fmt.Errorf("at most 25 spells can be memorised, got %d", len(c.Player.Spells))
	}
	for _, sp := range c.Player.Spells {
		if _, ok := spellDifficulty[sp]; !ok {
			return fmt.Errorf("unknown spell: %d", int(sp))
		}
	}

	if c.Balance != nil {
		if err := c.Balance.Validate(); err != nil {
			return fmt.Errorf("invalid balance: %w", err)
		}
	}

	return nil
}
