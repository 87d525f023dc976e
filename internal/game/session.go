package game

import (
	"fmt"

	"github.com/appengine-ltd/crawlcore/internal/logger"
	"github.com/sirupsen/logrus"
)

// Session owns the player and the collaborators the core talks to.
// It is not safe for concurrent use.
type Session struct {
	Player   *PlayerState
	Messages MessageSink
	Terrain  Terrain
	Monsters MonsterQuery
	Rng      Random
	Stats    StatChooser
	Balance  *Balance
	Turn     int
}

func NewSession(cfg SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	b := cfg.Balance
	if b == nil {
		b = DefaultBalance()
	}
	s := &Session{
		Messages: cfg.Messages,
		Terrain:  cfg.Terrain,
		Monsters: cfg.Monsters,
		Rng:      cfg.Rng,
		Stats:    cfg.Stats,
		Balance:  b,
	}
	if s.Messages == nil {
		s.Messages = &MessageLog{}
	}
	if s.Terrain == nil {
		s.Terrain = &FlatTerrain{}
	}
	if s.Monsters == nil {
		s.Monsters = NoMonsters{}
	}
	if s.Rng == nil {
		s.Rng = NewRandom(cfg.Seed)
	}
	if s.Stats == nil {
		s.Stats = FirstStat{Stat: StatStrength}
	}
	s.Player = NewPlayer(cfg.Player, cfg.Seed, b)
	s.Recompute()

	s.log().WithFields(logrus.Fields{
		"species": s.Player.Species.String(),
		"seed":    cfg.Seed,
	}).Info("session created")
	return s, nil
}

func (s *Session) emit(msg string, ch Channel) {
	if s == nil || s.Messages == nil || msg == "" {
		return
	}
	s.Messages.Emit(msg, ch)
}

func (s *Session) emitf(ch Channel, format string, args ...any) {
	s.emit(fmt.Sprintf(format, args...), ch)
}

func (s *Session) yesNo(prompt string) bool {
	if s == nil || s.Messages == nil {
		return false
	}
	return s.Messages.YesNo(prompt)
}

func (s *Session) log() *logrus.Entry {
	fields := logrus.Fields{}
	if s != nil {
		fields["turn"] = s.Turn
		if s.Player != nil {
			fields["player"] = s.Player.Name
		}
	}
	return logger.Log.WithFields(fields)
}

// hostileNearby is the auto-eat safety check.
func (s *Session) hostileNearby() bool {
	if s.Monsters == nil {
		return false
	}
	for _, m := range s.Monsters.NearbyMonsters(s.Player.Pos, 8) {
		if m.Hostile && m.Visible && !m.Sleeping {
			return true
		}
	}
	return false
}
