package game

import "strings"

type Channel int

const (
	ChannelPlain Channel = iota
	ChannelWarn
	ChannelRecovery
	ChannelDuration
	ChannelIntrinsicGain
	ChannelMutation
	ChannelFood
	ChannelPrompt
	ChannelDanger
)

var channelNames = map[Channel]string{
	ChannelPlain:         "plain",
	ChannelWarn:          "warn",
	ChannelRecovery:      "recovery",
	ChannelDuration:      "duration",
	ChannelIntrinsicGain: "intrinsic_gain",
	ChannelMutation:      "mutation",
	ChannelFood:          "food",
	ChannelPrompt:        "prompt",
	ChannelDanger:        "danger",
}

func (c Channel) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}
	return "plain"
}

// MessageSink receives gameplay messages. YesNo gates the few actions that
// need the player's confirmation.
type MessageSink interface {
	Emit(msg string, ch Channel)
	YesNo(prompt string) bool
}

type FeatureKind int

const (
	FeatureFloor FeatureKind = iota
	FeatureShallowWater
	FeatureDeepWater
	FeatureLava
	FeatureWall
)

type TrapKind int

const (
	TrapNone TrapKind = iota
	TrapDart
	TrapTeleport
	TrapNet
)

// Terrain answers questions about the map around the player.
type Terrain interface {
	FeatureAt(pos Position) FeatureKind
	TrapAt(pos Position) TrapKind
	// ItemsAt returns the floor stack. Callers may modify returned items in place.
	ItemsAt(pos Position) []*Item
}

type MonsterRef struct {
	ID       MonsterID
	Pos      Position
	Hostile  bool
	Visible  bool
	Sleeping bool
}

type MonsterQuery interface {
	NearbyMonsters(pos Position, radius int) []MonsterRef
}

// StatChooser picks the stat raised every third level.
type StatChooser interface {
	ChooseStat() Stat
}

// MessageLog is a MessageSink that keeps everything it is given.
// Answer is returned for every prompt.
type MessageLog struct {
	Lines  []LogLine
	Answer bool
}

type LogLine struct {
	Text    string
	Channel Channel
}

func (l *MessageLog) Emit(msg string, ch Channel) {
	if msg == "" {
		return
	}
	l.Lines = append(l.Lines, LogLine{Text: msg, Channel: ch})
}

func (l *MessageLog) YesNo(prompt string) bool {
	l.Lines = append(l.Lines, LogLine{Text: prompt, Channel: ChannelPrompt})
	return l.Answer
}

// Drain returns the pending lines and clears the log.
func (l *MessageLog) Drain() []LogLine {
	out := l.Lines
	l.Lines = nil
	return out
}

func (l *MessageLog) Contains(fragment string) bool {
	for _, line := range l.Lines {
		if strings.Contains(line.Text, fragment) {
			return true
		}
	}
	return false
}

// FlatTerrain is an open floor with optional floor stacks.
type FlatTerrain struct {
	Feature FeatureKind
	Floor   map[Position][]*Item
}

func (t *FlatTerrain) FeatureAt(Position) FeatureKind { return t.Feature }

func (t *FlatTerrain) TrapAt(Position) TrapKind { return TrapNone }

func (t *FlatTerrain) ItemsAt(pos Position) []*Item {
	if t.Floor == nil {
		return nil
	}
	return t.Floor[pos]
}

// Drop places it on the floor at pos.
func (t *FlatTerrain) Drop(pos Position, it Item) {
	if t.Floor == nil {
		t.Floor = make(map[Position][]*Item)
	}
	t.Floor[pos] = append(t.Floor[pos], &it)
}

// NoMonsters is an empty level.
type NoMonsters struct{}

func (NoMonsters) NearbyMonsters(Position, int) []MonsterRef { return nil }

// FirstStat always picks the same stat.
type FirstStat struct{ Stat Stat }

func (f FirstStat) ChooseStat() Stat { return f.Stat }
