package game

type DurationID int

const (
	DurPoisoning DurationID = iota
	DurConfusion
	DurSlow
	DurHaste
	DurBerserk
	DurExhausted
	DurMight
	DurParalysis
	DurPetrified
	DurRegeneration
	DurInvisibility
	DurResistFire
	DurResistCold
	DurResistPoison
	DurInsulation
	DurFireShield
	DurIcyArmour
	DurStoneskin
	DurStonemail
	DurForescry
	DurLevitation
	DurControlledFlight
	DurSwiftness
	DurStealth
	DurSilence
	DurSlaying
	DurControlTeleport
	DurTransformation
	NumDurations
)

type durationInfo struct {
	name    string
	onset   string
	wearOff string
	// cap of zero means the balance decides or there is no cap.
	cap int
}

var durationTable = [NumDurations]durationInfo{
	DurPoisoning:        {name: "poisoning", wearOff: "You feel better."},
	DurConfusion:        {name: "confusion", wearOff: "You feel less confused."},
	DurSlow:             {name: "slow", wearOff: "You feel yourself speed up."},
	DurHaste:            {name: "haste", wearOff: "You feel yourself slow down."},
	DurBerserk:          {name: "berserk", wearOff: "You are no longer berserk."},
	DurExhausted:        {name: "exhausted", wearOff: "You feel less exhausted."},
	DurMight:            {name: "might", onset: "You feel mighty!", wearOff: "You feel a little less mighty now.", cap: 80},
	DurParalysis:        {name: "paralysis", wearOff: "You can move again."},
	DurPetrified:        {name: "petrified", wearOff: "You feel limber!"},
	DurRegeneration:     {name: "regeneration", onset: "Your skin crawls.", wearOff: "Your skin stops crawling.", cap: 100},
	DurInvisibility:     {name: "invisibility", onset: "You fade into invisibility!", wearOff: "You flicker back into view.", cap: 100},
	DurResistFire:       {name: "fire resistance", onset: "You feel resistant to fire.", wearOff: "Your fire resistance has expired.", cap: 100},
	DurResistCold:       {name: "cold resistance", onset: "You feel resistant to cold.", wearOff: "Your cold resistance has expired.", cap: 100},
	DurResistPoison:     {name: "poison resistance", onset: "You feel resistant to poison.", wearOff: "Your poison resistance expires.", cap: 100},
	DurInsulation:       {name: "insulation", onset: "You feel insulated.", wearOff: "You feel conductive.", cap: 100},
	DurFireShield:       {name: "ring of flames", onset: "The air around you leaps into flame!", wearOff: "Your ring of flames gutters out.", cap: 50},
	DurIcyArmour:        {name: "icy armour", onset: "A film of ice covers your body!", wearOff: "Your icy armour evaporates.", cap: 50},
	DurStoneskin:        {name: "stoneskin", onset: "Your skin hardens.", wearOff: "Your skin feels tender.", cap: 50},
	DurStonemail:        {name: "stonemail", onset: "An armour of stone covers you.", wearOff: "Your scaly stone armour disappears.", cap: 100},
	DurForescry:         {name: "forescry", onset: "You begin to receive glimpses of the immediate future...", wearOff: "You feel less foresightful.", cap: 50},
	DurLevitation:       {name: "levitation", onset: "You gently float upwards from the floor.", wearOff: "You float gracefully downwards.", cap: 100},
	DurControlledFlight: {name: "controlled flight", wearOff: "You feel less in control of your flight.", cap: 100},
	DurSwiftness:        {name: "swiftness", onset: "You feel quick.", wearOff: "You feel sluggish.", cap: 100},
	DurStealth:          {name: "stealth", onset: "You feel stealthy.", wearOff: "You feel less stealthy.", cap: 100},
	DurSilence:          {name: "silence", onset: "A profound silence engulfs you.", wearOff: "Your hearing returns.", cap: 50},
	DurSlaying:          {name: "slaying", onset: "You feel deadly.", wearOff: "You feel less deadly.", cap: 100},
	DurControlTeleport:  {name: "teleport control", onset: "You feel in control.", wearOff: "You feel uncertain.", cap: 100},
	DurTransformation:   {name: "transformation"},
}

func (d DurationID) valid() bool {
	return d >= 0 && d < NumDurations
}

func (d DurationID) String() string {
	if !d.valid() {
		return "unknown duration"
	}
	return durationTable[d].name
}

// LookupDuration resolves a duration by name, tolerating small typos.
func LookupDuration(name string) (DurationID, bool) {
	names := make([]string, NumDurations)
	for i := range durationTable {
		names[i] = durationTable[i].name
	}
	idx, ok := fuzzyIndex(name, names)
	if !ok {
		return 0, false
	}
	return DurationID(idx), true
}

// Durations counts remaining turns per effect. Zero is inactive.
type Durations [NumDurations]int

func (d *Durations) Get(id DurationID) int {
	if d == nil {
		return 0
	}
	if !id.valid() {
		reportInvariant(InvariantDuration, "duration id %d out of range", int(id))
		return 0
	}
	return d[id]
}

func (d *Durations) Active(id DurationID) bool {
	return d.Get(id) > 0
}

func (d *Durations) set(id DurationID, turns int) {
	if !id.valid() {
		reportInvariant(InvariantDuration, "set of duration id %d", int(id))
		return
	}
	if turns < 0 {
		turns = 0
	}
	d[id] = turns
}

func (d *Durations) clear(id DurationID) {
	d.set(id, 0)
}

// durationCap reads the cap from the balance for the effects it tunes.
func durationCap(id DurationID, b *Balance) int {
	switch id {
	case DurPoisoning:
		return b.Durations.PoisonCap
	case DurConfusion:
		return b.Durations.ConfusionCap
	case DurSlow:
		return b.Durations.SlowCap
	case DurHaste:
		return b.Durations.HasteCap
	case DurParalysis, DurPetrified:
		return b.Durations.ParalysisCap
	}
	if id.valid() {
		return durationTable[id].cap
	}
	return 0
}

// ApplyDuration starts or extends a timed effect. The onset message fires
// only when the effect was inactive. It returns false for bad input.
func (s *Session) ApplyDuration(id DurationID, turns int) bool {
	if s == nil || s.Player == nil || turns <= 0 || !id.valid() {
		return false
	}
	d := &s.Player.Durations
	old := d.Get(id)
	next := old + turns
	if limit := durationCap(id, s.Player.balance()); limit > 0 && next > limit {
		next = limit
	}
	d.set(id, next)
	if old == 0 {
		s.emit(durationTable[id].onset, ChannelDuration)
		s.onDurationStart(id)
	}
	return true
}

func (s *Session) onDurationStart(id DurationID) {
	switch id {
	case DurLevitation, DurControlledFlight:
		s.updateBurden()
	case DurMight:
		s.Player.refreshStats()
	}
}

// ActiveDurations lists running effects in table order.
func (p *PlayerState) ActiveDurations() []DurationID {
	out := make([]DurationID, 0, 4)
	for id := DurationID(0); id < NumDurations; id++ {
		if p.Durations[id] > 0 {
			out = append(out, id)
		}
	}
	return out
}
