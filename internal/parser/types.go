package parser

// IntentKind separates console commands that change the session from ones
// that only report on it.
type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

// Target names the vocabulary a command's first argument resolves against.
type Target int

const (
	NoTarget Target = iota
	PackItem
	EquippedItem
	CatalogItem
	MonsterName
	FormName
	MutationName
	DurationName
	StatName
)

// Quantity is the trailing number of a command: a count, an amount or a
// number of turns.
type Quantity struct {
	Raw  string
	N    int
	Unit string
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

// ClarifyQuestion is returned instead of a runnable intent when the input
// was ambiguous. Options are complete intents the caller may offer back.
type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the names arguments may resolve to. Inventory and
// Nearby feed PackItem targets; EquippedItem targets take Inventory and
// Slots.
type ParseContext struct {
	Inventory  []string
	Nearby     []string
	Slots      []string
	Catalog    []string
	Monsters   []string
	Forms      []string
	Mutations  []string
	Durations  []string
	LastEntity string
}

// CommandDef describes one console verb.
type CommandDef struct {
	Verb    string
	Aliases []string
	Kind    IntentKind
	Target  Target
	MinArgs int
	MaxArgs int
}
