package parser

import (
	"cmp"
	"slices"
	"strings"
)

var defaultCommands = []CommandDef{
	{Verb: "help", Aliases: []string{"h", "commands", "?"}, Kind: Help},
	{Verb: "status", Aliases: []string{"stats", "character", "char", "sheet", "whoami"}, Kind: Query},
	{Verb: "inventory", Aliases: []string{"inv", "i", "pack", "bag", "check bag", "check my bag"}, Kind: Query},
	{Verb: "eat", Aliases: []string{"consume", "devour", "feed", "drain corpse"}, Target: PackItem, MaxArgs: 3},
	{Verb: "wear", Aliases: []string{"put on", "puton", "don"}, Target: PackItem, MinArgs: 1, MaxArgs: 4},
	{Verb: "wield", Aliases: []string{"hold", "ready", "equip weapon"}, Target: PackItem, MinArgs: 1, MaxArgs: 4},
	{Verb: "remove", Aliases: []string{"take off", "takeoff", "unequip", "doff", "unwield"}, Target: EquippedItem, MinArgs: 1, MaxArgs: 4},
	{Verb: "wait", Aliases: []string{"rest", "pass", "skip", "sleep"}},
	{Verb: "quit", Aliases: []string{"exit", "q"}},

	// Wizard commands.
	{Verb: "give", Aliases: []string{"create", "wish"}, Target: CatalogItem, MinArgs: 1, MaxArgs: 4},
	{Verb: "chunks", Aliases: []string{"butcher"}, Target: MonsterName, MinArgs: 1, MaxArgs: 3},
	{Verb: "corpse", Aliases: []string{"kill"}, Target: MonsterName, MinArgs: 1, MaxArgs: 3},
	{Verb: "gain", Aliases: []string{"xp", "experience"}},
	{Verb: "poison", Aliases: []string{"envenom"}},
	{Verb: "confuse"},
	{Verb: "slow"},
	{Verb: "haste", Aliases: []string{"speed up"}},
	{Verb: "hunger", Aliases: []string{"nutrition"}},
	{Verb: "berserk", Aliases: []string{"rage", "go berserk"}},
	{Verb: "transform", Aliases: []string{"shapeshift", "become", "turn into"}, Target: FormName, MinArgs: 1, MaxArgs: 3},
	{Verb: "untransform", Aliases: []string{"revert", "change back"}},
	{Verb: "mutate", Aliases: []string{"mutation"}, Target: MutationName, MaxArgs: 3},
	{Verb: "drain", Aliases: []string{"sap"}, Target: StatName, MinArgs: 1, MaxArgs: 1},
	{Verb: "buff", Aliases: []string{"enchant", "effect"}, Target: DurationName, MinArgs: 1, MaxArgs: 3},
}

// alias is one spelling of a verb, split into words.
type alias struct {
	verb  string
	words []string
}

// verbMatch is a verb recognised at the start of the input.
type verbMatch struct {
	verb     string
	consumed int
	score    float64
}

type commandTable struct {
	defs    map[string]CommandDef
	aliases []alias
}

func newCommandTable(defs []CommandDef) *commandTable {
	t := &commandTable{defs: make(map[string]CommandDef, len(defs))}
	for _, def := range defs {
		def.Verb = normaliseInput(def.Verb)
		if def.Verb == "" {
			continue
		}
		t.defs[def.Verb] = def
		for _, spelling := range append([]string{def.Verb}, def.Aliases...) {
			if words := strings.Fields(normaliseInput(spelling)); len(words) > 0 {
				t.aliases = append(t.aliases, alias{verb: def.Verb, words: words})
			}
		}
	}
	return t
}

// match ranks the verbs the leading words could be, one entry per verb.
// Aliases score slightly below the verb itself so that an exact verb
// always wins a tie.
func (t *commandTable) match(words []string) []verbMatch {
	best := make(map[string]verbMatch)
	for _, a := range t.aliases {
		if len(words) < len(a.words) {
			continue
		}
		typed := strings.Join(words[:len(a.words)], " ")
		score := similarity(typed, strings.Join(a.words, " "))
		if score == 0 {
			continue
		}
		if strings.Join(a.words, " ") != a.verb {
			score -= 0.03
		}
		if prev, ok := best[a.verb]; !ok || score > prev.score {
			best[a.verb] = verbMatch{verb: a.verb, consumed: len(a.words), score: score}
		}
	}
	out := make([]verbMatch, 0, len(best))
	for _, m := range best {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b verbMatch) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.consumed, a.consumed); c != 0 {
			return c
		}
		return strings.Compare(a.verb, b.verb)
	})
	return out
}

func (t *commandTable) verbs() []string {
	out := make([]string, 0, len(t.defs))
	for v := range t.defs {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
