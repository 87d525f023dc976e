package parser

import (
	"fmt"
	"strings"
)

const (
	// minVerbScore is the weakest verb match still treated as a command.
	minVerbScore = 0.5
	// minConfidence is the weakest parse returned without a question.
	minConfidence = 0.5
	// pronounScore is the confidence of an argument taken from LastEntity.
	pronounScore = 0.92
	maxOptions   = 5
)

var statVocabulary = []string{"strength", "intelligence", "dexterity"}

// Parser turns console input into intents, correcting typos and asking
// when it cannot decide.
type Parser struct {
	commands *commandTable
}

func New() *Parser {
	return &Parser{commands: newCommandTable(defaultCommands)}
}

// Parse reads one line of input. The result either names a verb with its
// resolved arguments or carries a ClarifyQuestion.
func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	in := Intent{Raw: raw, Normalised: normaliseInput(raw), Kind: Unknown}
	if in.Normalised == "" {
		in.Clarify = &ClarifyQuestion{Prompt: "Type a command, or help for a list."}
		return in
	}
	words := strings.Fields(in.Normalised)

	if guess, ok := p.matchPhrase(ctx, in, words, true); ok {
		return guess
	}

	matches := p.commands.match(words)
	if len(matches) == 0 || matches[0].score < minVerbScore {
		if guess, ok := p.matchPhrase(ctx, in, words, false); ok {
			return guess
		}
		in.Clarify = &ClarifyQuestion{
			Prompt: "Unrecognised command. Known commands: " + strings.Join(p.commands.verbs(), ", ") + ".",
		}
		return in
	}
	if q := p.verbQuestion(in, matches); q != nil {
		in.Clarify = q
		return in
	}

	best := matches[0]
	def := p.commands.defs[best.verb]
	rest, qty := takeQuantity(words[best.consumed:])
	return p.complete(ctx, in, def, rest, qty, best.score)
}

// complete resolves the arguments of def and settles the intent.
func (p *Parser) complete(ctx ParseContext, in Intent, def CommandDef, rest []string, qty *Quantity, verbScore float64) Intent {
	in.Verb = def.Verb
	in.Kind = def.Kind
	in.Quantity = qty

	args, argScore, q := resolveArgs(ctx, def, rest)
	if q != nil {
		in.Clarify = q
		in.Confidence = verbScore * 0.5
		return in
	}
	if len(args) > def.MaxArgs {
		args = args[:def.MaxArgs]
		argScore -= 0.05
	}
	in.Args = args
	in.Confidence = clampScore(verbScore * (0.5 + argScore/2))

	if in.Confidence < minConfidence {
		guess := in
		in.Clarify = &ClarifyQuestion{Prompt: "Did you mean this?", Options: []Intent{guess}}
	}
	return in
}

// verbQuestion asks which verb was meant when the leading matches tie.
func (p *Parser) verbQuestion(in Intent, matches []verbMatch) *ClarifyQuestion {
	var options []Intent
	for _, m := range matches {
		if m.score < tieFloor || matches[0].score-m.score >= tieMargin {
			break
		}
		def := p.commands.defs[m.verb]
		options = append(options, Intent{
			Raw:        in.Raw,
			Normalised: in.Normalised,
			Kind:       def.Kind,
			Verb:       def.Verb,
			Confidence: m.score,
		})
	}
	if len(options) < 2 {
		return nil
	}
	return &ClarifyQuestion{Prompt: "Did you mean one of these?", Options: options}
}

// resolveArgs maps the argument words of def onto known names. The first
// argument is matched against the target vocabulary; anything it cannot
// place is passed through as typed.
func resolveArgs(ctx ParseContext, def CommandDef, words []string) ([]string, float64, *ClarifyQuestion) {
	if len(words) == 0 {
		if def.MinArgs > 0 {
			return nil, 0, missingArgQuestion(ctx, def)
		}
		return nil, 1, nil
	}

	pool := targetPool(def.Target, ctx)
	score := 1.0
	var args []string
	for len(words) > 0 {
		w := words[0]
		switch {
		case pronouns[w]:
			if ctx.LastEntity == "" {
				return nil, 0, &ClarifyQuestion{Prompt: fmt.Sprintf("What does %q refer to?", w)}
			}
			args = append(args, normaliseInput(ctx.LastEntity))
			score = min(score, pronounScore)
			words = words[1:]
			continue
		case len(args) == 0 && def.Target == StatName && statNames[w] != "":
			args = append(args, statNames[w])
			words = words[1:]
			continue
		case len(args) == 0 && len(pool) > 0:
			if sp := matchSpan(words, pool); len(sp.hits) > 0 {
				if ambiguous(sp.hits) {
					return nil, 0, choiceQuestion(def, sp.hits[:2])
				}
				args = append(args, sp.hits[0].name)
				score = min(score, sp.hits[0].score)
				words = words[sp.width:]
				continue
			}
		}
		args = append(args, w)
		score -= 0.02
		words = words[1:]
	}
	return args, score, nil
}

func targetPool(t Target, ctx ParseContext) []string {
	switch t {
	case PackItem:
		return vocabulary(ctx.Inventory, ctx.Nearby)
	case EquippedItem:
		return vocabulary(ctx.Inventory, ctx.Slots)
	case CatalogItem:
		return vocabulary(ctx.Catalog)
	case MonsterName:
		return vocabulary(ctx.Monsters)
	case FormName:
		return vocabulary(ctx.Forms)
	case MutationName:
		return vocabulary(ctx.Mutations)
	case DurationName:
		return vocabulary(ctx.Durations)
	case StatName:
		return statVocabulary
	default:
		return nil
	}
}

func choiceQuestion(def CommandDef, hits []nameMatch) *ClarifyQuestion {
	options := make([]Intent, 0, len(hits))
	for _, h := range hits {
		options = append(options, Intent{Kind: def.Kind, Verb: def.Verb, Args: []string{h.name}, Confidence: h.score})
	}
	return &ClarifyQuestion{Prompt: fmt.Sprintf("Which do you want to %s?", def.Verb), Options: options}
}

// missingArgQuestion offers the pack when a pack verb was given nothing.
func missingArgQuestion(ctx ParseContext, def CommandDef) *ClarifyQuestion {
	q := &ClarifyQuestion{Prompt: fmt.Sprintf("%s what?", capitalise(def.Verb))}
	if def.Target != PackItem && def.Target != EquippedItem {
		return q
	}
	for _, name := range vocabulary(ctx.Inventory) {
		q.Options = append(q.Options, Intent{Kind: def.Kind, Verb: def.Verb, Args: []string{name}, Confidence: prefixScore})
		if len(q.Options) == maxOptions {
			break
		}
	}
	return q
}

// takeQuantity pulls the first number out of words.
func takeQuantity(words []string) ([]string, *Quantity) {
	for i, w := range words {
		if q := parseQuantityToken(w); q != nil {
			rest := make([]string, 0, len(words)-1)
			rest = append(rest, words[:i]...)
			return append(rest, words[i+1:]...), q
		}
	}
	return words, nil
}

// IntentToCommandString renders an intent as the console command it
// stands for, quantity last.
func IntentToCommandString(in Intent) string {
	if normaliseInput(in.Verb) == "" {
		return ""
	}
	parts := append([]string{in.Verb}, in.Args...)
	if in.Quantity != nil {
		parts = append(parts, in.Quantity.Raw)
	}
	return normaliseInput(strings.Join(parts, " "))
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func clampScore(v float64) float64 {
	return max(0, min(1, v))
}
