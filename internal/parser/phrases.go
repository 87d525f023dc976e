package parser

import "strings"

// phraseRule maps conversational input onto a verb. When object is set the
// words after the phrase are resolved as the verb's argument.
type phraseRule struct {
	verb       string
	phrases    []string
	object     bool
	confidence float64
}

var phraseRules = []phraseRule{
	{verb: "remove", phrases: []string{"take off", "pull off"}, object: true, confidence: 0.8},
	{verb: "wear", phrases: []string{"put on", "slip on"}, object: true, confidence: 0.8},
	{verb: "inventory", phrases: []string{"what do i have", "what have i got", "my inventory", "open bag", "check my bag"}, confidence: 0.92},
	{verb: "status", phrases: []string{"how am i", "character sheet", "my stats", "show stats", "am i ok"}, confidence: 0.86},
	{verb: "eat", phrases: []string{"i m hungry", "i am hungry", "im hungry", "i m starving", "i am starving", "im starving", "need food", "something to eat"}, confidence: 0.84},
	{verb: "berserk", phrases: []string{"go berserk", "get angry"}, confidence: 0.8},
	{verb: "untransform", phrases: []string{"turn back", "change back", "normal form"}, confidence: 0.82},
	{verb: "eat", phrases: []string{"eat"}, object: true, confidence: 0.78},
	{verb: "wait", phrases: []string{"wait", "rest", "sleep"}, confidence: 0.8},
}

// matchPhrase applies the first rule with a phrase found in words. Passing
// multiWord limits the search to phrases of two or more words, which are
// tried before verbs; single words are a last resort.
func (p *Parser) matchPhrase(ctx ParseContext, in Intent, words []string, multiWord bool) (Intent, bool) {
	for _, rule := range phraseRules {
		def, ok := p.commands.defs[rule.verb]
		if !ok {
			continue
		}
		for _, phrase := range rule.phrases {
			pw := strings.Fields(phrase)
			if (len(pw) > 1) != multiWord {
				continue
			}
			end := findWords(words, pw)
			if end < 0 {
				continue
			}
			rest, qty := takeQuantity(stripFiller(words[end:]))
			if !rule.object {
				rest = nil
			}
			return p.complete(ctx, in, def, rest, qty, rule.confidence), true
		}
	}
	return Intent{}, false
}

// findWords returns the index just past the first run of phrase in words,
// or -1.
func findWords(words, phrase []string) int {
	for i := 0; i+len(phrase) <= len(words); i++ {
		match := true
		for j, w := range phrase {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return i + len(phrase)
		}
	}
	return -1
}
