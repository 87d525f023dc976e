package parser

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	exactScore  = 1.0
	prefixScore = 0.88
	fuzzyScale  = 0.8

	// tieMargin is how close two scores must be before the parser asks.
	tieMargin = 0.05
	// tieFloor keeps weak runner-up matches from triggering a question.
	tieFloor = 0.6
)

// editAllowance is the number of typos tolerated against a name.
func editAllowance(name string) int {
	return max(1, min(3, len(name)/3))
}

// similarity scores typed against name, or 0 if they are too far apart.
func similarity(typed, name string) float64 {
	switch {
	case typed == "" || name == "":
		return 0
	case typed == name:
		return exactScore
	case len(typed) >= 2 && strings.HasPrefix(name, typed):
		return prefixScore
	case len(typed) < 3:
		return 0
	}
	dist := levenshtein.ComputeDistance(typed, name)
	if dist > editAllowance(name) {
		return 0
	}
	return fuzzyScale * (1 - float64(dist)/float64(max(len(name), len(typed))))
}

type nameMatch struct {
	name  string
	score float64
}

// rankNames scores typed against every name and returns the hits best
// first. Equal scores fall back to alphabetical order.
func rankNames(typed string, names []string) []nameMatch {
	var hits []nameMatch
	for _, name := range names {
		if s := similarity(typed, name); s > 0 {
			hits = append(hits, nameMatch{name: name, score: s})
		}
	}
	slices.SortStableFunc(hits, func(a, b nameMatch) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return hits
}

// ambiguous reports whether the top two hits are too close to call.
func ambiguous(hits []nameMatch) bool {
	return len(hits) > 1 && hits[1].score > tieFloor && hits[0].score-hits[1].score < tieMargin
}

// span is the argument words consumed by one resolved name.
type span struct {
	hits  []nameMatch
	width int
}

// matchSpan resolves a run of words at the start of words against pool.
// The widest run with a confident match wins; failing that, the best
// scoring one.
func matchSpan(words, pool []string) span {
	var best span
	for width := 1; width <= min(len(words), 4); width++ {
		hits := rankNames(strings.Join(words[:width], " "), pool)
		switch {
		case len(hits) == 0:
		case hits[0].score > tieFloor, len(best.hits) == 0, hits[0].score > best.hits[0].score && best.hits[0].score <= tieFloor:
			best = span{hits: hits, width: width}
		}
	}
	return best
}

// vocabulary collects the normalised, de-duplicated names of lists.
func vocabulary(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, v := range list {
			n := normaliseInput(v)
			if n != "" && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
