package game

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// fuzzyIndex matches query against names: exact, then prefix, then the
// closest name within an edit-distance limit scaled by its length.
func fuzzyIndex(query string, names []string) (int, bool) {
	query = strings.Join(strings.Fields(strings.ToLower(query)), " ")
	if query == "" {
		return -1, false
	}
	for i, name := range names {
		if name == query {
			return i, true
		}
	}
	if len(query) >= 3 {
		for i, name := range names {
			if strings.HasPrefix(name, query) {
				return i, true
			}
		}
	}

	best, bestDist := -1, 0
	for i, name := range names {
		if name == "" {
			continue
		}
		dist := levenshtein.ComputeDistance(query, name)
		if dist > editLimit(len(name)) {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best >= 0
}

func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func sortCatalog(entries []catalogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].name < entries[j].name
	})
}

// Vocabulary lists the names the lookups accept, for command completion.
type Vocabulary struct {
	Catalog   []string
	Monsters  []string
	Forms     []string
	Mutations []string
	Durations []string
	Slots     []string
}

func LookupVocabulary() Vocabulary {
	var v Vocabulary
	for _, e := range catalogEntries() {
		v.Catalog = append(v.Catalog, e.name)
	}
	for i := range monsterTable {
		if MonsterID(i) != MonsterNone {
			v.Monsters = append(v.Monsters, strings.ToLower(monsterTable[i].Name))
		}
	}
	for i := range formTable {
		if Transformation(i) != FormNone {
			v.Forms = append(v.Forms, strings.ToLower(formTable[i].Name))
		}
	}
	for i := range mutationTable {
		v.Mutations = append(v.Mutations, mutationTable[i].name)
	}
	for i := range durationTable {
		v.Durations = append(v.Durations, durationTable[i].name)
	}
	for slot := EquipSlot(0); slot < NumEquip; slot++ {
		v.Slots = append(v.Slots, slotNames[slot])
	}
	return v
}

// FloorNames lists the items under the player.
func (s *Session) FloorNames() []string {
	items := s.Terrain.ItemsAt(s.Player.Pos)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != nil && it.Defined() {
			out = append(out, it.DisplayName())
		}
	}
	return out
}
