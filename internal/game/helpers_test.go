package game

import "testing"

// fixedRandom returns the same roll every time so tests can predict outcomes.
type fixedRandom struct {
	roll  int
	oneIn bool
}

func (r fixedRandom) Random2(n int) int {
	if n <= 1 {
		return 0
	}
	if r.roll >= n {
		return n - 1
	}
	return r.roll
}

func (r fixedRandom) OneChanceIn(int) bool { return r.oneIn }

func (r fixedRandom) Random2Avg(max, _ int) int {
	if r.roll >= max {
		return max - 1
	}
	return r.roll
}

func newTestSession(t *testing.T, sp Species) (*Session, *MessageLog) {
	t.Helper()
	log := &MessageLog{Answer: true}
	s, err := NewSession(SessionConfig{
		Player:   PlayerConfig{Name: "Tester", Species: sp},
		Seed:     7,
		Messages: log,
		Terrain:  &FlatTerrain{},
		Rng:      fixedRandom{},
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, log
}

func giveItem(t *testing.T, s *Session, name string) int {
	t.Helper()
	it, ok := CatalogItem(name)
	if !ok {
		t.Fatalf("catalog has no %q", name)
	}
	idx, err := s.Player.AddItem(it)
	if err != nil {
		t.Fatalf("add %s: %v", name, err)
	}
	return idx
}

func mustWear(t *testing.T, s *Session, idx int) {
	t.Helper()
	if err := s.Wear(idx); err != nil {
		t.Fatalf("wear %s: %v", invLetter(idx), err)
	}
}
