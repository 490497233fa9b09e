package cotask

import "testing"

func TestGeneratorYieldsInOrder(t *testing.T) {
	values := []int{10, 20, 30}
	i := 0
	g := NewGenerator(func() (int, bool) {
		if i >= len(values) {
			return 0, false
		}
		v := values[i]
		i++
		return v, true
	})

	var got []int
	for g.MoveNext() {
		got = append(got, g.Current())
	}

	if len(got) != 3 || got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Fatalf("got %v, want [10 20 30]", got)
	}
	if g.MoveNext() {
		t.Error("MoveNext should keep returning false after exhaustion")
	}
}

func TestGeneratorEmptySequence(t *testing.T) {
	g := NewGenerator(func() (string, bool) { return "", false })
	if g.MoveNext() {
		t.Error("expected MoveNext to return false immediately")
	}
}
