package rng

import "testing"

func TestDeterministicSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.NextU32(), b.NextU32()
		if va != vb {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, va, vb)
		}
	}
}

func TestSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	if a.NextU32() == b.NextU32() {
		t.Fatalf("different seeds produced identical first value")
	}
}

func TestHighBitsOfSeedMatter(t *testing.T) {
	a := New(1)
	b := New(1 | (1 << 40))
	if a.NextU32() == b.NextU32() {
		t.Fatalf("seed fold ignored the high 32 bits")
	}
}

func TestZeroSeedStillAdvances(t *testing.T) {
	g := New(0)
	if g.NextU32() == 0 && g.NextU32() == 0 {
		t.Fatalf("zero seed produced a stuck generator")
	}
}

// TestKnownSequence pins the exact output for seed 1 so independent
// reimplementations can be checked byte-for-byte against it.
func TestKnownSequence(t *testing.T) {
	g := New(1)
	want := []uint32{270369, 67634689, 2647435461, 307599695, 2398689233}
	for i, w := range want {
		got := g.NextU32()
		if got != w {
			t.Fatalf("value %d: got %d, want %d", i, got, w)
		}
	}
}

func TestRangeZeroMax(t *testing.T) {
	g := New(7)
	if got := g.Range(0); got != 0 {
		t.Fatalf("Range(0) = %d, want 0", got)
	}
	if got := g.Range(-3); got != 0 {
		t.Fatalf("Range(-3) = %d, want 0", got)
	}
}

func TestRangeBounds(t *testing.T) {
	g := New(99)
	for i := 0; i < 1000; i++ {
		v := g.Range(7)
		if v < 0 || v >= 7 {
			t.Fatalf("Range(7) out of bounds: %d", v)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	mk := func(seed uint64) []int {
		s := []int{0, 1, 2, 3, 4, 5, 6, 7}
		g := New(seed)
		g.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		return s
	}
	a, b := mk(123), mk(123)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle diverged at index %d", i)
		}
	}
	// A shuffle must also be a permutation.
	seen := make(map[int]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	if len(seen) != len(a) {
		t.Fatalf("shuffle lost elements: %v", a)
	}
}
