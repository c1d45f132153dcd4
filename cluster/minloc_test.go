package cluster

import "testing"

func TestArgminPrefixBreaksTiesByLowestIndex(t *testing.T) {
	idx, v := argminPrefix([]float64{3, 1, 1, 2}, 4)
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if v != 1 {
		t.Fatalf("expected value 1, got %v", v)
	}
}

func TestArgminPrefixOnlyConsidersPrefix(t *testing.T) {
	idx, v := argminPrefix([]float64{5, 4, 3, 0}, 2)
	if idx != 1 {
		t.Fatalf("expected index 1, got %d", idx)
	}
	if v != 4 {
		t.Fatalf("expected value 4, got %v", v)
	}
}
