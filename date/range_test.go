package date

import "testing"

func TestRangeAll(t *testing.T) {
	r := NewRange(New(2023, 1, 30), New(2023, 2, 2))

	var got []Date
	for on := range r.All() {
		got = append(got, on)
	}

	want := []Date{New(2023, 1, 30), New(2023, 1, 31), New(2023, 2, 1), New(2023, 2, 2)}
	if len(got) != len(want) {
		t.Fatalf("All() yielded %d days want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %v want %v", i, got[i], want[i])
		}
	}
	if r.Days() != 4 {
		t.Errorf("Days() = %v want 4", r.Days())
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(New(2023, 1, 1), New(2023, 1, 31))

	if !r.Contains(New(2023, 1, 1)) || !r.Contains(New(2023, 1, 31)) {
		t.Errorf("Contains should include both boundaries")
	}
	if r.Contains(New(2023, 2, 1)) {
		t.Errorf("Contains(2023-02-01) = true want false")
	}
}

func TestRangeInvalid(t *testing.T) {
	r := NewRange(New(2023, 1, 2), New(2023, 1, 1))
	if r.IsValid() {
		t.Errorf("IsValid() = true want false")
	}
	if r.Days() != 0 {
		t.Errorf("Days() = %v want 0", r.Days())
	}
	for on := range r.All() {
		t.Errorf("All() on invalid range yielded %v", on)
	}
}
