package carousel

import "testing"

func TestRotatorWraps(t *testing.T) {
	r := New(7)
	if got := r.Prev(); got != 6 {
		t.Fatalf("prev from first = %d, want 6", got)
	}
	if got := r.Next(); got != 0 {
		t.Fatalf("next from last = %d, want 0", got)
	}
	for i := 0; i < 7; i++ {
		r.Next()
	}
	if r.Index() != 0 {
		t.Fatalf("seven steps should return to start, got %d", r.Index())
	}
}

func TestRotatorAt(t *testing.T) {
	r := New(3)
	cases := map[int]int{-7: 2, -3: 0, -1: 2, 0: 0, 2: 2, 3: 0, 10: 1}
	for in, want := range cases {
		if got := r.At(in); got != want {
			t.Errorf("At(%d) = %d, want %d", in, got, want)
		}
	}
	prev, next := r.Neighbors(0)
	if prev != 2 || next != 1 {
		t.Fatalf("Neighbors(0) = %d,%d", prev, next)
	}
}

func TestRotatorEmpty(t *testing.T) {
	r := New(0)
	if r.Next() != 0 || r.Prev() != 0 || r.Seek(5) != 0 {
		t.Fatal("empty rotator must stay at 0")
	}
}
