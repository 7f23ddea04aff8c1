package history

import "testing"

func TestAppendBelowCapacity(t *testing.T) {
	b := New[int](5)

	b.Append(1)
	b.Append(2)
	b.Append(3)

	if b.Len() != 3 {
		t.Fatalf("expected len 3, got %d", b.Len())
	}

	snap := b.Snapshot()
	want := []int{1, 2, 3}
	for i, v := range want {
		if snap[i] != v {
			t.Errorf("snapshot[%d]: expected %d, got %d", i, v, snap[i])
		}
	}
}

func TestAppendEvictsOldestFirst(t *testing.T) {
	b := New[int](3)

	for i := 1; i <= 5; i++ {
		b.Append(i)
	}

	if b.Len() != 3 {
		t.Fatalf("expected len 3, got %d", b.Len())
	}

	snap := b.Snapshot()
	want := []int{3, 4, 5}
	for i, v := range want {
		if snap[i] != v {
			t.Errorf("snapshot[%d]: expected %d, got %d", i, v, snap[i])
		}
	}
}

func TestLast(t *testing.T) {
	b := New[int](4)
	for i := 1; i <= 6; i++ {
		b.Append(i)
	}

	last := b.Last(2)
	if len(last) != 2 {
		t.Fatalf("expected 2 values, got %d", len(last))
	}
	if last[0] != 5 || last[1] != 6 {
		t.Errorf("expected [5 6], got %v", last)
	}

	// Asking for more than held returns everything.
	all := b.Last(100)
	if len(all) != 4 {
		t.Errorf("expected 4 values, got %d", len(all))
	}

	if b.Last(0) != nil {
		t.Error("expected nil for n=0")
	}
}

func TestLenNeverExceedsCapacity(t *testing.T) {
	b := New[int](100)
	for i := 0; i < 500; i++ {
		b.Append(i)
		if b.Len() > 100 {
			t.Fatalf("len %d exceeds capacity after %d appends", b.Len(), i+1)
		}
	}
	if b.Len() != 100 {
		t.Errorf("expected len 100, got %d", b.Len())
	}
}

func TestZeroCapacityNormalized(t *testing.T) {
	b := New[string](0)
	if b.Cap() != 1 {
		t.Fatalf("expected capacity 1, got %d", b.Cap())
	}

	b.Append("a")
	b.Append("b")

	snap := b.Snapshot()
	if len(snap) != 1 || snap[0] != "b" {
		t.Errorf("expected [b], got %v", snap)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	b := New[int](3)
	b.Append(1)

	snap := b.Snapshot()
	snap[0] = 99

	if b.Snapshot()[0] != 1 {
		t.Error("mutating a snapshot must not affect the buffer")
	}
}
