package reactive

import "testing"

func TestOwnerCleanupsReverseOrder(t *testing.T) {
	owner := NewOwner(nil)
	var order []int

	owner.OnCleanup(func() { order = append(order, 1) })
	owner.OnCleanup(func() { order = append(order, 2) })
	owner.OnCleanup(func() { order = append(order, 3) })

	owner.Dispose()

	want := []int{3, 2, 1}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected cleanup order %v, got %v", want, order)
		}
	}
}

func TestOwnerDisposesChildren(t *testing.T) {
	parent := NewOwner(nil)
	child := NewOwner(parent)
	grandchild := NewOwner(child)

	parent.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("disposing parent should dispose descendants")
	}
}

func TestOwnerCleanupAfterDisposeRunsImmediately(t *testing.T) {
	owner := NewOwner(nil)
	owner.Dispose()

	ran := false
	owner.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("OnCleanup after dispose should run immediately")
	}
}

func TestOwnerDisposeIdempotent(t *testing.T) {
	owner := NewOwner(nil)
	runs := 0
	owner.OnCleanup(func() { runs++ })

	owner.Dispose()
	owner.Dispose()

	if runs != 1 {
		t.Errorf("cleanup should run once, ran %d times", runs)
	}
}

func TestWithOwner(t *testing.T) {
	owner := NewOwner(nil)

	WithOwner(owner, func() {
		if CurrentOwner() != owner {
			t.Error("CurrentOwner should return the owner set by WithOwner")
		}
	})

	if CurrentOwner() == owner {
		t.Error("owner should be restored after WithOwner returns")
	}
}
