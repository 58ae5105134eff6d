package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionUp) {
		t.Error("empty frame should not report actions")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)

	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("frame should report set actions")
	}
	if len(f.Order) != 2 || f.Order[0] != ActionUp || f.Order[1] != ActionLeft {
		t.Errorf("Order = %v, expected [Up Left]", f.Order)
	}

	f.Clear()
	if f.Has(ActionUp) || len(f.Order) != 0 {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionPause) {
		t.Error("clone should keep actions after original is cleared")
	}
	if len(clone.Order) != 1 {
		t.Errorf("clone Order length = %d, expected 1", len(clone.Order))
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
