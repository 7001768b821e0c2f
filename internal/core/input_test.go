package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotateCW)
	f.Set(ActionLeft)

	want := []Action{ActionLeft, ActionRotateCW, ActionLeft}
	if len(f.Actions) != len(want) {
		t.Fatalf("Actions = %v, expected %v", f.Actions, want)
	}
	for i := range want {
		if f.Actions[i] != want[i] {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], want[i])
		}
	}

	if !f.Has(ActionRotateCW) {
		t.Error("Has(RotateCW) should be true")
	}
	if f.Has(ActionSoftDrop) {
		t.Error("Has(SoftDrop) should be false")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionPause) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateCCW.String() != "RotateCCW" {
		t.Errorf("String() = %q", ActionRotateCCW.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q", Action(99).String())
	}
}
