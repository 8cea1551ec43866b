package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionThrust) {
		t.Error("fresh frame reports thrust")
	}

	f.Set(ActionThrust)
	f.Set(ActionRotateLeft)
	if !f.Has(ActionThrust) || !f.Has(ActionRotateLeft) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionRotateRight) {
		t.Error("unset action reported")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionThrust) {
		t.Error("clear left thrust set")
	}
	if !clone.Has(ActionThrust) {
		t.Error("clone shares storage with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero-value frame reports actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero-value frame did not stick")
	}
}

func TestActionStrings(t *testing.T) {
	actions := []Action{
		ActionNone, ActionRotateLeft, ActionRotateRight,
		ActionThrust, ActionPause, ActionRestart, ActionQuit,
	}
	seen := map[string]bool{}
	for _, a := range actions {
		s := a.String()
		if s == "" || s == "Unknown" {
			t.Errorf("action %d has bad name %q", a, s)
		}
		if seen[s] {
			t.Errorf("duplicate action name %q", s)
		}
		seen[s] = true
	}
}
