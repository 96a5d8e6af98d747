package climb

import "testing"

func TestInputTrackerKeyDownUp(t *testing.T) {
	tr := NewInputTracker(nil)

	tr.KeyDown("ArrowUp")
	tr.KeyDown("Shift")
	got := tr.Snapshot()
	if !got.Up || !got.Fast || got.Down || got.Left || got.Right {
		t.Fatalf("Snapshot() = %+v, want Up and Fast held", got)
	}

	tr.KeyUp("ArrowUp")
	got = tr.Snapshot()
	if got.Up {
		t.Error("Up still held after KeyUp")
	}
	if !got.Fast {
		t.Error("Fast released by unrelated KeyUp")
	}
}

func TestInputTrackerIgnoresUnknownKeys(t *testing.T) {
	tr := NewInputTracker(nil)
	tr.KeyDown("a")
	tr.KeyDown("Escape")
	tr.KeyUp("Space")
	if got := tr.Snapshot(); got != (InputState{}) {
		t.Errorf("Snapshot() = %+v, want zero state", got)
	}
}

func TestInputTrackerHoldWithoutRepeatSuppression(t *testing.T) {
	tr := NewInputTracker(nil)
	for i := 0; i < 3; i++ {
		tr.KeyDown("Left")
	}
	if !tr.Snapshot().Left {
		t.Fatal("Left should be held")
	}
	tr.KeyUp("Left")
	if tr.Snapshot().Left {
		t.Error("a single KeyUp should release Left")
	}
}

func TestInputTrackerSnapshotIsACopy(t *testing.T) {
	tr := NewInputTracker(nil)
	tr.KeyDown("Right")
	snap := tr.Snapshot()
	tr.KeyUp("Right")
	if !snap.Right {
		t.Error("snapshot changed after a later KeyUp")
	}
}

func TestInputTrackerReset(t *testing.T) {
	tr := NewInputTracker(nil)
	tr.KeyDown("Up")
	tr.KeyDown("Right Shift")
	tr.Reset()
	if got := tr.Snapshot(); got != (InputState{}) {
		t.Errorf("Snapshot() after Reset = %+v, want zero state", got)
	}
}

func TestInputTrackerCustomBindings(t *testing.T) {
	tr := NewInputTracker(Bindings{"W": ControlUp, "Left Ctrl": ControlFast})
	tr.KeyDown("W")
	tr.KeyDown("ArrowUp") // not bound any more
	tr.KeyDown("Left Ctrl")
	got := tr.Snapshot()
	if !got.Up || !got.Fast {
		t.Errorf("Snapshot() = %+v, want Up and Fast", got)
	}
}

func TestInputStateSole(t *testing.T) {
	tests := []struct {
		in   InputState
		want Direction
	}{
		{InputState{}, DirNone},
		{InputState{Up: true}, DirUp},
		{InputState{Down: true, Fast: true}, DirDown},
		{InputState{Left: true}, DirLeft},
		{InputState{Right: true}, DirRight},
		{InputState{Up: true, Left: true}, DirNone},
		{InputState{Left: true, Right: true}, DirNone},
		{InputState{Up: true, Down: true, Left: true, Right: true}, DirNone},
	}
	for _, tt := range tests {
		if got := tt.in.Sole(); got != tt.want {
			t.Errorf("%+v.Sole() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseControl(t *testing.T) {
	c, err := ParseControl(" Fast ")
	if err != nil || c != ControlFast {
		t.Errorf("ParseControl(Fast) = %v, %v", c, err)
	}
	if _, err := ParseControl("jump"); err == nil {
		t.Error("ParseControl(jump) should fail")
	}
}

func TestBindingsFrom(t *testing.T) {
	b, err := BindingsFrom(map[string][]string{
		"up":   {"W", "Up"},
		"fast": {"Left Shift"},
	})
	if err != nil {
		t.Fatalf("BindingsFrom() error = %v", err)
	}
	if b["W"] != ControlUp || b["Up"] != ControlUp || b["Left Shift"] != ControlFast {
		t.Errorf("BindingsFrom() = %v", b)
	}

	if _, err := BindingsFrom(map[string][]string{"jump": {"Space"}}); err == nil {
		t.Error("BindingsFrom(jump) should fail")
	}
	if _, err := BindingsFrom(map[string][]string{"up": {"W"}, "down": {"W"}}); err == nil {
		t.Error("BindingsFrom() should reject a key bound twice")
	}
}
