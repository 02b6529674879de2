package tray

import (
	"testing"

	"github.com/ayusman/memecam/internal/gesture"
)

func TestNew(t *testing.T) {
	tr := New()
	if !tr.IsEnabled() {
		t.Error("new Tray should start enabled")
	}
}

func TestTray_HandleToggle(t *testing.T) {
	tr := New()

	var got []bool
	tr.OnToggle(func(enabled bool) {
		got = append(got, enabled)
	})

	tr.handleToggle()
	if tr.IsEnabled() {
		t.Error("IsEnabled() = true after first toggle")
	}
	tr.handleToggle()
	if !tr.IsEnabled() {
		t.Error("IsEnabled() = false after second toggle")
	}

	if len(got) != 2 || got[0] != false || got[1] != true {
		t.Errorf("toggle callbacks = %v, want [false true]", got)
	}
}

func TestTray_SetGestureBeforeReady(t *testing.T) {
	tr := New()
	// Must not panic before the menu exists.
	tr.SetGesture(gesture.LabelJijija)
}

func TestGestureTitle(t *testing.T) {
	tests := []struct {
		label gesture.Label
		want  string
	}{
		{gesture.LabelNone, "Gesture: None"},
		{gesture.LabelSixSeven, "Gesture: Sixseven"},
		{gesture.LabelThinking, "Gesture: Thinking"},
	}
	for _, tt := range tests {
		if got := GestureTitle(tt.label); got != tt.want {
			t.Errorf("GestureTitle(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestToggleTitle(t *testing.T) {
	if toggleTitle(true) != enabledTitle || toggleTitle(false) != disabledTitle {
		t.Error("toggleTitle() returned the wrong title")
	}
}
