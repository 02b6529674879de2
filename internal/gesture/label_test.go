package gesture

import "testing"

func TestLabels(t *testing.T) {
	got := Labels()
	if len(got) != 7 {
		t.Fatalf("Labels() returned %d labels, want 7", len(got))
	}

	seen := make(map[Label]bool)
	for _, l := range got {
		if seen[l] {
			t.Errorf("duplicate label %q", l)
		}
		seen[l] = true
		if !l.Valid() {
			t.Errorf("%q.Valid() = false", l)
		}
	}

	got[0] = "mutated"
	if Labels()[0] != LabelJijija {
		t.Error("Labels() exposes its backing slice")
	}
}

func TestLabel_Valid(t *testing.T) {
	if Label("thumbs_up").Valid() {
		t.Error(`Label("thumbs_up").Valid() = true, want false`)
	}
	if Label("").Valid() {
		t.Error(`Label("").Valid() = true, want false`)
	}
}

func TestLabel_DisplayName(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{LabelSixSeven, "Sixseven"},
		{LabelThinking, "Thinking"},
		{LabelNone, "None"},
		{Label("open_palm"), "Open Palm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			if got := tt.label.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
