package domain

import "testing"

func TestParseModerationAction(t *testing.T) {
	tests := []struct {
		in   string
		want ModerationAction
		ok   bool
	}{
		{in: "Mute", want: ActionMute, ok: true},
		{in: "SUSPEND", want: ActionSuspend, ok: true},
		{in: "ResolveOnly", want: ActionResolveOnly, ok: true},
		{in: "RESOLVE_ONLY", want: ActionResolveOnly, ok: true},
		{in: "Delete", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseModerationAction(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseModerationAction(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseModerationAction(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseReportStatus(t *testing.T) {
	for _, raw := range []string{"Open", "UnderReview", "UNDER_REVIEW", "resolved", "Dismissed"} {
		if _, ok := ParseReportStatus(raw); !ok {
			t.Fatalf("expected %q to parse", raw)
		}
	}
	if _, ok := ParseReportStatus("CLOSED"); ok {
		t.Fatal("expected CLOSED to be rejected")
	}
}
