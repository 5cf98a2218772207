package domain

import (
	"testing"
	"time"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{in: "ADMIN", want: RoleAdmin, ok: true},
		{in: "admin", want: RoleAdmin, ok: true},
		{in: " Learner ", want: RoleLearner, ok: true},
		{in: "LanguageExpert", want: RoleLanguageExpert, ok: true},
		{in: "LANGUAGE_EXPERT", want: RoleLanguageExpert, ok: true},
		{in: "SUPERUSER", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if ok != tt.ok {
			t.Fatalf("ParseRole(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseUserStatus(t *testing.T) {
	for _, raw := range []string{"ACTIVE", "flagged", "Muted", "SUSPENDED"} {
		if _, ok := ParseUserStatus(raw); !ok {
			t.Fatalf("expected %q to parse", raw)
		}
	}
	if _, ok := ParseUserStatus("BANNED"); ok {
		t.Fatal("expected BANNED to be rejected")
	}
}

func TestLockoutBarred(t *testing.T) {
	now := time.Now()

	if NoLockout().Barred(now) {
		t.Fatal("cleared lockout must not bar")
	}
	if !IndefiniteLockout().Barred(now) {
		t.Fatal("indefinite lockout must bar")
	}
	if !TimedLockout(now.Add(time.Hour)).Barred(now) {
		t.Fatal("future timed lockout must bar")
	}
	if TimedLockout(now.Add(-time.Hour)).Barred(now) {
		t.Fatal("expired timed lockout must not bar")
	}
}
