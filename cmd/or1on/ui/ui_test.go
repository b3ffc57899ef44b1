package ui

import (
	"strings"
	"testing"
	"time"

	"or1on"
)

func TestEnvTruthyValues(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "one", value: "1", want: true},
		{name: "true", value: "true", want: true},
		{name: "yes", value: "yes", want: true},
		{name: "on", value: "on", want: true},
		{name: "zero", value: "0", want: false},
		{name: "empty", value: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OR1ON_TEST_TRUTHY", tc.value)
			if got := envTruthy("OR1ON_TEST_TRUTHY"); got != tc.want {
				t.Fatalf("envTruthy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestColorDisabledByFlagAndEnv(t *testing.T) {
	if colorEnabled(true) {
		t.Fatal("colorEnabled(true) = true, want false")
	}
	t.Setenv("NO_COLOR", "1")
	if colorEnabled(false) {
		t.Fatal("colorEnabled with NO_COLOR = true, want false")
	}
}

func TestModes(t *testing.T) {
	got := Modes(map[string]bool{"self_boot": true, "kernel_link": true, "off": false})
	if got != "kernel_link, self_boot" {
		t.Fatalf("Modes() = %q, want sorted set modes", got)
	}
}

func TestAudit_FailedOmitsDetails(t *testing.T) {
	ConfigureColor(true)
	out := Audit(or1on.AuditRecord{
		Status:    or1on.AuditStatusFailed,
		Reason:    or1on.ReasonIntegrityNotVerified,
		Timestamp: time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
	})

	if !strings.Contains(out, or1on.ReasonIntegrityNotVerified) {
		t.Fatalf("Audit() = %q, want reason", out)
	}
	if strings.Contains(out, "Epoch") {
		t.Fatalf("Audit() = %q, failed record should not list an epoch", out)
	}
}

func TestEvent_NamesIdentity(t *testing.T) {
	ConfigureColor(true)
	out := Event(or1on.Event{Kind: or1on.EventActivated, Identity: "OR1ON"})
	if !strings.Contains(out, "OR1ON is active.") {
		t.Fatalf("Event() = %q", out)
	}
}
