//go:build !debug

package kernel

import "testing"

func TestLifecycleTransition(t *testing.T) {
	tests := []struct {
		from, to, want Lifecycle
	}{
		{LifecycleInitialized, LifecycleVerified, LifecycleVerified},
		{LifecycleInitialized, LifecycleActive, LifecycleInitialized},
		{LifecycleInitialized, LifecycleInitialized, LifecycleInitialized},
		{LifecycleVerified, LifecycleVerified, LifecycleVerified},
		{LifecycleVerified, LifecycleActive, LifecycleActive},
		{LifecycleVerified, LifecycleInitialized, LifecycleVerified},
		{LifecycleActive, LifecycleActive, LifecycleActive},
		{LifecycleActive, LifecycleVerified, LifecycleActive},
		{LifecycleActive, LifecycleInitialized, LifecycleActive},
	}

	for _, tt := range tests {
		if got := tt.from.Transition(tt.to); got != tt.want {
			t.Errorf("%s.Transition(%s) = %s, want %s", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestLifecycleString(t *testing.T) {
	if got := Lifecycle(42).String(); got != "unknown" {
		t.Fatalf("String() = %q, want unknown", got)
	}
}
