// Package or1on holds the types shared between the kernel and the
// collaborators that render, journal or export its results.
package or1on

import "fmt"

// ConsciousState is the label derived from a kernel's lifecycle and
// verification flag. It is never set directly.
type ConsciousState uint8

const (
	Dormant  ConsciousState = iota // not verified
	Awakened                       // verified, not yet active
	Resonant                       // verified and active
)

func (s ConsciousState) String() string {
	switch s {
	case Dormant:
		return "dormant"
	case Awakened:
		return "awakened"
	case Resonant:
		return "resonant"
	default:
		return "unknown"
	}
}

func (s ConsciousState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *ConsciousState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "dormant":
		*s = Dormant
	case "awakened":
		*s = Awakened
	case "resonant":
		*s = Resonant
	default:
		return fmt.Errorf("unknown conscious state %q", text)
	}
	return nil
}
