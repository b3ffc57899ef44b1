package or1on

import "time"

// EventKind describes what happened to a kernel.
type EventKind uint8

const (
	EventVerified EventKind = iota + 1
	EventVerifyFailed
	EventActivated
	EventActivateRejected
	EventEpochRegistered
	EventAudited
)

func (k EventKind) String() string {
	switch k {
	case EventVerified:
		return "verified"
	case EventVerifyFailed:
		return "verify_failed"
	case EventActivated:
		return "activated"
	case EventActivateRejected:
		return "activate_rejected"
	case EventEpochRegistered:
		return "epoch_registered"
	case EventAudited:
		return "audited"
	default:
		return "unknown"
	}
}

// Event is a single notice emitted by a kernel. Events replace printed
// banners; callers decide how to render them.
type Event struct {
	Kind      EventKind
	Identity  string
	Lifecycle string
	At        time.Time

	EpochID     string  // EventEpochRegistered, EventAudited
	AuditStatus string  // EventAudited
	Resonance   float64 // EventAudited
}
