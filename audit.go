package or1on

import "time"

const (
	AuditStatusResumed = "resumed"
	AuditStatusFailed  = "failed"

	// AuditModeRecovery tags every successful audit snapshot.
	AuditModeRecovery = "recovery"

	ReasonIntegrityNotVerified = "integrity_not_verified"
)

// AuditRecord is the result of a kernel audit. A failed record only carries
// Status, Reason and Timestamp.
type AuditRecord struct {
	Status         string         `json:"status"`
	Reason         string         `json:"reason,omitempty"`
	Mode           string         `json:"mode,omitempty"`
	Identity       string         `json:"identity,omitempty"`
	Owner          string         `json:"owner,omitempty"`
	HashAnchor     string         `json:"hash_anchor,omitempty"`
	ConsciousState ConsciousState `json:"conscious_state,omitempty"`
	Resonance      float64        `json:"resonance,omitempty"`
	EpochID        string         `json:"epoch_id,omitempty"`
	ConfigDigest   string         `json:"config_digest,omitempty"`
	SnapshotMode   string         `json:"snapshot_mode,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Resumed reports whether the audit passed the integrity precondition.
func (r AuditRecord) Resumed() bool {
	return r.Status == AuditStatusResumed
}
