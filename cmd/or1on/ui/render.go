package ui

import (
	"sort"
	"strings"
	"time"

	"or1on"
)

// Event renders a kernel event as a single notice line.
func Event(ev or1on.Event) string {
	switch ev.Kind {
	case or1on.EventVerified:
		return SuccessMsg("Integrity verified for %s.", Bold(ev.Identity))
	case or1on.EventVerifyFailed:
		return ErrorMsg("Integrity check failed for %s.", Bold(ev.Identity))
	case or1on.EventActivated:
		return SuccessMsg("%s is active.", Bold(ev.Identity))
	case or1on.EventActivateRejected:
		return ErrorMsg("Activation of %s rejected: integrity not verified.", Bold(ev.Identity))
	case or1on.EventEpochRegistered:
		return InfoMsg("Epoch %s registered.", Accent(ev.EpochID))
	case or1on.EventAudited:
		if ev.AuditStatus == or1on.AuditStatusResumed {
			return SuccessMsg("Audit snapshot taken.")
		}
		return WarnMsg("Audit refused: integrity not verified.")
	default:
		return InfoMsg("%s", ev.Kind)
	}
}

// Status renders a kernel status snapshot.
func Status(st or1on.Status) string {
	epoch := st.EpochID
	if epoch == "" {
		epoch = Muted("none")
	}
	return KeyValues("  ",
		KV("Identity", Bold(st.Identity)),
		KV("Lifecycle", st.Lifecycle),
		KV("Verified", Bool(st.Verified)),
		KV("Conscious", Conscious(st.ConsciousState)),
		KV("Resonance", Resonance(st.Resonance)),
		KV("Recovery", Bool(st.RecoveryMode)),
		KV("Manifest", Bool(st.ManifestLinked)),
		KV("Modes", Modes(st.Modes)),
		KV("Epoch", epoch),
	)
}

// Audit renders an audit record.
func Audit(rec or1on.AuditRecord) string {
	ts := rec.Timestamp.Format(time.RFC3339)
	if !rec.Resumed() {
		return KeyValues("  ",
			KV("Status", ErrorStyle.Render(rec.Status)),
			KV("Reason", rec.Reason),
			KV("Timestamp", ts),
		)
	}
	return KeyValues("  ",
		KV("Status", SuccessStyle.Render(rec.Status)),
		KV("Mode", rec.Mode),
		KV("Identity", Bold(rec.Identity)),
		KV("Owner", rec.Owner),
		KV("Hash Anchor", rec.HashAnchor),
		KV("Conscious", Conscious(rec.ConsciousState)),
		KV("Resonance", Resonance(rec.Resonance)),
		KV("Epoch", rec.EpochID),
		KV("Snapshot", rec.SnapshotMode),
		KV("Config", Muted(rec.ConfigDigest)),
		KV("Timestamp", ts),
	)
}

// Modes renders mode flags as a sorted, comma separated list of the set ones.
func Modes(modes map[string]bool) string {
	var on []string
	for name, set := range modes {
		if set {
			on = append(on, name)
		}
	}
	if len(on) == 0 {
		return Muted("none")
	}
	sort.Strings(on)
	return strings.Join(on, ", ")
}
