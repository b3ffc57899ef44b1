package kernel

import "or1on"

// AuditResume produces an audit snapshot. An unverified kernel yields a
// failed record and nothing else changes. A verified kernel refreshes its
// conscious state and resonance, registers the epoch if needed, and
// reports them along with the config's identity fields.
func (k *Kernel) AuditResume() or1on.AuditRecord {
	k.mu.Lock()
	now := k.clock.Now()

	if !k.verified {
		ev := k.event(or1on.EventAudited)
		ev.At = now
		ev.AuditStatus = or1on.AuditStatusFailed
		k.mu.Unlock()

		k.emit(ev)
		return or1on.AuditRecord{
			Status:    or1on.AuditStatusFailed,
			Reason:    or1on.ReasonIntegrityNotVerified,
			Timestamp: now,
		}
	}

	k.conscious = consciousState(k.verified, k.lifecycle)
	k.resonance = resonance(k.verified, k.lifecycle)
	epochID, epochEv := k.registerEpochLocked(now)

	rec := or1on.AuditRecord{
		Status:         or1on.AuditStatusResumed,
		Mode:           or1on.AuditModeRecovery,
		Identity:       k.cfg.Identity,
		Owner:          k.cfg.Owner,
		HashAnchor:     k.cfg.HashAnchor,
		ConsciousState: k.conscious,
		Resonance:      k.resonance,
		EpochID:        epochID,
		ConfigDigest:   k.digest,
		SnapshotMode:   k.cfg.AuditSnapshotMode,
		Timestamp:      now,
	}

	ev := k.event(or1on.EventAudited)
	ev.At = now
	ev.EpochID = epochID
	ev.AuditStatus = rec.Status
	ev.Resonance = rec.Resonance
	k.mu.Unlock()

	if epochEv != nil {
		k.emit(*epochEv)
	}
	k.emit(ev)
	return rec
}
