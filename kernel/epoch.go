package kernel

import (
	"time"

	"or1on"
)

const (
	epochPrefix = "epoch_"
	epochLayout = "20060102_150405"
)

// RegisterLocalEpoch returns the kernel's epoch identifier, creating it from
// the current clock time on first call. Later calls return the same value.
//
// Identifiers have one-second granularity. Two kernels registering within
// the same second get the same identifier; nothing here prevents that.
func (k *Kernel) RegisterLocalEpoch() string {
	k.mu.Lock()
	id, ev := k.registerEpochLocked(k.clock.Now())
	k.mu.Unlock()

	if ev != nil {
		k.emit(*ev)
	}
	return id
}

// registerEpochLocked returns the epoch, creating it at now, and when it was
// just created the event to emit once mu is released.
func (k *Kernel) registerEpochLocked(now time.Time) (string, *or1on.Event) {
	if k.epochID != "" {
		return k.epochID, nil
	}
	k.epochID = epochPrefix + now.Format(epochLayout)

	ev := k.event(or1on.EventEpochRegistered)
	ev.At = now
	ev.EpochID = k.epochID
	return k.epochID, &ev
}
