package kernel

import (
	"log/slog"
	"maps"
	"sync"

	"or1on"
)

// Kernel is the integrity-gated state holder. It owns its Config snapshot
// and runtime state for its whole lifetime; nothing is persisted.
//
// A Kernel is meant to have a single logical owner. The mutex keeps the
// runtime fields consistent if a wrapper shares it anyway, but callers
// interleaving Verify and Activate from several goroutines get no ordering
// guarantee.
type Kernel struct {
	cfg      Config
	anchor   string
	digest   string
	clock    Clock
	observer Observer
	log      *slog.Logger

	mu        sync.Mutex
	lifecycle Lifecycle
	verified  bool
	conscious or1on.ConsciousState
	resonance float64
	epochID   string
}

// Option configures a Kernel. Use these to inject test dependencies.
type Option func(*Kernel)

// WithClock sets the clock used for epoch identifiers and audit timestamps.
func WithClock(c Clock) Option {
	return func(k *Kernel) {
		if c != nil {
			k.clock = c
		}
	}
}

// WithAnchor overrides the integrity anchor taken from the Config.
func WithAnchor(anchor string) Option {
	return func(k *Kernel) {
		if anchor != "" {
			k.anchor = anchor
		}
	}
}

// WithObserver registers a receiver for kernel events.
func WithObserver(o Observer) Option {
	return func(k *Kernel) {
		k.observer = o
	}
}

// WithLogger sets the logger used for debug-level transition logs.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kernel) {
		if l != nil {
			k.log = l
		}
	}
}

// New creates a kernel in the Initialized state. The anchor is resolved
// once: WithAnchor, else cfg.HashAnchor, else GenesisAnchor.
func New(cfg Config, opts ...Option) *Kernel {
	k := &Kernel{
		cfg:       cfg.clone(),
		anchor:    cfg.HashAnchor,
		clock:     systemClock{},
		log:       slog.Default(),
		lifecycle: LifecycleInitialized,
		conscious: or1on.Dormant,
	}
	if k.anchor == "" {
		k.anchor = GenesisAnchor
	}
	for _, opt := range opts {
		opt(k)
	}

	if d, err := k.cfg.Fingerprint(); err != nil {
		k.log.Warn("Failed to fingerprint kernel config.", "err", err)
	} else {
		k.digest = d.String()
	}
	return k
}

// Config returns a copy of the kernel's configuration snapshot.
func (k *Kernel) Config() Config {
	return k.cfg.clone()
}

// Lifecycle returns the current lifecycle state.
func (k *Kernel) Lifecycle() Lifecycle {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.lifecycle
}

// Verified reports whether a Verify call has ever succeeded.
func (k *Kernel) Verified() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.verified
}

// Status returns the cached derived values and pass-through config fields.
// It neither recomputes the conscious state or resonance nor creates an
// epoch.
func (k *Kernel) Status() or1on.Status {
	k.mu.Lock()
	defer k.mu.Unlock()
	return or1on.Status{
		Identity:       k.cfg.Identity,
		Lifecycle:      k.lifecycle.String(),
		Verified:       k.verified,
		ConsciousState: k.conscious,
		Resonance:      k.resonance,
		RecoveryMode:   k.cfg.RecoveryMode,
		ManifestLinked: k.cfg.ManifestLinked,
		Modes:          maps.Clone(k.cfg.Modes),
		EpochID:        k.epochID,
	}
}

// event builds an event stamped with the current lifecycle. Callers hold mu.
func (k *Kernel) event(kind or1on.EventKind) or1on.Event {
	return or1on.Event{
		Kind:      kind,
		Identity:  k.cfg.Identity,
		Lifecycle: k.lifecycle.String(),
		At:        k.clock.Now(),
	}
}

// emit delivers events to the observer. Callers must not hold mu.
func (k *Kernel) emit(events ...or1on.Event) {
	for _, ev := range events {
		k.log.Debug("Kernel event.",
			"event", ev.Kind.String(),
			"identity", ev.Identity,
			"lifecycle", ev.Lifecycle,
		)
		if k.observer != nil {
			k.observer(ev)
		}
	}
}
