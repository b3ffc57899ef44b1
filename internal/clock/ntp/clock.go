// Package ntp corrects the local clock with an offset measured against an
// NTP pool. It is used for epoch identifiers on hosts whose clocks drift.
package ntp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"or1on/internal/check"
	"or1on/internal/clock"

	"github.com/beevik/ntp"
)

const (
	DefaultPool    = "pool.ntp.org"
	defaultTimeout = 5 * time.Second
)

var _ clock.Clock = (*Clock)(nil)

type Phase uint8

const (
	PhaseUnchecked Phase = iota + 1
	PhaseSynced
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseUnchecked:
		return "unchecked"
	case PhaseSynced:
		return "synced"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

func (p Phase) Transition(to Phase) Phase {
	ok := false
	switch p {
	case PhaseUnchecked, PhaseSynced, PhaseError:
		ok = to == PhaseSynced || to == PhaseError
	}
	check.Assertf(ok, "ntp clock transition: %s -> %s", p, to)
	if !ok {
		return p
	}
	return to
}

// Status is the outcome of the last Sync.
type Status struct {
	Offset   time.Duration
	Phase    Phase
	Error    string
	SyncedAt time.Time
}

// QueryFunc measures the local clock's offset against host.
type QueryFunc func(ctx context.Context, host string) (time.Duration, error)

// Clock is the system clock shifted by the offset measured at the last
// successful Sync. Until then, or after a failed Sync, the offset is zero.
type Clock struct {
	pool  string
	query QueryFunc
	base  clock.Clock

	mu     sync.RWMutex
	status Status
}

type Option func(*Clock)

// WithPool sets the NTP host to query.
func WithPool(pool string) Option {
	return func(c *Clock) {
		if pool != "" {
			c.pool = pool
		}
	}
}

// WithQuery replaces the NTP query, for tests.
func WithQuery(q QueryFunc) Option {
	return func(c *Clock) {
		if q != nil {
			c.query = q
		}
	}
}

// WithBase sets the clock the offset is applied to.
func WithBase(base clock.Clock) Option {
	return func(c *Clock) {
		if base != nil {
			c.base = base
		}
	}
}

func New(opts ...Option) *Clock {
	c := &Clock{
		pool:   DefaultPool,
		query:  queryPool,
		base:   clock.Real{},
		status: Status{Phase: PhaseUnchecked},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sync measures the offset once. A failure resets the offset to zero and is
// returned; the clock stays usable either way.
func (c *Clock) Sync(ctx context.Context) error {
	offset, err := c.query(ctx, c.pool)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.base.Now()
	if err != nil {
		c.status = Status{
			Phase:    c.status.Phase.Transition(PhaseError),
			Error:    err.Error(),
			SyncedAt: now,
		}
		return fmt.Errorf("query ntp pool %s: %w", c.pool, err)
	}
	c.status = Status{
		Offset:   offset,
		Phase:    c.status.Phase.Transition(PhaseSynced),
		SyncedAt: now,
	}
	return nil
}

// Now returns the base time corrected by the last measured offset.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	offset := c.status.Offset
	c.mu.RUnlock()
	return c.base.Now().Add(offset)
}

func (c *Clock) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func queryPool(ctx context.Context, host string) (time.Duration, error) {
	timeout := defaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return 0, ctx.Err()
		}
	}
	resp, err := ntp.QueryWithOptions(host, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return 0, err
	}
	if err := resp.Validate(); err != nil {
		return 0, err
	}
	return resp.ClockOffset, nil
}
