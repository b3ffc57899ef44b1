package kernel

import (
	"time"

	"or1on"
)

// Clock abstracts time.Now() for deterministic testing.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Observer receives kernel events. It is called synchronously, after the
// kernel has released its lock, so it may call back into the kernel.
type Observer func(or1on.Event)
