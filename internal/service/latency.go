package service

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/config"
)

type randomDelayer struct {
	mu  sync.Mutex
	rnd *rand.Rand
	max time.Duration
}

// NewRandomDelayer returns delays drawn uniformly from [0, max). A nil rnd
// uses a randomly seeded PCG source.
func NewRandomDelayer(max time.Duration, rnd *rand.Rand) Delayer {
	if max <= 0 {
		return NoDelay()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &randomDelayer{rnd: rnd, max: max}
}

func (d *randomDelayer) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return time.Duration(d.rnd.Int64N(int64(d.max)))
}

type noDelay struct{}

// NoDelay returns a Delayer that never waits.
func NoDelay() Delayer {
	return noDelay{}
}

func (noDelay) Delay() time.Duration { return 0 }

// NewDelayer picks the latency strategy configured for the source.
func NewDelayer(cfg config.Source) Delayer {
	if cfg.NoLatency {
		return NoDelay()
	}
	return NewRandomDelayer(cfg.MaxLatency, nil)
}
