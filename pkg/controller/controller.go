package controller

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dnetlabs/smartneighborhood/pkg/fleet"
	"github.com/dnetlabs/smartneighborhood/pkg/log"
	"github.com/dnetlabs/smartneighborhood/pkg/pricing"
	"github.com/dnetlabs/smartneighborhood/pkg/schedule"
	"github.com/dnetlabs/smartneighborhood/pkg/types"
)

// Snapshot is everything the dashboard shows for one refresh. A published
// snapshot is never modified; consumers must treat it as read-only.
type Snapshot struct {
	GeneratedAt time.Time        `json:"generatedAt"`
	Hour        int              `json:"hour"`
	Schedule    types.Schedule   `json:"schedule"`
	Homes       []types.Home     `json:"homes"`
	Stats       types.FleetStats `json:"stats"`
}

// Controller regenerates the neighborhood data on each refresh and publishes
// it as a new snapshot.
type Controller struct {
	prices   *pricing.Model
	fleet    *fleet.Config
	location *time.Location
	metrics  *Metrics

	// mu serializes refreshes since they share src
	mu  sync.Mutex
	src rand.Source

	latest atomic.Pointer[Snapshot]
}

// NewController creates a new Controller. A nil src generates noise-free
// schedules and a nil location means UTC.
func NewController(prices *pricing.Model, f *fleet.Config, src rand.Source, loc *time.Location) *Controller {
	if loc == nil {
		loc = time.UTC
	}
	return &Controller{
		prices:   prices,
		fleet:    f,
		src:      src,
		location: loc,
	}
}

// SetMetrics attaches metrics that are updated after every refresh.
func (c *Controller) SetMetrics(m *Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = m
}

// Location returns the time zone the controller evaluates hours in.
func (c *Controller) Location() *time.Location {
	return c.location
}

// Latest returns the most recent snapshot or nil if there has not been a
// successful refresh yet.
func (c *Controller) Latest() *Snapshot {
	return c.latest.Load()
}

// Refresh builds a new snapshot for the reference time now and publishes it.
// Readers observe either the previous snapshot or the new one, never a
// partially built one.
func (c *Controller) Refresh(ctx context.Context, now time.Time) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.build(now)
	if err != nil {
		if c.metrics != nil {
			c.metrics.refreshErrors.Inc()
		}
		log.Ctx(ctx).ErrorContext(ctx, "refresh failed", slog.Any("error", err))
		return nil, err
	}
	c.latest.Store(snap)
	if c.metrics != nil {
		c.metrics.observe(snap)
	}

	log.Ctx(ctx).DebugContext(ctx, "refreshed snapshot",
		slog.Time("generatedAt", snap.GeneratedAt),
		slog.Int("hour", snap.Hour),
		slog.Int("homes", len(snap.Homes)),
		slog.Float64("gridKW", snap.Stats.GridKW),
	)
	return snap, nil
}

func (c *Controller) build(now time.Time) (*Snapshot, error) {
	synth := schedule.Synthesizer{Prices: *c.prices}
	day, err := synth.Generate(c.src)
	if err != nil {
		return nil, fmt.Errorf("failed to generate schedule: %w", err)
	}

	local := now.In(c.location)
	homes := fleet.Annotate(c.fleet.Homes)
	stats, err := fleet.ComputeFleetStats(homes, day, local.Hour(), c.fleet.Estimates)
	if err != nil {
		return nil, fmt.Errorf("failed to compute fleet stats: %w", err)
	}

	return &Snapshot{
		GeneratedAt: local,
		Hour:        local.Hour(),
		Schedule:    day,
		Homes:       homes,
		Stats:       stats,
	}, nil
}
