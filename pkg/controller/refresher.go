package controller

import (
	"context"
	"log/slog"
	"time"

	"github.com/dnetlabs/smartneighborhood/pkg/log"
	"github.com/robfig/cron/v3"
)

// Refresher triggers a refresh on a fixed interval. It is the data refresh
// tick and has nothing to do with any clock shown to users.
type Refresher struct {
	cron *cron.Cron
}

// NewRefresher schedules c.Refresh every interval using now as the reference
// time. Call Start to begin and Stop to end.
func NewRefresher(ctx context.Context, c *Controller, interval time.Duration, now func() time.Time) *Refresher {
	ctx = log.WithAttrs(ctx, slog.String("component", "refresher"))
	cr := cron.New()
	cr.Schedule(cron.Every(interval), cron.FuncJob(func() {
		// Refresh logs its own failures
		_, _ = c.Refresh(ctx, now())
	}))
	log.Ctx(ctx).DebugContext(ctx, "refresh scheduled", slog.Duration("interval", interval))
	return &Refresher{cron: cr}
}

// Start begins running refreshes in the background.
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop stops scheduling refreshes and waits for a running one to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}
