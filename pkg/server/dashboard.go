package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dnetlabs/smartneighborhood/pkg/controller"
	"github.com/dnetlabs/smartneighborhood/pkg/fleet"
	"github.com/dnetlabs/smartneighborhood/pkg/log"
	"github.com/dnetlabs/smartneighborhood/pkg/schedule"
	"github.com/dnetlabs/smartneighborhood/pkg/types"
)

// homeDetail is a home plus the figures only shown in its detail panel.
type homeDetail struct {
	types.Home
	SolarEfficiencyPercent float64 `json:"solarEfficiencyPercent"`
}

type clockResponse struct {
	Time      string    `json:"time"`
	Timestamp time.Time `json:"timestamp"`
}

// snapshot returns the latest snapshot or writes a 503 and returns nil.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) *controller.Snapshot {
	snap := s.controller.Latest()
	if snap == nil {
		log.Ctx(r.Context()).WarnContext(r.Context(), "no snapshot available yet", slog.String("path", r.URL.Path))
		writeJSONError(w, "data not available yet", http.StatusServiceUnavailable)
		return nil
	}
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.Header().Set("Last-Modified", snap.GeneratedAt.UTC().Format(http.TimeFormat))
	return snap
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}
	writeJSON(w, snap.Schedule)
}

// handleCurrentSample returns the sample for the hour the snapshot was built
// for, the same hour its fleet stats use.
func (s *Server) handleCurrentSample(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}
	sample, err := schedule.SampleAt(snap.Schedule, snap.Hour)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to get current sample", slog.Int("hour", snap.Hour), slog.Any("error", err))
		writeJSONError(w, "failed to get current sample", http.StatusInternalServerError)
		return
	}
	writeJSON(w, sample)
}

func (s *Server) handleHomes(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}
	homes := snap.Homes
	if homes == nil {
		homes = []types.Home{}
	}
	writeJSON(w, homes)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeJSONError(w, "invalid home id", http.StatusBadRequest)
		return
	}
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}
	home, ok := fleet.Find(snap.Homes, id)
	if !ok {
		writeJSONError(w, "home not found", http.StatusNotFound)
		return
	}
	writeJSON(w, homeDetail{
		Home:                   home,
		SolarEfficiencyPercent: fleet.SolarEfficiencyPercent(home.Solar),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w, r)
	if snap == nil {
		return
	}
	writeJSON(w, snap.Stats)
}

// handleClock serves the live clock. It only reads the server clock and is
// unrelated to when data was last refreshed.
func (s *Server) handleClock(w http.ResponseWriter, r *http.Request) {
	now := s.now().In(s.controller.Location())
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, clockResponse{
		Time:      now.Format("15:04:05"),
		Timestamp: now,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	snap, err := s.controller.Refresh(ctx, s.now())
	if err != nil {
		writeJSONError(w, "failed to refresh", http.StatusInternalServerError)
		return
	}
	log.Ctx(ctx).InfoContext(ctx, "manual refresh", slog.Time("generatedAt", snap.GeneratedAt))
	writeJSON(w, snap)
}
