package controller

import (
	"github.com/dnetlabs/smartneighborhood/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
)

var allStatuses = []types.HomeStatus{
	types.HomeStatusOptimizing,
	types.HomeStatusCharging,
	types.HomeStatusIdle,
	types.HomeStatusHeating,
	types.HomeStatusExporting,
}

// Metrics exposes the latest refresh as Prometheus gauges.
type Metrics struct {
	refreshes       prometheus.Counter
	refreshErrors   prometheus.Counter
	solarKW         prometheus.Gauge
	batteryKW       prometheus.Gauge
	gridKW          prometheus.Gauge
	selfConsumption prometheus.Gauge
	homes           *prometheus.GaugeVec
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "neighborhood_refreshes_total",
			Help: "Total snapshots published.",
		}),
		refreshErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "neighborhood_refresh_errors_total",
			Help: "Total refreshes that failed.",
		}),
		solarKW: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "neighborhood_solar_kw",
			Help: "Solar power across the fleet in kW.",
		}),
		batteryKW: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "neighborhood_battery_kw",
			Help: "Signed battery power across the fleet in kW (positive is charging).",
		}),
		gridKW: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "neighborhood_grid_kw",
			Help: "Grid exchange for the current hour in kW (negative is export).",
		}),
		selfConsumption: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "neighborhood_self_consumption_percent",
			Help: "Share of the day's solar generation consumed on site.",
		}),
		homes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "neighborhood_homes",
			Help: "Homes by derived status.",
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.refreshes,
		m.refreshErrors,
		m.solarKW,
		m.batteryKW,
		m.gridKW,
		m.selfConsumption,
		m.homes,
	)
	return m
}

func (m *Metrics) observe(s *Snapshot) {
	m.refreshes.Inc()
	m.solarKW.Set(s.Stats.TotalSolarKW)
	m.batteryKW.Set(s.Stats.TotalBatteryKW)
	m.gridKW.Set(s.Stats.GridKW)
	m.selfConsumption.Set(s.Stats.SelfConsumptionPercent)

	counts := make(map[types.HomeStatus]int, len(allStatuses))
	for _, h := range s.Homes {
		counts[h.Status]++
	}
	// every status is set so a status that drops to zero homes is reported
	for _, st := range allStatuses {
		m.homes.WithLabelValues(string(st)).Set(float64(counts[st]))
	}
}
