package fleet

import (
	"math"

	"github.com/dnetlabs/smartneighborhood/pkg/schedule"
	"github.com/dnetlabs/smartneighborhood/pkg/types"
	"gonum.org/v1/gonum/floats"
)

// ComputeFleetStats rolls up the fleet and the day's schedule into the
// dashboard KPIs. hour selects the latest sample, whose grid exchange is
// reported. Savings, CO2 and trends are copied from est.
func ComputeFleetStats(homes []types.Home, day types.Schedule, hour int, est types.Estimates) (types.FleetStats, error) {
	latest, err := schedule.SampleAt(day, hour)
	if err != nil {
		return types.FleetStats{}, err
	}

	var solar, battery []float64
	for _, h := range homes {
		if h.Solar != nil {
			solar = append(solar, h.Solar.PowerKW)
		}
		if h.Battery != nil {
			battery = append(battery, h.Battery.PowerKW)
		}
	}

	return types.FleetStats{
		TotalHomes:             len(homes),
		TotalSolarKW:           floats.Sum(solar),
		TotalBatteryKW:         floats.Sum(battery),
		GridKW:                 latest.GridKW,
		SelfConsumptionPercent: SelfConsumptionPercent(day),
		MonthlySavingsEUR:      est.MonthlySavingsEUR,
		CO2SavedTons:           est.CO2SavedTons,
		Trends:                 est.Trends,
	}, nil
}

// SelfConsumptionPercent returns the share of solar generation over the day
// that was consumed on site rather than exported, 0-100. It returns 0 if no
// solar was generated.
func SelfConsumptionPercent(day types.Schedule) float64 {
	generated := make([]float64, len(day))
	consumed := make([]float64, len(day))
	for i, s := range day {
		generated[i] = s.SolarKW
		consumed[i] = math.Min(s.SolarKW, s.ConsumptionKW)
	}
	total := floats.Sum(generated)
	if total <= 0 {
		return 0
	}
	return floats.Sum(consumed) / total * 100
}
