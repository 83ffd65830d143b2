package types

// Estimates are display figures that are not derived by this system, such as
// monthly savings reported by billing. They are passed through to FleetStats
// unchanged.
type Estimates struct {
	MonthlySavingsEUR float64 `json:"monthlySavingsEUR"`
	CO2SavedTons      float64 `json:"co2SavedTons"`
	Trends            Trends  `json:"trends"`
}

// Trends holds period-over-period changes in percent.
type Trends struct {
	SavingsPercent         float64 `json:"savingsPercent"`
	CO2Percent             float64 `json:"co2Percent"`
	SelfConsumptionPercent float64 `json:"selfConsumptionPercent"`
}

// DefaultEstimates returns the figures shown when nothing else is configured.
func DefaultEstimates() Estimates {
	return Estimates{
		MonthlySavingsEUR: 1247.50,
		CO2SavedTons:      2.4,
		Trends: Trends{
			SavingsPercent:         12,
			CO2Percent:             8,
			SelfConsumptionPercent: 5,
		},
	}
}

// FleetStats is the fleet-wide rollup shown on the dashboard. It is always
// recomputed from the fleet and the schedule, never stored.
type FleetStats struct {
	TotalHomes             int     `json:"totalHomes"`
	TotalSolarKW           float64 `json:"totalSolarKW"`
	TotalBatteryKW         float64 `json:"totalBatteryKW"` // Positive for charge, negative for discharge
	GridKW                 float64 `json:"gridKW"`         // + import, - export
	SelfConsumptionPercent float64 `json:"selfConsumptionPercent"`
	MonthlySavingsEUR      float64 `json:"monthlySavingsEUR"`
	CO2SavedTons           float64 `json:"co2SavedTons"`
	Trends                 Trends  `json:"trends"`
}
