package types

import (
	"errors"
	"fmt"
)

// HoursPerDay is the number of samples in a generated day.
const HoursPerDay = 24

// ErrInvalidHour is returned by every per-hour function when given an hour
// outside 0-23.
var ErrInvalidHour = errors.New("invalid hour")

// CheckHour returns an error wrapping ErrInvalidHour if hour is not 0-23.
func CheckHour(hour int) error {
	if hour < 0 || hour >= HoursPerDay {
		return fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}
	return nil
}

// HourlySample represents one hour of aggregated neighborhood energy and price
// data.
type HourlySample struct {
	Hour           int     `json:"hour"`
	ConsumptionKW  float64 `json:"consumptionKW"`  // baseline + active flexible loads
	SolarKW        float64 `json:"solarKW"`        // solar generation
	GridKW         float64 `json:"gridKW"`         // + import, - export
	PriceEURPerKWH float64 `json:"priceEURPerKWH"` // day-ahead price
	OptimizedKW    float64 `json:"optimizedKW"`    // heuristic load-shifted consumption
}

// Schedule is a full day of samples ordered by hour, 0 through 23.
type Schedule []HourlySample

// Clone returns a copy of the schedule that shares no memory with s.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	c := make(Schedule, len(s))
	copy(c, s)
	return c
}
