// Package schedule composes asset profiles and prices into the 24 hour
// neighborhood schedule.
package schedule

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/dnetlabs/smartneighborhood/pkg/pricing"
	"github.com/dnetlabs/smartneighborhood/pkg/profile"
	"github.com/dnetlabs/smartneighborhood/pkg/types"
)

// ErrInvalidSchedule is returned when a schedule does not hold exactly one
// sample for each hour in order.
var ErrInvalidSchedule = errors.New("invalid schedule")

const (
	// EV charging is moved into this pre-dawn slot in the optimized curve.
	optimizedEVStartHour = 1
	optimizedEVEndHour   = 5

	// Heat pump draw is boosted within this slot and damped outside of it.
	optimizedHeatStartHour = 2
	optimizedHeatEndHour   = 6
	optimizedHeatBoost     = 1.5
	optimizedHeatDamping   = 0.3
)

// NewSource returns a deterministic random source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Synthesizer builds daily schedules from a price model and asset profiles.
type Synthesizer struct {
	Prices pricing.Model
}

// NewSynthesizer returns a Synthesizer with the default price model.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{Prices: pricing.DefaultModel()}
}

// GenerateDailySchedule builds a schedule with the default price model. A nil
// src disables every stochastic term.
func GenerateDailySchedule(src rand.Source) (types.Schedule, error) {
	return NewSynthesizer().Generate(src)
}

// Generate builds the 24 samples of a day. All random draws come from src in
// a fixed order per hour (EV, heat pump, price), so the same seed always
// yields the same schedule.
func (s *Synthesizer) Generate(src rand.Source) (types.Schedule, error) {
	gen := profile.NewGenerator(src)
	day := make(types.Schedule, 0, types.HoursPerDay)
	for h := 0; h < types.HoursPerDay; h++ {
		p, err := gen.Hour(h)
		if err != nil {
			return nil, err
		}
		price, err := s.Prices.PriceEURPerKWH(h, src)
		if err != nil {
			return nil, err
		}
		day = append(day, Compose(p, price))
	}
	return day, nil
}

// Compose turns the asset profiles of one hour and its price into a sample.
func Compose(p profile.Hour, priceEURPerKWH float64) types.HourlySample {
	consumption := p.BaselineKW + p.EVKW + p.HeatPumpKW
	return types.HourlySample{
		Hour:           p.Hour,
		ConsumptionKW:  consumption,
		SolarKW:        p.SolarKW,
		GridKW:         consumption - p.SolarKW,
		PriceEURPerKWH: priceEURPerKWH,
		OptimizedKW:    OptimizedKW(p),
	}
}

// OptimizedKW returns the heuristic load-shifted consumption for an hour. EV
// charging only counts within 1:00-5:00 and heat pump draw is boosted within
// 2:00-6:00 and damped elsewhere. It depends only on the hour and its
// profiles, never on prices.
func OptimizedKW(p profile.Hour) float64 {
	kw := p.BaselineKW
	if p.Hour >= optimizedEVStartHour && p.Hour <= optimizedEVEndHour {
		kw += p.EVKW
	}
	if p.Hour >= optimizedHeatStartHour && p.Hour <= optimizedHeatEndHour {
		kw += p.HeatPumpKW * optimizedHeatBoost
	} else {
		kw += p.HeatPumpKW * optimizedHeatDamping
	}
	return kw
}

// Validate ensures day holds exactly one sample per hour in ascending order.
func Validate(day types.Schedule) error {
	if len(day) != types.HoursPerDay {
		return fmt.Errorf("%w: %d samples", ErrInvalidSchedule, len(day))
	}
	for i, s := range day {
		if s.Hour != i {
			return fmt.Errorf("%w: sample %d has hour %d", ErrInvalidSchedule, i, s.Hour)
		}
	}
	return nil
}

// SampleAt returns the sample for hour, e.g. the current hour marked on the
// chart.
func SampleAt(day types.Schedule, hour int) (types.HourlySample, error) {
	if err := types.CheckHour(hour); err != nil {
		return types.HourlySample{}, err
	}
	if err := Validate(day); err != nil {
		return types.HourlySample{}, err
	}
	return day[hour], nil
}
