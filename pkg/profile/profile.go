// Package profile generates the hourly power shape of each household asset
// type: baseline load, solar generation, EV charging and heat pump draw.
package profile

import (
	"math"
	"math/rand/v2"

	"github.com/dnetlabs/smartneighborhood/pkg/types"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	baselineKW          = 1.5
	baselineAmplitudeKW = 0.8

	solarPeakKW    = 4.5
	solarStartHour = 6
	solarEndHour   = 20

	evStartHour    = 22 // overnight window wraps midnight
	evEndHour      = 6
	evMinKW        = 3.5
	evJitterKW     = 1.5
	heatPumpMinKW  = 2.0
	heatPumpJitter = 1.0

	// HeatPumpStandbyKW is the draw of a heat pump outside its duty windows.
	HeatPumpStandbyKW = 0.5
)

// Hour holds every asset profile for a single hour of the day.
type Hour struct {
	Hour       int     `json:"hour"`
	BaselineKW float64 `json:"baselineKW"`
	SolarKW    float64 `json:"solarKW"`
	EVKW       float64 `json:"evKW"`
	HeatPumpKW float64 `json:"heatPumpKW"`
}

// Generator produces asset profiles. The stochastic EV and heat pump draws
// come from the source it was built with; with a nil source each draw takes
// the mean of its distribution so profiles are fully deterministic.
type Generator struct {
	src      rand.Source
	evDraw   distuv.Uniform
	heatDraw distuv.Uniform
}

// NewGenerator returns a Generator drawing from src, which may be nil.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		src:      src,
		evDraw:   distuv.Uniform{Min: 0, Max: evJitterKW, Src: src},
		heatDraw: distuv.Uniform{Min: 0, Max: heatPumpJitter, Src: src},
	}
}

func (g *Generator) draw(u distuv.Uniform) float64 {
	if g.src == nil {
		return u.Mean()
	}
	return u.Rand()
}

// Hour returns all asset profiles for hour. Random draws happen in a fixed
// order (EV, then heat pump) so equal sources give equal results.
func (g *Generator) Hour(hour int) (Hour, error) {
	if err := types.CheckHour(hour); err != nil {
		return Hour{}, err
	}
	// all of these only fail on an invalid hour which was checked above
	baseline, _ := BaselineLoadKW(hour)
	solar, _ := SolarKW(hour)
	ev, _ := g.EVChargingKW(hour)
	hp, _ := g.HeatPumpKW(hour)
	return Hour{
		Hour:       hour,
		BaselineKW: baseline,
		SolarKW:    solar,
		EVKW:       ev,
		HeatPumpKW: hp,
	}, nil
}

// BaselineLoadKW returns the household base load, a smooth daily sine that is
// always positive.
func BaselineLoadKW(hour int) (float64, error) {
	if err := types.CheckHour(hour); err != nil {
		return 0, err
	}
	return baselineKW + baselineAmplitudeKW*math.Sin(2*math.Pi*float64(hour)/types.HoursPerDay), nil
}

// SolarKW returns solar generation: a half-sine arc over 6:00-20:00 peaking at
// 13:00 and exactly zero outside the open window.
func SolarKW(hour int) (float64, error) {
	if err := types.CheckHour(hour); err != nil {
		return 0, err
	}
	// sin(π) is not exactly zero in floating point so the edges are explicit
	if hour <= solarStartHour || hour >= solarEndHour {
		return 0, nil
	}
	return solarPeakKW * math.Sin(math.Pi*float64(hour-solarStartHour)/(solarEndHour-solarStartHour)), nil
}

// EVChargingActive reports whether EVs charge during hour.
func EVChargingActive(hour int) bool {
	return hour >= evStartHour || hour <= evEndHour
}

// EVChargingKW returns the EV charging draw, 3.5-5 kW overnight and zero
// otherwise.
func (g *Generator) EVChargingKW(hour int) (float64, error) {
	if err := types.CheckHour(hour); err != nil {
		return 0, err
	}
	if !EVChargingActive(hour) {
		return 0, nil
	}
	return evMinKW + g.draw(g.evDraw), nil
}

// HeatPumpActive reports whether the heat pump runs its morning or evening
// duty cycle during hour.
func HeatPumpActive(hour int) bool {
	return (hour >= 5 && hour <= 8) || (hour >= 17 && hour <= 22)
}

// HeatPumpKW returns the heat pump draw, 2-3 kW during the duty windows and
// the standby draw otherwise. It is never zero.
func (g *Generator) HeatPumpKW(hour int) (float64, error) {
	if err := types.CheckHour(hour); err != nil {
		return 0, err
	}
	if !HeatPumpActive(hour) {
		return HeatPumpStandbyKW, nil
	}
	return heatPumpMinKW + g.draw(g.heatDraw), nil
}
