// Package fleet derives per-home display figures and fleet-wide statistics
// from the home catalog.
package fleet

import (
	"github.com/dnetlabs/smartneighborhood/pkg/profile"
	"github.com/dnetlabs/smartneighborhood/pkg/types"
)

// evNetPowerShare is the fraction of EV charging attributed to a home's net
// power figure.
const evNetPowerShare = 1.0 / 3

// NetPowerKW returns the simplified instantaneous power balance shown for a
// home: solar minus heat pump minus a third of EV charging. Battery power is
// not part of this figure, so it is not an energy balance.
func NetPowerKW(h types.Home) float64 {
	var net float64
	if h.Solar != nil {
		net += h.Solar.PowerKW
	}
	if h.HeatPump != nil {
		net -= h.HeatPump.PowerKW
	}
	if h.EV != nil {
		net -= h.EV.PowerKW * evNetPowerShare
	}
	return net
}

// LoadKW returns the power drawn by the home's assets: heat pump, EV charging
// and battery charging. A discharging battery does not add load.
func LoadKW(h types.Home) float64 {
	var load float64
	if h.HeatPump != nil {
		load += h.HeatPump.PowerKW
	}
	if h.EV != nil {
		load += h.EV.PowerKW
	}
	if h.Battery != nil && h.Battery.PowerKW > 0 {
		load += h.Battery.PowerKW
	}
	return load
}

// ClassifyStatus derives the operating status of a home from its asset
// powers. The first matching rule wins:
//
//  1. exporting if solar output exceeds the home's load
//  2. charging if the battery or EV is charging
//  3. heating if the heat pump runs above standby
//  4. optimizing if any flexible asset (battery, EV, heat pump) is present
//  5. idle otherwise
func ClassifyStatus(h types.Home) types.HomeStatus {
	if h.Solar != nil && h.Solar.PowerKW > LoadKW(h) {
		return types.HomeStatusExporting
	}
	if (h.Battery != nil && h.Battery.PowerKW > 0) || (h.EV != nil && h.EV.PowerKW > 0) {
		return types.HomeStatusCharging
	}
	if h.HeatPump != nil && h.HeatPump.PowerKW > profile.HeatPumpStandbyKW {
		return types.HomeStatusHeating
	}
	if h.Battery != nil || h.EV != nil || h.HeatPump != nil {
		return types.HomeStatusOptimizing
	}
	return types.HomeStatusIdle
}

// SolarEfficiencyPercent returns the current output of the array as a
// percentage of its peak capacity. It returns 0 if there is no array, the
// capacity is not positive or either figure is not finite.
func SolarEfficiencyPercent(s *types.SolarArray) float64 {
	if s == nil || !isFinite(s.PowerKW) || !isFinite(s.CapacityKWP) || !(s.CapacityKWP > 0) {
		return 0
	}
	return s.PowerKW / s.CapacityKWP * 100
}

// Annotate returns copies of homes with Status and NetPowerKW derived from
// their assets. The input slice and its homes are left untouched.
func Annotate(homes []types.Home) []types.Home {
	out := make([]types.Home, len(homes))
	for i, h := range homes {
		c := h.Clone()
		c.Status = ClassifyStatus(c)
		c.NetPowerKW = NetPowerKW(c)
		out[i] = c
	}
	return out
}

// Find returns the home with id.
func Find(homes []types.Home, id int) (types.Home, bool) {
	for _, h := range homes {
		if h.ID == id {
			return h, true
		}
	}
	return types.Home{}, false
}
