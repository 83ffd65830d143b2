package fleet

import (
	"math"
	"testing"

	"github.com/dnetlabs/smartneighborhood/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetPowerKW(t *testing.T) {
	t.Run("solar heat pump and ev", func(t *testing.T) {
		h := types.Home{
			Solar:    &types.SolarArray{PowerKW: 3.8, CapacityKWP: 8},
			HeatPump: &types.HeatPump{PowerKW: 1.2},
			EV:       &types.EVCharger{PowerKW: 7.4},
		}
		assert.InDelta(t, 3.8-1.2-7.4/3, NetPowerKW(h), 1e-12)
		assert.InDelta(t, 0.1333, NetPowerKW(h), 1e-4)
	})

	t.Run("battery is not part of net power", func(t *testing.T) {
		// display figure, not an energy balance: a discharging battery adds
		// nothing and a charging one takes nothing away
		base := types.Home{Solar: &types.SolarArray{PowerKW: 2, CapacityKWP: 4}}
		discharging := base.Clone()
		discharging.Battery = &types.Battery{CapacityKWH: 10, PowerKW: -4.5}
		charging := base.Clone()
		charging.Battery = &types.Battery{CapacityKWH: 10, PowerKW: 3.2}

		assert.Equal(t, 2.0, NetPowerKW(base))
		assert.Equal(t, NetPowerKW(base), NetPowerKW(discharging))
		assert.Equal(t, NetPowerKW(base), NetPowerKW(charging))
	})

	t.Run("no assets", func(t *testing.T) {
		assert.Equal(t, 0.0, NetPowerKW(types.Home{ID: 1, Name: "Empty"}))
	})
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name string
		home types.Home
		want types.HomeStatus
	}{
		{
			name: "solar exceeds load",
			home: types.Home{
				Battery:  &types.Battery{StateOfChargePercent: 100, CapacityKWH: 20, PowerKW: -4.5},
				Solar:    &types.SolarArray{PowerKW: 6.2, CapacityKWP: 12},
				EV:       &types.EVCharger{StateOfChargePercent: 95, PowerKW: 0},
				HeatPump: &types.HeatPump{PowerKW: 0.3},
			},
			want: types.HomeStatusExporting,
		},
		{
			name: "battery charging counts as load",
			home: types.Home{
				Battery:  &types.Battery{CapacityKWH: 10, PowerKW: 3.2},
				Solar:    &types.SolarArray{PowerKW: 2.1, CapacityKWP: 6},
				HeatPump: &types.HeatPump{PowerKW: 2.8},
			},
			want: types.HomeStatusCharging,
		},
		{
			name: "ev charging beats heating",
			home: types.Home{
				Solar:    &types.SolarArray{PowerKW: 3.8, CapacityKWP: 8},
				EV:       &types.EVCharger{PowerKW: 7.4},
				HeatPump: &types.HeatPump{PowerKW: 1.2},
			},
			want: types.HomeStatusCharging,
		},
		{
			name: "heat pump above standby",
			home: types.Home{
				Solar:    &types.SolarArray{PowerKW: 0.4, CapacityKWP: 5},
				HeatPump: &types.HeatPump{PowerKW: 1.8},
			},
			want: types.HomeStatusHeating,
		},
		{
			name: "heat pump at standby with discharging battery",
			home: types.Home{
				Battery:  &types.Battery{CapacityKWH: 13.5, PowerKW: -1},
				HeatPump: &types.HeatPump{PowerKW: 0.5},
			},
			want: types.HomeStatusOptimizing,
		},
		{
			name: "solar equal to load is not exporting",
			home: types.Home{
				Solar:    &types.SolarArray{PowerKW: 0.5, CapacityKWP: 5},
				HeatPump: &types.HeatPump{PowerKW: 0.5},
			},
			want: types.HomeStatusOptimizing,
		},
		{
			name: "solar only at night",
			home: types.Home{
				Solar: &types.SolarArray{PowerKW: 0, CapacityKWP: 5},
			},
			want: types.HomeStatusIdle,
		},
		{
			name: "no assets",
			home: types.Home{},
			want: types.HomeStatusIdle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.home))
		})
	}
}

func TestClassifyDefaultCatalog(t *testing.T) {
	homes := Annotate(DefaultCatalog())
	want := map[string]types.HomeStatus{
		"Villa Noord":       types.HomeStatusCharging,
		"Huis Zuid":         types.HomeStatusCharging,
		"Woning Oost":       types.HomeStatusExporting,
		"Appartement West":  types.HomeStatusCharging,
		"Rijwoning Centrum": types.HomeStatusExporting,
		"Villa Park":        types.HomeStatusExporting,
	}
	require.Len(t, homes, len(want))
	for _, h := range homes {
		assert.Equal(t, want[h.Name], h.Status, h.Name)
	}
}

func TestSolarEfficiencyPercent(t *testing.T) {
	assert.InDelta(t, 47.5, SolarEfficiencyPercent(&types.SolarArray{PowerKW: 3.8, CapacityKWP: 8}), 1e-9)
	assert.Equal(t, 0.0, SolarEfficiencyPercent(nil))

	zero := SolarEfficiencyPercent(&types.SolarArray{PowerKW: 2, CapacityKWP: 0})
	assert.Equal(t, 0.0, zero)
	assert.False(t, math.IsNaN(zero) || math.IsInf(zero, 0))

	zero = SolarEfficiencyPercent(&types.SolarArray{PowerKW: 0, CapacityKWP: 0})
	assert.Equal(t, 0.0, zero)

	t.Run("non-finite", func(t *testing.T) {
		for _, s := range []types.SolarArray{
			{PowerKW: 2, CapacityKWP: math.NaN()},
			{PowerKW: 2, CapacityKWP: math.Inf(1)},
			{PowerKW: math.NaN(), CapacityKWP: 8},
			{PowerKW: math.Inf(1), CapacityKWP: 8},
		} {
			assert.Equal(t, 0.0, SolarEfficiencyPercent(&s), "%+v", s)
		}
	})
}

func TestAnnotate(t *testing.T) {
	in := DefaultCatalog()
	out := Annotate(in)
	require.Len(t, out, len(in))

	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID, "order is kept")
		assert.Empty(t, in[i].Status, "input is not mutated")
		assert.Equal(t, ClassifyStatus(in[i]), out[i].Status)
		assert.Equal(t, NetPowerKW(in[i]), out[i].NetPowerKW)
	}

	// assets are copied, not shared
	out[0].Solar.PowerKW = 100
	assert.Equal(t, 3.8, in[0].Solar.PowerKW)

	assert.Empty(t, Annotate(nil))
}

func TestFind(t *testing.T) {
	homes := DefaultCatalog()
	h, ok := Find(homes, 4)
	require.True(t, ok)
	assert.Equal(t, "Appartement West", h.Name)
	assert.Nil(t, h.HeatPump)

	_, ok = Find(homes, 42)
	assert.False(t, ok)
}
