package pricing

import (
	"math"
	"math/rand/v2"

	"github.com/dnetlabs/smartneighborhood/pkg/types"
	"gonum.org/v1/gonum/stat/distuv"
)

// Model generates an hourly day-ahead price curve: a 24 hour cosine around a
// base price with its trough in the early morning, plus bounded noise.
type Model struct {
	BaseEURPerKWH      float64 `json:"baseEURPerKWH"`
	AmplitudeEURPerKWH float64 `json:"amplitudeEURPerKWH"`
	// TroughHour is the hour at which the cyclic component is lowest.
	TroughHour     float64 `json:"troughHour"`
	NoiseEURPerKWH float64 `json:"noiseEURPerKWH"` // noise is uniform in ±NoiseEURPerKWH
	FloorEURPerKWH float64 `json:"floorEURPerKWH"`
	// DisableNoise turns the model fully deterministic even when a source is
	// given.
	DisableNoise bool `json:"disableNoise"`
}

// DefaultModel returns the model used by the dashboard.
func DefaultModel() Model {
	return Model{
		BaseEURPerKWH:      0.15,
		AmplitudeEURPerKWH: 0.12,
		TroughHour:         3,
		NoiseEURPerKWH:     0.02,
		FloorEURPerKWH:     0.05,
	}
}

// CyclicEURPerKWH returns the noise-free price for hour. It is exactly
// reproducible for a given hour.
func (m Model) CyclicEURPerKWH(hour int) (float64, error) {
	if err := types.CheckHour(hour); err != nil {
		return 0, err
	}
	phase := 2 * math.Pi * (float64(hour) - m.TroughHour) / types.HoursPerDay
	return m.BaseEURPerKWH - m.AmplitudeEURPerKWH*math.Cos(phase), nil
}

// Noise draws one noise term from src. It returns 0 if src is nil or noise is
// disabled, without touching src.
func (m Model) Noise(src rand.Source) float64 {
	if src == nil || m.DisableNoise || m.NoiseEURPerKWH <= 0 {
		return 0
	}
	u := distuv.Uniform{Min: -m.NoiseEURPerKWH, Max: m.NoiseEURPerKWH, Src: src}
	return u.Rand()
}

// PriceEURPerKWH returns the price for hour including noise drawn from src,
// never below the floor.
func (m Model) PriceEURPerKWH(hour int, src rand.Source) (float64, error) {
	cyclic, err := m.CyclicEURPerKWH(hour)
	if err != nil {
		return 0, err
	}
	return math.Max(m.FloorEURPerKWH, cyclic+m.Noise(src)), nil
}

// Day returns the prices for all 24 hours, drawing noise in hour order.
func (m Model) Day(src rand.Source) ([]float64, error) {
	prices := make([]float64, types.HoursPerDay)
	for h := range prices {
		p, err := m.PriceEURPerKWH(h, src)
		if err != nil {
			return nil, err
		}
		prices[h] = p
	}
	return prices, nil
}
