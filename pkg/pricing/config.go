package pricing

import (
	"fmt"

	"github.com/levenlabs/go-lflag"
)

// Configured sets up the price model based on flags.
func Configured() *Model {
	m := DefaultModel()
	noise := lflag.Bool("price-noise", true, "Add random noise to the generated day-ahead prices")
	overrides := map[string]float64{}
	lflag.JSON(&overrides, "price-model", overrides, "JSON map overriding price model parameters (base, amplitude, troughHour, noise, floor)")

	lflag.Do(func() {
		m.DisableNoise = !*noise
		if err := m.apply(overrides); err != nil {
			panic(fmt.Sprintf("invalid price-model: %v", err))
		}
	})

	return &m
}

func (m *Model) apply(overrides map[string]float64) error {
	for k, v := range overrides {
		switch k {
		case "base":
			m.BaseEURPerKWH = v
		case "amplitude":
			m.AmplitudeEURPerKWH = v
		case "troughHour":
			m.TroughHour = v
		case "noise":
			m.NoiseEURPerKWH = v
		case "floor":
			m.FloorEURPerKWH = v
		default:
			return fmt.Errorf("unknown parameter: %s", k)
		}
	}
	return m.Validate()
}

// Validate ensures the model can never produce a non-positive price.
func (m Model) Validate() error {
	if m.FloorEURPerKWH <= 0 {
		return fmt.Errorf("floor must be positive: %v", m.FloorEURPerKWH)
	}
	if m.NoiseEURPerKWH < 0 {
		return fmt.Errorf("noise must not be negative: %v", m.NoiseEURPerKWH)
	}
	if m.TroughHour < 0 || m.TroughHour >= 24 {
		return fmt.Errorf("troughHour must be within 0-24: %v", m.TroughHour)
	}
	return nil
}
