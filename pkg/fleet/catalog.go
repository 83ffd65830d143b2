package fleet

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"

	"github.com/dnetlabs/smartneighborhood/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrInvalidCatalog = errors.New("invalid catalog")

	departureRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// DefaultCatalog returns the built-in neighborhood.
func DefaultCatalog() []types.Home {
	homes, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Errorf("failed to parse default catalog: %w", err))
	}
	return homes
}

// LoadCatalog reads a YAML catalog from path. An empty path returns the
// built-in catalog.
func LoadCatalog(path string) ([]types.Home, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	homes, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return homes, nil
}

// ParseCatalog decodes and validates a YAML list of homes. An empty document
// is an empty fleet.
func ParseCatalog(data []byte) ([]types.Home, error) {
	var homes []types.Home
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&homes); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err := ValidateCatalog(homes); err != nil {
		return nil, err
	}
	return homes, nil
}

// ValidateCatalog checks every home and ensures IDs are unique.
func ValidateCatalog(homes []types.Home) error {
	seen := make(map[int]struct{}, len(homes))
	for i, h := range homes {
		if _, ok := seen[h.ID]; ok {
			return fmt.Errorf("%w: duplicate home id %d", ErrInvalidCatalog, h.ID)
		}
		seen[h.ID] = struct{}{}
		if err := validateHome(h); err != nil {
			return fmt.Errorf("%w: home %d (entry %d): %w", ErrInvalidCatalog, h.ID, i, err)
		}
	}
	return nil
}

func validateHome(h types.Home) error {
	if h.Name == "" {
		return errors.New("name is required")
	}
	if b := h.Battery; b != nil {
		if err := checkFinite("battery", b.StateOfChargePercent, b.CapacityKWH, b.PowerKW); err != nil {
			return err
		}
		if !validPercent(b.StateOfChargePercent) {
			return fmt.Errorf("battery soc out of range: %v", b.StateOfChargePercent)
		}
		if b.CapacityKWH <= 0 {
			return fmt.Errorf("battery capacity must be positive: %v", b.CapacityKWH)
		}
	}
	if s := h.Solar; s != nil {
		if err := checkFinite("solar", s.PowerKW, s.CapacityKWP); err != nil {
			return err
		}
		// a zero capacity is tolerated, efficiency reports 0 for it
		if s.PowerKW < 0 || s.CapacityKWP < 0 {
			return fmt.Errorf("solar power and capacity must not be negative: %v/%v", s.PowerKW, s.CapacityKWP)
		}
	}
	if ev := h.EV; ev != nil {
		if err := checkFinite("ev", ev.StateOfChargePercent, ev.PowerKW); err != nil {
			return err
		}
		if !validPercent(ev.StateOfChargePercent) {
			return fmt.Errorf("ev soc out of range: %v", ev.StateOfChargePercent)
		}
		if ev.PowerKW < 0 {
			return fmt.Errorf("ev power must not be negative: %v", ev.PowerKW)
		}
		if ev.Departure != "" && !departureRe.MatchString(ev.Departure) {
			return fmt.Errorf("ev departure must be HH:MM: %q", ev.Departure)
		}
	}
	if hp := h.HeatPump; hp != nil {
		if err := checkFinite("heat pump", hp.PowerKW, hp.CurrentTempC, hp.TargetTempC); err != nil {
			return err
		}
		if hp.PowerKW < 0 {
			return fmt.Errorf("heat pump power must not be negative: %v", hp.PowerKW)
		}
	}
	return nil
}

// checkFinite returns an error if any of values is NaN or infinite.
func checkFinite(asset string, values ...float64) error {
	for _, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%s values must be finite: %v", asset, v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validPercent(v float64) bool {
	return v >= 0 && v <= 100
}
