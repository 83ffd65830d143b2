package fleet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dnetlabs/smartneighborhood/pkg/log"
	"github.com/dnetlabs/smartneighborhood/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// Config is the configured neighborhood: its homes in display order and the
// pass-through estimates shown next to the computed statistics.
type Config struct {
	Homes     []types.Home
	Estimates types.Estimates
}

// Configured sets up the fleet catalog and estimates based on flags.
func Configured() *Config {
	c := &Config{}
	path := lflag.String("fleet-catalog", "", "Path to a YAML fleet catalog (default is the built-in neighborhood)")
	estimates := types.DefaultEstimates()
	lflag.JSON(&estimates, "fleet-estimates", estimates, "JSON object with monthlySavingsEUR, co2SavedTons and trends to display")

	lflag.Do(func() {
		homes, err := LoadCatalog(*path)
		if err != nil {
			panic(fmt.Sprintf("fleet catalog failed: %v", err))
		}
		c.Homes = homes
		c.Estimates = estimates
		log.Ctx(context.Background()).Debug("fleet catalog loaded",
			slog.String("path", *path),
			slog.Int("homes", len(homes)),
		)
	})

	return c
}
