package controller

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/dnetlabs/smartneighborhood/pkg/fleet"
	"github.com/dnetlabs/smartneighborhood/pkg/pricing"
	"github.com/dnetlabs/smartneighborhood/pkg/schedule"
	"github.com/levenlabs/go-lflag"
)

// Configured sets up the Controller based on flags.
func Configured(prices *pricing.Model, f *fleet.Config) *Controller {
	c := &Controller{
		prices: prices,
		fleet:  f,
	}
	seed := lflag.String("schedule-seed", "", "Seed for the random schedule draws; empty seeds randomly")
	timezone := lflag.String("timezone", "Europe/Amsterdam", "Time zone used to pick the current hour")

	lflag.Do(func() {
		loc, err := time.LoadLocation(*timezone)
		if err != nil {
			panic(fmt.Sprintf("failed to load timezone %s: %v", *timezone, err))
		}
		c.location = loc

		src, err := parseSeed(*seed)
		if err != nil {
			panic(fmt.Sprintf("invalid schedule-seed: %v", err))
		}
		c.src = src
	})

	return c
}

// parseSeed returns a seeded source, or a randomly seeded one if seed is
// empty.
func parseSeed(seed string) (rand.Source, error) {
	if seed == "" {
		return rand.NewPCG(rand.Uint64(), rand.Uint64()), nil
	}
	n, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, err
	}
	return schedule.NewSource(n), nil
}
