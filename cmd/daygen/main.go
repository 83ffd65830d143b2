package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/dnetlabs/smartneighborhood/pkg/fleet"
	"github.com/dnetlabs/smartneighborhood/pkg/log"
	"github.com/dnetlabs/smartneighborhood/pkg/pricing"
	"github.com/dnetlabs/smartneighborhood/pkg/schedule"
	"github.com/levenlabs/go-lflag"
)

func main() {
	prices := pricing.Configured()
	seed := lflag.String("seed", "", "Seed for the random draws; empty seeds randomly")
	summary := lflag.Bool("summary", false, "Print one line per hour instead of JSON")
	lflag.Configure()

	ctx := context.Background()

	src := rand.Source(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if *seed != "" {
		n, err := strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "invalid seed", "seed", *seed, "error", err)
			os.Exit(1)
		}
		src = schedule.NewSource(n)
	}

	synth := &schedule.Synthesizer{Prices: *prices}
	day, err := synth.Generate(src)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to generate schedule", "error", err)
		os.Exit(1)
	}
	if err := schedule.Validate(day); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "generated schedule is invalid", "error", err)
		os.Exit(1)
	}

	if !*summary {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(day); err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to write schedule", "error", err)
			os.Exit(1)
		}
		return
	}

	for _, s := range day {
		fmt.Printf("%02d:00  load %5.2f kW  solar %5.2f kW  grid %6.2f kW  optimized %5.2f kW  %.3f EUR/kWh\n",
			s.Hour, s.ConsumptionKW, s.SolarKW, s.GridKW, s.OptimizedKW, s.PriceEURPerKWH)
	}
	fmt.Printf("self-consumption %.1f%%\n", fleet.SelfConsumptionPercent(day))
}
