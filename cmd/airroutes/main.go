// Command airroutes is an interactive route finder over a CSV flight dataset.
//
// Usage:
//
//	airroutes [-data dir] [-airlines default|more|BA,EK,...] [-profile]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/profile"

	"github.com/katalvlaran/airroutes/dataset"
	"github.com/katalvlaran/airroutes/internal/config"
	"github.com/katalvlaran/airroutes/planner"
)

func main() {
	config.LoadDotEnv()

	dataDir := flag.String("data", config.Get(config.KeyDataDir, "data"), "directory holding the dataset CSV files")
	selection := flag.String("airlines", config.Get(config.KeyAirlines, config.SelectionDefault), `airline selection: "default", "more" or a comma-separated list`)
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	if err := run(*dataDir, *selection); err != nil {
		slog.Error("airroutes failed", "error", err)
		os.Exit(1)
	}
}

func run(dataDir, selection string) error {
	airlines, err := config.Airlines(selection)
	if err != nil {
		return err
	}

	data, err := dataset.LoadDir(dataDir, airlines)
	if err != nil {
		return err
	}

	p, err := planner.Populate(data.Airlines, data.Airports, data.Flights)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newMenu(p, os.Stdin, os.Stdout).run(ctx)
}
