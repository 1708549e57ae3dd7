// Package main is the entry point for the bookshelf API server.
// It wires together configuration, the in-memory book store, and the HTTP router.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/aoideee/bookshelf/internal/data"
)

// appVersion is the current version of the API, shown in logs and the healthcheck.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via command-line flags.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on (default 4000)
	environment string // Runtime environment: development, staging, or production
	limiter     struct {
		rps     float64 // Requests per second allowed per client
		burst   int     // Bucket size per client
		enabled bool    // Turns the per-client limiter on or off
	}
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig // Server configuration loaded from flags
	logger *slog.Logger // Structured logger that writes to stdout
	models data.Models  // Model layer holding the book store
}

func main() {
	var settings serverConfig

	flag.IntVar(&settings.port, "port", 4000, "Server port")
	flag.StringVar(&settings.environment, "env", "development", "Environment(development|staging|production)")
	flag.Float64Var(&settings.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&settings.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&settings.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// The store lives for the whole process; there is nothing to close.
	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(data.NewBookStore()),
	}

	err := appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
