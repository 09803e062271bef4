package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/JiCorrales/traffic-jam-solver/internal/api"
	"github.com/JiCorrales/traffic-jam-solver/internal/cache"
	"github.com/JiCorrales/traffic-jam-solver/internal/config"
	"github.com/JiCorrales/traffic-jam-solver/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the solver as an HTTP service with a metrics endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	collectors := telemetry.NewCollectors(registry)

	server := &api.Server{
		Cache:      cache.Connect(cfg.RedisURL),
		Collectors: collectors,
	}
	defer server.Cache.Close()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		log.Printf("Serving metrics on %s...", cfg.MetricsAddr)
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
			log.Printf("metrics listener failed: %v", err)
		}
	}()

	log.Printf("Serving solver API on %s...", cfg.ServeAddr)
	return server.Router().Run(cfg.ServeAddr)
}
