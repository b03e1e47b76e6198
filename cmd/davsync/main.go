// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-dav-sync/internal/adapter"
	"github.com/MKhiriev/go-dav-sync/internal/cache"
	"github.com/MKhiriev/go-dav-sync/internal/config"
	myHTTP "github.com/MKhiriev/go-dav-sync/internal/handler/http"
	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/internal/metrics"
	"github.com/MKhiriev/go-dav-sync/internal/server"
	"github.com/MKhiriev/go-dav-sync/internal/service"
	"github.com/MKhiriev/go-dav-sync/internal/store"
	"github.com/MKhiriev/go-dav-sync/internal/syncer"
	"github.com/MKhiriev/go-dav-sync/internal/workers"
	"github.com/MKhiriev/go-dav-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("davsync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if err = prepareStore(ctx, storages, cfg.App); err != nil {
		log.Err(err).Msg("error preparing local store")
		return
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	heads := cache.New[models.HeadResponse](cfg.Cache.Capacity)
	strategies := service.NewStrategies(heads, m)
	orchestrator := syncer.NewOrchestrator(storages.Providers, adapter.NewClientFactory(cfg.Adapter, log), m, log)

	syncWorkers, err := workers.NewSyncWorkers(orchestrator, strategies,
		cfg.App.Accounts, cfg.App.Authorities, models.Extras(cfg.App.Extras), cfg.Workers.Concurrency, log)
	if err != nil {
		log.Err(err).Msg("error creating sync workers")
		return
	}

	if err = syncWorkers.Run(ctx); err != nil {
		log.Warn().Err(err).Msg("sync pass interrupted")
	}

	summary := syncWorkers.Summary()
	log.Info().
		Int("runs", syncWorkers.Len()).
		Int64("hard_errors", summary.HardErrors).
		Int64("soft_errors", summary.SoftErrors).
		Int64("inserts", summary.Inserts).
		Int64("updates", summary.Updates).
		Int64("deletes", summary.Deletes).
		Int64("skipped_entries", summary.SkippedEntries).
		Msg("sync pass finished")

	if cfg.Server.HTTPAddress != "" && ctx.Err() == nil {
		handler := myHTTP.NewHandler(storages.SyncStats, reg, log)
		srv, err := server.NewServer(handler.Init(), cfg.Server, log)
		if err != nil {
			log.Err(err).Msg("error creating status server")
		} else if err = srv.Run(ctx); err != nil {
			log.Err(err).Msg("error running status server")
		}
	}

	if summary.HasErrors() {
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

// prepareStore applies account removals and authority revocations and
// registers the configured accounts.
func prepareStore(ctx context.Context, storages *store.Storages, app config.App) error {
	for _, account := range app.RemovedAccounts {
		if err := storages.Accounts.RemoveAccount(ctx, account); err != nil {
			return fmt.Errorf("remove account %s: %w", account, err)
		}
	}
	for _, authority := range app.RevokedAuthorities {
		if err := storages.Authorities.RevokeAuthority(ctx, syncer.ResolveAuthority(authority)); err != nil {
			return fmt.Errorf("revoke authority %s: %w", authority, err)
		}
	}
	for _, account := range app.Accounts {
		if err := storages.Accounts.EnsureAccount(ctx, account); err != nil {
			return fmt.Errorf("ensure account %s: %w", account, err)
		}
	}
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
