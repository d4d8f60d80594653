package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	restapi "github.com/hedisam/txpager/api/rest"
	"github.com/hedisam/txpager/internal/cache"
	"github.com/hedisam/txpager/internal/custompromauto"
	"github.com/hedisam/txpager/internal/otterscan"
	"github.com/hedisam/txpager/internal/overview"
	"github.com/hedisam/txpager/internal/store"
	"github.com/hedisam/txpager/internal/store/badgerdb"
	"github.com/hedisam/txpager/internal/store/memdb"
)

func main() {
	logger := logrus.New()

	opts, err := loadOptions(logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load options")
	}
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var durable cache.Backend
	if opts.DataDir != "" {
		db, err := badgerdb.Open(logger, opts.DataDir)
		if err != nil {
			logger.WithError(err).WithField("data_dir", opts.DataDir).Fatal("Failed to open durable cache")
		}
		defer func() {
			err := db.Close()
			if err != nil {
				logger.WithError(err).Error("Failed to close durable cache")
			}
		}()
		durable = db
	}

	caches, err := cache.NewManager(logger, memdb.NewKV(), durable, store.Kind(opts.CacheBackend))
	if err != nil {
		logger.WithError(err).Fatal("Failed to create cache manager")
	}
	// favorites saved by an earlier run feed the overview too
	err = caches.Global().SetFavoriteAddresses(caches.Address().Favorites())
	if err != nil {
		logger.WithError(err).Warn("Failed to sync overview favorites")
	}

	sessions := memdb.NewSessionStore()
	go evictIdleSessions(ctx, logger, sessions, opts.SessionIdleTTL)

	httpClient := &http.Client{Timeout: time.Second * 10}
	client := otterscan.New(logger, httpClient, opts.NodeAddr, otterscan.WithRateLimit(opts.RPCRate, opts.RPCBurst))
	blocksStream := client.Stream(ctx, opts.PollInterval)

	tracker := overview.New(logger, caches.Global(), client, opts.OverviewBlocks, opts.OverviewTxns)
	go tracker.Start(ctx, blocksStream)

	restServer := restapi.NewServer(logger, client, sessions, caches.Address(), caches.Global(), caches)
	mux := http.NewServeMux()
	restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/sessions", restServer.CreateSession)
	restapi.RegisterFunc(logger, mux, http.MethodDelete, "/api/v1/sessions/{id}", restServer.DeleteSession)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/sessions/{id}/pages/{direction}", restServer.ShowPage)
	restapi.RegisterFunc(logger, mux, http.MethodPut, "/api/v1/favorites/{address}", restServer.AddFavorite)
	restapi.RegisterFunc(logger, mux, http.MethodDelete, "/api/v1/favorites/{address}", restServer.RemoveFavorite)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/favorites/", restServer.ListFavorites)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/cache/backend", restServer.GetCacheBackend)
	restapi.RegisterFunc(logger, mux, http.MethodPut, "/api/v1/cache/backend", restServer.SetCacheBackend)
	restapi.RegisterFunc(logger, mux, http.MethodPost, "/api/v1/cache/refresh", restServer.RefreshCache)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/overview", restServer.GetOverview)
	restapi.RegisterFunc(logger, mux, http.MethodPut, "/api/v1/overview/native-price", restServer.SetNativePrice)

	// use a custom prom registry to avoid recording the default http handler metrics
	mux.Handle("/metrics", promhttp.HandlerFor(custompromauto.Registry(), promhttp.HandlerOpts{}))

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

func evictIdleSessions(ctx context.Context, logger *logrus.Logger, sessions *memdb.SessionStore, idle time.Duration) {
	t := time.NewTicker(idle / 2)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n := sessions.DeleteIdleSessions(ctx, idle)
			if n > 0 {
				logger.WithField("evicted", n).Debug("Evicted idle paging sessions")
			}
		}
	}
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving server...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}
