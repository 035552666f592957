// @title Pet Clinic API
// @version 1.0
// @description Owners, mascotas, visitas, fotos y staff veterinario de la clínica.
// @BasePath /
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"petclinic/internal/adapters/auth/odin"
	rediscache "petclinic/internal/adapters/cache/redis"
	"petclinic/internal/adapters/photostore/gcs"
	"petclinic/internal/adapters/photostore/local"
	photomem "petclinic/internal/adapters/photostore/memory"
	mem "petclinic/internal/adapters/storage/memory"
	"petclinic/internal/adapters/storage/sqlstore"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/photos"
	"petclinic/internal/domain/vets"
	"petclinic/internal/platform/config"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
	"petclinic/internal/ports/auth"
	"petclinic/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("invalid config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	defer logger.Sync(log)

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": errors.ErrorStack(err)})
		logger.Sync(log)
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		return errors.Annotate(err, "metrics")
	}

	ownersRepo, vetsRepo, closeDB, err := openRepos(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	vetsRepo, closeCache := withVetsCache(ctx, cfg, vetsRepo, log, m)
	defer closeCache()

	store, closeStore, err := openPhotoStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	verifier, err := newVerifier(cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			AuthVerifier: verifier,
			Owners:       ownersRepo,
			Vets:         vetsRepo,
			PhotoStore:   store,
			Logger:       log,
			Metrics:      m,
			Gatherer:     reg,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Annotate(err, "listen")
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Annotate(srv.Shutdown(shutdownCtx), "shutdown")
}

// openRepos usa SQL si hay driver configurado; si no, memoria con datos de ejemplo.
func openRepos(ctx context.Context, cfg config.Config, log logger.Logger) (owners.Repository, vets.Repository, func(), error) {
	if cfg.DB.Driver == "" {
		log.Info("using in-memory storage", nil)
		return mem.NewSeededOwnersRepo(), mem.NewVetsRepo(), func() {}, nil
	}

	driver, err := sqlstore.ParseDriver(cfg.DB.Driver)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := sqlstore.Open(ctx, driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, nil, errors.Annotate(err, "open database")
	}
	log.Info("using sql storage", map[string]any{"driver": string(driver)})

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn("close database", map[string]any{"error": err.Error()})
		}
	}
	return sqlstore.NewOwnersRepo(db), sqlstore.NewVetsRepo(db), closeDB, nil
}

// withVetsCache envuelve el repo de vets con Redis. Si Redis no responde al
// arrancar se sigue sin cache.
func withVetsCache(ctx context.Context, cfg config.Config, next vets.Repository, log logger.Logger, m *metrics.Metrics) (vets.Repository, func()) {
	if cfg.Redis.Addr == "" {
		return next, func() {}
	}

	rdb, err := rediscache.NewClient(ctx, cfg.Redis.Addr)
	if err != nil {
		log.Warn("redis unavailable, vets cache disabled", map[string]any{"addr": cfg.Redis.Addr, "error": err.Error()})
		return next, func() {}
	}
	log.Info("vets cache enabled", map[string]any{"addr": cfg.Redis.Addr, "ttl": cfg.Redis.VetsTTL.String()})

	return rediscache.NewVetsCache(rdb, next, cfg.Redis.VetsTTL, log, m), func() { _ = rdb.Close() }
}

func openPhotoStore(ctx context.Context, cfg config.Config, log logger.Logger) (photos.Store, func(), error) {
	switch cfg.Photos.Backend {
	case "memory":
		log.Info("photo storage", map[string]any{"backend": "memory"})
		return photomem.New(), func() {}, nil

	case "gcs":
		s, err := gcs.New(ctx, gcs.Options{Bucket: cfg.Photos.GCSBucket, Prefix: cfg.Photos.GCSPrefix}, gcs.ClientOptionsFromEnv()...)
		if err != nil {
			return nil, nil, errors.Annotate(err, "gcs photo store")
		}
		log.Info("photo storage", map[string]any{"backend": "gcs", "bucket": cfg.Photos.GCSBucket})
		return s, func() { _ = s.Close() }, nil

	default:
		s, err := local.New(cfg.Photos.LocalPath)
		if err != nil {
			return nil, nil, errors.Annotate(err, "local photo store")
		}
		log.Info("photo storage", map[string]any{"backend": "local", "path": cfg.Photos.LocalPath})
		return s, func() {}, nil
	}
}

// newVerifier devuelve nil (modo dev, header X-Debug-User-ID) si Odin no está configurado.
func newVerifier(cfg config.Config, log logger.Logger) (auth.AuthVerifier, error) {
	if cfg.Odin.BaseURL == "" {
		log.Warn("odin not configured, accepting X-Debug-User-ID", nil)
		return nil, nil
	}

	client, err := odin.NewClient(odin.Config{BaseURL: cfg.Odin.BaseURL, APIKey: cfg.Odin.APIKey})
	if err != nil {
		return nil, err
	}
	return odin.NewVerifier(client), nil
}
