package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	photomem "petclinic/internal/adapters/photostore/memory"
	mem "petclinic/internal/adapters/storage/memory"
	_ "petclinic/internal/docs"
	"petclinic/internal/domain/owners"
	"petclinic/internal/domain/photos"
	"petclinic/internal/domain/vets"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
	"petclinic/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Repos y storage. Los que vienen nil se arman en memoria con datos de ejemplo.
	Owners     owners.Repository
	Vets       vets.Repository
	PhotoStore photos.Store

	Logger   logger.Logger       // nil => Nop
	Metrics  *metrics.Metrics    // puede ser nil
	Gatherer prometheus.Gatherer // nil => sin /metrics
}

func NewRouter(opts Options) http.Handler {
	opts = opts.withDefaults()

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.AccessLog(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	ownersSvc := owners.NewService(opts.Owners, opts.Metrics)
	vetsSvc := vets.NewService(opts.Vets)
	photosSvc := photos.NewService(opts.PhotoStore, opts.Logger, opts.Metrics)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, photosSvc)
	vets.RegisterRoutes(r, vetsSvc)
	photos.RegisterRoutes(r, photosSvc)

	return r
}

func (o Options) withDefaults() Options {
	if o.Owners == nil {
		o.Owners = mem.NewSeededOwnersRepo()
	}
	if o.Vets == nil {
		o.Vets = mem.NewVetsRepo()
	}
	if o.PhotoStore == nil {
		o.PhotoStore = photomem.New()
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}
