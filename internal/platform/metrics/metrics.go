package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "petclinic"

// Resultados posibles de un upload de foto.
const (
	UploadStored   = "stored"
	UploadRejected = "rejected"
	UploadFailed   = "failed"
	UploadEmpty    = "empty"
)

// Resultados de una consulta al cache de vets.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics agrupa los collectors del servicio.
// Un *Metrics nil es válido: todos los métodos son no-op.
type Metrics struct {
	visitsAdded  prometheus.Counter
	photoUploads *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// New crea y registra los collectors en reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		visitsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "visits_added_total",
			Help:      "Number of visits attached to pets.",
		}),
		photoUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photo_uploads_total",
			Help:      "Pet photo uploads by result.",
		}, []string{"result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vets_cache_lookups_total",
			Help:      "Vets cache lookups by outcome (hit, miss, error).",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{m.visitsAdded, m.photoUploads, m.cacheLookups} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) VisitAdded() {
	if m == nil {
		return
	}
	m.visitsAdded.Inc()
}

func (m *Metrics) PhotoUpload(result string) {
	if m == nil {
		return
	}
	m.photoUploads.WithLabelValues(result).Inc()
}

func (m *Metrics) CacheLookup(outcome string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(outcome).Inc()
}
