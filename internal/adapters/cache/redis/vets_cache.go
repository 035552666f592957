package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/juju/errors"
	goredis "github.com/redis/go-redis/v9"

	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/vets"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
)

const (
	vetsKey    = "petclinic:vets"
	DefaultTTL = 5 * time.Minute
)

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Annotate(err, "redis ping")
	}
	return rdb, nil
}

// VetsCache decora un vets.Repository guardando el listado completo en Redis.
// Si Redis falla se sigue con el repo de abajo; el cache nunca rompe un request.
type VetsCache struct {
	rdb     goredis.Cmdable
	next    vets.Repository
	ttl     time.Duration
	log     logger.Logger
	metrics *metrics.Metrics
}

var _ vets.Repository = (*VetsCache)(nil)

func NewVetsCache(rdb goredis.Cmdable, next vets.Repository, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *VetsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &VetsCache{
		rdb:     rdb,
		next:    next,
		ttl:     ttl,
		log:     log.With(map[string]any{"component": "vets_cache"}),
		metrics: m,
	}
}

func (c *VetsCache) List(ctx context.Context) ([]*vets.Vet, error) {
	raw, err := c.rdb.Get(ctx, vetsKey).Bytes()
	switch {
	case err == nil:
		items, derr := decodeVets(raw)
		if derr == nil {
			c.metrics.CacheLookup(metrics.CacheHit)
			return items, nil
		}
		c.metrics.CacheLookup(metrics.CacheError)
		c.log.Warn("discarding unreadable vets cache entry", map[string]any{"error": derr.Error()})
	case errors.Is(err, goredis.Nil):
		c.metrics.CacheLookup(metrics.CacheMiss)
	default:
		c.metrics.CacheLookup(metrics.CacheError)
		c.log.Warn("vets cache get failed", map[string]any{"error": err.Error()})
	}

	items, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := encodeVets(items); err == nil {
		if err := c.rdb.Set(ctx, vetsKey, payload, c.ttl).Err(); err != nil {
			c.log.Warn("vets cache set failed", map[string]any{"error": err.Error()})
		}
	}
	return items, nil
}

// Evict borra el listado cacheado.
func (c *VetsCache) Evict(ctx context.Context) error {
	return c.rdb.Del(ctx, vetsKey).Err()
}

type cachedSpecialty struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type cachedVet struct {
	ID          int               `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Specialties []cachedSpecialty `json:"specialties"`
}

func encodeVets(items []*vets.Vet) ([]byte, error) {
	out := make([]cachedVet, 0, len(items))
	for _, v := range items {
		cv := cachedVet{ID: v.ID.Int(), FirstName: v.FirstName, LastName: v.LastName}
		for _, s := range v.Specialties() {
			cv.Specialties = append(cv.Specialties, cachedSpecialty{ID: s.ID.Int(), Name: s.Name})
		}
		out = append(out, cv)
	}
	return json.Marshal(out)
}

func decodeVets(raw []byte) ([]*vets.Vet, error) {
	var in []cachedVet
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, errors.Annotate(err, "decode vets")
	}
	out := make([]*vets.Vet, 0, len(in))
	for _, cv := range in {
		v := &vets.Vet{ID: entity.Persisted(cv.ID), FirstName: cv.FirstName, LastName: cv.LastName}
		for _, s := range cv.Specialties {
			v.AddSpecialty(vets.Specialty{ID: entity.Persisted(s.ID), Name: s.Name})
		}
		out = append(out, v)
	}
	return out, nil
}
