package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/dulcehorno/panaderia-api/internal/application/inventory"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

var _ inventory.CriticalCache = (*CriticalStockCache)(nil)

const criticalKey = "inventory:critical"

// CriticalStockCache caché en Redis del resultado del escáner de stock
// crítico. Se invalida tras cada movimiento confirmado, por lo que una
// entrada vigente refleja como máximo el TTL de desfase.
type CriticalStockCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCriticalStockCache construye el caché sobre un cliente Redis ya conectado.
func NewCriticalStockCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *CriticalStockCache {
	return &CriticalStockCache{client: client, ttl: ttl, log: log}
}

// Get devuelve la lista cacheada y true si hay una entrada vigente.
// Cualquier error de Redis o de deserialización se trata como miss.
func (c *CriticalStockCache) Get(ctx context.Context) ([]*entity.RawMaterial, bool) {
	data, err := c.client.Get(ctx, criticalKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("fallo al leer caché de stock crítico")
		}
		return nil, false
	}
	var materials []*entity.RawMaterial
	if err := json.Unmarshal([]byte(data), &materials); err != nil {
		c.log.Warn().Err(err).Msg("entrada de caché de stock crítico corrupta")
		return nil, false
	}
	return materials, true
}

// Set almacena la lista con el TTL configurado.
func (c *CriticalStockCache) Set(ctx context.Context, materials []*entity.RawMaterial) error {
	data, err := json.Marshal(materials)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, criticalKey, data, c.ttl).Err()
}

// Invalidate elimina la entrada; la siguiente consulta recalcula contra la base.
func (c *CriticalStockCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, criticalKey).Err()
}
