package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/kellyos/kellyos-api/pkg/config"
)

// Claves y TTLs del caché. El caché es una optimización: toda falla de Redis
// degrada a leer de la DB, nunca a un error del request.
const (
	keyProduct        = "product:%s"
	keyDashboardStats = "analytics:dashboard"

	ttlProduct        = 5 * time.Minute
	ttlDashboardStats = 60 * time.Second
)

// Cache envuelve el cliente Redis. Un Cache nil (Redis deshabilitado) es
// válido: todas las operaciones son no-op.
type Cache struct {
	client *redis.Client
}

// New conecta a Redis. Devuelve (nil, nil) si Addr está vacío (caché deshabilitado).
func New(ctx context.Context, cfg config.RedisConfig) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Cache{client: client}, nil
}

// Close cierra la conexión.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// get deserializa el valor JSON de key en out. ok=false en miss o error.
func (c *Cache) get(ctx context.Context, key string, out any) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("cache get falló, leyendo de DB")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache con JSON inválido, descartando")
		return false
	}
	return true
}

// set serializa v como JSON con TTL. Los errores solo se loguean.
func (c *Cache) set(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache marshal falló")
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set falló")
	}
}

func (c *Cache) del(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("cache del falló")
	}
}

// GetProduct intenta leer un producto cacheado.
func (c *Cache) GetProduct(ctx context.Context, id string, out any) bool {
	return c.get(ctx, fmt.Sprintf(keyProduct, id), out)
}

// SetProduct cachea la respuesta de un producto.
func (c *Cache) SetProduct(ctx context.Context, id string, v any) {
	c.set(ctx, fmt.Sprintf(keyProduct, id), v, ttlProduct)
}

// InvalidateProduct borra el producto del caché (tras update, delete o ajuste de stock).
func (c *Cache) InvalidateProduct(ctx context.Context, id string) {
	c.del(ctx, fmt.Sprintf(keyProduct, id))
}

// GetDashboardStats intenta leer las estadísticas del dashboard cacheadas.
func (c *Cache) GetDashboardStats(ctx context.Context, out any) bool {
	return c.get(ctx, keyDashboardStats, out)
}

// SetDashboardStats cachea las estadísticas del dashboard (TTL corto: 60s).
func (c *Cache) SetDashboardStats(ctx context.Context, v any) {
	c.set(ctx, keyDashboardStats, v, ttlDashboardStats)
}
