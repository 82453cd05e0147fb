package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shoply/storefront-api/internal/api/metrics"
	"github.com/shoply/storefront-api/internal/core/domain"
)

const (
	cacheTTL       = 5 * time.Minute
	productListKey = "products:list"
)

// ProductCache is a Redis-backed read cache for the public product catalog.
// Values are JSON-encoded and expire after cacheTTL; mutations drop the
// affected keys so readers fall back to the store.
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func productKey(id string) string {
	return fmt.Sprintf("products:%s", id)
}

// GetList returns the cached catalog, or (nil, nil) on miss.
func (c *ProductCache) GetList(ctx context.Context) ([]*domain.Product, error) {
	raw, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get list: %w", err)
	}

	var products []*domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("cache decode list: %w", err)
	}
	metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
	return products, nil
}

func (c *ProductCache) SetList(ctx context.Context, products []*domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("cache encode list: %w", err)
	}
	return c.client.Set(ctx, productListKey, raw, cacheTTL).Err()
}

// GetProduct returns the cached product, or (nil, nil) on miss.
func (c *ProductCache) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	raw, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get product: %w", err)
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("cache decode product: %w", err)
	}
	metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
	return &p, nil
}

func (c *ProductCache) SetProduct(ctx context.Context, p *domain.Product) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode product: %w", err)
	}
	return c.client.Set(ctx, productKey(p.ID), raw, cacheTTL).Err()
}

// Invalidate drops the catalog key and, when id is non-empty, the product key.
func (c *ProductCache) Invalidate(ctx context.Context, id string) error {
	keys := []string{productListKey}
	if id != "" {
		keys = append(keys, productKey(id))
	}
	return c.client.Del(ctx, keys...).Err()
}
