// Package cache implementa el caché Redis del resumen del dashboard.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moganraj05/Inventory-Management-System/internal/application/analytics"
	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/pkg/config"
)

const (
	summaryKey      = "dashboard:summary"
	dialTimeout     = 5 * time.Second
	readTimeout     = 3 * time.Second
	writeTimeout    = 3 * time.Second
	maxRetries      = 3
	minRetryBackoff = 100 * time.Millisecond
	maxRetryBackoff = 300 * time.Millisecond
)

var _ analytics.SummaryCache = (*SummaryCache)(nil)

// SummaryCache guarda el DashboardSummaryDTO serializado en Redis con TTL corto.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect abre el cliente Redis y verifica la conexión con un ping.
func Connect(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      maxRetries,
		MinRetryBackoff: minRetryBackoff,
		MaxRetryBackoff: maxRetryBackoff,
		DialTimeout:     dialTimeout,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewSummaryCache construye el caché con el TTL indicado.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// Get devuelve el resumen cacheado; found=false si la clave no existe.
func (c *SummaryCache) Get(ctx context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	payload, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get summary cache: %w", err)
	}
	var summary dto.DashboardSummaryDTO
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, false, fmt.Errorf("unmarshal summary cache: %w", err)
	}
	return &summary, true, nil
}

// Set serializa y guarda el resumen con el TTL configurado.
func (c *SummaryCache) Set(ctx context.Context, summary *dto.DashboardSummaryDTO) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary cache: %w", err)
	}
	if err := c.client.Set(ctx, summaryKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set summary cache: %w", err)
	}
	return nil
}
