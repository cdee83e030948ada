// Package cache caché de lectura de productos sobre Redis.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect abre el cliente Redis y verifica con Ping. Acepta redis://... o host:port.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := options(rawURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func options(rawURL string) (*redis.Options, error) {
	var opts *redis.Options
	if strings.Contains(rawURL, "://") {
		parsed, err := redis.ParseURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: rawURL}
	}
	opts.PoolSize = 20
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	return opts, nil
}
