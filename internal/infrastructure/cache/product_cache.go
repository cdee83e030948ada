package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

const (
	keyPrefix      = "product:"
	notFoundMarker = "notfound"
	notFoundTTL    = time.Minute
)

var _ repository.ProductRepository = (*CachedProductRepository)(nil)

// CachedProductRepository decora un ProductRepository con lectura vía Redis para GetByID.
// Update y Delete invalidan la clave. Un Redis caído degrada a lectura directa.
type CachedProductRepository struct {
	repository.ProductRepository
	redis *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedProductRepository envuelve realRepo.
func NewCachedProductRepository(realRepo repository.ProductRepository, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CachedProductRepository{ProductRepository: realRepo, redis: rdb, ttl: ttl, log: log.Component("product_cache")}
}

type cachedProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	OwnerID     string          `json:"owner"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func encodeProduct(p *entity.Product) ([]byte, error) {
	return json.Marshal(cachedProduct{
		ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price,
		OwnerID: p.OwnerID, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	})
}

func decodeProduct(data []byte) (*entity.Product, error) {
	var c cachedProduct
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &entity.Product{
		ID: c.ID, Name: c.Name, Description: c.Description, Price: c.Price,
		OwnerID: c.OwnerID, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}, nil
}

// GetByID lee de Redis; en miss consulta el repositorio real y guarda el resultado.
// Los inexistentes se recuerdan un minuto.
func (c *CachedProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	key := keyPrefix + id
	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundMarker {
			return nil, nil
		}
		p, decErr := decodeProduct(data)
		if decErr == nil {
			return p, nil
		}
		c.log.Warn().Err(decErr).Str("key", key).Msg("entrada de caché corrupta")
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn().Err(err).Msg("redis no disponible, se lee de la base")
	}

	p, err := c.ProductRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		if err := c.redis.Set(ctx, key, notFoundMarker, notFoundTTL).Err(); err != nil {
			c.log.Debug().Err(err).Msg("no se pudo cachear notfound")
		}
		return nil, nil
	}
	if payload, err := encodeProduct(p); err == nil {
		if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Debug().Err(err).Msg("no se pudo cachear el producto")
		}
	}
	return p, nil
}

// Create invalida un posible notfound cacheado para el id.
func (c *CachedProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := c.ProductRepository.Create(ctx, product); err != nil {
		return err
	}
	c.invalidate(ctx, product.ID)
	return nil
}

func (c *CachedProductRepository) Update(ctx context.Context, product *entity.Product) error {
	err := c.ProductRepository.Update(ctx, product)
	c.invalidate(ctx, product.ID)
	return err
}

func (c *CachedProductRepository) Delete(ctx context.Context, id string) error {
	err := c.ProductRepository.Delete(ctx, id)
	c.invalidate(ctx, id)
	return err
}

func (c *CachedProductRepository) invalidate(ctx context.Context, id string) {
	if err := c.redis.Del(ctx, keyPrefix+id).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("no se pudo invalidar la caché")
	}
}
