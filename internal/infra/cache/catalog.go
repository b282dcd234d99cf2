package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SLN-CalendarService/internal/integrations/franchiseservice"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CatalogReader интерфейс чтения справочников (реализуется franchiseservice.Client)
type CatalogReader interface {
	GetFranchise(ctx context.Context, franchiseID int64) (*franchiseservice.Franchise, error)
	GetService(ctx context.Context, serviceID int64) (*franchiseservice.Service, error)
	GetCustomer(ctx context.Context, customerID int64) (*franchiseservice.Customer, error)
}

// CachedCatalog read-through кеш справочных данных поверх franchiseservice
//
// Справочники читаются при каждом открытии диалога бронирования и отрисовке
// календаря, при этом меняются редко. Любая ошибка redis приводит к прямому
// запросу в справочный сервис: кеш не является источником истины.
//
// Клиенты справочника НЕ кешируются: их снапшот попадает в запись при
// бронировании, устаревший телефон в снапшоте хуже лишнего запроса.
type CachedCatalog struct {
	reader CatalogReader
	rdb    *redis.Client
	ttl    time.Duration
	log    Logger
}

// NewCachedCatalog создает кеширующую обертку над справочным клиентом
func NewCachedCatalog(reader CatalogReader, rdb *redis.Client, ttl time.Duration, log Logger) *CachedCatalog {
	return &CachedCatalog{
		reader: reader,
		rdb:    rdb,
		ttl:    ttl,
		log:    log,
	}
}

// GetFranchise получает салон, сперва из кеша
func (c *CachedCatalog) GetFranchise(ctx context.Context, franchiseID int64) (*franchiseservice.Franchise, error) {
	key := fmt.Sprintf("catalog:franchise:%d", franchiseID)

	var cached franchiseservice.Franchise
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	franchise, err := c.reader.GetFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, franchise)
	return franchise, nil
}

// GetService получает услугу каталога, сперва из кеша
func (c *CachedCatalog) GetService(ctx context.Context, serviceID int64) (*franchiseservice.Service, error) {
	key := fmt.Sprintf("catalog:service:%d", serviceID)

	var cached franchiseservice.Service
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	service, err := c.reader.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, service)
	return service, nil
}

// GetCustomer всегда идет в справочный сервис напрямую
func (c *CachedCatalog) GetCustomer(ctx context.Context, customerID int64) (*franchiseservice.Customer, error) {
	return c.reader.GetCustomer(ctx, customerID)
}

// lookup читает ключ из redis, возвращает true при попадании
func (c *CachedCatalog) lookup(ctx context.Context, key string, out interface{}) bool {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("CachedCatalog: redis get %s failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		c.log.Warn("CachedCatalog: corrupt cache entry %s: %v", key, err)
		return false
	}

	return true
}

// store пишет значение в redis, ошибки не фатальны
func (c *CachedCatalog) store(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("CachedCatalog: marshal %s failed: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("CachedCatalog: redis set %s failed: %v", key, err)
	}
}
