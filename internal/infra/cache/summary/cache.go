package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix префикс ключей месячных сводок
const keyPrefix = "workplace:summary"

// GenerationKey счетчик, общий для всех месяцев; растет при смене настроек
const GenerationKey = keyPrefix + ":generation"

// Key возвращает ключ сводки за месяц для версии version
func Key(year int, month time.Month, version string) string {
	return fmt.Sprintf("%s:%04d-%02d:%s", keyPrefix, year, int(month), version)
}

// VersionKey возвращает ключ счетчика версий сводки за месяц
func VersionKey(year int, month time.Month) string {
	return fmt.Sprintf("%s:version:%04d-%02d", keyPrefix, year, int(month))
}

// Cache кэш месячных сводок в Redis
// Значения хранятся в JSON, отсутствие ключа - промах, а не ошибка.
// Сводка пишется под версией, прочитанной до загрузки данных, поэтому запись,
// опоздавшая после Invalidate, попадает в ключ, который больше никто не читает.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// NewRedisClient создает клиент по URL и проверяет соединение
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %v", ErrRedis, err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrRedis, err)
	}

	return client, nil
}

// Version возвращает текущую версию сводки за месяц
func (c *Cache) Version(ctx context.Context, year int, month time.Month) (string, error) {
	values, err := c.client.MGet(ctx, GenerationKey, VersionKey(year, month)).Result()
	if err != nil {
		return "", fmt.Errorf("%w: Version - %v", ErrRedis, err)
	}
	if len(values) != 2 {
		return "", fmt.Errorf("%w: Version - unexpected reply length %d", ErrRedis, len(values))
	}

	return fmt.Sprintf("g%s.v%s", counter(values[0]), counter(values[1])), nil
}

// Get читает сводку версии version в dst; возвращает false при промахе
func (c *Cache) Get(ctx context.Context, year int, month time.Month, version string, dst any) (bool, error) {
	payload, err := c.client.Get(ctx, Key(year, month, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Get - %v", ErrRedis, err)
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}

	return true, nil
}

// Set сохраняет сводку версии version с TTL
func (c *Cache) Set(ctx context.Context, year int, month time.Month, version string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: Set - %v", ErrEncode, err)
	}

	if err := c.client.Set(ctx, Key(year, month, version), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrRedis, err)
	}

	return nil
}

// Invalidate сбрасывает сводку за месяц, увеличивая его версию
func (c *Cache) Invalidate(ctx context.Context, year int, month time.Month) error {
	if err := c.client.Incr(ctx, VersionKey(year, month)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - %v", ErrRedis, err)
	}
	return nil
}

// InvalidateAll сбрасывает сводки за все месяцы
func (c *Cache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, GenerationKey).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateAll - %v", ErrRedis, err)
	}
	return nil
}

// counter приводит значение счетчика из MGET к строке, отсутствующий ключ - "0"
func counter(v interface{}) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return "0"
}

// NoopCache используется, когда Redis выключен
type NoopCache struct{}

// Version всегда возвращает пустую версию
func (NoopCache) Version(ctx context.Context, year int, month time.Month) (string, error) {
	return "", nil
}

// Get всегда возвращает промах
func (NoopCache) Get(ctx context.Context, year int, month time.Month, version string, dst any) (bool, error) {
	return false, nil
}

// Set ничего не делает
func (NoopCache) Set(ctx context.Context, year int, month time.Month, version string, value any) error {
	return nil
}

// Invalidate ничего не делает
func (NoopCache) Invalidate(ctx context.Context, year int, month time.Month) error {
	return nil
}

// InvalidateAll ничего не делает
func (NoopCache) InvalidateAll(ctx context.Context) error {
	return nil
}
