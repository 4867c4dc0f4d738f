package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"FundRadar/pkg/model"
)

const listKey = "fund:list"

// RedisConfig Redis连接配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisCache 基于Redis的列表缓存，多实例部署时共享同一缓存槽
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache 创建Redis缓存并校验连通性
func NewRedisCache(cfg RedisConfig, ttl time.Duration) (*RedisCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get 返回未过期的缓存列表，时效由Redis键过期控制
func (c *RedisCache) Get(ctx context.Context) ([]model.FundInfo, bool) {
	data, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, false
	}

	var funds []model.FundInfo
	if err := json.Unmarshal(data, &funds); err != nil {
		return nil, false
	}
	return funds, true
}

// Set 整体覆盖缓存槽
func (c *RedisCache) Set(ctx context.Context, funds []model.FundInfo) error {
	data, err := json.Marshal(funds)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey, data, c.ttl).Err()
}

// Clear 清空缓存槽
func (c *RedisCache) Clear(ctx context.Context) error {
	err := c.client.Del(ctx, listKey).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// Close 关闭Redis连接
func (c *RedisCache) Close() error {
	return c.client.Close()
}
