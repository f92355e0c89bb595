package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/standards-watch/activities/lib/cache"
)

type RedisConfig struct {
	Host       string
	Port       int
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

func NewRedisClient(conf RedisConfig) Client {
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
		ttl: time.Duration(conf.TTLSeconds) * time.Second,
	}
}

type redisClient struct {
	*redis.Client
	ttl time.Duration
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}

func (r *redisClient) Get(key string) (*cache.Page, error) {
	b, err := r.Client.Get(key).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var page cache.Page
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *redisClient) Set(key string, page *cache.Page) error {
	b, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return r.Client.Set(key, b, r.ttl).Err()
}
