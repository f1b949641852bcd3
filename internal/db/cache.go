package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
}

// кэшируем баланс вместе с premium-флагом
type cachedBalance struct {
	Points  int64 `json:"points"`
	Premium bool  `json:"premium"`
}

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("KVOTE_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env KVOTE_CACHE_URL is not set")
	}
	user := os.Getenv("KVOTE_CACHE_USER")
	if user == "" {
		return nil, fmt.Errorf("env KVOTE_CACHE_USER is not set")
	}
	pwd := os.Getenv("KVOTE_CACHE_PWD")
	if pwd == "" {
		return nil, fmt.Errorf("env KVOTE_CACHE_PWD is not set")
	}
	// redis
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = client.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{client}, nil
}

func (c *CacheService) GetBalance(ctx context.Context, user string) (points int64, premium bool, err error) {
	val, err := c.client.Get(ctx, user).Result()
	if err == redis.Nil {
		return 0, false, fmt.Errorf("not found")
	} else if err != nil {
		return 0, false, err
	}

	cached := cachedBalance{}
	err = json.Unmarshal([]byte(val), &cached)
	if err != nil {
		return 0, false, err
	}
	return cached.Points, cached.Premium, nil
}

func (c *CacheService) SetBalance(ctx context.Context, user string, points int64, premium bool) (err error) {
	val, err := json.Marshal(cachedBalance{points, premium})
	if err != nil {
		return err
	}
	err = c.client.Set(ctx, user, val, 5*time.Minute).Err()
	if err != nil {
		return err
	}
	return nil
}

func (c *CacheService) InvalidateBalance(ctx context.Context, user string) error {
	err := c.client.Del(ctx, user).Err()
	if err != nil {
		return err
	}
	return nil
}
