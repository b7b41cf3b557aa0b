// Package cache 提供问答结果缓存
// Redis 可用时走 Redis，否则退化为进程内存缓存
package cache

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/samarth/internal/service/query"
)

// AnswerCache 问答结果缓存
type AnswerCache struct {
	mu     sync.RWMutex
	memory map[string]*memoryEntry
	redis  *redis.Client
	ttl    time.Duration
}

// memoryEntry 内存缓存条目
type memoryEntry struct {
	resp      *query.QueryResponse
	expiresAt time.Time
}

// New 创建问答缓存
// redisClient 为 nil 时只使用内存缓存
func New(redisClient *redis.Client, ttl time.Duration) *AnswerCache {
	return &AnswerCache{
		memory: make(map[string]*memoryEntry),
		redis:  redisClient,
		ttl:    ttl,
	}
}

// Get 读取缓存的响应
func (c *AnswerCache) Get(ctx context.Context, key string) (*query.QueryResponse, bool) {
	if c.redis != nil {
		data, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			var resp query.QueryResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, true
			}
		} else if err != redis.Nil {
			log.Printf("Warning: redis get failed: %v", err)
		}
	}

	c.mu.RLock()
	entry, ok := c.memory[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.memory, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.resp, true
}

// Set 写入响应缓存
func (c *AnswerCache) Set(ctx context.Context, key string, resp *query.QueryResponse) {
	if c.ttl <= 0 {
		return
	}

	if c.redis != nil {
		data, err := json.Marshal(resp)
		if err == nil {
			if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
				log.Printf("Warning: redis set failed: %v", err)
			}
		}
	}

	c.mu.Lock()
	c.memory[key] = &memoryEntry{
		resp:      resp,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}
