package service

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/samarth/internal/config"
	"github.com/ashwinyue/samarth/internal/repository"
	"github.com/ashwinyue/samarth/internal/service/cache"
	"github.com/ashwinyue/samarth/internal/service/query"
)

// Services 服务集合
type Services struct {
	// 业务服务
	Query *query.Service

	// 配置
	Config *config.Config
}

// NewServices 创建所有服务
// ChatModel 创建失败只告警，问答服务会以 ServiceUnavailable 模式运行
func NewServices(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Services, error) {
	ctx := context.Background()

	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		log.Printf("Warning: failed to create chat model: %v", err)
	}

	store := repository.NewSQLStore(repo.DB)
	querySvc := query.NewService(chatModel, store, repo, cfg.Query)

	if cfg.Query.CacheTTL > 0 {
		ttl := time.Duration(cfg.Query.CacheTTL) * time.Second
		querySvc.SetCache(cache.New(redisClient, ttl))
	}

	return &Services{
		Query:  querySvc,
		Config: cfg,
	}, nil
}
