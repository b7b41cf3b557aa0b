package handler

import (
	"github.com/ashwinyue/samarth/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Query *QueryHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Query: NewQueryHandler(svc),
	}
}
