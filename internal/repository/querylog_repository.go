package repository

import (
	"github.com/ashwinyue/samarth/internal/model"
	"gorm.io/gorm"
)

// QueryLogRepository 问答记录数据访问
type QueryLogRepository struct {
	db *gorm.DB
}

// NewQueryLogRepository 创建问答记录仓库
func NewQueryLogRepository(db *gorm.DB) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

// Create 写入问答记录
func (r *QueryLogRepository) Create(log *model.QueryLog) error {
	return r.db.Create(log).Error
}

// ListRecent 列出最近的问答记录
func (r *QueryLogRepository) ListRecent(limit int) ([]*model.QueryLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var logs []*model.QueryLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// ListByUser 列出指定用户的问答记录
func (r *QueryLogRepository) ListByUser(userID string, limit int) ([]*model.QueryLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var logs []*model.QueryLog
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
