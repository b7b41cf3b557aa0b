package repository

import (
	"github.com/ashwinyue/samarth/internal/model"
	"gorm.io/gorm"
)

// MetadataRepository 数据集元信息数据访问
type MetadataRepository struct {
	db *gorm.DB
}

// NewMetadataRepository 创建元信息仓库
func NewMetadataRepository(db *gorm.DB) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// GetByName 按数据集名称获取元信息
func (r *MetadataRepository) GetByName(name string) (*model.DatasetMetadata, error) {
	var meta model.DatasetMetadata
	err := r.db.Where("dataset_name = ?", name).First(&meta).Error
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// ListAll 列出所有数据集元信息
func (r *MetadataRepository) ListAll() ([]*model.DatasetMetadata, error) {
	var metas []*model.DatasetMetadata
	err := r.db.Order("dataset_name").Find(&metas).Error
	return metas, err
}

// Upsert 写入或更新元信息
func (r *MetadataRepository) Upsert(meta *model.DatasetMetadata) error {
	var existing model.DatasetMetadata
	err := r.db.Where("dataset_name = ?", meta.DatasetName).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(meta).Error
	}
	if err != nil {
		return err
	}
	meta.ID = existing.ID
	return r.db.Save(meta).Error
}
