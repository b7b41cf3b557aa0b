package model

import "time"

// DatasetMetadata 数据集元信息
// 记录每个逻辑数据集的来源与规模，供 /datasets 接口展示
type DatasetMetadata struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	DatasetName string    `json:"dataset_name" gorm:"size:100;uniqueIndex"`
	ResourceID  string    `json:"resource_id" gorm:"size:100"`
	LastUpdated time.Time `json:"last_updated"`
	RecordCount int       `json:"record_count"`
	SourceURL   string    `json:"source_url" gorm:"size:500"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (DatasetMetadata) TableName() string {
	return "dataset_metadata"
}
