package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList 字符串列表，JSON 序列化后存储
type StringList []string

// Value 实现 driver.Valuer 接口
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner 接口
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}
}

// QueryLog 问答记录
// 每次管道执行后尽力写入，失败不影响响应
type QueryLog struct {
	ID              string     `json:"id" gorm:"primaryKey;size:36"`
	Question        string     `json:"question" gorm:"type:text"`
	Answer          string     `json:"answer" gorm:"type:text"`
	DataSources     StringList `json:"data_sources" gorm:"type:text"`
	SQLQueries      StringList `json:"sql_queries" gorm:"type:text"`
	ConfidenceScore float64    `json:"confidence_score"`
	UserID          string     `json:"user_id" gorm:"size:100;index"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName 指定表名
func (QueryLog) TableName() string {
	return "user_queries"
}
