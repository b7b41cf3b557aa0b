package model

import "time"

// AgriculturalProduction 农业生产数据
// 按邦、作物、年份统计的产量记录
type AgriculturalProduction struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	State            string    `json:"state" gorm:"size:100;index"`
	District         string    `json:"district" gorm:"size:100;index"`
	Crop             string    `json:"crop" gorm:"size:100;index"`
	Year             int       `json:"year" gorm:"index"`
	Season           string    `json:"season" gorm:"size:50"`
	Area             float64   `json:"area"`               // 公顷
	Production       float64   `json:"production"`         // 吨
	YieldPerHectare  float64   `json:"yield_per_hectare"`  // production/area
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (AgriculturalProduction) TableName() string {
	return "agricultural_production"
}
