package model

import "time"

// WeatherData 气象观测数据
// 按邦、日期记录的降雨与气温
type WeatherData struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	State          string    `json:"state" gorm:"size:100;index"`
	District       string    `json:"district" gorm:"size:100;index"`
	Date           time.Time `json:"date" gorm:"index"`
	Rainfall       float64   `json:"rainfall"`        // 毫米
	TemperatureMax float64   `json:"temperature_max"` // 摄氏度
	TemperatureMin float64   `json:"temperature_min"` // 摄氏度
	Humidity       float64   `json:"humidity"`        // 百分比
	WindSpeed      float64   `json:"wind_speed"`      // 公里/小时
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (WeatherData) TableName() string {
	return "weather_data"
}
