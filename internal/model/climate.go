package model

import "time"

// ClimateChangeData 气候变化数据
// 按站点、月份统计的长期气温与降雨均值
// 上游数据源的列名是大小写混合的，保留原始列名，查询时需要双引号
type ClimateChangeData struct {
	ID                 uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	StationName        string    `json:"station_name" gorm:"column:Station_Name;size:100;index"`
	Month              string    `json:"month" gorm:"column:Month;size:20"`
	Period             string    `json:"period" gorm:"column:Period;size:50"`
	NoOfYears          int       `json:"no_of_years" gorm:"column:No_of_Years"`
	MeanTemperatureMax float64   `json:"mean_temperature_max" gorm:"column:Mean_Temperature_in_degree_C___Maximum"`
	MeanTemperatureMin float64   `json:"mean_temperature_min" gorm:"column:Mean_Temperature__in_degree_C___Minimum"`
	MeanRainfall       float64   `json:"mean_rainfall" gorm:"column:Mean_Rainfall_in_mm"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName 指定表名
func (ClimateChangeData) TableName() string {
	return "climate_change_data"
}
