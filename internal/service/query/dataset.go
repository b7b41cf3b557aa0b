package query

import (
	"sort"
	"strings"
)

// DatasetTag 逻辑数据集标识
type DatasetTag string

const (
	DatasetAgriculture   DatasetTag = "agricultural_production"
	DatasetWeather       DatasetTag = "weather_data"
	DatasetClimateChange DatasetTag = "climate_change_data"
)

// AllDatasets 全部数据集，按名称排序
var AllDatasets = []DatasetTag{
	DatasetAgriculture,
	DatasetClimateChange,
	DatasetWeather,
}

// datasetSchemas 各数据集的表结构描述，用于构建生成提示词
// 新增数据集时在此补充描述即可，属于配置期扩展
var datasetSchemas = map[DatasetTag]string{
	DatasetAgriculture:   "Table containing agricultural production statistics by state, crop, and year. Columns: id, state, district, crop, year, season, area, production, yield_per_hectare, created_at",
	DatasetWeather:       "Table containing weather data including rainfall and temperature by state and date. Columns: id, state, district, date, rainfall, temperature_max, temperature_min, humidity, wind_speed, created_at",
	DatasetClimateChange: "Table containing climate change data with monthly averages for temperature and rainfall by station. Columns: id, Station_Name, Month, Period, No_of_Years, Mean_Temperature_in_degree_C___Maximum, Mean_Temperature__in_degree_C___Minimum, Mean_Rainfall_in_mm, created_at. Important: When querying this table, use double quotes around column names.",
}

// SchemaDescription 返回数据集的表结构描述
func SchemaDescription(tag DatasetTag) string {
	if desc, ok := datasetSchemas[tag]; ok {
		return desc
	}
	return "Table: " + string(tag)
}

// 主题关键词组
// 调参产物，与生成提示词中的表结构描述一起维护
var (
	agricultureKeywords = []string{"crop", "farm", "agriculture", "yield", "production", "harvest", "irrigation", "fertilizer", "pesticide", "rice", "wheat", "maize", "sugarcane"}
	climateKeywords     = []string{"weather", "rainfall", "temperature", "climate", "precipitation", "humidity", "monsoon", "wind", "heat", "cold", "warm", "hot", "cool", "chill"}
	districtKeywords    = []string{"district", "station", "location", "place", "area", "region"}
	temperatureKeywords = []string{"temperature", "heat", "warm", "hot", "cold", "cool", "chill", "degrees", "celsius", "fahrenheit"}
	superlativeKeywords = []string{"highest", "warmest", "hottest", "maximum", "peak", "top", "greatest", "most"}
)

// Classifier 数据集分类器
// 基于关键词匹配识别问题涉及的数据集，无匹配时兜底返回全部数据集
type Classifier struct{}

// NewClassifier 创建数据集分类器
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify 识别问题涉及的数据集，保证非空且顺序确定
func (c *Classifier) Classify(question string) []DatasetTag {
	questionLower := strings.ToLower(question)
	datasets := make(map[DatasetTag]bool)

	if containsAny(questionLower, agricultureKeywords) {
		datasets[DatasetAgriculture] = true
	}

	if containsAny(questionLower, climateKeywords) {
		datasets[DatasetWeather] = true
	}

	// 区域+气温+最值的组合指向气候变化数据，
	// 否则要求出现明确的主题短语
	if containsAny(questionLower, districtKeywords) &&
		containsAny(questionLower, temperatureKeywords) &&
		containsAny(questionLower, superlativeKeywords) {
		datasets[DatasetClimateChange] = true
	} else if strings.Contains(questionLower, "climate change") || strings.Contains(questionLower, "global warming") {
		datasets[DatasetClimateChange] = true
	}

	// 无法判断意图时返回全部数据集，宁可多查不漏查
	if len(datasets) == 0 {
		return append([]DatasetTag(nil), AllDatasets...)
	}

	result := make([]DatasetTag, 0, len(datasets))
	for tag := range datasets {
		result = append(result, tag)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// containsAny 任一关键词命中即为真
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// TagStrings 数据集标识转字符串列表
func TagStrings(tags []DatasetTag) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		result = append(result, string(tag))
	}
	return result
}
