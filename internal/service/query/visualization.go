package query

import "strconv"

// 图表类型
const (
	ChartLine = "line"
	ChartPie  = "pie"
	ChartBar  = "bar"
)

// Visualization 图表提示
// 告诉展示层哪种图形最适合当前结果集
type Visualization struct {
	ChartType string      `json:"chart_type"`
	Data      []ResultRow `json:"data"`
}

// 饼图启发式的最大行数
const maxPieRows = 10

// SelectVisualization 根据结果集形状选择图表类型
// 检查顺序固定：时序（year 列）优先于小规模构成（饼图），其余回退柱状图
func SelectVisualization(rows []ResultRow) *Visualization {
	if len(rows) == 0 {
		return nil
	}

	if _, ok := rows[0]["year"]; ok {
		return &Visualization{ChartType: ChartLine, Data: rows}
	}

	if len(rows) <= maxPieRows && hasNumericField(rows[0]) {
		return &Visualization{ChartType: ChartPie, Data: rows}
	}

	return &Visualization{ChartType: ChartBar, Data: rows}
}

// hasNumericField 行内是否存在数值字段
// 数据库驱动可能把数值列扫成字符串，可解析为数字的字符串也算
func hasNumericField(row ResultRow) bool {
	for _, v := range row {
		if v == nil {
			continue
		}
		switch val := v.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		case string:
			if _, err := strconv.ParseFloat(val, 64); err == nil {
				return true
			}
		}
	}
	return false
}
