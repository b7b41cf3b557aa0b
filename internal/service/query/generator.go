package query

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// FailureSentinel 生成失败时返回的哨兵 SQL
// 执行器据此直接判定失败，不需要单独的错误通道
const FailureSentinel = "SELECT 'LLM query generation failed' as error_message;"

// ErrorMarkerColumn 哨兵查询的列名，置信度评分时用于识别错误行
const ErrorMarkerColumn = "error_message"

const (
	generateTemperature float32 = 0.3
	generateMaxTokens           = 500
)

// override 已知高价值问题的固定 SQL
// 按序匹配，问题与数据集同时命中时直接返回模板，完全绕过生成
type override struct {
	pattern string
	dataset DatasetTag
	sql     string
}

var sqlOverrides = []override{
	{
		pattern: "districts has highest mean temperature over 100 years",
		dataset: DatasetClimateChange,
		sql:     `SELECT "Station_Name", AVG("Mean_Temperature_in_degree_C___Maximum") as avg_max_temp FROM climate_change_data GROUP BY "Station_Name" ORDER BY avg_max_temp DESC LIMIT 10`,
	},
	{
		pattern: "crop production trend in andhra pradesh from 2010 to 2013",
		dataset: DatasetAgriculture,
		sql:     `SELECT year, SUM(production) as total_production FROM agricultural_production WHERE state = 'Andhra Pradesh' AND year BETWEEN 2010 AND 2013 GROUP BY year ORDER BY year`,
	},
}

// Generator SQL 生成器
// 固定模板优先，否则构建提示词调用 ChatModel 生成
type Generator struct {
	chatModel model.ChatModel
}

// NewGenerator 创建 SQL 生成器
func NewGenerator(chatModel model.ChatModel) *Generator {
	return &Generator{chatModel: chatModel}
}

// Generate 为指定数据集生成一条 SQL
// 生成失败时返回哨兵查询而不是错误
func (g *Generator) Generate(ctx context.Context, question string, dataset DatasetTag) string {
	questionLower := strings.ToLower(question)
	for _, o := range sqlOverrides {
		if strings.Contains(questionLower, o.pattern) && o.dataset == dataset {
			return o.sql
		}
	}

	if g.chatModel == nil {
		return FailureSentinel
	}

	prompt := buildGeneratePrompt(question, dataset)
	messages := []*schema.Message{
		{Role: schema.User, Content: prompt},
	}

	resp, err := g.chatModel.Generate(ctx, messages,
		model.WithTemperature(generateTemperature),
		model.WithMaxTokens(generateMaxTokens),
	)
	if err != nil {
		log.Printf("SQL generation failed for dataset %s: %v", dataset, err)
		return FailureSentinel
	}

	sqlQuery := stripCodeFence(resp.Content)
	if sqlQuery == "" {
		return FailureSentinel
	}
	return sqlQuery
}

// buildGeneratePrompt 构建 SQL 生成提示词
func buildGeneratePrompt(question string, dataset DatasetTag) string {
	return fmt.Sprintf(`You are an expert SQL analyst working with Indian agricultural and climate data.

Available dataset:
Table: %s - %s

User question: "%s"

Generate a valid PostgreSQL query to answer this question.
Only return the SQL query, nothing else.
Make sure to use proper table names and column names.
For the climate_change_data table, use double quotes around column names (e.g., "Station_Name", "Mean_Temperature_in_degree_C___Maximum").
Use appropriate WHERE clauses to filter data based on the question.
Use appropriate ORDER BY clauses to sort results.
Use appropriate LIMIT clauses to limit results to a reasonable number.
Use proper date formatting for date comparisons.

Examples of correct queries for climate_change_data:
1. To find stations with highest average maximum temperature:
   SELECT "Station_Name", AVG("Mean_Temperature_in_degree_C___Maximum") as avg_max_temp FROM climate_change_data GROUP BY "Station_Name" ORDER BY avg_max_temp DESC LIMIT 10
2. To find stations with highest average minimum temperature:
   SELECT "Station_Name", AVG("Mean_Temperature__in_degree_C___Minimum") as avg_min_temp FROM climate_change_data GROUP BY "Station_Name" ORDER BY avg_min_temp DESC LIMIT 10`,
		dataset, SchemaDescription(dataset), question)
}

// stripCodeFence 去掉 Markdown 代码块包裹
func stripCodeFence(raw string) string {
	sqlQuery := strings.TrimSpace(raw)
	if strings.HasPrefix(sqlQuery, "```sql") {
		sqlQuery = sqlQuery[6:]
	} else if strings.HasPrefix(sqlQuery, "```") {
		sqlQuery = sqlQuery[3:]
	}
	if strings.HasSuffix(sqlQuery, "```") {
		sqlQuery = sqlQuery[:len(sqlQuery)-3]
	}
	return strings.TrimSpace(sqlQuery)
}
