// Package query 提供自然语言问答管道：
// 数据集识别 → SQL 生成 → 校验 → 执行 → 答案合成 → 置信度与图表提示
package query

import "context"

// ResultRow 单行查询结果
// 列集由生成的 SQL 决定，跨查询不保证一致，下游按弱类型处理
type ResultRow = map[string]interface{}

// GeneratedQuery 数据集与其生成的 SQL 配对
type GeneratedQuery struct {
	Dataset DatasetTag
	SQL     string
}

// FailedQuery 执行失败的查询记录
type FailedQuery struct {
	Query string `json:"query"`
	Error string `json:"error"`
}

// Store 关系存储抽象
// 管道只执行只读 SELECT，存储错误作为不透明文本处理
type Store interface {
	ExecuteSelect(ctx context.Context, sql string) ([]map[string]interface{}, error)
}

// QueryRequest 问答请求
type QueryRequest struct {
	Question string `json:"question" binding:"required"`
	UserID   string `json:"user_id"`
}

// QueryResponse 问答响应
// 返回后不再修改
type QueryResponse struct {
	Answer            string         `json:"answer"`
	DataSources       []string       `json:"data_sources"`
	SQLQueries        []string       `json:"sql_queries"`
	VisualizationData *Visualization `json:"visualization_data"`
	ConfidenceScore   float64        `json:"confidence_score"`
	ExecutionTime     float64        `json:"execution_time"`
}

// AnswerCache 问答结果缓存抽象
type AnswerCache interface {
	Get(ctx context.Context, key string) (*QueryResponse, bool)
	Set(ctx context.Context, key string, resp *QueryResponse)
}
