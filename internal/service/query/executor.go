package query

import (
	"context"
	"log"
	"strings"
)

// Executor 查询执行器
// 逐条执行生成的查询，失败的查询单独记录，不中断其余查询
type Executor struct {
	store     Store
	validator *Validator
}

// NewExecutor 创建查询执行器
func NewExecutor(store Store, validator *Validator) *Executor {
	return &Executor{store: store, validator: validator}
}

// ExecuteAll 执行全部查询
// 返回聚合结果行、成功的 SQL 与失败记录；聚合行可能混合不同数据集的列集
func (e *Executor) ExecuteAll(ctx context.Context, queries []GeneratedQuery) ([]ResultRow, []string, []FailedQuery) {
	rows := make([]ResultRow, 0)
	successful := make([]string, 0)
	failed := make([]FailedQuery, 0)

	for i, q := range queries {
		// 空查询和生成失败的哨兵查询直接判失败，不访问存储
		if strings.TrimSpace(q.SQL) == "" || strings.Contains(q.SQL, "LLM query generation failed") {
			failed = append(failed, FailedQuery{Query: q.SQL, Error: "Invalid or empty query"})
			continue
		}

		// 执行前强制校验，这是唯一的 SQL 写操作防线
		if ok, reason := e.validator.Validate(q.SQL); !ok {
			log.Printf("Query %d rejected by validator: %s", i+1, reason)
			failed = append(failed, FailedQuery{Query: q.SQL, Error: reason})
			continue
		}

		results, err := e.store.ExecuteSelect(ctx, q.SQL)
		if err != nil {
			log.Printf("Error executing query %d: %v", i+1, err)
			failed = append(failed, FailedQuery{Query: q.SQL, Error: err.Error()})
			continue
		}

		rows = append(rows, results...)
		successful = append(successful, q.SQL)
		log.Printf("Executed query %d: %d results", i+1, len(results))
	}

	return rows, successful, failed
}
