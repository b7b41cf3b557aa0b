package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SQLStore 原生 SELECT 查询执行器
// 查询管道生成的 SQL 列集不固定，结果以 map 形式返回
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore 创建 SQL 查询执行器
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// ExecuteSelect 执行 SELECT 查询并返回行映射
func (s *SQLStore) ExecuteSelect(ctx context.Context, sqlQuery string) ([]map[string]interface{}, error) {
	rows, err := s.db.WithContext(ctx).Raw(sqlQuery).Rows()
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	results := make([]map[string]interface{}, 0)
	for rows.Next() {
		columnValues := make([]interface{}, len(columns))
		columnPointers := make([]interface{}, len(columns))
		for i := range columnValues {
			columnPointers[i] = &columnValues[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		rowMap := make(map[string]interface{}, len(columns))
		for i, colName := range columns {
			val := columnValues[i]
			if b, ok := val.([]byte); ok {
				rowMap[colName] = string(b)
			} else {
				rowMap[colName] = val
			}
		}
		results = append(results, rowMap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return results, nil
}
