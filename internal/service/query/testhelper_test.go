// Package query 提供问答管道测试辅助
package query

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ========== Mock ChatModel ==========

type mockChatModel struct {
	responses []string
	err       error
	callCount int
	prompts   []string
}

func newMockChatModel(responses []string, err error) *mockChatModel {
	return &mockChatModel{responses: responses, err: err}
}

func (m *mockChatModel) Generate(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.callCount++
	if len(messages) > 0 {
		m.prompts = append(m.prompts, messages[len(messages)-1].Content)
	}
	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return &schema.Message{Role: schema.Assistant, Content: "default response"}, nil
	}
	idx := (m.callCount - 1) % len(m.responses)
	return &schema.Message{Role: schema.Assistant, Content: m.responses[idx]}, nil
}

func (m *mockChatModel) Stream(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, nil
}

func (m *mockChatModel) BindTools(tools []*schema.ToolInfo) error {
	return nil
}

// ========== Mock Store ==========

type mockStore struct {
	results   map[string][]map[string]interface{}
	err       error
	errOn     map[string]error
	callCount int
	panics    bool
}

func newMockStore(results map[string][]map[string]interface{}, err error) *mockStore {
	return &mockStore{results: results, err: err}
}

func (m *mockStore) ExecuteSelect(ctx context.Context, sqlQuery string) ([]map[string]interface{}, error) {
	m.callCount++
	if m.panics {
		panic("store exploded")
	}
	if m.err != nil {
		return nil, m.err
	}
	if err, ok := m.errOn[sqlQuery]; ok {
		return nil, err
	}
	if m.results != nil {
		if rows, ok := m.results[sqlQuery]; ok {
			return rows, nil
		}
	}
	return []map[string]interface{}{}, nil
}

// makeRows 生成 n 行带数值字段的结果行
func makeRows(n int) []ResultRow {
	rows := make([]ResultRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, ResultRow{
			"crop":       fmt.Sprintf("crop-%d", i),
			"production": float64(i * 100),
		})
	}
	return rows
}

// makeYearRows 生成 n 行带 year 字段的时序行
func makeYearRows(n int) []ResultRow {
	rows := make([]ResultRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, ResultRow{
			"year":             2010 + i,
			"total_production": float64(1000 + i),
		})
	}
	return rows
}
