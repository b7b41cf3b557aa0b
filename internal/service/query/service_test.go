package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ashwinyue/samarth/internal/config"
)

func testQueryConfig() config.QueryConfig {
	return config.QueryConfig{
		StrictValidation: true,
		Confidence: config.ConfidenceConfig{
			Empty:  0.1,
			Few:    0.6,
			Some:   0.8,
			Many:   0.95,
			Failed: 0.2,
		},
	}
}

type fakeCache struct {
	m map[string]*QueryResponse
}

func newFakeCache() *fakeCache {
	return &fakeCache{m: make(map[string]*QueryResponse)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (*QueryResponse, bool) {
	resp, ok := f.m[key]
	return resp, ok
}

func (f *fakeCache) Set(ctx context.Context, key string, resp *QueryResponse) {
	f.m[key] = resp
}

// ========== 管道编排测试 ==========

func TestService_ChatModelUnavailable(t *testing.T) {
	svc := NewService(nil, newMockStore(nil, nil), nil, testQueryConfig())

	resp := svc.ProcessQuery(context.Background(), "What crops are grown in Punjab?", "")

	if resp.Answer != "LLM service is not available. Please check your AI provider configuration." {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if resp.ConfidenceScore != 0.0 {
		t.Errorf("ConfidenceScore = %v, want 0.0", resp.ConfidenceScore)
	}
	if len(resp.DataSources) != 0 || len(resp.SQLQueries) != 0 {
		t.Errorf("DataSources = %v, SQLQueries = %v, want both empty", resp.DataSources, resp.SQLQueries)
	}
	if resp.ExecutionTime < 0 {
		t.Errorf("ExecutionTime = %v", resp.ExecutionTime)
	}
}

func TestService_AllQueriesFailed(t *testing.T) {
	generated := "SELECT rainfall FROM weather_data LIMIT 5"
	m := newMockChatModel([]string{generated}, nil)
	store := newMockStore(nil, errors.New("connection refused"))
	svc := NewService(m, store, nil, testQueryConfig())

	resp := svc.ProcessQuery(context.Background(), "What was the rainfall in Mumbai?", "")

	if !strings.HasPrefix(resp.Answer, "Unable to execute queries due to database errors") {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if resp.ConfidenceScore != 0.2 {
		t.Errorf("ConfidenceScore = %v, want 0.2", resp.ConfidenceScore)
	}
	// 失败响应仍携带数据源与尝试过的查询便于排查
	if len(resp.DataSources) != 1 || resp.DataSources[0] != "weather_data" {
		t.Errorf("DataSources = %v", resp.DataSources)
	}
	if len(resp.SQLQueries) != 1 || resp.SQLQueries[0] != generated {
		t.Errorf("SQLQueries = %v, want attempted query", resp.SQLQueries)
	}
	// 全部失败时跳过答案合成，模型只为生成被调用
	if m.callCount != 1 {
		t.Errorf("chat model called %d times, want 1", m.callCount)
	}
	if resp.VisualizationData != nil {
		t.Errorf("VisualizationData = %+v, want nil", resp.VisualizationData)
	}
}

func TestService_OverrideEndToEnd(t *testing.T) {
	overrideSQL := sqlOverrides[1].sql
	answer := "Production rose steadily from 2010 to 2013."

	m := newMockChatModel([]string{answer}, nil)
	store := newMockStore(map[string][]map[string]interface{}{
		overrideSQL: makeYearRows(4),
	}, nil)
	svc := NewService(m, store, nil, testQueryConfig())

	resp := svc.ProcessQuery(context.Background(),
		"What was the crop production trend in Andhra Pradesh from 2010 to 2013?", "user-1")

	if resp.Answer != answer {
		t.Errorf("Answer = %q, want %q", resp.Answer, answer)
	}
	// 固定模板绕过生成，模型只在合成阶段被调用一次
	if m.callCount != 1 {
		t.Errorf("chat model called %d times, want 1", m.callCount)
	}
	if len(resp.DataSources) != 1 || resp.DataSources[0] != "agricultural_production" {
		t.Errorf("DataSources = %v", resp.DataSources)
	}
	if len(resp.SQLQueries) != 1 || resp.SQLQueries[0] != overrideSQL {
		t.Errorf("SQLQueries = %v", resp.SQLQueries)
	}
	if resp.ConfidenceScore != 0.6 {
		t.Errorf("ConfidenceScore = %v, want 0.6", resp.ConfidenceScore)
	}
	if resp.VisualizationData == nil || resp.VisualizationData.ChartType != ChartLine {
		t.Errorf("VisualizationData = %+v, want line chart", resp.VisualizationData)
	}
	if store.callCount != 1 {
		t.Errorf("store contacted %d times, want 1", store.callCount)
	}
}

func TestService_PanicRecovery(t *testing.T) {
	m := newMockChatModel([]string{"SELECT rainfall FROM weather_data LIMIT 5"}, nil)
	store := newMockStore(nil, nil)
	store.panics = true
	svc := NewService(m, store, nil, testQueryConfig())

	resp := svc.ProcessQuery(context.Background(), "What was the rainfall in Mumbai?", "")

	if resp == nil {
		t.Fatal("ProcessQuery returned nil after panic")
	}
	if !strings.HasPrefix(resp.Answer, "An error occurred while processing your query:") {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if resp.ConfidenceScore != 0.0 {
		t.Errorf("ConfidenceScore = %v, want 0.0", resp.ConfidenceScore)
	}
}

func TestService_SanitizesQuestion(t *testing.T) {
	m := newMockChatModel([]string{"SELECT rainfall FROM weather_data LIMIT 5", "answer"}, nil)
	store := newMockStore(nil, nil)
	svc := NewService(m, store, nil, testQueryConfig())

	svc.ProcessQuery(context.Background(), `What's the "rainfall" in Mumbai;?`, "")

	if len(m.prompts) == 0 {
		t.Fatal("no prompt captured")
	}
	generatePrompt := m.prompts[0]
	if strings.ContainsAny(generatePrompt, `;'\`) || strings.Contains(generatePrompt, `"rainfall"`) {
		t.Errorf("unsanitized question reached the prompt: %q", generatePrompt)
	}
	if !strings.Contains(generatePrompt, "Whats the rainfall in Mumbai?") {
		t.Errorf("sanitized question missing from prompt: %q", generatePrompt)
	}
}

func TestService_AnswerCache(t *testing.T) {
	overrideSQL := sqlOverrides[1].sql
	m := newMockChatModel([]string{"cached answer"}, nil)
	store := newMockStore(map[string][]map[string]interface{}{
		overrideSQL: makeYearRows(4),
	}, nil)
	svc := NewService(m, store, nil, testQueryConfig())
	svc.SetCache(newFakeCache())

	question := "What was the crop production trend in Andhra Pradesh from 2010 to 2013?"
	first := svc.ProcessQuery(context.Background(), question, "")
	second := svc.ProcessQuery(context.Background(), question, "")

	if second.Answer != first.Answer {
		t.Errorf("cached answer = %q, want %q", second.Answer, first.Answer)
	}
	// 第二次命中缓存，模型与存储都不再被调用
	if m.callCount != 1 {
		t.Errorf("chat model called %d times, want 1", m.callCount)
	}
	if store.callCount != 1 {
		t.Errorf("store contacted %d times, want 1", store.callCount)
	}
}
