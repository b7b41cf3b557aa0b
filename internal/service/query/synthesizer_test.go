package query

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ========== 答案合成测试 ==========

func TestSynthesizer_Synthesize(t *testing.T) {
	ctx := context.Background()
	datasets := []DatasetTag{DatasetAgriculture}
	queries := []string{"SELECT crop FROM agricultural_production LIMIT 5"}

	t.Run("成功合成返回模型内容", func(t *testing.T) {
		m := newMockChatModel([]string{"  Rice dominates production in Punjab.  "}, nil)
		s := NewSynthesizer(m)

		got := s.Synthesize(ctx, "What crops are grown in Punjab?", makeRows(3), datasets, queries)
		if got != "Rice dominates production in Punjab." {
			t.Errorf("Synthesize = %q", got)
		}
		if m.callCount != 1 {
			t.Errorf("chat model called %d times, want 1", m.callCount)
		}
	})

	t.Run("模型缺失返回降级文本", func(t *testing.T) {
		s := NewSynthesizer(nil)

		got := s.Synthesize(ctx, "What crops are grown in Punjab?", makeRows(3), datasets, queries)
		if !strings.HasPrefix(got, "Unable to synthesize answer due to an error:") {
			t.Errorf("Synthesize = %q", got)
		}
	})

	t.Run("模型报错返回降级文本", func(t *testing.T) {
		m := newMockChatModel(nil, errors.New("context deadline exceeded"))
		s := NewSynthesizer(m)

		got := s.Synthesize(ctx, "What crops are grown in Punjab?", makeRows(3), datasets, queries)
		if !strings.Contains(got, "context deadline exceeded") {
			t.Errorf("Synthesize = %q, want wrapped model error", got)
		}
	})
}

func TestSynthesizer_PromptContents(t *testing.T) {
	m := newMockChatModel([]string{"answer"}, nil)
	s := NewSynthesizer(m)

	question := "What was the total wheat production?"
	rows := makeRows(12)
	s.Synthesize(context.Background(), question, rows,
		[]DatasetTag{DatasetAgriculture, DatasetWeather},
		[]string{"SELECT a FROM x", "SELECT b FROM y"})

	if len(m.prompts) != 1 {
		t.Fatalf("captured %d prompts, want 1", len(m.prompts))
	}
	prompt := m.prompts[0]

	if !strings.Contains(prompt, question) {
		t.Error("prompt does not contain the user question")
	}
	if !strings.Contains(prompt, "agricultural_production, weather_data") {
		t.Error("prompt does not list the datasets used")
	}
	if !strings.Contains(prompt, "SELECT a FROM x") || !strings.Contains(prompt, "SELECT b FROM y") {
		t.Error("prompt does not list the executed queries")
	}

	// 结果行截断到前十行
	if !strings.Contains(prompt, "crop-9") {
		t.Error("prompt is missing the tenth result row")
	}
	if strings.Contains(prompt, "crop-10") {
		t.Error("prompt carries rows beyond the ten-row limit")
	}
}
