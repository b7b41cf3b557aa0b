package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const (
	synthesizeTemperature float32 = 0.5
	synthesizeMaxTokens           = 1000
	// 提示词中最多携带的结果行数
	maxRowsInPrompt = 10
)

// Synthesizer 答案合成器
// 将聚合结果行交给 ChatModel 生成自然语言回答
type Synthesizer struct {
	chatModel model.ChatModel
}

// NewSynthesizer 创建答案合成器
func NewSynthesizer(chatModel model.ChatModel) *Synthesizer {
	return &Synthesizer{chatModel: chatModel}
}

// Synthesize 基于查询结果合成回答
// 合成失败返回说明性文本，不向上抛错
func (s *Synthesizer) Synthesize(ctx context.Context, question string, rows []ResultRow, datasets []DatasetTag, successfulQueries []string) string {
	if s.chatModel == nil {
		return "Unable to synthesize answer due to an error: chat model not configured"
	}

	prompt := buildSynthesizePrompt(question, rows, datasets, successfulQueries)
	messages := []*schema.Message{
		{Role: schema.User, Content: prompt},
	}

	resp, err := s.chatModel.Generate(ctx, messages,
		model.WithTemperature(synthesizeTemperature),
		model.WithMaxTokens(synthesizeMaxTokens),
	)
	if err != nil {
		return fmt.Sprintf("Unable to synthesize answer due to an error: %v", err)
	}

	return strings.TrimSpace(resp.Content)
}

// buildSynthesizePrompt 构建答案合成提示词
func buildSynthesizePrompt(question string, rows []ResultRow, datasets []DatasetTag, successfulQueries []string) string {
	limited := rows
	if len(limited) > maxRowsInPrompt {
		limited = limited[:maxRowsInPrompt]
	}

	resultJSON, err := json.MarshalIndent(limited, "", "  ")
	if err != nil {
		resultJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are Project Samarth, an AI assistant for analyzing Indian agricultural and climate data.

User question: "%s"

Datasets used: %s

SQL queries executed:
%s

Query results:
%s

Please provide a clear, concise answer to the user's question based on the query results.
Include specific numbers and data points from the results where relevant.
Format your response in a readable way with appropriate units.
If the data doesn't fully answer the question, acknowledge that limitation.
If there are no results, explain that no data was found.`,
		question,
		strings.Join(TagStrings(datasets), ", "),
		strings.Join(successfulQueries, "\n"),
		string(resultJSON))
}
