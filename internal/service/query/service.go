package query

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/google/uuid"

	"github.com/ashwinyue/samarth/internal/config"
	"github.com/ashwinyue/samarth/internal/model"
	"github.com/ashwinyue/samarth/internal/repository"
)

// Service 问答管道编排器
// 线性推进各阶段，所有错误在此边界吸收为降级响应，不向调用方抛出
type Service struct {
	chatModel   einomodel.ChatModel
	classifier  *Classifier
	generator   *Generator
	executor    *Executor
	synthesizer *Synthesizer
	scorer      *Scorer
	repo        *repository.Repositories
	cache       AnswerCache
}

// NewService 创建问答管道服务
// chatModel 为 nil 时服务可以启动，但所有请求返回 ServiceUnavailable 响应
func NewService(chatModel einomodel.ChatModel, store Store, repo *repository.Repositories, cfg config.QueryConfig) *Service {
	validator := NewValidator(cfg.StrictValidation)
	return &Service{
		chatModel:   chatModel,
		classifier:  NewClassifier(),
		generator:   NewGenerator(chatModel),
		executor:    NewExecutor(store, validator),
		synthesizer: NewSynthesizer(chatModel),
		scorer:      NewScorer(cfg.Confidence),
		repo:        repo,
	}
}

// SetCache 设置问答缓存
func (s *Service) SetCache(c AnswerCache) {
	s.cache = c
}

// ProcessQuery 处理一次自然语言问答
func (s *Service) ProcessQuery(ctx context.Context, question string, userID string) (resp *QueryResponse) {
	startTime := time.Now()

	// 管道任何位置的 panic 都在此转换为降级响应
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error processing query: %v", r)
			resp = &QueryResponse{
				Answer:          fmt.Sprintf("An error occurred while processing your query: %v", r),
				DataSources:     []string{},
				SQLQueries:      []string{},
				ConfidenceScore: 0.0,
				ExecutionTime:   time.Since(startTime).Seconds(),
			}
		}
	}()

	question = SanitizeInput(question)

	// ChatModel 未配置时直接短路
	if s.chatModel == nil {
		return &QueryResponse{
			Answer:          "LLM service is not available. Please check your AI provider configuration.",
			DataSources:     []string{},
			SQLQueries:      []string{},
			ConfidenceScore: 0.0,
			ExecutionTime:   time.Since(startTime).Seconds(),
		}
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey(question)); ok {
			log.Printf("Answer cache hit for question: %s", question)
			return cached
		}
	}

	// 阶段 1: 识别相关数据集
	datasets := s.classifier.Classify(question)
	log.Printf("Identified datasets: %v", datasets)

	// 阶段 2: 逐数据集生成 SQL
	queries := make([]GeneratedQuery, 0, len(datasets))
	attempted := make([]string, 0, len(datasets))
	for _, dataset := range datasets {
		sqlQuery := s.generator.Generate(ctx, question, dataset)
		queries = append(queries, GeneratedQuery{Dataset: dataset, SQL: sqlQuery})
		attempted = append(attempted, sqlQuery)
		log.Printf("Generated SQL query for %s: %s", dataset, sqlQuery)
	}

	// 阶段 3: 执行查询，失败不中断
	rows, successful, failed := s.executor.ExecuteAll(ctx, queries)

	// 全部失败时跳过合成，返回的 sql_queries 携带尝试过的查询便于排查
	if len(successful) == 0 && len(failed) > 0 {
		return &QueryResponse{
			Answer:          "Unable to execute queries due to database errors. Please try rephrasing your question.",
			DataSources:     TagStrings(datasets),
			SQLQueries:      attempted,
			ConfidenceScore: s.scorer.FailedScore(),
			ExecutionTime:   time.Since(startTime).Seconds(),
		}
	}

	// 阶段 4: 合成回答
	answer := s.synthesizer.Synthesize(ctx, question, rows, datasets, successful)

	// 阶段 5: 置信度评分
	confidence := s.scorer.Score(rows)

	// 阶段 6: 图表提示
	visualization := SelectVisualization(rows)

	resp = &QueryResponse{
		Answer:            answer,
		DataSources:       TagStrings(datasets),
		SQLQueries:        successful,
		VisualizationData: visualization,
		ConfidenceScore:   confidence,
		ExecutionTime:     time.Since(startTime).Seconds(),
	}

	s.saveQueryLog(question, userID, resp)

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey(question), resp)
	}

	return resp
}

// saveQueryLog 尽力写入问答记录，失败只记日志
func (s *Service) saveQueryLog(question, userID string, resp *QueryResponse) {
	if s.repo == nil || s.repo.QueryLog == nil {
		return
	}

	entry := &model.QueryLog{
		ID:              uuid.New().String(),
		Question:        question,
		Answer:          resp.Answer,
		DataSources:     model.StringList(resp.DataSources),
		SQLQueries:      model.StringList(resp.SQLQueries),
		ConfidenceScore: resp.ConfidenceScore,
		UserID:          userID,
	}
	if err := s.repo.QueryLog.Create(entry); err != nil {
		log.Printf("Warning: failed to save query log: %v", err)
	}
}

// ListDatasets 列出所有数据集元信息
func (s *Service) ListDatasets() ([]*model.DatasetMetadata, error) {
	return s.repo.Metadata.ListAll()
}

// RecentQueries 列出最近的问答记录
func (s *Service) RecentQueries(limit int) ([]*model.QueryLog, error) {
	return s.repo.QueryLog.ListRecent(limit)
}

// cacheKey 由规整后的问题计算缓存键
func cacheKey(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	sum := sha256.Sum256([]byte(normalized))
	return "answer:" + hex.EncodeToString(sum[:])
}
