package query

import "github.com/ashwinyue/samarth/internal/config"

// Scorer 置信度评分器
// 按结果行数分级的粗粒度启发式，不是统计意义上的置信区间
type Scorer struct {
	cfg config.ConfidenceConfig
}

// NewScorer 创建置信度评分器
func NewScorer(cfg config.ConfidenceConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// DefaultScorer 使用默认阈值的评分器
func DefaultScorer() *Scorer {
	return NewScorer(config.ConfidenceConfig{
		Empty:  0.1,
		Few:    0.6,
		Some:   0.8,
		Many:   0.95,
		Failed: 0.2,
	})
}

// Score 根据结果行数计算置信度，纯函数
// 分级边界（4/5、19/20）是兼容性约束，不要调整
func (s *Scorer) Score(rows []ResultRow) float64 {
	if len(rows) == 0 {
		return s.cfg.Empty
	}

	// 仅有一行且唯一字段是错误标记时，说明拿到的是生成失败的哨兵结果
	if len(rows) == 1 {
		if _, ok := rows[0][ErrorMarkerColumn]; ok && len(rows[0]) == 1 {
			return s.cfg.Empty
		}
	}

	switch count := len(rows); {
	case count < 5:
		return s.cfg.Few
	case count < 20:
		return s.cfg.Some
	default:
		return s.cfg.Many
	}
}

// FailedScore 全部查询失败时的置信度
func (s *Scorer) FailedScore() float64 {
	return s.cfg.Failed
}
