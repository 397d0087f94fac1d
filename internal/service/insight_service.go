package service

import (
	"fmt"
	"math"
	"time"

	"github.com/aajna-shetty/DietVeda/internal/db"
)

// 无信号时的哨兵消息；两者都是合法输出而非错误
const (
	InsightNoHistory    = "No data yet. Start tracking daily to get insights."
	InsightNoScoredDays = "Not enough scored days to generate insights."
	InsightNoSignal     = "No strong signals. Keep tracking for richer insights."
)

const (
	lowScoreThreshold  = 50
	stableStdevCutoff  = 8.0
	streakDays         = 3
	weeklyTrendDays    = 7
	variabilityMinDays = 5
)

// InsightService 在归一化序列上运行一组互相独立的趋势探测器
type InsightService struct{}

// NewInsightService 构造 InsightService
func NewInsightService() *InsightService {
	return &InsightService{}
}

// Generate 读取原始历史并产出洞察。
// 历史完全为空时返回独立的"尚无数据"提示，不再运行任何探测器。
func (s *InsightService) Generate(entries []db.ProgressEntry, today time.Time) []string {
	if len(entries) == 0 {
		return []string{InsightNoHistory}
	}

	return Insights(NormalizeSeries(entries, today))
}

type scoredDay struct {
	score float64
	dosha string
}

// Insights 依次运行各探测器并收集命中的信号。
// 探测器只看有评分的日子：空缺格在分析前整体剔除，所以
// "最近 3 天/7 天"都指最近 3/7 个有评分的日子，而非日历格。
func Insights(series []DailySlot) []string {
	scored := make([]scoredDay, 0, len(series))
	for _, slot := range series {
		if slot.Score == nil {
			continue
		}
		day := scoredDay{score: *slot.Score}
		if slot.Dosha != nil {
			day.dosha = *slot.Dosha
		}
		scored = append(scored, day)
	}

	if len(scored) == 0 {
		return []string{InsightNoScoredDays}
	}

	var lines []string

	if len(scored) >= streakDays {
		recent := scored[len(scored)-streakDays:]

		// 连续 3 天同一单一体质：提示该体质持续偏高
		if dosha := recent[0].dosha; IsPrimaryDosha(dosha) {
			same := true
			for _, day := range recent[1:] {
				if day.dosha != dosha {
					same = false
					break
				}
			}
			if same {
				lines = append(lines, fmt.Sprintf("Your %s has been high for 3 consecutive days.", dosha))
			}
		}

		// 连续 3 天低分预警
		low := true
		for _, day := range recent {
			if day.score >= lowScoreThreshold {
				low = false
				break
			}
		}
		if low {
			lines = append(lines, "Sattva score low for 3 days.")
		}
	}

	// 周趋势：比较第 7 近与最近一个有评分日，相等不产生信号
	if len(scored) >= weeklyTrendDays {
		first := scored[len(scored)-weeklyTrendDays].score
		last := scored[len(scored)-1].score
		if last > first {
			lines = append(lines, "Positive weekly improvement!")
		} else if last < first {
			lines = append(lines, "Weekly decline in performance.")
		}
	}

	// 稳定性：满 5 个评分日时两个信号必出其一
	if len(scored) >= variabilityMinDays {
		values := make([]float64, 0, len(scored))
		for _, day := range scored {
			values = append(values, day.score)
		}
		if populationStdev(values) < stableStdevCutoff {
			lines = append(lines, "Very stable routine!")
		} else {
			lines = append(lines, "Routine varies a lot. Aim for more consistency.")
		}
	}

	if len(lines) == 0 {
		return []string{InsightNoSignal}
	}

	return lines
}

// populationStdev 计算总体标准差（除以 n，不是 n-1）
func populationStdev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sumSquares := 0.0
	for _, v := range values {
		diff := v - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(values)))
}
