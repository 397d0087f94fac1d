package service

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

const (
	// scoreVeto 表示安全否决：忌口命中即绝对排除，不是可以被加分抵消的惩罚
	scoreVeto = -100

	scorePrimaryMatch   = 10
	scoreSecondaryMatch = 5
	scoreTridoshic      = 3
	scoreSeasonFit      = 5

	maxRecommendations = 10
)

// ScoredDish 把目录条目与本次请求算出的适配分绑定在一起。
// 分数只存在于请求生命周期内，永远不会回写共享目录。
type ScoredDish struct {
	Dish
	Score int
}

// RecommendService 负责按体质与季节对菜品目录打分、过滤和排序
type RecommendService struct {
	catalog *Catalog
	now     func() time.Time
}

// NewRecommendService 构造 RecommendService
func NewRecommendService(catalog *Catalog) *RecommendService {
	return &RecommendService{catalog: catalog, now: time.Now}
}

// WithClock 允许测试固定当前时间
func (s *RecommendService) WithClock(now func() time.Time) *RecommendService {
	if now != nil {
		s.now = now
	}
	return s
}

// ScoreDish 对单道菜计算适配分。
// 规则按序：安全否决 → 主体质 +10 → 次体质 +5 → 三体质通用 +3 → 季节 ±5。
func ScoreDish(dish Dish, primary, secondary, season string) int {
	// 安全检查：任一体质出现在忌口字段即一票否决
	if doshaInText(dish.AvoidsFor, primary) || (secondary != "" && doshaInText(dish.AvoidsFor, secondary)) {
		return scoreVeto
	}

	score := 0

	if doshaInText(dish.SuitableFor, primary) {
		score += scorePrimaryMatch
	}

	if secondary != "" && doshaInText(dish.SuitableFor, secondary) {
		score += scoreSecondaryMatch
	}

	// 标记为三体质皆宜的菜额外加分，与上面两条独立叠加
	if strings.Contains(dish.SuitableFor, tridoshicTag) {
		score += scoreTridoshic
	}

	// 季节匹配：四季皆宜或包含当前季节加分，指定了别的季节则扣分
	if dish.Season == seasonAll || strings.Contains(dish.Season, season) {
		score += scoreSeasonFit
	} else {
		score -= scoreSeasonFit
	}

	return score
}

// Recommend 以当前季节返回按适配分降序的前 10 道菜。
func (s *RecommendService) Recommend(doshaLabel, mealType string) []ScoredDish {
	return s.RecommendForSeason(doshaLabel, mealType, ResolveSeason(s.now()))
}

// RecommendForSeason 对整个目录打分，过滤掉适配分不为正的菜品，
// 可选按餐别（大小写不敏感的精确匹配）过滤，稳定排序后截取前 10。
// 空结果是合法输出，不视为错误。
func (s *RecommendService) RecommendForSeason(doshaLabel, mealType, season string) []ScoredDish {
	primary, secondary := SplitDoshaLabel(doshaLabel)

	scored := make([]ScoredDish, 0, s.catalog.Len())
	for _, dish := range s.catalog.Dishes() {
		score := ScoreDish(dish, primary, secondary, season)
		if score <= 0 {
			continue
		}
		if mealType != "" && !strings.EqualFold(dish.Type, mealType) {
			continue
		}
		scored = append(scored, ScoredDish{Dish: dish, Score: score})
	}

	// 稳定排序保证同分菜品维持目录原序
	slices.SortStableFunc(scored, func(a, b ScoredDish) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}

	return scored
}
