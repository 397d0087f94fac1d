package service

import (
	"fmt"
	"strings"

	"github.com/aajna-shetty/DietVeda/internal/db"
)

// RoutineHabit 是日常清单中的一个打卡项及其分值
type RoutineHabit struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// universalHabits 对所有体质通用
var universalHabits = []RoutineHabit{
	{Name: "Wake up before 6:00 AM (Brahma Muhurta)", Points: 20},
	{Name: "Tongue Scraping (Jivha Prakshalana)", Points: 10},
	{Name: "Drink Warm Copper Water", Points: 10},
	{Name: "No Screen Time 1hr before Bed", Points: 15},
}

// doshaHabits 按主体质追加的专属打卡项
var doshaHabits = map[string][]RoutineHabit{
	DoshaVata: {
		{Name: "Self-Massage with Sesame Oil (Abhyanga)", Points: 20},
		{Name: "Eat a warm, cooked breakfast", Points: 15},
		{Name: "Bedtime by 10:00 PM", Points: 20},
	},
	DoshaPitta: {
		{Name: "Cool shower or swim", Points: 15},
		{Name: "Avoid spicy/fried foods today", Points: 20},
		{Name: "Meditation for 10 mins", Points: 20},
	},
	DoshaKapha: {
		{Name: "Dry Brushing (Garshana)", Points: 15},
		{Name: "Vigorous Exercise (Sweat it out)", Points: 25},
		{Name: "No napping during the day", Points: 15},
	},
}

// 纯净度评分对应的段位
const (
	RankYogi         = "Ayurvedic Yogi"
	RankSeeker       = "Disciplined Seeker"
	RankBeginner     = "Beginner"
	RankOutOfBalance = "Out of Balance"
)

// TrackResult 汇总一次打卡的评分结果
type TrackResult struct {
	Dosha       string
	Total       int
	MaxPossible int
	Percentage  int
	Rank        string
	Entry       *db.ProgressEntry
}

// RoutineService 提供按体质的日常打卡清单与纯净度评分，
// 评分结果通过 ProgressService 追加进历史
type RoutineService struct {
	progress *ProgressService
}

// NewRoutineService 构造 RoutineService
func NewRoutineService(progress *ProgressService) *RoutineService {
	return &RoutineService{progress: progress}
}

// ChecklistFor 返回主体质对应的完整清单（通用在前，专属在后）。
// 复合标签取主体质；未知体质回退到 Vata 清单。
func ChecklistFor(doshaLabel string) (string, []RoutineHabit) {
	primary := PrimaryDoshaOf(doshaLabel)

	specific, ok := doshaHabits[primary]
	if !ok {
		specific = doshaHabits[DoshaVata]
	}

	checklist := make([]RoutineHabit, 0, len(universalHabits)+len(specific))
	checklist = append(checklist, universalHabits...)
	checklist = append(checklist, specific...)

	return primary, checklist
}

// Track 根据勾选的打卡项计算当日纯净度评分并写入历史。
// 得分为完成分值占总分值的百分比，向下取整到 0-100。
func (s *RoutineService) Track(doshaLabel string, completed []string) (*TrackResult, error) {
	primary, checklist := ChecklistFor(doshaLabel)

	done := make(map[string]bool, len(completed))
	for _, name := range completed {
		done[strings.TrimSpace(name)] = true
	}

	total := 0
	maxPossible := 0
	for _, habit := range checklist {
		maxPossible += habit.Points
		if done[habit.Name] {
			total += habit.Points
		}
	}

	percentage := int(float64(total) / float64(maxPossible) * 100)

	entry, err := s.progress.SaveScore(primary, percentage)
	if err != nil {
		return nil, fmt.Errorf("track routine: %w", err)
	}

	return &TrackResult{
		Dosha:       primary,
		Total:       total,
		MaxPossible: maxPossible,
		Percentage:  percentage,
		Rank:        RankFor(percentage),
		Entry:       entry,
	}, nil
}

// RankFor 把纯净度评分映射为段位
func RankFor(percentage int) string {
	switch {
	case percentage >= 90:
		return RankYogi
	case percentage >= 70:
		return RankSeeker
	case percentage >= 50:
		return RankBeginner
	default:
		return RankOutOfBalance
	}
}
