package service

import (
	"fmt"
	"time"

	"github.com/aajna-shetty/DietVeda/internal/db"
	"gorm.io/gorm"
)

const (
	// progressWindowDays 是归一化序列的固定长度（含今天）
	progressWindowDays = 30

	progressDateFormat = "2006-01-02"
)

// DailySlot 是归一化序列中的一格。
// 无数据日 Score/Dosha 均为 nil，作为显式空缺保留，绝不伪装成 0 分。
type DailySlot struct {
	Date  string
	Score *float64
	Dosha *string
}

// ProgressService 负责 Sattva 评分历史的追加写入、有界读取与 30 天归一化
type ProgressService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewProgressService 构造 ProgressService
func NewProgressService(gdb *gorm.DB) *ProgressService {
	return &ProgressService{db: gdb, now: time.Now}
}

// WithClock 允许测试固定当前时间
func (s *ProgressService) WithClock(now func() time.Time) *ProgressService {
	if now != nil {
		s.now = now
	}
	return s
}

// SaveScore 以当天日期追加一条评分记录
func (s *ProgressService) SaveScore(dosha string, score int) (*db.ProgressEntry, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("score out of range: %d", score)
	}

	entry := db.ProgressEntry{
		Date:  s.now().Format(progressDateFormat),
		Dosha: dosha,
		Score: score,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("save progress entry: %w", err)
	}

	return &entry, nil
}

// RecentEntries 读取最近 30 天内的原始记录。
// 不信任存储层的排序或截断行为：显式按插入顺序取回，
// 真正的 30 天窗口由 NormalizeSeries 依据日期自行推导。
func (s *ProgressService) RecentEntries() ([]db.ProgressEntry, error) {
	cutoff := s.now().AddDate(0, 0, -progressWindowDays).Format(progressDateFormat)

	var entries []db.ProgressEntry
	if err := s.db.Where("date >= ?", cutoff).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("load progress history: %w", err)
	}

	return entries, nil
}

// Series 读取并归一化最近 30 天的评分序列
func (s *ProgressService) Series() ([]DailySlot, error) {
	entries, err := s.RecentEntries()
	if err != nil {
		return nil, err
	}

	return NormalizeSeries(entries, s.now()), nil
}

// NormalizeSeries 把稀疏的原始记录折叠成固定 30 格、从旧到新、
// 以今天收尾的逐日序列。同一天多条记录取算术平均分（浮点），
// 代表体质取该天按插入顺序的最后一条记录。
func NormalizeSeries(entries []db.ProgressEntry, today time.Time) []DailySlot {
	grouped := make(map[string][]db.ProgressEntry)
	for _, entry := range entries {
		grouped[entry.Date] = append(grouped[entry.Date], entry)
	}

	slots := make([]DailySlot, 0, progressWindowDays)
	for i := progressWindowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(progressDateFormat)
		slot := DailySlot{Date: date}

		if day := grouped[date]; len(day) > 0 {
			sum := 0.0
			for _, entry := range day {
				sum += float64(entry.Score)
			}
			avg := sum / float64(len(day))
			dosha := day[len(day)-1].Dosha

			slot.Score = &avg
			slot.Dosha = &dosha
		}

		slots = append(slots, slot)
	}

	return slots
}
