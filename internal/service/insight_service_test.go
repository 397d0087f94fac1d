package service

import (
	"strings"
	"testing"
	"time"

	"github.com/aajna-shetty/DietVeda/internal/db"
)

func scoredSlot(date string, score float64, dosha string) DailySlot {
	return DailySlot{Date: date, Score: &score, Dosha: &dosha}
}

// buildSeries 构造一个以给定评分日收尾、前面全是空缺格的序列
func buildSeries(days []DailySlot) []DailySlot {
	series := make([]DailySlot, 0, 30)
	for i := 0; i < 30-len(days); i++ {
		series = append(series, DailySlot{Date: "gap"})
	}
	return append(series, days...)
}

func hasLine(lines []string, fragment string) bool {
	for _, line := range lines {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}

func TestInsightsNoScoredDays(t *testing.T) {
	series := buildSeries(nil)

	lines := Insights(series)
	if len(lines) != 1 || lines[0] != InsightNoScoredDays {
		t.Fatalf("expected not-enough-data sentinel, got %v", lines)
	}
}

func TestInsightsLowStreakWithoutElevation(t *testing.T) {
	// 最近 3 个评分日都低于 50，但体质各不相同
	series := buildSeries([]DailySlot{
		scoredSlot("d1", 40, DoshaVata),
		scoredSlot("d2", 42, DoshaPitta),
		scoredSlot("d3", 41, DoshaKapha),
	})

	lines := Insights(series)
	if !hasLine(lines, "Sattva score low") {
		t.Fatalf("expected low score streak signal, got %v", lines)
	}
	if hasLine(lines, "consecutive days") {
		t.Fatalf("sustained elevation must not fire with mixed doshas: %v", lines)
	}
}

func TestInsightsSustainedElevation(t *testing.T) {
	series := buildSeries([]DailySlot{
		scoredSlot("d1", 80, DoshaPitta),
		scoredSlot("d2", 85, DoshaPitta),
		scoredSlot("d3", 82, DoshaPitta),
	})

	lines := Insights(series)
	if !hasLine(lines, "Your Pitta has been high for 3 consecutive days.") {
		t.Fatalf("expected sustained elevation naming Pitta, got %v", lines)
	}
}

func TestInsightsElevationSkipsDualLabels(t *testing.T) {
	series := buildSeries([]DailySlot{
		scoredSlot("d1", 80, "Vata-Pitta"),
		scoredSlot("d2", 85, "Vata-Pitta"),
		scoredSlot("d3", 82, "Vata-Pitta"),
	})

	lines := Insights(series)
	if hasLine(lines, "consecutive days") {
		t.Fatalf("dual labels must not trigger elevation: %v", lines)
	}
}

func TestInsightsWeeklyTrend(t *testing.T) {
	up := buildSeries([]DailySlot{
		scoredSlot("d1", 50, DoshaVata),
		scoredSlot("d2", 55, DoshaVata),
		scoredSlot("d3", 60, DoshaVata),
		scoredSlot("d4", 62, DoshaVata),
		scoredSlot("d5", 65, DoshaVata),
		scoredSlot("d6", 70, DoshaVata),
		scoredSlot("d7", 75, DoshaVata),
	})
	if !hasLine(Insights(up), "Positive weekly improvement") {
		t.Fatal("expected positive weekly trend")
	}

	down := buildSeries([]DailySlot{
		scoredSlot("d1", 75, DoshaVata),
		scoredSlot("d2", 72, DoshaVata),
		scoredSlot("d3", 70, DoshaVata),
		scoredSlot("d4", 68, DoshaVata),
		scoredSlot("d5", 66, DoshaVata),
		scoredSlot("d6", 64, DoshaVata),
		scoredSlot("d7", 60, DoshaVata),
	})
	if !hasLine(Insights(down), "Weekly decline") {
		t.Fatal("expected weekly decline signal")
	}

	// 首尾相等：该探测器不产生任何信号
	flat := buildSeries([]DailySlot{
		scoredSlot("d1", 60, DoshaVata),
		scoredSlot("d2", 80, DoshaVata),
		scoredSlot("d3", 55, DoshaVata),
		scoredSlot("d4", 75, DoshaVata),
		scoredSlot("d5", 62, DoshaVata),
		scoredSlot("d6", 78, DoshaVata),
		scoredSlot("d7", 60, DoshaVata),
	})
	lines := Insights(flat)
	if hasLine(lines, "weekly") || hasLine(lines, "Weekly") {
		t.Fatalf("equal endpoints must not emit a weekly signal: %v", lines)
	}
}

func TestInsightsStability(t *testing.T) {
	// 总体标准差约 1.0 < 8 → 稳定信号，且变动信号不得同时出现
	stable := buildSeries([]DailySlot{
		scoredSlot("d1", 50, DoshaVata),
		scoredSlot("d2", 51, DoshaVata),
		scoredSlot("d3", 49, DoshaVata),
		scoredSlot("d4", 52, DoshaVata),
		scoredSlot("d5", 50, DoshaVata),
	})
	lines := Insights(stable)
	if !hasLine(lines, "Very stable routine") {
		t.Fatalf("expected stable routine signal, got %v", lines)
	}
	if hasLine(lines, "varies a lot") {
		t.Fatalf("variability signal must not fire together: %v", lines)
	}

	volatile := buildSeries([]DailySlot{
		scoredSlot("d1", 10, DoshaVata),
		scoredSlot("d2", 90, DoshaVata),
		scoredSlot("d3", 20, DoshaVata),
		scoredSlot("d4", 85, DoshaVata),
		scoredSlot("d5", 15, DoshaVata),
	})
	lines = Insights(volatile)
	if !hasLine(lines, "varies a lot") {
		t.Fatalf("expected variability signal, got %v", lines)
	}
	if hasLine(lines, "Very stable routine") {
		t.Fatalf("stability signals are mutually exclusive: %v", lines)
	}
}

func TestInsightsNeutralMessage(t *testing.T) {
	// 两个评分日不足以触发任何探测器
	series := buildSeries([]DailySlot{
		scoredSlot("d1", 60, DoshaVata),
		scoredSlot("d2", 65, DoshaPitta),
	})

	lines := Insights(series)
	if len(lines) != 1 || lines[0] != InsightNoSignal {
		t.Fatalf("expected neutral sentinel, got %v", lines)
	}
}

func TestInsightsSkipGapSlots(t *testing.T) {
	// 空缺格完全剔除："最近 3 天"指最近 3 个评分日
	series := buildSeries([]DailySlot{
		scoredSlot("d1", 40, DoshaVata),
		{Date: "gap1"},
		scoredSlot("d2", 42, DoshaVata),
		{Date: "gap2"},
		scoredSlot("d3", 41, DoshaVata),
	})

	lines := Insights(series)
	if !hasLine(lines, "Sattva score low") {
		t.Fatalf("gaps must not break the scored-day window: %v", lines)
	}
}

func TestGenerateWithEmptyHistory(t *testing.T) {
	svc := NewInsightService()

	lines := svc.Generate(nil, time.Now())
	if len(lines) != 1 || lines[0] != InsightNoHistory {
		t.Fatalf("expected no-history sentinel, got %v", lines)
	}
}

func TestGenerateRunsDetectors(t *testing.T) {
	svc := NewInsightService()
	today := fixedTime(t, "2024-05-30")

	var entries []db.ProgressEntry
	for i := 2; i >= 0; i-- {
		entries = append(entries, db.ProgressEntry{
			Date:  today.AddDate(0, 0, -i).Format("2006-01-02"),
			Dosha: DoshaPitta,
			Score: 45,
		})
	}

	lines := svc.Generate(entries, today)
	if !hasLine(lines, "Your Pitta has been high") {
		t.Fatalf("expected elevation signal, got %v", lines)
	}
	if !hasLine(lines, "Sattva score low") {
		t.Fatalf("expected low streak signal, got %v", lines)
	}
}
