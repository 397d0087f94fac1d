package service

import "time"

// 三分法季节分桶（印度气候简化模型，不区分春秋）
const (
	SeasonWinter  = "Winter"
	SeasonSummer  = "Summer"
	SeasonMonsoon = "Monsoon"
)

// ResolveSeason 按月份把日期映射到季节分桶。
// 11/12/1/2 为冬季，3-6 为夏季，其余为雨季；无错误分支的全函数。
func ResolveSeason(t time.Time) string {
	switch t.Month() {
	case time.November, time.December, time.January, time.February:
		return SeasonWinter
	case time.March, time.April, time.May, time.June:
		return SeasonSummer
	default:
		return SeasonMonsoon
	}
}

// CurrentSeason 返回当前时间对应的季节分桶。
func CurrentSeason() string {
	return ResolveSeason(time.Now())
}
