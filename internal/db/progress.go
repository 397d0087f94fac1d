package db

import "gorm.io/gorm"

// ProgressEntry 记录一次 Sattva 日常评分
// Date 以 2006-01-02 字符串保存，归一化时按该精确字符串分组
// 同一天允许多条记录（用户一天可打卡多次），日均分由归一化逻辑计算
// 表为追加写入，核心侧只做有界窗口读取
type ProgressEntry struct {
	gorm.Model
	Date  string `gorm:"index"`
	Dosha string
	Score int
}

// TableName 与历史数据表名保持一致
func (ProgressEntry) TableName() string {
	return "progress"
}
