package service

import "strings"

// 三种基础体质（Dosha）
const (
	DoshaVata  = "Vata"
	DoshaPitta = "Pitta"
	DoshaKapha = "Kapha"
)

// tridoshicTag 是数据集中标记"三体质皆宜"的固定写法
const tridoshicTag = "Kapha, Pitta, Vata"

// doshaLabelSeparator 用于复合体质标签，如 Vata-Pitta
const doshaLabelSeparator = "-"

// IsPrimaryDosha 判断标签是否为单一基础体质
func IsPrimaryDosha(label string) bool {
	switch label {
	case DoshaVata, DoshaPitta, DoshaKapha:
		return true
	default:
		return false
	}
}

// SplitDoshaLabel 拆分体质标签为主/次体质。
// 单一标签（如 "Vata"）次体质为空；复合标签（如 "Vata-Pitta"）主体质在前。
func SplitDoshaLabel(label string) (primary, secondary string) {
	label = strings.TrimSpace(label)
	if strings.Contains(label, doshaLabelSeparator) {
		parts := strings.SplitN(label, doshaLabelSeparator, 2)
		return parts[0], parts[1]
	}
	return label, ""
}

// PrimaryDoshaOf 取复合标签的主体质并归一化大小写（Vata-Pitta → Vata）
func PrimaryDoshaOf(label string) string {
	primary, _ := SplitDoshaLabel(label)
	return capitalizeDosha(primary)
}

// doshaInText 判断体质名是否出现在自由文本字段（suitable_for / avoids_for）中。
// 为兼容历史数据采用大小写敏感的子串匹配；已知局限：体质名作为
// 更长单词的子串时会误判。匹配策略集中在此处，后续替换为分词或
// 集合匹配时无需改动打分算法。
func doshaInText(text, dosha string) bool {
	if dosha == "" {
		return false
	}
	return strings.Contains(text, dosha)
}

func capitalizeDosha(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
