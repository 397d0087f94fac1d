package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
)

// dualDoshaGap 是判定复合体质的概率差阈值：前两名差距小于 15% 即为 Dual
const dualDoshaGap = 0.15

// 诊断结果类型
const (
	PredictionSingle = "Single Dosha"
	PredictionDual   = "Dual Dosha"
)

// profileFeatures 定义问卷特征及其编码顺序，与训练集列顺序一致
var profileFeatures = []string{
	"digestion",
	"sleep",
	"energy",
	"temperature_preference",
	"mood",
	"body_frame",
}

// featureClasses 列出每个特征在训练期出现过的取值。
// 取值按字典序映射为整数编码，对齐训练侧 LabelEncoder 的行为。
var featureClasses = map[string][]string{
	"digestion":              {"fast", "moderate", "slow"},
	"sleep":                  {"deep", "light", "moderate"},
	"energy":                 {"high", "low", "moderate"},
	"temperature_preference": {"cold", "moderate", "warm"},
	"mood":                   {"anxious", "calm", "enthusiastic", "irritable"},
	"body_frame":             {"broad", "medium", "slim"},
}

// UnknownValueError 表示问卷取值在训练期从未出现，编码器拒绝处理。
// 调用方应提示用户重新输入，绝不能静默使用默认值。
type UnknownValueError struct {
	Feature string
	Value   string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown value %q for %s", e.Value, e.Feature)
}

// MissingFeatureError 表示问卷缺少必填特征
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing required feature %q", e.Feature)
}

// DoshaModel 抽象训练好的概率分类器（黑盒）。
// 给定编码后的特征向量，返回三体质的校准概率分布。
type DoshaModel interface {
	PredictProbabilities(ctx context.Context, features []int) (map[string]float64, error)
}

// DoshaPrediction 为一次体质诊断的完整输出
type DoshaPrediction struct {
	Type       string             // Single Dosha / Dual Dosha
	Dosha      string             // 如 "Vata" 或 "Vata-Pitta"
	Confidence int                // 首位概率向下取整的百分数
	Breakdown  map[string]float64 // 完整概率分布，供前端展示
}

// DoshaClassifierService 把问卷编码、黑盒模型调用和标签解析串成一次诊断
type DoshaClassifierService struct {
	model DoshaModel
}

// NewDoshaClassifierService 构造 DoshaClassifierService
func NewDoshaClassifierService(model DoshaModel) *DoshaClassifierService {
	return &DoshaClassifierService{model: model}
}

// EncodeProfile 把问卷映射为特征向量。
// 未知取值返回 UnknownValueError，缺少特征返回 MissingFeatureError，
// 两者都不会部分修改任何共享状态。
func EncodeProfile(profile map[string]string) ([]int, error) {
	features := make([]int, 0, len(profileFeatures))

	for _, feature := range profileFeatures {
		value, ok := profile[feature]
		if !ok {
			return nil, &MissingFeatureError{Feature: feature}
		}

		value = strings.TrimSpace(value)
		code := slices.Index(featureClasses[feature], value)
		if code < 0 {
			return nil, &UnknownValueError{Feature: feature, Value: value}
		}

		features = append(features, code)
	}

	return features, nil
}

// Classify 执行完整诊断：编码 → 模型概率 → 标签解析。
// 模型侧失败按外部服务错误包装后原样上抛，核心不做重试。
func (s *DoshaClassifierService) Classify(ctx context.Context, profile map[string]string) (*DoshaPrediction, error) {
	features, err := EncodeProfile(profile)
	if err != nil {
		return nil, err
	}

	probs, err := s.model.PredictProbabilities(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("dosha model: %w", err)
	}

	return ResolveDoshaLabel(probs)
}

// ResolveDoshaLabel 把概率分布解析为单一或复合体质标签。
// 概率降序取前两名，差距小于 0.15 判为 Dual 标签（主体质在前）；
// 置信度为首位概率乘 100 后截断取整。
func ResolveDoshaLabel(probs map[string]float64) (*DoshaPrediction, error) {
	if len(probs) < 2 {
		return nil, fmt.Errorf("probability distribution needs at least two doshas, got %d", len(probs))
	}

	type doshaProb struct {
		dosha string
		prob  float64
	}

	ranked := make([]doshaProb, 0, len(probs))
	for dosha, prob := range probs {
		ranked = append(ranked, doshaProb{dosha: dosha, prob: prob})
	}

	slices.SortFunc(ranked, func(a, b doshaProb) int {
		if diff := cmp.Compare(b.prob, a.prob); diff != 0 {
			return diff
		}
		return cmp.Compare(a.dosha, b.dosha)
	})

	first, second := ranked[0], ranked[1]

	prediction := &DoshaPrediction{
		Confidence: int(first.prob * 100),
		Breakdown:  probs,
	}

	if first.prob-second.prob < dualDoshaGap {
		prediction.Type = PredictionDual
		prediction.Dosha = first.dosha + doshaLabelSeparator + second.dosha
	} else {
		prediction.Type = PredictionSingle
		prediction.Dosha = first.dosha
	}

	return prediction, nil
}
