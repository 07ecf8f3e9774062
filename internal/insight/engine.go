// Package insight 基于归一化模型生成优化建议。
// 规则集合是固定的，每条规则都是独立的纯函数，按固定顺序执行后拼接结果。
package insight

import (
	"github.com/dustin/go-humanize"

	"bundleview/internal/model"
)

const (
	kibibyte = 1024
	mebibyte = 1024 * kibibyte
)

// Input 是规则函数的输入，包含完整的模块、chunk 与聚合值。
type Input struct {
	Modules   []model.Module
	Chunks    []model.Chunk
	TotalSize int64
}

// Rule 是单条规则，返回零条或多条 insight。
type Rule func(input Input) []model.Insight

// Rules 按执行顺序返回全部内置规则。
func Rules() []Rule {
	return []Rule{
		LargeDependencies,
		CodeSplitting,
		TreeShaking,
		Duplicates,
		Performance,
	}
}

// Generate 依次执行全部规则并拼接结果，结果永远非 nil。
func Generate(input Input) []model.Insight {
	insights := make([]model.Insight, 0)
	for _, rule := range Rules() {
		insights = append(insights, rule(input)...)
	}
	return insights
}

// FormatSize 以二进制单位格式化字节数。
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(bytes))
}

func savings(value float64) *float64 {
	return &value
}
