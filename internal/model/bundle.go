// Package model 定义 bundleview 的核心数据模型。
// 这些结构会被解析层、规则引擎、输出层和命令层共同使用。
package model

import "time"

// CompressedRatio 是缺少压缩体积时使用的估算系数。
const CompressedRatio = 0.3

// Kind 表示模块或文件的语义类型。
type Kind string

const (
	KindScript Kind = "script"
	KindStyle  Kind = "style"
	KindJSON   Kind = "json"
	KindMap    Kind = "map"
	KindOther  Kind = "other"
)

// Module 表示 bundle 中一个可归属体积的单元。
//
// 注意：
// - CompressedSize 为 nil 表示来源格式没有提供，使用方按 Size * 0.3 估算
// - Path 永远非空，可以由 Name 经路径切分确定性地重建
type Module struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Size           int64    `json:"size" yaml:"size"`
	CompressedSize *float64 `json:"compressedSize,omitempty" yaml:"compressedSize,omitempty"`
	Path           []string `json:"path" yaml:"path"`
	Dependencies   []string `json:"dependencies" yaml:"dependencies"`
	IsExternal     bool     `json:"isExternal" yaml:"isExternal"`
	Type           Kind     `json:"type" yaml:"type"`
	Chunk          string   `json:"chunk,omitempty" yaml:"chunk,omitempty"`
}

// CompressedOrEstimate 返回压缩体积，缺失时按固定系数估算。
func (m Module) CompressedOrEstimate() float64 {
	if m.CompressedSize != nil {
		return *m.CompressedSize
	}
	return float64(m.Size) * CompressedRatio
}

// Chunk 表示打包器产出的一个输出文件。
// ModuleIDs 不与本次分析的模块列表做交叉校验，允许引用不存在的模块。
type Chunk struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Size           int64    `json:"size" yaml:"size"`
	CompressedSize float64  `json:"compressedSize" yaml:"compressedSize"`
	ModuleIDs      []string `json:"moduleIds" yaml:"moduleIds"`
	IsEntry        bool     `json:"isEntry" yaml:"isEntry"`
}

// Severity 表示 insight 的级别。
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Impact 表示 insight 的影响程度。
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Category 表示 insight 所属的优化方向。
type Category string

const (
	CategoryDependency    Category = "dependency"
	CategoryCodeSplitting Category = "code-splitting"
	CategoryTreeShaking   Category = "tree-shaking"
	CategoryDuplicates    Category = "duplicates"
	CategoryPerformance   Category = "performance"
)

// Insight 是一条由规则触发的优化建议。
// ID 由触发实体确定性地派生，相同输入重复分析得到相同的 ID。
type Insight struct {
	ID                    string   `json:"id" yaml:"id"`
	Severity              Severity `json:"severity" yaml:"severity"`
	Title                 string   `json:"title" yaml:"title"`
	Description           string   `json:"description" yaml:"description"`
	Impact                Impact   `json:"impact" yaml:"impact"`
	Recommendation        string   `json:"recommendation" yaml:"recommendation"`
	EstimatedSavingsBytes *float64 `json:"estimatedSavingsBytes,omitempty" yaml:"estimatedSavingsBytes,omitempty"`
	Category              Category `json:"category" yaml:"category"`
}

// Metadata 记录一次分析的上下文信息。
type Metadata struct {
	AnalyzedAt     time.Time `json:"analyzedAt" yaml:"analyzedAt"`
	FileCount      int       `json:"fileCount" yaml:"fileCount"`
	FileExtensions []string  `json:"fileExtensions" yaml:"fileExtensions"`
}

// FileError 记录单文件解析失败，或单条记录字段被默认处理的信息。
// 单个文件失败不会阻断整批分析。
type FileError struct {
	Name  string `json:"name" yaml:"name"`
	Error string `json:"error" yaml:"error"`
}

// AnalysisResult 是一次分析的完整输出快照。
// 构造完成后不再修改，下一次分析会产生新的快照。
type AnalysisResult struct {
	TotalSize           int64       `json:"totalSize" yaml:"totalSize"`
	TotalCompressedSize float64     `json:"totalCompressedSize" yaml:"totalCompressedSize"`
	Modules             []Module    `json:"modules" yaml:"modules"`
	Chunks              []Chunk     `json:"chunks" yaml:"chunks"`
	Insights            []Insight   `json:"insights" yaml:"insights"`
	Metadata            Metadata    `json:"metadata" yaml:"metadata"`
	Errors              []FileError `json:"errors" yaml:"errors"`
	Stats               Stats       `json:"stats" yaml:"stats"`
}
