package model

// KindBreakdown 表示某一类型模块的聚合结果。
type KindBreakdown struct {
	Kind       Kind    `json:"kind" yaml:"kind"`
	Count      int     `json:"count" yaml:"count"`
	Size       int64   `json:"size" yaml:"size"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ChunkShare 表示 chunk 体积占模块总体积的比例。
type ChunkShare struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Size       int64   `json:"size" yaml:"size"`
	IsEntry    bool    `json:"isEntry" yaml:"isEntry"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// LoadEstimate 是按网络类型粗略估算的加载耗时，单位秒。
type LoadEstimate struct {
	Network3G float64 `json:"network3g" yaml:"network3g"`
	Network4G float64 `json:"network4g" yaml:"network4g"`
}

// Stats 是面向统计面板的派生指标。
type Stats struct {
	ModuleCount       int             `json:"moduleCount" yaml:"moduleCount"`
	ChunkCount        int             `json:"chunkCount" yaml:"chunkCount"`
	AverageModuleSize float64         `json:"averageModuleSize" yaml:"averageModuleSize"`
	LargestModuleSize int64           `json:"largestModuleSize" yaml:"largestModuleSize"`
	CompressionRatio  float64         `json:"compressionRatio" yaml:"compressionRatio"`
	ByKind            []KindBreakdown `json:"byKind" yaml:"byKind"`
	LargestModules    []Module        `json:"largestModules" yaml:"largestModules"`
	Chunks            []ChunkShare    `json:"chunks" yaml:"chunks"`
	Load              LoadEstimate    `json:"load" yaml:"load"`
}
