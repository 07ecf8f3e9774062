// Package stats 负责体积聚合与统计面板所需的派生指标。
package stats

import (
	"sort"

	"bundleview/internal/model"
)

const (
	mebibyte = 1024 * 1024

	// 粗略估算：1 MiB 在 3G 下约 1 秒，在 4G 下约 0.1 秒。
	secondsPerMiB3G = 1.0
	secondsPerMiB4G = 0.1
)

// Totals 计算模块总体积与压缩体积总和。
// chunk 单独追踪，不计入总体积。
func Totals(modules []model.Module) (int64, float64) {
	var totalSize int64
	var totalCompressed float64
	for _, module := range modules {
		totalSize += module.Size
		totalCompressed += module.CompressedOrEstimate()
	}
	return totalSize, totalCompressed
}

// Summarize 生成统计面板指标，top 控制最大模块列表的长度。
func Summarize(modules []model.Module, chunks []model.Chunk, totalSize int64, totalCompressed float64, top int) model.Stats {
	result := model.Stats{
		ModuleCount:    len(modules),
		ChunkCount:     len(chunks),
		ByKind:         breakdownByKind(modules, totalSize),
		LargestModules: largestModules(modules, top),
		Chunks:         chunkShares(chunks, totalSize),
		Load:           EstimateLoad(totalSize),
	}

	if len(modules) > 0 {
		result.AverageModuleSize = float64(totalSize) / float64(len(modules))
	}
	for _, module := range modules {
		if module.Size > result.LargestModuleSize {
			result.LargestModuleSize = module.Size
		}
	}
	if totalSize > 0 {
		result.CompressionRatio = (float64(totalSize) - totalCompressed) / float64(totalSize) * 100
	}

	return result
}

// EstimateLoad 按网络类型估算加载耗时。
func EstimateLoad(size int64) model.LoadEstimate {
	mib := float64(size) / mebibyte
	return model.LoadEstimate{
		Network3G: mib * secondsPerMiB3G,
		Network4G: mib * secondsPerMiB4G,
	}
}

// breakdownByKind 按模块类型聚合，结果按首次出现顺序输出。
func breakdownByKind(modules []model.Module, totalSize int64) []model.KindBreakdown {
	index := make(map[model.Kind]int)
	result := make([]model.KindBreakdown, 0)

	for _, module := range modules {
		position, ok := index[module.Type]
		if !ok {
			position = len(result)
			index[module.Type] = position
			result = append(result, model.KindBreakdown{Kind: module.Type})
		}
		result[position].Count++
		result[position].Size += module.Size
	}

	for i := range result {
		result[i].Percentage = percentage(result[i].Size, totalSize)
	}
	return result
}

// largestModules 返回体积最大的前 top 个模块，体积相同保持输入顺序。
func largestModules(modules []model.Module, top int) []model.Module {
	sorted := append([]model.Module(nil), modules...)
	sort.SliceStable(sorted, func(i int, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})

	if top >= 0 && len(sorted) > top {
		sorted = sorted[:top]
	}
	if sorted == nil {
		sorted = []model.Module{}
	}
	return sorted
}

func chunkShares(chunks []model.Chunk, totalSize int64) []model.ChunkShare {
	result := make([]model.ChunkShare, 0, len(chunks))
	for _, chunk := range chunks {
		result = append(result, model.ChunkShare{
			ID:         chunk.ID,
			Name:       chunk.Name,
			Size:       chunk.Size,
			IsEntry:    chunk.IsEntry,
			Percentage: percentage(chunk.Size, totalSize),
		})
	}
	return result
}

func percentage(value int64, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(value) / float64(total) * 100
}
