package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundleview/internal/model"
)

func ptr(value float64) *float64 {
	return &value
}

// TestTotalsExact 验证压缩体积缺失时按 0.3 估算，存在时原样累加。
func TestTotalsExact(t *testing.T) {
	modules := []model.Module{
		{ID: "a", Size: 1000},
		{ID: "b", Size: 500, CompressedSize: ptr(120)},
		{ID: "c", Size: 0},
		{ID: "d", Size: 10, CompressedSize: ptr(0)},
	}

	totalSize, totalCompressed := Totals(modules)

	assert.Equal(t, int64(1510), totalSize)
	expected := float64(1000)*model.CompressedRatio + 120 + 0 + 0
	assert.Equal(t, expected, totalCompressed)
}

func TestTotalsEmpty(t *testing.T) {
	totalSize, totalCompressed := Totals(nil)
	assert.Zero(t, totalSize)
	assert.Zero(t, totalCompressed)
}

func TestSummarize(t *testing.T) {
	modules := []model.Module{
		{ID: "a", Size: 600, Type: model.KindScript},
		{ID: "b", Size: 300, Type: model.KindStyle},
		{ID: "c", Size: 100, Type: model.KindScript},
	}
	chunks := []model.Chunk{{ID: "main", Name: "main", Size: 2000, IsEntry: true}}
	totalSize, totalCompressed := Totals(modules)

	result := Summarize(modules, chunks, totalSize, totalCompressed, 2)

	assert.Equal(t, 3, result.ModuleCount)
	assert.Equal(t, 1, result.ChunkCount)
	assert.InDelta(t, 1000.0/3.0, result.AverageModuleSize, 1e-9)
	assert.Equal(t, int64(600), result.LargestModuleSize)
	assert.InDelta(t, 70.0, result.CompressionRatio, 1e-9)

	require.Len(t, result.ByKind, 2)
	assert.Equal(t, model.KindScript, result.ByKind[0].Kind)
	assert.Equal(t, 2, result.ByKind[0].Count)
	assert.Equal(t, int64(700), result.ByKind[0].Size)
	assert.InDelta(t, 70.0, result.ByKind[0].Percentage, 1e-9)

	require.Len(t, result.LargestModules, 2)
	assert.Equal(t, "a", result.LargestModules[0].ID)
	assert.Equal(t, "b", result.LargestModules[1].ID)

	require.Len(t, result.Chunks, 1)
	assert.InDelta(t, 200.0, result.Chunks[0].Percentage, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	result := Summarize(nil, nil, 0, 0, 10)

	assert.Zero(t, result.AverageModuleSize)
	assert.Zero(t, result.CompressionRatio)
	assert.Empty(t, result.ByKind)
	assert.NotNil(t, result.LargestModules)
}

func TestEstimateLoad(t *testing.T) {
	estimate := EstimateLoad(2 * mebibyte)
	assert.InDelta(t, 2.0, estimate.Network3G, 1e-9)
	assert.InDelta(t, 0.2, estimate.Network4G, 1e-9)
}
