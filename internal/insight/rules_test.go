package insight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundleview/internal/model"
)

func module(id string, name string, size int64) model.Module {
	return model.Module{ID: id, Name: name, Size: size, Type: model.KindScript}
}

// TestLargeDependencyThresholds 验证 100 KiB 与 500 KiB 两个边界。
func TestLargeDependencyThresholds(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		trigger bool
		impact  model.Impact
	}{
		{name: "exactly 100 KiB", size: 100 * 1024, trigger: false},
		{name: "100 KiB + 1", size: 100*1024 + 1, trigger: true, impact: model.ImpactMedium},
		{name: "exactly 500 KiB", size: 500 * 1024, trigger: true, impact: model.ImpactMedium},
		{name: "500 KiB + 1", size: 500*1024 + 1, trigger: true, impact: model.ImpactHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := LargeDependencies(Input{Modules: []model.Module{module("m", "dep.js", tt.size)}})
			if !tt.trigger {
				assert.Empty(t, insights)
				return
			}
			require.Len(t, insights, 1)
			assert.Equal(t, tt.impact, insights[0].Impact)
			assert.Equal(t, model.SeverityWarning, insights[0].Severity)
			assert.Equal(t, model.CategoryDependency, insights[0].Category)
			assert.Equal(t, "large-dep-m", insights[0].ID)
			require.NotNil(t, insights[0].EstimatedSavingsBytes)
			assert.Equal(t, float64(tt.size)*0.3, *insights[0].EstimatedSavingsBytes)
		})
	}
}

func TestLargeDependencyOrderingAndRecommendations(t *testing.T) {
	modules := []model.Module{
		module("a", "node_modules/Moment/moment.js", 200*1024),
		module("b", "node_modules/lodash/lodash.js", 700*1024),
		module("c", "node_modules/jquery/dist/jquery.js", 300*1024),
		module("d", "node_modules/three/build/three.js", 400*1024),
		module("e", "src/small.js", 10),
	}

	insights := LargeDependencies(Input{Modules: modules})
	require.Len(t, insights, 4)

	assert.Equal(t, "large-dep-b", insights[0].ID)
	assert.Equal(t, "large-dep-d", insights[1].ID)
	assert.Equal(t, "large-dep-c", insights[2].ID)
	assert.Equal(t, "large-dep-a", insights[3].ID)

	assert.Contains(t, insights[0].Recommendation, "lodash-es")
	assert.Equal(t, genericDependencyRecommendation, insights[1].Recommendation)
	assert.Contains(t, insights[2].Recommendation, "native DOM")
	assert.Contains(t, insights[3].Recommendation, "dayjs")

	assert.Contains(t, insights[0].Description, `"node_modules/lodash/lodash.js"`)
	assert.Contains(t, insights[0].Description, "700 KiB")
}

func TestCodeSplitting(t *testing.T) {
	chunks := []model.Chunk{
		{ID: "small", Name: "small", Size: 200 * 1024},
		{ID: "vendor", Name: "vendor", Size: 300 * 1024},
		{ID: "main", Name: "main", Size: 900 * 1024},
	}

	insights := CodeSplitting(Input{Chunks: chunks})
	require.Len(t, insights, 2)
	assert.Equal(t, "code-split-main", insights[0].ID)
	assert.Equal(t, "code-split-vendor", insights[1].ID)
	assert.Equal(t, model.SeverityInfo, insights[0].Severity)
	assert.Equal(t, model.ImpactMedium, insights[0].Impact)
	assert.Equal(t, model.CategoryCodeSplitting, insights[0].Category)
	assert.Equal(t, float64(900*1024)*0.4, *insights[0].EstimatedSavingsBytes)
}

func TestTreeShaking(t *testing.T) {
	modules := make([]model.Module, 0, 51)
	for i := 0; i < 50; i++ {
		modules = append(modules, module(fmt.Sprint(i), fmt.Sprintf("m%d.js", i), 1))
	}
	modules = append(modules, model.Module{ID: "css", Name: "a.css", Type: model.KindStyle})

	assert.Empty(t, TreeShaking(Input{Modules: modules}))

	modules = append(modules, module("50", "m50.js", 1))
	insights := TreeShaking(Input{Modules: modules})
	require.Len(t, insights, 1)
	assert.Equal(t, "tree-shaking", insights[0].ID)
	assert.Contains(t, insights[0].Description, "51 script modules")
	assert.Nil(t, insights[0].EstimatedSavingsBytes)
}

// TestDuplicatesCountsRepeatedOccurrences 验证计数的是重复出现次数而不是重复名称个数。
func TestDuplicatesCountsRepeatedOccurrences(t *testing.T) {
	modules := []model.Module{module("1", "a", 1), module("2", "b", 1), module("3", "a", 1), module("4", "a", 1)}

	assert.Equal(t, 2, DuplicateOccurrences(modules))

	insights := Duplicates(Input{Modules: modules})
	require.Len(t, insights, 1)
	assert.Equal(t, "duplicates", insights[0].ID)
	assert.Contains(t, insights[0].Description, "Found 2 duplicate")
	assert.Equal(t, model.CategoryDuplicates, insights[0].Category)
}

func TestDuplicatesNone(t *testing.T) {
	assert.Empty(t, Duplicates(Input{Modules: []model.Module{module("1", "a", 1), module("2", "b", 1)}}))
}

func TestPerformance(t *testing.T) {
	assert.Empty(t, Performance(Input{TotalSize: 1024 * 1024}))

	insights := Performance(Input{TotalSize: 1024*1024 + 1})
	require.Len(t, insights, 1)
	assert.Equal(t, model.ImpactHigh, insights[0].Impact)
	assert.Equal(t, model.CategoryPerformance, insights[0].Category)
	assert.Nil(t, insights[0].EstimatedSavingsBytes)
}

func TestGenerateOrder(t *testing.T) {
	input := Input{
		Modules: []model.Module{
			module("big", "big.js", 2*1024*1024),
			module("dup", "big.js", 1),
		},
		Chunks:    []model.Chunk{{ID: "c", Name: "c", Size: 300 * 1024}},
		TotalSize: 2*1024*1024 + 1,
	}

	insights := Generate(input)
	ids := make([]string, 0, len(insights))
	for _, item := range insights {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"large-dep-big", "code-split-c", "duplicates", "performance"}, ids)

	assert.NotNil(t, Generate(Input{}))
	assert.Empty(t, Generate(Input{}))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "600 KiB", FormatSize(600*1024))
	assert.Equal(t, "1.5 MiB", FormatSize(1536*1024))
}
