package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundleview/internal/hierarchy"
	"bundleview/internal/model"
)

// sampleResult 构造一个包含全部区块的分析结果。
func sampleResult() model.AnalysisResult {
	savings := 184320.0
	modules := []model.Module{
		{ID: "1", Name: "node_modules/moment/moment.js", Size: 600 * 1024, Path: []string{"node_modules", "moment", "moment.js"}, Type: model.KindScript},
		{ID: "2", Name: "src/app.js", Size: 10 * 1024, Path: []string{"src", "app.js"}, Type: model.KindScript},
	}
	return model.AnalysisResult{
		TotalSize:           610 * 1024,
		TotalCompressedSize: 183 * 1024,
		Modules:             modules,
		Chunks:              []model.Chunk{{ID: "main", Name: "main", Size: 250 * 1024, IsEntry: true}},
		Insights: []model.Insight{{
			ID:                    "large-dep-1",
			Severity:              model.SeverityWarning,
			Description:           `The module "node_modules/moment/moment.js" is 600 KiB in size, which may impact bundle performance.`,
			Impact:                model.ImpactHigh,
			EstimatedSavingsBytes: &savings,
			Category:              model.CategoryDependency,
		}},
		Metadata: model.Metadata{AnalyzedAt: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), FileCount: 3, FileExtensions: []string{"json", "json", "js"}},
		Errors:   []model.FileError{{Name: "broken.json", Error: "unexpected end of JSON input"}},
		Stats: model.Stats{
			ByKind:         []model.KindBreakdown{{Kind: model.KindScript, Count: 2, Size: 610 * 1024, Percentage: 100}},
			LargestModules: modules,
			Chunks:         []model.ChunkShare{{ID: "main", Name: "main", Size: 250 * 1024, IsEntry: true, Percentage: 41}},
			Load:           model.LoadEstimate{Network3G: 0.6, Network4G: 0.06},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"": FormatTable, "table": FormatTable, "json": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrintTable(&out, sampleResult()))

	text := out.String()
	assert.Contains(t, text, "TOTAL SIZE\t610 KiB")
	assert.Contains(t, text, "600ms (3G) / 60ms (4G)")
	assert.Contains(t, text, "node_modules/moment/moment.js")
	assert.Contains(t, text, "is 600 KiB in size")
	assert.Contains(t, text, "180 KiB")
	assert.Contains(t, text, "broken.json")
	assert.Contains(t, text, "41.0%")
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Print(&out, FormatJSON, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, float64(610*1024), decoded["totalSize"])
	assert.Contains(t, decoded, "totalCompressedSize")
	assert.Contains(t, decoded, "insights")
	assert.Contains(t, decoded, "metadata")
}

func TestPrintYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Print(&out, FormatYAML, sampleResult()))

	text := out.String()
	assert.Contains(t, text, "totalSize: 624640")
	assert.Contains(t, text, "fileExtensions:")
	assert.Contains(t, text, "category: dependency")
}

func TestPrintTableFallsBackToJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Print(&out, FormatTable, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", out.String())
}

// TestWriteJSONFile 验证导出时自动创建目录。
func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "result.json")
	require.NoError(t, WriteJSONFile(path, sampleResult()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "{"))
	assert.Contains(t, string(content), `"moduleIds"`)
}

func TestPrintTree(t *testing.T) {
	root := hierarchy.Build(sampleResult().Modules)

	var out bytes.Buffer
	require.NoError(t, PrintTree(&out, root, 0))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	// 最宽的标签是 "      moment.js"，尺寸列从第 17 列开始对齐。
	assert.Equal(t, fmt.Sprintf("%-17s%s", "root", "610 KiB"), lines[0])
	assert.Equal(t, fmt.Sprintf("%-17s%s", "  node_modules", "600 KiB"), lines[1])
	assert.Equal(t, fmt.Sprintf("%-17s%s", "      moment.js", "600 KiB"), lines[3])
	assert.Equal(t, fmt.Sprintf("%-17s%s", "  src", "10 KiB"), lines[4])

	out.Reset()
	require.NoError(t, PrintTree(&out, root, 2))
	assert.Len(t, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), 3)

	out.Reset()
	require.NoError(t, PrintTree(&out, nil, 0))
	assert.Equal(t, "(no modules)\n", out.String())
}
