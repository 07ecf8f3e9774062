package insight

import (
	"fmt"
	"sort"
	"strings"

	"bundleview/internal/model"
)

const (
	largeDependencyThreshold = 100 * kibibyte
	highImpactThreshold      = 500 * kibibyte
	largeChunkThreshold      = 200 * kibibyte
	treeShakingModuleCount   = 50
	largeBundleThreshold     = 1 * mebibyte

	dependencySavingsRatio    = 0.3
	codeSplittingSavingsRatio = 0.4
)

// lighterAlternative 是知名重量级库及其替代建议，按名称子串匹配（不区分大小写）。
type lighterAlternative struct {
	pattern        string
	recommendation string
}

var lighterAlternatives = []lighterAlternative{
	{pattern: "moment", recommendation: "Consider replacing moment.js with dayjs or date-fns for smaller bundle size."},
	{pattern: "lodash", recommendation: "Use lodash-es or import specific functions instead of the full library."},
	{pattern: "jquery", recommendation: "Consider using native DOM APIs or lighter alternatives like zepto.js."},
}

const genericDependencyRecommendation = "Analyze if this dependency is necessary or if there are lighter alternatives available."

// LargeDependencies 对超过 100 KiB 的模块给出警告，按体积降序输出。
func LargeDependencies(input Input) []model.Insight {
	large := make([]model.Module, 0)
	for _, module := range input.Modules {
		if module.Size > largeDependencyThreshold {
			large = append(large, module)
		}
	}
	sort.SliceStable(large, func(i int, j int) bool {
		return large[i].Size > large[j].Size
	})

	insights := make([]model.Insight, 0, len(large))
	for _, module := range large {
		impact := model.ImpactMedium
		if module.Size > highImpactThreshold {
			impact = model.ImpactHigh
		}

		insights = append(insights, model.Insight{
			ID:       "large-dep-" + module.ID,
			Severity: model.SeverityWarning,
			Title:    "Large Dependency Detected",
			Description: fmt.Sprintf(
				"The module %q is %s in size, which may impact bundle performance.",
				module.Name,
				FormatSize(module.Size),
			),
			Impact:                impact,
			Recommendation:        dependencyRecommendation(module.Name),
			EstimatedSavingsBytes: savings(float64(module.Size) * dependencySavingsRatio),
			Category:              model.CategoryDependency,
		})
	}
	return insights
}

func dependencyRecommendation(name string) string {
	lowered := strings.ToLower(name)
	for _, alternative := range lighterAlternatives {
		if strings.Contains(lowered, alternative.pattern) {
			return alternative.recommendation
		}
	}
	return genericDependencyRecommendation
}

// CodeSplitting 对超过 200 KiB 的 chunk 提示拆分，按体积降序输出。
func CodeSplitting(input Input) []model.Insight {
	large := make([]model.Chunk, 0)
	for _, chunk := range input.Chunks {
		if chunk.Size > largeChunkThreshold {
			large = append(large, chunk)
		}
	}
	sort.SliceStable(large, func(i int, j int) bool {
		return large[i].Size > large[j].Size
	})

	insights := make([]model.Insight, 0, len(large))
	for _, chunk := range large {
		insights = append(insights, model.Insight{
			ID:       "code-split-" + chunk.ID,
			Severity: model.SeverityInfo,
			Title:    "Code Splitting Opportunity",
			Description: fmt.Sprintf(
				"The chunk %q is %s and could benefit from code splitting.",
				chunk.Name,
				FormatSize(chunk.Size),
			),
			Impact:                model.ImpactMedium,
			Recommendation:        "Consider implementing dynamic imports or route-based code splitting to reduce initial bundle size.",
			EstimatedSavingsBytes: savings(float64(chunk.Size) * codeSplittingSavingsRatio),
			Category:              model.CategoryCodeSplitting,
		})
	}
	return insights
}

// TreeShaking 在脚本模块数量超过 50 时给出一条提示。
func TreeShaking(input Input) []model.Insight {
	count := 0
	for _, module := range input.Modules {
		if module.Type == model.KindScript {
			count++
		}
	}
	if count <= treeShakingModuleCount {
		return nil
	}

	return []model.Insight{{
		ID:             "tree-shaking",
		Severity:       model.SeverityInfo,
		Title:          "Tree Shaking Potential",
		Description:    fmt.Sprintf("Your bundle contains %d script modules. Tree shaking could help eliminate unused code.", count),
		Impact:         model.ImpactMedium,
		Recommendation: "Ensure your bundler is configured for tree shaking and use ES6 modules consistently.",
		Category:       model.CategoryTreeShaking,
	}}
}

// DuplicateOccurrences 统计重复出现的模块名次数：每个名称首次出现之后的每一次都计 1。
func DuplicateOccurrences(modules []model.Module) int {
	seen := make(map[string]struct{}, len(modules))
	count := 0
	for _, module := range modules {
		if _, ok := seen[module.Name]; ok {
			count++
			continue
		}
		seen[module.Name] = struct{}{}
	}
	return count
}

// Duplicates 在存在重名模块时给出一条警告。
func Duplicates(input Input) []model.Insight {
	count := DuplicateOccurrences(input.Modules)
	if count == 0 {
		return nil
	}

	return []model.Insight{{
		ID:             "duplicates",
		Severity:       model.SeverityWarning,
		Title:          "Duplicate Modules Detected",
		Description:    fmt.Sprintf("Found %d duplicate module names, which may indicate redundant dependencies.", count),
		Impact:         model.ImpactMedium,
		Recommendation: "Check for duplicate package installations and consider using bundle analyzer plugins to identify duplicates.",
		Category:       model.CategoryDuplicates,
	}}
}

// Performance 在模块总体积超过 1 MiB 时给出一条警告。
func Performance(input Input) []model.Insight {
	if input.TotalSize <= largeBundleThreshold {
		return nil
	}

	return []model.Insight{{
		ID:             "performance",
		Severity:       model.SeverityWarning,
		Title:          "Large Bundle Size",
		Description:    fmt.Sprintf("Your total bundle size is %s, which may impact loading performance.", FormatSize(input.TotalSize)),
		Impact:         model.ImpactHigh,
		Recommendation: "Consider implementing code splitting, lazy loading, and analyzing dependencies for optimization opportunities.",
		Category:       model.CategoryPerformance,
	}}
}
