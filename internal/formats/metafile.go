package formats

import (
	"sort"

	"bundleview/internal/model"
)

// Metafile 对应 esbuild metafile 的 JSON 结构。
type Metafile struct {
	Inputs  map[string]MetafileInput  `json:"inputs"`
	Outputs map[string]MetafileOutput `json:"outputs"`
}

// MetafileInput 表示 metafile 中的一个输入文件。
type MetafileInput struct {
	Bytes   float64          `json:"bytes"`
	Imports []MetafileImport `json:"imports"`
	Format  string           `json:"format,omitempty"`
}

// MetafileImport 表示一条 import 记录。
type MetafileImport struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
	Original string `json:"original,omitempty"`
}

// MetafileOutput 表示 metafile 中的一个输出文件。
type MetafileOutput struct {
	Bytes      float64                 `json:"bytes"`
	Inputs     map[string]InputContrib `json:"inputs"`
	Imports    []MetafileImport        `json:"imports"`
	Exports    []string                `json:"exports"`
	EntryPoint string                  `json:"entryPoint,omitempty"`
}

// InputContrib 表示某个输入对输出的字节贡献。
type InputContrib struct {
	BytesInOutput float64 `json:"bytesInOutput"`
}

// convertMetafile 把 metafile 转换为模块与 chunk。
// map 的遍历顺序不稳定，因此输入和输出都按路径排序后再输出。
func convertMetafile(meta *Metafile) Records {
	outputPaths := sortedKeys(meta.Outputs)
	chunkOf := make(map[string]string)

	chunks := make([]model.Chunk, 0, len(outputPaths))
	for _, outputPath := range outputPaths {
		output := meta.Outputs[outputPath]
		size := byteCount(&output.Bytes)

		moduleIDs := sortedKeys(output.Inputs)
		for _, inputPath := range moduleIDs {
			if _, ok := chunkOf[inputPath]; !ok {
				chunkOf[inputPath] = outputPath
			}
		}

		chunks = append(chunks, model.Chunk{
			ID:             outputPath,
			Name:           outputPath,
			Size:           size,
			CompressedSize: float64(size) * model.CompressedRatio,
			ModuleIDs:      moduleIDs,
			IsEntry:        output.EntryPoint != "",
		})
	}

	inputPaths := sortedKeys(meta.Inputs)
	modules := make([]model.Module, 0, len(inputPaths))
	externals := make(map[string]struct{})
	for _, inputPath := range inputPaths {
		input := meta.Inputs[inputPath]

		dependencies := make([]string, 0, len(input.Imports))
		for _, imp := range input.Imports {
			dependencies = append(dependencies, imp.Path)
			if imp.External {
				externals[imp.Path] = struct{}{}
			}
		}

		modules = append(modules, model.Module{
			ID:           inputPath,
			Name:         inputPath,
			Size:         byteCount(&input.Bytes),
			Path:         Segment(inputPath),
			Dependencies: dependencies,
			Type:         Classify(inputPath),
			Chunk:        chunkOf[inputPath],
		})
	}

	// 外部依赖不计入体积，只保留引用关系。
	for _, externalPath := range sortedKeys(externals) {
		if _, bundled := meta.Inputs[externalPath]; bundled {
			continue
		}
		modules = append(modules, model.Module{
			ID:           externalPath,
			Name:         externalPath,
			Path:         Segment(externalPath),
			Dependencies: []string{},
			IsExternal:   true,
			Type:         Classify(externalPath),
		})
	}

	return Records{Modules: modules, Chunks: chunks}
}

func sortedKeys[V any](items map[string]V) []string {
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
