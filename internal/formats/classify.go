package formats

import (
	"strings"

	"bundleview/internal/model"
)

// kindByExt 是后缀到语义类型的固定映射，后缀不含点号且为小写。
var kindByExt = map[string]model.Kind{
	"js":   model.KindScript,
	"jsx":  model.KindScript,
	"ts":   model.KindScript,
	"tsx":  model.KindScript,
	"css":  model.KindStyle,
	"scss": model.KindStyle,
	"sass": model.KindStyle,
	"less": model.KindStyle,
	"json": model.KindJSON,
	"map":  model.KindMap,
}

// Extension 返回文件名最后一个点号之后的小写后缀，没有后缀时返回空字符串。
func Extension(filename string) string {
	index := strings.LastIndex(filename, ".")
	if index < 0 {
		return ""
	}
	return strings.ToLower(filename[index+1:])
}

// Classify 根据文件后缀判断语义类型。
// 纯函数，未知或缺失后缀统一归为 other。
func Classify(filename string) model.Kind {
	if kind, ok := kindByExt[Extension(filename)]; ok {
		return kind
	}
	return model.KindOther
}
