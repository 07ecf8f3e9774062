package formats

import "strings"

// DependencyRoot 是外部依赖安装目录的约定名称。
const DependencyRoot = "node_modules"

// Segment 把模块标识切分为有序路径。
//
// 规则：
// - 空名称返回 ["unknown"]
// - 包含 node_modules/ 时丢弃其之前的全部前缀，使不同安装深度的依赖归到同一子树
// - 其余情况按 "/" 切分
func Segment(name string) []string {
	if name == "" {
		return []string{"unknown"}
	}

	if _, rest, found := strings.Cut(name, DependencyRoot+"/"); found {
		return append([]string{DependencyRoot}, strings.Split(rest, "/")...)
	}

	return strings.Split(name, "/")
}
