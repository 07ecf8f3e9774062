package model

// HierarchyNode 是按路径分组后的树节点，作为外部 treemap 布局的输入。
//
// 约束说明：
// - 叶子节点 Module 非空，Size 为模块自身体积
// - 中间节点 Module 为空，Size 恒为 0，聚合值由使用方对子节点求和
type HierarchyNode struct {
	Label    string           `json:"label" yaml:"label"`
	Size     int64            `json:"size" yaml:"size"`
	Module   *Module          `json:"module,omitempty" yaml:"module,omitempty"`
	Children []*HierarchyNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsLeaf 判断节点是否为叶子。
func (n *HierarchyNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Value 返回子树全部叶子体积之和，与布局算法的自底向上求和一致。
func (n *HierarchyNode) Value() int64 {
	if n.IsLeaf() {
		return n.Size
	}
	var total int64
	for _, child := range n.Children {
		total += child.Value()
	}
	return total
}

// Leaves 按深度优先顺序返回全部叶子节点。
func (n *HierarchyNode) Leaves() []*HierarchyNode {
	if n.IsLeaf() {
		return []*HierarchyNode{n}
	}
	leaves := make([]*HierarchyNode, 0, len(n.Children))
	for _, child := range n.Children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}
