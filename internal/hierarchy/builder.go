// Package hierarchy 把扁平的模块列表按路径折叠成树，
// 作为外部按体积比例布局（treemap）算法的输入。
package hierarchy

import "bundleview/internal/model"

// RootLabel 是树根节点的标签。
const RootLabel = "root"

// node 是构建过程中的可变节点，children 保持首次插入顺序。
type node struct {
	label    string
	module   *model.Module
	order    []string
	children map[string]*node
}

func newNode(label string) *node {
	return &node{label: label, children: make(map[string]*node)}
}

func (n *node) child(label string) *node {
	next, ok := n.children[label]
	if !ok {
		next = newNode(label)
		n.children[label] = next
		n.order = append(n.order, label)
	}
	return next
}

// Build 按模块路径构建层级树，空输入返回 nil。
//
// 约束说明：
// - 两个模块完整路径相同时，后出现的覆盖先出现的（last-write-wins）
// - 某模块路径是另一模块路径的前缀时，该模块作为同名叶子挂在中间节点的第一个子节点
// - 中间节点不持有模块，Size 为 0，每个叶子恰好对应一个模块
func Build(modules []model.Module) *model.HierarchyNode {
	if len(modules) == 0 {
		return nil
	}

	root := newNode(RootLabel)
	for i := range modules {
		module := modules[i]

		path := module.Path
		if len(path) == 0 {
			path = []string{module.Name}
		}

		current := root
		for _, segment := range path {
			current = current.child(segment)
		}
		current.module = &module
	}

	return root.convert()
}

// convert 递归地把构建节点转换为输出节点。
func (n *node) convert() *model.HierarchyNode {
	if len(n.order) == 0 {
		result := &model.HierarchyNode{Label: n.label}
		if n.module != nil {
			result.Module = n.module
			result.Size = leafSize(n.module)
		}
		return result
	}

	result := &model.HierarchyNode{
		Label:    n.label,
		Children: make([]*model.HierarchyNode, 0, len(n.order)+1),
	}
	if n.module != nil {
		result.Children = append(result.Children, &model.HierarchyNode{
			Label:  n.label,
			Size:   leafSize(n.module),
			Module: n.module,
		})
	}
	for _, label := range n.order {
		result.Children = append(result.Children, n.children[label].convert())
	}
	return result
}

func leafSize(module *model.Module) int64 {
	if module.Size < 0 {
		return 0
	}
	return module.Size
}
