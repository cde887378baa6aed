package abbrev

import "sort"

// TrieNode 前缀树节点
type TrieNode struct {
	Children map[string]*TrieNode // 子节点，使用完整 token 作为键
	IsEnd    bool                 // 是否是一个序列的结尾
	Seq      []string             // 如果是序列结尾，存储原始序列
}

// NewTrieNode 创建一个新的前缀树节点
func NewTrieNode() *TrieNode {
	return &TrieNode{
		Children: make(map[string]*TrieNode),
	}
}

// NewTrie 通过一组序列构建前缀树
func NewTrie(seqs [][]string) *TrieNode {
	root := NewTrieNode()
	for _, seq := range seqs {
		root.Insert(seq)
	}
	return root
}

// Insert 将序列插入前缀树
// 空序列被忽略; 重复插入时保留第一次插入的序列
func (n *TrieNode) Insert(seq []string) {
	if len(seq) == 0 {
		return
	}

	node := n
	for _, tok := range seq {
		child, ok := node.Children[tok]
		if !ok {
			child = NewTrieNode()
			node.Children[tok] = child
		}
		node = child
	}

	if node.IsEnd {
		return
	}
	node.IsEnd = true
	node.Seq = seq
}

// Contains 检查前缀树中是否包含指定的序列
func (n *TrieNode) Contains(seq []string) bool {
	node := n
	for _, tok := range seq {
		child, ok := node.Children[tok]
		if !ok {
			return false
		}
		node = child
	}
	return node.IsEnd
}

// Width 节点的键数量, 结尾标记也计为一个键
func (n *TrieNode) Width() int {
	if n.IsEnd {
		return len(n.Children) + 1
	}
	return len(n.Children)
}

// Keys 按字典序返回子节点的键
func (n *TrieNode) Keys() []string {
	keys := make([]string, 0, len(n.Children))
	for k := range n.Children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// only 返回唯一的子节点; 节点有结尾标记或子节点数不为1时返回nil
func (n *TrieNode) only() *TrieNode {
	if n.IsEnd || len(n.Children) != 1 {
		return nil
	}
	for _, child := range n.Children {
		return child
	}
	return nil
}
