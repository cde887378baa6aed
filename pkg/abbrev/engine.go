// Package abbrev 计算一组 token 序列中每个序列的唯一前缀(缩写)
//
// 先由全部序列构建前缀树, 再自底向上遍历前缀树:
// 对每个存在分叉的节点, 沿每个分支的单子节点链向下查找,
// 若链的末端只对应一个序列, 则该序列截断到分叉处的下一层即为其缩写.
package abbrev

// Abbreviation 缩写结果
type Abbreviation struct {
	Prefix []string // 区分该序列的最短前缀
	Seq    []string // 原始序列
}

// Abbreviate 计算每个序列的缩写, 按产出顺序返回
// 少于两个不同序列时返回空结果
func Abbreviate(seqs [][]string) [][]string {
	var result [][]string
	Walk(seqs, func(a Abbreviation) {
		result = append(result, a.Prefix)
	})
	return result
}

// Walk 计算每个序列的缩写, 每得到一个缩写同步调用一次fn
// 调用顺序与 Abbreviate 的返回顺序一致:
// 深度优先, 子节点按字典序先于父节点处理; 分叉节点内结尾标记先于子节点
func Walk(seqs [][]string, fn func(Abbreviation)) {
	if fn == nil {
		return
	}
	r := &resolver{emit: fn}
	r.resolve(NewTrie(seqs), 0)
}

// resolver 前缀树的后序遍历
type resolver struct {
	emit func(Abbreviation)
}

// resolve 处理节点, depth 为根到该节点的 token 数
func (r *resolver) resolve(node *TrieNode, depth int) {
	keys := node.Keys()
	for _, k := range keys {
		r.resolve(node.Children[k], depth+1)
	}

	if node.Width() < 2 {
		return
	}

	// 以此节点结尾的序列是其他序列的前缀, 只能整体输出
	if node.IsEnd {
		r.yield(node.Seq, depth)
	}

	for _, k := range keys {
		tip := node.Children[k]
		for next := tip.only(); next != nil; next = tip.only() {
			tip = next
		}
		// 链末端仍有分叉时已在其自身的 resolve 中处理
		if tip.IsEnd && len(tip.Children) == 0 {
			r.yield(tip.Seq, depth+1)
		}
	}
}

// yield 截取序列前n个token并输出
func (r *resolver) yield(seq []string, n int) {
	prefix := make([]string, n)
	copy(prefix, seq[:n])
	r.emit(Abbreviation{Prefix: prefix, Seq: seq})
}
