package abbrev

import "strings"

// Shortest 返回最短的缩写, 长度相同时取产出顺序中的第一个
func Shortest(abbrs [][]string) []string {
	var best []string
	for i, a := range abbrs {
		if i == 0 || len(a) < len(best) {
			best = a
		}
	}
	return best
}

// CommonDir 推断一组路径的公共目录
// 取最短缩写并去掉最后一个组成部分; 路径少于两个时返回其父目录
func CommonDir(paths []string, sep string) string {
	seqs := make([][]string, 0, len(paths))
	for _, p := range paths {
		seqs = append(seqs, strings.Split(p, sep))
	}

	shortest := Shortest(Abbreviate(seqs))
	if shortest == nil {
		if len(seqs) == 0 {
			return ""
		}
		// 单个(或全部相同的)路径没有可区分的前缀
		shortest = seqs[0]
	}
	return strings.Join(shortest[:len(shortest)-1], sep)
}
