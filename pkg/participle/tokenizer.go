package participle

import (
	"fmt"
	"strings"
)

// 分词模式
const (
	ModePath = "path" // 按分隔符切分路径
	ModeRune = "rune" // 按Unicode字符切分
	ModeWord = "word" // 使用gse切分词语
)

// Tokenizer 将字符串切分为token序列
type Tokenizer interface {
	Tokenize(s string) []string
}

// PathTokenizer 按分隔符切分
// 绝对路径保留开头的空组成部分, 以便重新拼接时还原
type PathTokenizer struct {
	Sep string
}

// Tokenize 切分路径
func (p PathTokenizer) Tokenize(s string) []string {
	return strings.Split(s, p.Sep)
}

// RuneTokenizer 按Unicode字符切分
type RuneTokenizer struct{}

// Tokenize 切分字符
func (RuneTokenizer) Tokenize(s string) []string {
	return SplitString(s)
}

// New 按模式名称创建分词器
// sep 仅用于路径模式, dictFiles 与 words 仅用于词语模式
func New(mode, sep string, dictFiles []string, words []DictEntry) (Tokenizer, error) {
	switch mode {
	case ModePath, "":
		if sep == "" {
			return nil, fmt.Errorf("path mode needs a separator")
		}
		return PathTokenizer{Sep: sep}, nil
	case ModeRune:
		return RuneTokenizer{}, nil
	case ModeWord:
		wt, err := NewWordTokenizer(dictFiles...)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			wt.AddWord(w)
		}
		return wt, nil
	default:
		return nil, fmt.Errorf("unknown tokenize mode %q", mode)
	}
}

// Sequences 将每个输入切分为token序列, 跳过空输入
func Sequences(t Tokenizer, inputs []string) [][]string {
	seqs := make([][]string, 0, len(inputs))
	for _, in := range inputs {
		if in == "" {
			continue
		}
		seqs = append(seqs, t.Tokenize(in))
	}
	return seqs
}

// Join 以分词模式对应的方式拼接token
// 路径模式下只剩开头空组成部分的前缀表示根, 输出分隔符
func Join(mode, sep string, tokens []string) string {
	if mode == ModePath || mode == "" {
		joined := strings.Join(tokens, sep)
		if joined == "" && len(tokens) > 0 && tokens[0] == "" {
			return sep
		}
		return joined
	}
	return strings.Join(tokens, "")
}
