package participle

import (
	"fmt"

	"github.com/go-ego/gse"
)

// WordTokenizer 基于gse的词语分词器
type WordTokenizer struct {
	segmenter gse.Segmenter // 分词器
}

// NewWordTokenizer 创建词语分词器
// 未指定词典文件时加载gse默认词典
func NewWordTokenizer(dictFiles ...string) (*WordTokenizer, error) {
	seg, err := gse.New(dictFiles...)
	if err != nil {
		return nil, fmt.Errorf("init gse segmenter fail: %w", err)
	}
	return &WordTokenizer{segmenter: seg}, nil
}

// AddWord 添加用户词条
func (w *WordTokenizer) AddWord(entry DictEntry) {
	w.segmenter.AddToken(entry.Content, entry.Frequency, entry.Pos)
}

// Tokenize 对文本进行分词, 丢弃标点与空白
func (w *WordTokenizer) Tokenize(s string) []string {
	words := w.segmenter.Cut(s, true)
	result := make([]string, 0, len(words))
	for _, word := range words {
		if IsSpecialChar(word) {
			continue
		}
		result = append(result, word)
	}
	return result
}
