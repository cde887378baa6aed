package participle

// DictEntry 用户词条, 在词语模式下加入分词器
type DictEntry struct {
	Content   string  `json:"content" yaml:"content"`     // 词条内容
	Frequency float64 `json:"frequency" yaml:"frequency"` // 词频
	Pos       string  `json:"pos" yaml:"pos"`             // 词性
}
