package participle

import (
	"regexp"
	"unicode/utf8"
)

// specialChar 标点、符号与空白
var specialChar = regexp.MustCompile(`^[\p{P}\p{S}\p{Z}\s]+$`)

// SplitString 按Unicode字符分割字符串
func SplitString(s string) []string {
	var result []string
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		result = append(result, s[:size])
		s = s[size:]
	}
	return result
}

// IsSpecialChar 判断字符串是否全部由特殊符号组成
func IsSpecialChar(s string) bool {
	if s == "" {
		return false
	}
	return specialChar.MatchString(s)
}
