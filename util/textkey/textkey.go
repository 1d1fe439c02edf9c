package textkey

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// PinyinKeys 生成中文文本的拼音检索键
// 非中文字符由 LazyConvert 原样丢弃，空输入返回 nil
func PinyinKeys(s string) []string {
	if s == "" {
		return nil
	}
	return pinyin.LazyConvert(s, nil)
}

// FoldKey 归一化检索键：全角转半角、大小写折叠、压缩空白
func FoldKey(s string) string {
	if s == "" {
		return ""
	}
	folded := cases.Fold().String(width.Narrow.String(s))
	return strings.Join(strings.Fields(folded), " ")
}
