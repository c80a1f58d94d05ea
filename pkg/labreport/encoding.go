package labreport

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// EncodingPolicy 决定如何处理无法在输出字符集中表示的字符
type EncodingPolicy int

const (
	// EncodingReplace 将不可表示的字符统一替换为 '?'（默认策略）
	EncodingReplace EncodingPolicy = iota
	// EncodingStrict 遇到不可表示的字符时中止渲染
	EncodingStrict
)

// encodeWinAnsi 将 UTF-8 字符串转换为 WinAnsi (cp1252) 字节序列
// 内置字体只支持 WinAnsi 字符集，策略统一应用于整个文档
func encodeWinAnsi(s string, policy EncodingPolicy) (string, error) {
	// 快速路径：纯 ASCII 无需转换
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s, nil
	}

	buf := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			if policy == EncodingStrict {
				return "", fmt.Errorf("rune %q cannot be represented in WinAnsi", r)
			}
			b = '?'
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}
