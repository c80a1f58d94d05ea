package labreport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// readContext 从内存中的 PDF 字节流构建 pdfcpu 上下文
func readContext(b []byte) (*model.Context, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadContext(bytes.NewReader(b), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}
	// 页树信息在校验阶段填充，PageDict 依赖它
	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to validate PDF context: %w", err)
	}
	return ctx, nil
}

// ExtractPageText 提取指定页面内容流中的文本
// 页码从 1 开始；用于核对渲染出的证书内容
func ExtractPageText(b []byte, pageNum int) (string, error) {
	ctx, err := readContext(b)
	if err != nil {
		return "", err
	}

	pageDict, _, _, err := ctx.PageDict(pageNum, false)
	if err != nil {
		return "", fmt.Errorf("failed to get page dict: %w", err)
	}

	contents, _ := pageDict.Find("Contents")
	if contents == nil {
		return "", nil
	}

	obj, err := ctx.Dereference(contents)
	if err != nil {
		return "", fmt.Errorf("failed to dereference contents: %w", err)
	}

	var out strings.Builder
	switch o := obj.(type) {
	case types.StreamDict:
		text, err := decodeStreamText(&o)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	case types.Array:
		// 多个内容流依次拼接
		for _, item := range o {
			deref, err := ctx.Dereference(item)
			if err != nil {
				return "", fmt.Errorf("failed to dereference content stream: %w", err)
			}
			sd, ok := deref.(types.StreamDict)
			if !ok {
				continue
			}
			text, err := decodeStreamText(&sd)
			if err != nil {
				return "", err
			}
			out.WriteString(text)
			out.WriteByte('\n')
		}
	default:
		return "", fmt.Errorf("unexpected contents object type %T", obj)
	}

	return out.String(), nil
}

// decodeStreamText 解码内容流并抽取文本
func decodeStreamText(sd *types.StreamDict) (string, error) {
	if err := sd.Decode(); err != nil {
		return "", fmt.Errorf("failed to decode content stream: %w", err)
	}
	return extractTextFromStream(string(sd.Content)), nil
}

// extractTextFromStream 从 PDF 内容流中提取 Tj 操作符显示的文本
// 每个文本串占一行，便于逐行断言
func extractTextFromStream(stream string) string {
	var result strings.Builder

	i := 0
	for i < len(stream) {
		if stream[i] != '(' {
			i++
			continue
		}

		// 找到匹配的右括号，处理转义
		start := i + 1
		i++
		depth := 1
		for i < len(stream) && depth > 0 {
			if stream[i] == '\\' && i+1 < len(stream) {
				i += 2
				continue
			}
			if stream[i] == '(' {
				depth++
			} else if stream[i] == ')' {
				depth--
			}
			i++
		}
		if depth != 0 {
			break
		}
		text := stream[start : i-1]

		// 只保留后随文本显示操作符的字符串
		j := i
		for j < len(stream) && (stream[j] == ' ' || stream[j] == '\t' || stream[j] == '\r' || stream[j] == '\n') {
			j++
		}
		if j+1 < len(stream) && stream[j] == 'T' && stream[j+1] == 'j' {
			result.WriteString(unescapeTextString(text))
			result.WriteByte('\n')
		}
	}

	return result.String()
}

// unescapeTextString 还原文本串中的转义序列
func unescapeTextString(s string) string {
	replacer := strings.NewReplacer(
		"\\\\", "\\",
		"\\(", "(",
		"\\)", ")",
		"\\r", "\r",
		"\\n", "\n",
	)
	return replacer.Replace(s)
}
