package labreport

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// serialize 将完成的画布序列化为 PDF 字节流
// 序列化失败时不返回部分输出
func serialize(c *Canvas) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, newRenderError(StatusSerialization, c.section, err)
	}
	out := buf.Bytes()

	if c.cfg.Verify {
		if err := verifyOutput(out); err != nil {
			return nil, newRenderError(StatusVerification, "", err)
		}
	}

	GetLogger().Debug("serialized %d page(s), %d bytes", c.pdf.PageNo(), len(out))
	return out, nil
}

// verifyOutput 用 pdfcpu 校验生成的 PDF 结构是否合法
func verifyOutput(b []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.Validate(bytes.NewReader(b), conf); err != nil {
		return fmt.Errorf("generated PDF failed validation: %w", err)
	}
	return nil
}

// PageCount 返回 PDF 字节流的页数
// 渲染之外的辅助入口，测试和采集端都会用它核对分页结果
func PageCount(b []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	n, err := api.PageCount(bytes.NewReader(b), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return n, nil
}
