package labreport

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// 水平对齐方式
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Canvas 排版画布
// 持有光标位置、页面状态和当前字体/填充属性，所有绘制原语都通过它执行。
// 每次渲染创建独立实例，多个渲染可以在各自的 Canvas 上并发进行。
type Canvas struct {
	pdf     *fpdf.Fpdf
	cfg     *Config
	section string // 当前渲染区块，用于错误上下文
	err     *RenderError
}

// newCanvas 创建画布并隐式开始第一页
func newCanvas(cfg *Config) *Canvas {
	pdf := fpdf.New(cfg.Orientation, cfg.Unit, cfg.PageFormat, "")
	pdf.SetMargins(cfg.MarginLeft, cfg.MarginTop, cfg.MarginRight)
	pdf.SetAutoPageBreak(true, cfg.MarginBottom)
	// 资源字典按名字排序输出，时间戳元数据全部固定，
	// 相同记录两次渲染才能产生字节级相同的结果
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(cfg.CreationDate)
	pdf.SetModificationDate(cfg.CreationDate)

	c := &Canvas{pdf: pdf, cfg: cfg}

	// 脚注在每页完成时盖章，页码取该页自身的序号。
	// 自动分页产生的页面同样会经过这里。
	pdf.SetFooterFunc(func() {
		pdf.SetY(-cfg.FooterOffset)
		pdf.SetFont(cfg.FontFamily, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, AlignCenter, false, 0, "")
	})

	pdf.AddPage()
	return c
}

// setSection 记录当前渲染区块
func (c *Canvas) setSection(name string) {
	c.section = name
	GetLogger().Debug("rendering section %q on page %d", name, c.pdf.PageNo())
}

// encode 应用编码策略；严格策略下记录首个编码错误
func (c *Canvas) encode(s string) string {
	out, err := encodeWinAnsi(s, c.cfg.Encoding)
	if err != nil {
		if c.err == nil {
			c.err = newRenderError(StatusEncoding, c.section, err)
		}
		return ""
	}
	return out
}

// PlaceText 在当前光标处绘制一个固定尺寸的文本框
// 文本不换行，超出宽度的内容按固定网格策略溢出显示。
// newLine 为 true 时光标移动到下一行行首，否则水平前进 width。
func (c *Canvas) PlaceText(width, height float64, text string, border bool, align string, newLine bool, fill bool) {
	borderStr := ""
	if border {
		borderStr = "1"
	}
	ln := 0
	if newLine {
		ln = 1
	}
	c.pdf.CellFormat(width, height, c.encode(text), borderStr, ln, align, fill, 0, "")
}

// PlaceWrappedText 在给定宽度内自动换行绘制文本
// 每行高度为 height，光标停在最后一行的下一行行首。
func (c *Canvas) PlaceWrappedText(width, height float64, text string) {
	c.pdf.MultiCell(width, height, c.encode(text), "", AlignLeft, false)
}

// SplitLines 返回文本按当前字体在给定宽度内换行后的各行
func (c *Canvas) SplitLines(text string, width float64) []string {
	return c.pdf.SplitText(c.encode(text), width)
}

// DrawRule 在纵坐标 y 处绘制一条水平线
func (c *Canvas) DrawRule(x1, y, x2 float64) {
	c.pdf.Line(x1, y, x2, y)
}

// Advance 光标下移 dy，不绘制任何内容
func (c *Canvas) Advance(dy float64) {
	c.pdf.Ln(dy)
}

// SetFont 设置后续绘制使用的字体样式和字号
func (c *Canvas) SetFont(style string, size float64) {
	c.pdf.SetFont(c.cfg.FontFamily, style, size)
}

// SetFontStyle 仅切换字体样式（粗体/斜体/常规），保持当前字号
func (c *Canvas) SetFontStyle(style string) {
	c.pdf.SetFontStyle(style)
}

// SetFillColor 设置后续填充使用的颜色
func (c *Canvas) SetFillColor(r, g, b int) {
	c.pdf.SetFillColor(r, g, b)
}

// SetLineWidth 设置后续画线使用的线宽
func (c *Canvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

// NewPage 结束当前页并开始新的一页，光标回到上边距
func (c *Canvas) NewPage() {
	c.pdf.AddPage()
}

// EnsureSpace 保证当前页剩余可用高度不小于 h，不足时开新页
// 用于不允许跨页拆分的整体区块
func (c *Canvas) EnsureSpace(h float64) {
	_, pageH := c.pdf.GetPageSize()
	if c.pdf.GetY()+h > pageH-c.cfg.MarginBottom {
		c.pdf.AddPage()
	}
}

// PageNumber 返回当前页码（从 1 开始）
func (c *Canvas) PageNumber() int {
	return c.pdf.PageNo()
}

// X 返回光标横坐标
func (c *Canvas) X() float64 {
	return c.pdf.GetX()
}

// Y 返回光标纵坐标
func (c *Canvas) Y() float64 {
	return c.pdf.GetY()
}

// SetXY 移动光标到绝对坐标
func (c *Canvas) SetXY(x, y float64) {
	c.pdf.SetXY(x, y)
}

// UsableWidth 返回去除左右边距后的可用页宽
func (c *Canvas) UsableWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	return w - c.cfg.MarginLeft - c.cfg.MarginRight
}

// RightEdge 返回右边距所在的横坐标
func (c *Canvas) RightEdge() float64 {
	w, _ := c.pdf.GetPageSize()
	return w - c.cfg.MarginRight
}

// StringWidth 返回文本按当前字体渲染的宽度
func (c *Canvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.encode(s))
}

// Err 返回渲染过程中记录的第一个错误
func (c *Canvas) Err() error {
	if c.err != nil {
		return c.err
	}
	if err := c.pdf.Error(); err != nil {
		return newRenderError(StatusSerialization, c.section, err)
	}
	return nil
}
