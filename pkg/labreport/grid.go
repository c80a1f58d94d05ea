package labreport

// Column 定义表格行中的一个单元格
// Width 为 0 是哨兵值，表示该列占满到右边距的全部剩余宽度（用于行尾列）
type Column struct {
	Width float64
	Text  string
	Align string
}

// 表头填充色（浅灰）
const (
	headerFillGray = 225
)

// Grid 表格布局辅助器
// 将一行固定宽度、共享行高的单元格排布到画布上，逐行推进光标
type Grid struct {
	canvas *Canvas
}

// newGrid 创建表格布局辅助器
func newGrid(c *Canvas) *Grid {
	return &Grid{canvas: c}
}

// RenderRow 渲染一行单元格
// isHeader 为 true 时应用粗体和浅色填充，行结束后恢复常规样式。
// 空列表是 no-op，不移动光标。
func (g *Grid) RenderRow(cols []Column, height float64, isHeader bool) {
	if len(cols) == 0 {
		return
	}

	c := g.canvas
	if isHeader {
		c.SetFontStyle("B")
		c.SetFillColor(headerFillGray, headerFillGray, headerFillGray)
	} else {
		c.SetFontStyle("")
	}

	for i, col := range cols {
		align := col.Align
		if align == "" {
			align = AlignLeft
		}
		last := i == len(cols)-1
		c.PlaceText(col.Width, height, col.Text, true, align, last, isHeader)
	}

	if isHeader {
		c.SetFontStyle("")
	}
}
