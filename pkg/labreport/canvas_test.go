package labreport

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const coordEps = 0.01

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < coordEps
}

// TestCanvasInitialState 测试画布初始状态：首页已隐式创建，光标在上边距
func TestCanvasInitialState(t *testing.T) {
	helper := NewTestHelper(t)
	cfg := defaultConfig()
	c := newCanvas(cfg)

	helper.AssertEqual(c.PageNumber(), 1, "initial page number")
	helper.AssertTrue(approxEqual(c.Y(), cfg.MarginTop), "initial cursor y at top margin")
	helper.AssertTrue(approxEqual(c.X(), cfg.MarginLeft), "initial cursor x at left margin")
}

// TestCanvasPlaceTextCursor 测试文本框绘制后的光标推进规则
func TestCanvasPlaceTextCursor(t *testing.T) {
	helper := NewTestHelper(t)
	cfg := defaultConfig()
	c := newCanvas(cfg)
	c.SetFont("", bodyFontSize)

	x0, y0 := c.X(), c.Y()

	// 不换行：水平前进 width，纵坐标不变
	c.PlaceText(40, 6, "cell", false, AlignLeft, false, false)
	helper.AssertTrue(approxEqual(c.X(), x0+40), "x advanced by cell width")
	helper.AssertTrue(approxEqual(c.Y(), y0), "y unchanged without newline")

	// 换行：光标移动到下一行行首
	c.PlaceText(40, 6, "cell", false, AlignLeft, true, false)
	helper.AssertTrue(approxEqual(c.X(), cfg.MarginLeft), "x back to left margin after newline")
	helper.AssertTrue(approxEqual(c.Y(), y0+6), "y advanced by cell height")
}

// TestCanvasAdvance 测试光标下移不绘制内容
func TestCanvasAdvance(t *testing.T) {
	helper := NewTestHelper(t)
	cfg := defaultConfig()
	c := newCanvas(cfg)
	c.SetFont("", bodyFontSize)

	y0 := c.Y()
	c.Advance(8)
	helper.AssertTrue(approxEqual(c.Y(), y0+8), "y advanced by dy")
	helper.AssertTrue(approxEqual(c.X(), cfg.MarginLeft), "x reset to left margin")
}

// TestCanvasNewPage 测试换页后页码递增、光标回到上边距
func TestCanvasNewPage(t *testing.T) {
	helper := NewTestHelper(t)
	cfg := defaultConfig()
	c := newCanvas(cfg)
	c.SetFont("", bodyFontSize)
	c.Advance(100)

	c.NewPage()
	helper.AssertEqual(c.PageNumber(), 2, "page number after NewPage")
	helper.AssertTrue(approxEqual(c.Y(), cfg.MarginTop), "cursor y reset to top margin")
}

// TestCanvasEnsureSpace 测试整体区块的预留空间检查
func TestCanvasEnsureSpace(t *testing.T) {
	helper := NewTestHelper(t)
	cfg := defaultConfig()
	c := newCanvas(cfg)
	c.SetFont("", bodyFontSize)

	// 剩余空间充足时不换页
	c.EnsureSpace(50)
	helper.AssertEqual(c.PageNumber(), 1, "no page break while space remains")

	// 光标贴近下边距时换页
	c.SetXY(cfg.MarginLeft, 280)
	c.EnsureSpace(50)
	helper.AssertEqual(c.PageNumber(), 2, "page break when block does not fit")
}

// TestCanvasWrapLines 测试换行结果：每行不超宽，且按词拼回原文
func TestCanvasWrapLines(t *testing.T) {
	cfg := defaultConfig()
	c := newCanvas(cfg)
	c.SetFont("", bodyFontSize)

	text := strings.TrimSpace(strings.Repeat("routine monitoring sample collected upstream ", 12))
	const width = 80.0

	lines := c.SplitLines(text, width)
	if len(lines) < 2 {
		t.Fatalf("expected wrap into multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := c.StringWidth(line); w > width+coordEps {
			t.Errorf("line %d exceeds column width: %.2f > %.2f", i, w, width)
		}
	}

	rejoined := strings.Fields(strings.Join(lines, " "))
	original := strings.Fields(text)
	if len(rejoined) != len(original) {
		t.Fatalf("word count changed by wrapping: got %d, want %d", len(rejoined), len(original))
	}
	for i := range original {
		if rejoined[i] != original[i] {
			t.Errorf("word %d changed by wrapping: got %q, want %q", i, rejoined[i], original[i])
		}
	}
}

// TestCanvasStrictEncodingRecordsError 测试严格策略下画布记录首个编码错误
func TestCanvasStrictEncodingRecordsError(t *testing.T) {
	helper := NewTestHelper(t)
	cfg := defaultConfig()
	cfg.Encoding = EncodingStrict
	c := newCanvas(cfg)
	c.SetFont("", bodyFontSize)

	c.setSection(sectionComments)
	c.PlaceText(40, 6, "≤ detection limit", false, AlignLeft, true, false)

	err := c.Err()
	helper.AssertError(err, "strict policy on unmappable rune")
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RenderError, got %T", err)
	}
	helper.AssertEqual(re.Status, StatusEncoding, "error status")
	helper.AssertEqual(re.Section, sectionComments, "error section context")
}
