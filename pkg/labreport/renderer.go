package labreport

import "time"

// 版面参数（毫米）
const (
	lineHeight    = 5.0
	titleHeight   = 8.0
	gridRowHeight = 6.0
	smallGap      = 2.0
	sectionGap    = 5.0

	titleFontSize   = 13.0
	sectionFontSize = 10.0
	bodyFontSize    = 9.0
)

// 文档区块名，随错误一起上报
const (
	sectionHeader     = "header"
	sectionTitle      = "title"
	sectionSampleInfo = "sample info"
	sectionAnalytes   = "analyte results"
	sectionLaboratory = "laboratory"
	sectionComments   = "general comments"
	sectionCompliance = "compliance statement"
	sectionSignature  = "signature"
)

// complianceStatement 固定的合规声明样板
const complianceStatement = "This certificate supersedes any previous certificate issued under the same " +
	"work order reference. Results relate only to the sample(s) as received by the laboratory. " +
	"This document shall not be reproduced, except in full, without the written approval of the laboratory."

// Renderer 报告渲染器
// 按固定顺序一次性产出整份证书文档；自身不持有跨渲染的可变状态，
// 同一个 Renderer 可以被多个 goroutine 并发使用
type Renderer struct {
	cfg *Config
}

// NewRenderer 创建报告渲染器
func NewRenderer(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Renderer{cfg: cfg}
}

// Render 将一条报告记录渲染为 PDF 字节流
// 失败时不返回部分输出；相同记录两次渲染产生字节级相同的结果
func Render(rec *ReportRecord, opts ...Option) ([]byte, error) {
	return NewRenderer(opts...).Render(rec)
}

// Render 渲染单条报告记录
func (r *Renderer) Render(rec *ReportRecord) ([]byte, error) {
	c := newCanvas(r.cfg)
	grid := newGrid(c)

	steps := []struct {
		section string
		fn      func()
	}{
		{sectionHeader, func() { r.renderHeader(c, rec) }},
		{sectionTitle, func() { r.renderTitle(c, rec) }},
		{sectionSampleInfo, func() { r.renderSampleInfo(c, grid, rec) }},
		{sectionAnalytes, func() { r.renderAnalytes(c, grid, rec) }},
		{sectionLaboratory, func() { r.renderLaboratory(c, rec) }},
		{sectionComments, func() { r.renderComments(c, rec) }},
		{sectionCompliance, func() { r.renderCompliance(c) }},
		{sectionSignature, func() { r.renderSignatures(c) }},
	}

	for _, step := range steps {
		c.setSection(step.section)
		step.fn()
		if err := c.Err(); err != nil {
			GetLogger().Error("render aborted: %v", err)
			return nil, err
		}
	}

	return serialize(c)
}

// renderHeader 页标识/工单号/客户名一行，项目名右对齐第二行，随后是分隔线
func (r *Renderer) renderHeader(c *Canvas, rec *ReportRecord) {
	third := c.UsableWidth() / 3

	c.SetFont("", bodyFontSize)
	c.PlaceText(third, lineHeight, "Page: "+rec.PageLabel, false, AlignLeft, false, false)
	c.PlaceText(third, lineHeight, "Work Order: "+rec.WorkOrderID, false, AlignCenter, false, false)
	c.PlaceText(0, lineHeight, "Client: "+rec.ClientName, false, AlignRight, true, false)
	c.PlaceText(0, lineHeight, "Project: "+rec.ProjectName, false, AlignRight, true, false)

	c.SetLineWidth(0.4)
	c.DrawRule(r.cfg.MarginLeft, c.Y()+1, c.RightEdge())
	c.Advance(smallGap + 2)
}

// renderTitle 证书标题与基质信息
func (r *Renderer) renderTitle(c *Canvas, rec *ReportRecord) {
	c.SetFont("B", titleFontSize)
	c.PlaceText(0, titleHeight, "CERTIFICATE OF ANALYSIS", false, AlignCenter, true, false)

	c.SetFont("", bodyFontSize)
	c.PlaceText(0, lineHeight, "Sub-Matrix: "+rec.SubMatrix, false, AlignLeft, true, false)
	c.PlaceText(0, lineHeight, "Matrix: "+rec.Matrix, false, AlignLeft, true, false)
	c.Advance(smallGap)
}

// renderSampleInfo 样品信息表与采样日期对
func (r *Renderer) renderSampleInfo(c *Canvas, grid *Grid, rec *ReportRecord) {
	c.SetFont("", bodyFontSize)
	grid.RenderRow([]Column{
		{Width: 40, Text: "Lab Sample ID", Align: AlignCenter},
		{Width: 40, Text: "Sample Condition", Align: AlignCenter},
		{Width: 35, Text: "Receipt Date", Align: AlignCenter},
		{Width: 35, Text: "Sample Temp", Align: AlignCenter},
		{Width: 0, Text: "Analysis Date", Align: AlignCenter},
	}, gridRowHeight, true)
	grid.RenderRow([]Column{
		{Width: 40, Text: rec.LabSampleID, Align: AlignCenter},
		{Width: 40, Text: rec.SampleCondition, Align: AlignCenter},
		{Width: 35, Text: formatDate(rec.ReceiptDate), Align: AlignCenter},
		{Width: 35, Text: rec.SampleTemperature, Align: AlignCenter},
		{Width: 0, Text: formatDate(rec.AnalysisDate), Align: AlignCenter},
	}, gridRowHeight, false)

	c.Advance(smallGap)
	grid.RenderRow([]Column{
		{Width: 40, Text: "Collection Date", Align: AlignCenter},
	}, gridRowHeight, true)
	grid.RenderRow([]Column{
		{Width: 40, Text: formatDate(rec.CollectionDate), Align: AlignCenter},
	}, gridRowHeight, false)
	c.Advance(sectionGap)
}

// renderAnalytes 分析物结果表：一行表头加每条记录一行数据，顺序与输入一致
// 零条记录时只渲染表头
func (r *Renderer) renderAnalytes(c *Canvas, grid *Grid, rec *ReportRecord) {
	c.SetFont("", bodyFontSize)
	grid.RenderRow([]Column{
		{Width: 50, Text: "Analyte", Align: AlignCenter},
		{Width: 45, Text: "Method", Align: AlignCenter},
		{Width: 15, Text: "DF", Align: AlignCenter},
		{Width: 20, Text: "MDL", Align: AlignCenter},
		{Width: 30, Text: "Result", Align: AlignCenter},
		{Width: 0, Text: "Unit", Align: AlignCenter},
	}, gridRowHeight, true)

	for _, a := range rec.Analytes {
		grid.RenderRow([]Column{
			{Width: 50, Text: a.AnalyteName, Align: AlignLeft},
			{Width: 45, Text: a.MethodName, Align: AlignLeft},
			{Width: 15, Text: a.DilutionFactor, Align: AlignCenter},
			{Width: 20, Text: a.DetectionLimit, Align: AlignCenter},
			{Width: 30, Text: a.ResultValue, Align: AlignRight},
			{Width: 0, Text: a.Unit, Align: AlignCenter},
		}, gridRowHeight, false)
	}
	c.Advance(sectionGap)
}

// renderLaboratory 实验室与认证信息块
func (r *Renderer) renderLaboratory(c *Canvas, rec *ReportRecord) {
	c.SetFont("B", sectionFontSize)
	c.PlaceText(0, lineHeight+1, "Laboratory & Accreditation", false, AlignLeft, true, false)

	c.SetFont("", bodyFontSize)
	c.PlaceText(0, lineHeight, rec.Lab.Name, false, AlignLeft, true, false)
	c.PlaceText(0, lineHeight, rec.Lab.Address, false, AlignLeft, true, false)
	c.PlaceText(0, lineHeight, rec.Lab.Email, false, AlignLeft, true, false)
	c.PlaceText(0, lineHeight, "Accreditation No.: "+rec.Lab.AccreditationNumber, false, AlignLeft, true, false)
	c.PlaceWrappedText(c.UsableWidth(), lineHeight, rec.Lab.AccreditationDisclaimer)
	c.Advance(smallGap)
}

// renderComments 一般性备注块，自动换行
func (r *Renderer) renderComments(c *Canvas, rec *ReportRecord) {
	c.SetFont("B", sectionFontSize)
	c.PlaceText(0, lineHeight+1, "General Comments", false, AlignLeft, true, false)

	c.SetFont("", bodyFontSize)
	c.PlaceWrappedText(c.UsableWidth(), lineHeight, rec.GeneralComments)
	c.Advance(smallGap)
}

// renderCompliance 固定合规声明
func (r *Renderer) renderCompliance(c *Canvas) {
	c.SetFont("", bodyFontSize)
	c.PlaceWrappedText(c.UsableWidth(), lineHeight, complianceStatement)
}

// renderSignatures 签名区块：两条签名线并排，下方是职务标签
// 区块不跨页拆分
func (r *Renderer) renderSignatures(c *Canvas) {
	const sigSpace = 12.0 // 签名留白高度
	const blockHeight = sigSpace + lineHeight + sectionGap

	c.Advance(sectionGap)
	c.EnsureSpace(blockHeight)

	half := c.UsableWidth() / 2
	gap := 14.0
	lineW := half - gap
	left := r.cfg.MarginLeft

	y := c.Y() + sigSpace
	c.SetLineWidth(0.2)
	c.DrawRule(left, y, left+lineW)
	c.DrawRule(left+half, y, left+half+lineW)

	c.SetXY(left, y+1)
	c.SetFont("", bodyFontSize)
	c.PlaceText(half, lineHeight, "Authorized Signatory", false, AlignLeft, false, false)
	c.PlaceText(0, lineHeight, "Quality Manager", false, AlignLeft, true, false)
}

// formatDate 以固定格式 YYYY-MM-DD 输出日期，与区域设置无关
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
