package labreport

import "time"

// 默认页面参数（A4 纵向，单位毫米）
const (
	defaultMarginLeft   = 10.0
	defaultMarginTop    = 12.0
	defaultMarginRight  = 10.0
	defaultMarginBottom = 20.0
	defaultFooterOffset = 15.0
)

// defaultCreationDate 固定的文档创建时间
// 输出格式自带的时间戳元数据是唯一的非确定性来源，固定后同一记录
// 两次渲染产生字节级相同的输出
var defaultCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config 渲染配置
type Config struct {
	Orientation string // "P" 或 "L"
	Unit        string // 坐标单位，默认 "mm"
	PageFormat  string // 页面规格，默认 "A4"
	FontFamily  string // 内置字体族，默认 "Arial"

	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64 // 自动分页触发边距
	FooterOffset float64 // 页码脚注距页面底部的距离

	Encoding     EncodingPolicy
	CreationDate time.Time

	// Verify 为 true 时在序列化后用 pdfcpu 校验输出结构
	Verify bool
}

// Option 渲染配置选项
type Option func(*Config)

// WithEncodingPolicy 设置字符编码策略
func WithEncodingPolicy(policy EncodingPolicy) Option {
	return func(cfg *Config) {
		cfg.Encoding = policy
	}
}

// WithCreationDate 设置文档创建时间元数据
func WithCreationDate(t time.Time) Option {
	return func(cfg *Config) {
		cfg.CreationDate = t
	}
}

// WithMargins 设置页面边距
func WithMargins(left, top, right, bottom float64) Option {
	return func(cfg *Config) {
		cfg.MarginLeft = left
		cfg.MarginTop = top
		cfg.MarginRight = right
		cfg.MarginBottom = bottom
	}
}

// WithVerification 启用或禁用序列化后的 pdfcpu 结构校验
func WithVerification(verify bool) Option {
	return func(cfg *Config) {
		cfg.Verify = verify
	}
}

// defaultConfig 返回默认渲染配置
func defaultConfig() *Config {
	return &Config{
		Orientation:  "P",
		Unit:         "mm",
		PageFormat:   "A4",
		FontFamily:   "Arial",
		MarginLeft:   defaultMarginLeft,
		MarginTop:    defaultMarginTop,
		MarginRight:  defaultMarginRight,
		MarginBottom: defaultMarginBottom,
		FooterOffset: defaultFooterOffset,
		Encoding:     EncodingReplace,
		CreationDate: defaultCreationDate,
	}
}
