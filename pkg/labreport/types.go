package labreport

import (
	"fmt"
	"time"
)

// go-labreport Version
const (
	VersionMajor = 0
	VersionMinor = 3
	VersionMicro = 0
)

// dateLayout 报告中所有日期的固定输出格式（与区域设置无关）
const dateLayout = "2006-01-02"

// LabInfo 实验室信息块
type LabInfo struct {
	Name                    string `yaml:"name"`
	Address                 string `yaml:"address"`
	Email                   string `yaml:"email"`
	AccreditationNumber     string `yaml:"accreditation_number"`
	AccreditationDisclaimer string `yaml:"accreditation_disclaimer"`
}

// AnalyteRow 表示报告中的一行分析物检测结果
// 所有字段均为调用方提供的不透明文本，渲染时不做数值解析
type AnalyteRow struct {
	AnalyteName    string `yaml:"analyte"`
	MethodName     string `yaml:"method"`
	DilutionFactor string `yaml:"dilution_factor"`
	DetectionLimit string `yaml:"detection_limit"`
	ResultValue    string `yaml:"result"`
	Unit           string `yaml:"unit"`
}

// ReportRecord 表示一次证书渲染的完整输入数据
// 渲染期间视为不可变；每次渲染消费一个记录，引擎不保留任何跨渲染状态
type ReportRecord struct {
	PageLabel   string `yaml:"page_label"`
	WorkOrderID string `yaml:"work_order_id"`
	LabSampleID string `yaml:"lab_sample_id"`

	Lab LabInfo `yaml:"lab"`

	ClientName      string `yaml:"client_name"`
	ProjectName     string `yaml:"project_name"`
	SampleCondition string `yaml:"sample_condition"`

	// SampleTemperature 保留为文本，核心不做数值校验
	SampleTemperature string `yaml:"sample_temperature"`

	SubMatrix string `yaml:"sub_matrix"`
	Matrix    string `yaml:"matrix"`

	CollectionDate time.Time `yaml:"collection_date"`
	ReceiptDate    time.Time `yaml:"receipt_date"`
	AnalysisDate   time.Time `yaml:"analysis_date"`

	// Analytes 插入顺序即渲染顺序；允许为空（渲染为空表体）
	Analytes []AnalyteRow `yaml:"analytes"`

	GeneralComments string `yaml:"general_comments"`
}

// Status 表示渲染错误状态码
type Status int

const (
	StatusSuccess Status = iota
	StatusEncoding
	StatusSerialization
	StatusVerification
)

// String 返回状态码的文本描述
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusEncoding:
		return "encoding error"
	case StatusSerialization:
		return "serialization error"
	case StatusVerification:
		return "verification error"
	default:
		return fmt.Sprintf("unknown status (%d)", int(s))
	}
}

// RenderError 表示渲染失败
// Section 记录失败时正在渲染的文档区块，便于定位问题
type RenderError struct {
	Status  Status
	Section string
	Err     error
}

func (e *RenderError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("labreport: %s in section %q: %v", e.Status, e.Section, e.Err)
	}
	return fmt.Sprintf("labreport: %s: %v", e.Status, e.Err)
}

// Unwrap 支持 errors.Is / errors.As 链式判断
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is 按状态码比较错误，配合 errors.Is 使用
func (e *RenderError) Is(target error) bool {
	if targetErr, ok := target.(*RenderError); ok {
		return e.Status == targetErr.Status
	}
	return false
}

func newRenderError(status Status, section string, err error) *RenderError {
	return &RenderError{Status: status, Section: section, Err: err}
}
