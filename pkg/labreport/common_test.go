package labreport

import (
	"fmt"
	"testing"
	"time"
)

// TestHelper 提供通用的测试辅助功能
type TestHelper struct {
	t *testing.T
}

// NewTestHelper 创建测试辅助工具
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{t: t}
}

// AssertNoError 断言没有错误
func (h *TestHelper) AssertNoError(err error, msg string) {
	h.t.Helper()
	if err != nil {
		h.t.Fatalf("%s: %v", msg, err)
	}
}

// AssertError 断言有错误
func (h *TestHelper) AssertError(err error, msg string) {
	h.t.Helper()
	if err == nil {
		h.t.Errorf("%s: expected error but got none", msg)
	}
}

// AssertEqual 断言相等
func (h *TestHelper) AssertEqual(got, want any, msg string) {
	h.t.Helper()
	if got != want {
		h.t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

// AssertTrue 断言为真
func (h *TestHelper) AssertTrue(condition bool, msg string) {
	h.t.Helper()
	if !condition {
		h.t.Errorf("%s: expected true but got false", msg)
	}
}

// AssertPageCount 断言 PDF 字节流的页数
func (h *TestHelper) AssertPageCount(pdf []byte, want int) {
	h.t.Helper()
	got, err := PageCount(pdf)
	if err != nil {
		h.t.Fatalf("Failed to get page count: %v", err)
	}
	if got != want {
		h.t.Errorf("Page count: got %d, want %d", got, want)
	}
}

// testDate 测试用固定日期
func testDate(day int) time.Time {
	return time.Date(2024, time.May, day, 0, 0, 0, 0, time.UTC)
}

// minimalRecord 构造最小有效报告记录
func minimalRecord() *ReportRecord {
	return &ReportRecord{
		PageLabel:   "1 of 1",
		WorkOrderID: "WO-20240510-TEST0001",
		LabSampleID: "LS-20240510-TEST0001",
		Lab: LabInfo{
			Name:                    "Acme Environmental Laboratory",
			Address:                 "12 Industrial Road, Springfield",
			Email:                   "lab@acme.example",
			AccreditationNumber:     "ACC-0042",
			AccreditationDisclaimer: "Accredited for the tests marked in the scope of accreditation.",
		},
		ClientName:        "Client Co",
		ProjectName:       "Site Survey",
		SampleCondition:   "Intact",
		SampleTemperature: "4.2 C",
		SubMatrix:         "Drinking Water",
		Matrix:            "Water",
		CollectionDate:    testDate(8),
		ReceiptDate:       testDate(9),
		AnalysisDate:      testDate(10),
		GeneralComments:   "No anomalies observed.",
	}
}

// recordWithAnalytes 构造带 n 条分析物结果的报告记录
func recordWithAnalytes(n int) *ReportRecord {
	rec := minimalRecord()
	for i := 0; i < n; i++ {
		rec.Analytes = append(rec.Analytes, AnalyteRow{
			AnalyteName:    fmt.Sprintf("Analyte %02d", i+1),
			MethodName:     fmt.Sprintf("EPA %d.1", 200+i),
			DilutionFactor: "1",
			DetectionLimit: "0.001",
			ResultValue:    fmt.Sprintf("%0.3f", float64(i)*0.01),
			Unit:           "mg/L",
		})
	}
	return rec
}
