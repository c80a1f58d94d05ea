package labreport

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewWorkOrderID 生成工单编号，格式 WO-YYYYMMDD-XXXXXXXX
// 显式协作函数，由采集端在构造 ReportRecord 之前调用；
// 不持有任何会话级或进程级状态
func NewWorkOrderID(t time.Time) string {
	return newID("WO", t)
}

// NewLabSampleID 生成实验室样品编号，格式 LS-YYYYMMDD-XXXXXXXX
func NewLabSampleID(t time.Time) string {
	return newID("LS", t)
}

func newID(prefix string, t time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, t.Format("20060102"), suffix)
}
