package model

import (
	"gorm.io/gorm"
)

// 举报状态
const (
	ReportStatusPending  int8 = 0 // 待处理
	ReportStatusAccepted int8 = 1 // 已受理
	ReportStatusRejected int8 = 2 // 已驳回
)

// Report 举报记录
type Report struct {
	gorm.Model
	Uuid         string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:举报唯一id"`
	ReporterUuid string `gorm:"column:reporter_uuid;index;type:char(20);not null;comment:举报人uuid"`
	TargetType   string `gorm:"column:target_type;type:varchar(10);not null;comment:目标类型，post/comment"`
	TargetUuid   string `gorm:"column:target_uuid;index;type:char(20);not null;comment:目标uuid"`
	Reason       string `gorm:"column:reason;type:varchar(255);not null;comment:举报原因"`
	Status       int8   `gorm:"column:status;index;default:0;comment:状态，0.待处理，1.已受理，2.已驳回"`
	HandlerUuid  string `gorm:"column:handler_uuid;type:char(20);comment:处理人uuid"`
	HandleNote   string `gorm:"column:handle_note;type:varchar(255);comment:处理备注"`
}

func (Report) TableName() string {
	return "report"
}
