// Package repository 提供数据访问层的具体实现
// 本文件实现 ReportRepository 接口
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// reportRepository ReportRepository 接口的实现
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建 ReportRepository 实例
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create 创建举报
func (r *reportRepository) Create(report *model.Report) error {
	if err := r.db.Create(report).Error; err != nil {
		return wrapDBError(err, "创建举报")
	}
	return nil
}

// FindByUuid 根据 UUID 查找举报
func (r *reportRepository) FindByUuid(uuid string) (*model.Report, error) {
	var report model.Report
	if err := r.db.Where("uuid = ?", uuid).First(&report).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询举报 uuid=%s", uuid)
	}
	return &report, nil
}

// FindPending 分页查询待处理举报，按时间正序（先到先处理）
func (r *reportRepository) FindPending(page, pageSize int) ([]model.Report, int64, error) {
	var reports []model.Report
	var total int64
	if err := r.db.Model(&model.Report{}).
		Where("status = ?", model.ReportStatusPending).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "统计待处理举报")
	}
	if err := r.db.Where("status = ?", model.ReportStatusPending).
		Order("created_at ASC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&reports).Error; err != nil {
		return nil, 0, wrapDBError(err, "查询待处理举报")
	}
	return reports, total, nil
}

// UpdateStatus 更新举报处理结果
func (r *reportRepository) UpdateStatus(uuid string, status int8, handlerUuid, handleNote string) error {
	if err := r.db.Model(&model.Report{}).Where("uuid = ?", uuid).
		Updates(map[string]interface{}{
			"status":       status,
			"handler_uuid": handlerUuid,
			"handle_note":  handleNote,
		}).Error; err != nil {
		return wrapDBErrorf(err, "更新举报状态 uuid=%s", uuid)
	}
	return nil
}
