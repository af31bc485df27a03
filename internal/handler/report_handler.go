// 本文件处理举报相关的 API 请求
package handler

import (
	"strconv"

	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 举报请求处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建举报处理器实例
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// CreateReport 提交举报
// POST /report/createReport
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req request.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.reportSvc.CreateReport(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetPendingReports 分页查询待处理举报（平台管理接口）
// GET /admin/report/getPendingReports?page=1&page_size=20
func (h *ReportHandler) GetPendingReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	data, err := h.reportSvc.GetPendingReports(page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// HandleReport 处理举报（平台管理接口）
// POST /admin/report/handleReport
func (h *ReportHandler) HandleReport(c *gin.Context) {
	var req request.HandleReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.reportSvc.HandleReport(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
