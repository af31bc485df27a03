// Package report 实现举报业务逻辑
package report

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/random"
)

// Notifier 站内通知发送接口
type Notifier interface {
	Notify(receiverUuid, senderUuid, notifyType, content, targetUuid string)
}

// reportService 举报业务逻辑实现
type reportService struct {
	repos    *repository.Repositories
	notifier Notifier
}

// NewReportService 构造函数
func NewReportService(repos *repository.Repositories, notifier Notifier) *reportService {
	return &reportService{
		repos:    repos,
		notifier: notifier,
	}
}

// checkTargetExists 校验被举报对象存在
func (s *reportService) checkTargetExists(targetType, targetUuid string) error {
	var err error
	switch targetType {
	case model.TargetTypePost:
		_, err = s.repos.Post.FindByUuid(targetUuid)
	case model.TargetTypeComment:
		_, err = s.repos.Comment.FindByUuid(targetUuid)
	default:
		return errorx.ErrInvalidParam
	}
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "被举报的内容不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// CreateReport 提交举报
func (s *reportService) CreateReport(reporterUuid string, req request.CreateReportRequest) error {
	if err := s.checkTargetExists(req.TargetType, req.TargetUuid); err != nil {
		return err
	}

	report := model.Report{
		Uuid:         fmt.Sprintf("R%s", random.GetNowAndLenRandomString(11)),
		ReporterUuid: reporterUuid,
		TargetType:   req.TargetType,
		TargetUuid:   req.TargetUuid,
		Reason:       req.Reason,
		Status:       model.ReportStatusPending,
	}
	if err := s.repos.Report.Create(&report); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

func reportRespond(r *model.Report) respond.ReportRespond {
	return respond.ReportRespond{
		Uuid:         r.Uuid,
		ReporterUuid: r.ReporterUuid,
		TargetType:   r.TargetType,
		TargetUuid:   r.TargetUuid,
		Reason:       r.Reason,
		Status:       r.Status,
		HandlerUuid:  r.HandlerUuid,
		HandleNote:   r.HandleNote,
		CreatedAt:    r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GetPendingReports 分页查询待处理举报（平台管理用）
func (s *reportService) GetPendingReports(page, pageSize int) (*respond.GetReportListWrapper, error) {
	reports, total, err := s.repos.Report.FindPending(page, pageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.ReportRespond, 0, len(reports))
	for i := range reports {
		list = append(list, reportRespond(&reports[i]))
	}
	return &respond.GetReportListWrapper{List: list, Total: total}, nil
}

// HandleReport 处理举报：受理或驳回，并通知举报人结果
func (s *reportService) HandleReport(handlerUuid string, req request.HandleReportRequest) error {
	report, err := s.repos.Report.FindByUuid(req.ReportUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "举报不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if report.Status != model.ReportStatusPending {
		return errorx.New(errorx.CodeConflict, "该举报已处理")
	}

	if err := s.repos.Report.UpdateStatus(req.ReportUuid, req.Status, handlerUuid, req.HandleNote); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	result := "已受理"
	if req.Status == model.ReportStatusRejected {
		result = "未通过审核"
	}
	s.notifier.Notify(report.ReporterUuid, "", model.NotificationTypeSystem,
		"你的举报"+result, report.TargetUuid)
	return nil
}
