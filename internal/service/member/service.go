package member

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	myredis "github.com/WhiteCrowZero/MinTieba/internal/dao/redis"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/mq"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/constants"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
)

// Notifier 站内通知发送接口
// 由通知服务实现，发送为尽力而为，不阻塞主流程
type Notifier interface {
	Notify(receiverUuid, senderUuid, notifyType, content, targetUuid string)
}

// toggleLockTTL 异步切换互斥锁的有效期
// 覆盖消费端全部重试耗时，防止锁提前失效造成重复消费
const toggleLockTTL = 60 * time.Second

// forumMemberService 贴吧成员业务逻辑实现
type forumMemberService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	notifier Notifier
}

// NewMemberService 构造函数，注入所有依赖
func NewMemberService(repos *repository.Repositories, cacheService myredis.AsyncCacheService, notifier Notifier) *forumMemberService {
	return &forumMemberService{
		repos:    repos,
		cache:    cacheService,
		notifier: notifier,
	}
}

// memberStateOf 根据查询结果判定成员状态
func memberStateOf(m *model.ForumMember, err error) (MemberState, error) {
	if err != nil {
		if errorx.IsNotFound(err) {
			return StateNone, nil
		}
		return StateNone, err
	}
	if m.DeletedAt.Valid {
		return StateLeft, nil
	}
	return StateActive, nil
}

// ToggleMembership 加入/退出贴吧切换
// 整个读-判-写序列在贴吧行锁内执行，同一贴吧的并发切换串行化，
// 成员计数使用原子增减表达式避免丢失更新
func (s *forumMemberService) ToggleMembership(userUuid string, req request.ToggleMembershipRequest) (*respond.ToggleMembershipRespond, error) {
	rsp := &respond.ToggleMembershipRespond{ForumUuid: req.ForumUuid}

	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		forum, err := txRepos.Forum.FindByUuidForUpdate(req.ForumUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "贴吧不存在")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}

		// 含软删除行查询：区分"从未加入"和"退出后重新加入"
		existing, findErr := txRepos.ForumMember.FindByForumAndUserUnscoped(req.ForumUuid, userUuid)
		state, err := memberStateOf(existing, findErr)
		if err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}

		now := time.Now()
		action := DecideToggle(state)
		switch action {
		case ToggleJoined:
			newMember := model.ForumMember{
				ForumUuid: req.ForumUuid,
				UserUuid:  userUuid,
				RoleType:  model.MemberRoleMember,
				JoinedAt:  now,
			}
			if err := txRepos.ForumMember.Create(&newMember); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			if err := txRepos.Forum.IncrementMemberCount(req.ForumUuid); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.RoleType = model.MemberRoleMember
			rsp.MemberCnt = forum.MemberCnt + 1
		case ToggleRejoined:
			// 恢复原行：joined_at 刷新，role_type 保留退出前的值
			if err := txRepos.ForumMember.Restore(existing.ID, now); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			if err := txRepos.Forum.IncrementMemberCount(req.ForumUuid); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.RoleType = existing.RoleType
			rsp.MemberCnt = forum.MemberCnt + 1
		case ToggleLeft:
			if existing.RoleType == model.MemberRoleOwner {
				return errorx.New(errorx.CodeForbidden, "吧主不能退出自己的贴吧")
			}
			if err := txRepos.ForumMember.SoftDelete(existing.ID); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			if err := txRepos.Forum.DecrementMemberCount(req.ForumUuid); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.RoleType = ""
			rsp.MemberCnt = forum.MemberCnt - 1
		}
		rsp.Detail = action
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rsp, nil
}

// toggleLockKey 异步切换的互斥锁键，按 (forum, user) 维度去重
func toggleLockKey(forumUuid, userUuid string) string {
	return "member_toggle_lock_" + forumUuid + "_" + userUuid
}

// AsyncToggleMembership 异步切换成员关系
// 先抢 (forum, user) 互斥锁去重，再投递 Kafka 由消费端执行切换，
// 调用方立即得到"已受理"；计数最终一致，由对账任务兜底
func (s *forumMemberService) AsyncToggleMembership(userUuid, forumUuid string) error {
	ctx := context.Background()
	lockKey := toggleLockKey(forumUuid, userUuid)

	ok, err := s.cache.TryLock(ctx, lockKey, toggleLockTTL)
	if err != nil {
		zap.L().Error("获取成员切换互斥锁失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if !ok {
		return errorx.New(errorx.CodeConflict, "上一次操作尚未完成，请稍后再试")
	}

	event := mq.MemberToggleEvent{
		ForumUuid: forumUuid,
		UserUuid:  userUuid,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error(err.Error())
		_ = s.cache.Unlock(ctx, lockKey)
		return errorx.ErrServerBusy
	}

	// 以贴吧 uuid 为 key，同一贴吧的事件落入同一分区保持顺序
	if err := mq.KafkaService.WriteToggleEvent(ctx, []byte(forumUuid), payload); err != nil {
		zap.L().Error("投递成员切换事件失败", zap.Error(err))
		_ = s.cache.Unlock(ctx, lockKey)
		return errorx.ErrServerBusy
	}
	return nil
}

// toggleRetryBackoff 异步切换瞬时失败的重试间隔，包级变量便于测试缩短
var toggleRetryBackoff = constants.TOGGLE_RETRY_BACKOFF * time.Second

// isPermanentToggleError 判定切换失败是否为校验类错误
// 权限、参数、状态冲突类失败重试也不会成功，直接终止
func isPermanentToggleError(err error) bool {
	switch errorx.GetCode(err) {
	case errorx.CodeForbidden, errorx.CodeNotFound, errorx.CodeInvalidParam, errorx.CodeConflict:
		return true
	}
	return false
}

// ApplyToggle 消费端执行异步切换
// 作为 mq.ToggleHandler 注入消费者；瞬时失败在锁内重试，
// 互斥锁在最终成败确定后才释放，重试窗口内的重复提交仍被拒绝
func (s *forumMemberService) ApplyToggle(forumUuid, userUuid string) error {
	defer func() {
		if err := s.cache.Unlock(context.Background(), toggleLockKey(forumUuid, userUuid)); err != nil {
			zap.L().Error("释放成员切换互斥锁失败", zap.Error(err))
		}
	}()

	var lastErr error
	for attempt := 0; attempt <= constants.TOGGLE_MAX_RETRIES; attempt++ {
		if attempt > 0 {
			time.Sleep(toggleRetryBackoff)
		}
		if _, lastErr = s.ToggleMembership(userUuid, request.ToggleMembershipRequest{ForumUuid: forumUuid}); lastErr == nil {
			return nil
		}
		if isPermanentToggleError(lastErr) {
			return lastErr
		}
		zap.L().Warn("成员切换失败，准备重试",
			zap.String("forum_uuid", forumUuid),
			zap.String("user_uuid", userUuid),
			zap.Int("attempt", attempt),
			zap.Error(lastErr))
	}
	return lastErr
}

// checkOperator 校验操作人在该贴吧的管理资格
// 平台超级管理员直接放行；其余要求在吧、吧务及以上且自身未被封禁
func (s *forumMemberService) checkOperator(txRepos *repository.Repositories, operator authz.Principal, forumUuid string) error {
	if operator.IsSuperAdmin() {
		return nil
	}
	operatorMember, err := txRepos.ForumMember.FindByForumAndUser(forumUuid, operator.UserUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.ErrForbidden
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !operatorMember.IsAdminRole() {
		return errorx.ErrForbidden
	}
	// 与发帖限制同口径：限时封禁到期即不再生效
	if operatorMember.IsBanActive(time.Now()) {
		return errorx.New(errorx.CodeForbidden, "封禁期间不能执行管理操作")
	}
	return nil
}

// ChangeMemberRole 变更成员吧内角色
// 角色写入与审计日志在同一事务内提交；授予 owner 即转让贴吧，
// 仅吧主本人可以发起，原吧主降为吧务
func (s *forumMemberService) ChangeMemberRole(operator authz.Principal, req request.ChangeMemberRoleRequest) error {
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		// 加行锁：转让期间与成员切换串行化
		forum, err := txRepos.Forum.FindByUuidForUpdate(req.ForumUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "贴吧不存在")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := s.checkOperator(txRepos, operator, req.ForumUuid); err != nil {
			return err
		}

		target, err := txRepos.ForumMember.FindByForumAndUser(req.ForumUuid, req.TargetUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "目标用户不是贴吧成员")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if target.RoleType == req.RoleType {
			return errorx.New(errorx.CodeInvalidParam, "角色未发生变化")
		}
		if target.RoleType == model.MemberRoleOwner {
			return errorx.New(errorx.CodeForbidden, "不能变更吧主的角色")
		}
		// 封禁标记未清除前不能变更角色，保证被封禁者始终是普通成员
		if target.IsBanned == 1 {
			return errorx.New(errorx.CodeForbidden, "封禁中的成员不能变更角色，请先解封")
		}

		if req.RoleType == model.MemberRoleOwner {
			// 转让吧主：仅吧主本人可以发起
			if forum.OwnerUuid != operator.UserUuid {
				return errorx.New(errorx.CodeForbidden, "只有吧主可以转让吧主身份")
			}
			oldOwner, err := txRepos.ForumMember.FindByForumAndUser(req.ForumUuid, operator.UserUuid)
			if err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			if err := txRepos.ForumMember.UpdateRole(oldOwner.ID, model.MemberRoleAdmin); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			// 只改 owner_uuid 列，不整行回写，避免覆盖并发切换更新的计数
			if err := txRepos.Forum.UpdateOwner(req.ForumUuid, req.TargetUuid); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			demoteLog := model.ForumMemberAuditLog{
				ForumUuid:    req.ForumUuid,
				OperatorUuid: operator.UserUuid,
				TargetUuid:   operator.UserUuid,
				Action:       model.AuditActionRoleChange,
				OldValue:     model.MemberRoleOwner,
				NewValue:     model.MemberRoleAdmin,
				Reason:       "转让吧主",
			}
			if err := txRepos.AuditLog.Create(&demoteLog); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
		}

		if err := txRepos.ForumMember.UpdateRole(target.ID, req.RoleType); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		auditLog := model.ForumMemberAuditLog{
			ForumUuid:    req.ForumUuid,
			OperatorUuid: operator.UserUuid,
			TargetUuid:   req.TargetUuid,
			Action:       model.AuditActionRoleChange,
			OldValue:     target.RoleType,
			NewValue:     req.RoleType,
		}
		if err := txRepos.AuditLog.Create(&auditLog); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(req.TargetUuid, "", model.NotificationTypeSystem,
		"你在贴吧内的角色已变更为 "+req.RoleType, req.ForumUuid)
	return nil
}

// BanMember 封禁成员
// 只能封禁普通成员；封禁状态写入与审计日志同事务提交
func (s *forumMemberService) BanMember(operator authz.Principal, req request.BanMemberRequest) error {
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if _, err := txRepos.Forum.FindByUuid(req.ForumUuid); err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "贴吧不存在")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := s.checkOperator(txRepos, operator, req.ForumUuid); err != nil {
			return err
		}

		target, err := txRepos.ForumMember.FindByForumAndUser(req.ForumUuid, req.TargetUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "目标用户不是贴吧成员")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if target.RoleType != model.MemberRoleMember {
			return errorx.New(errorx.CodeForbidden, "只能封禁普通成员")
		}
		if target.IsBanned == 1 {
			return errorx.New(errorx.CodeConflict, "该成员已处于封禁状态")
		}

		// BanDays 为 0 表示永久封禁，不设截止时间
		var bannedUntil *time.Time
		if req.BanDays > 0 {
			until := time.Now().AddDate(0, 0, req.BanDays)
			bannedUntil = &until
		}
		if err := txRepos.ForumMember.UpdateBan(target.ID, 1, bannedUntil); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		auditLog := model.ForumMemberAuditLog{
			ForumUuid:    req.ForumUuid,
			OperatorUuid: operator.UserUuid,
			TargetUuid:   req.TargetUuid,
			Action:       model.AuditActionBan,
			OldValue:     "0",
			NewValue:     "1",
			Reason:       req.Reason,
		}
		if err := txRepos.AuditLog.Create(&auditLog); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(req.TargetUuid, "", model.NotificationTypeSystem,
		"你已被贴吧封禁："+req.Reason, req.ForumUuid)
	return nil
}

// UnbanMember 解封成员
func (s *forumMemberService) UnbanMember(operator authz.Principal, req request.UnbanMemberRequest) error {
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if _, err := txRepos.Forum.FindByUuid(req.ForumUuid); err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "贴吧不存在")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := s.checkOperator(txRepos, operator, req.ForumUuid); err != nil {
			return err
		}

		target, err := txRepos.ForumMember.FindByForumAndUser(req.ForumUuid, req.TargetUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "目标用户不是贴吧成员")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if target.IsBanned == 0 {
			return errorx.New(errorx.CodeInvalidParam, "该成员未被封禁")
		}

		if err := txRepos.ForumMember.UpdateBan(target.ID, 0, nil); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		auditLog := model.ForumMemberAuditLog{
			ForumUuid:    req.ForumUuid,
			OperatorUuid: operator.UserUuid,
			TargetUuid:   req.TargetUuid,
			Action:       model.AuditActionUnban,
			OldValue:     "1",
			NewValue:     "0",
			Reason:       req.Reason,
		}
		if err := txRepos.AuditLog.Create(&auditLog); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(req.TargetUuid, "", model.NotificationTypeSystem,
		"你在贴吧的封禁已解除", req.ForumUuid)
	return nil
}

// activityRespond 构建活跃度响应
func activityRespond(activity *model.ForumActivity) respond.ActivityRespond {
	rsp := respond.ActivityRespond{
		ForumUuid: activity.ForumUuid,
		ExpPoints: activity.ExpPoints,
		Level:     activity.Level,
		Streak:    activity.Streak,
	}
	if activity.LastSignInAt.Valid {
		rsp.LastSignInAt = activity.LastSignInAt.Time.Format("2006-01-02 15:04:05")
	}
	return rsp
}

// SignIn 吧内签到
// 活跃度行加锁后判定当日是否已签，并发重复签到只记一次；
// 当日已签为幂等操作，返回当前状态且 gained_exp 为 0
func (s *forumMemberService) SignIn(userUuid, forumUuid string) (*respond.SignInRespond, error) {
	if _, err := s.repos.ForumMember.FindByForumAndUser(forumUuid, userUuid); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "请先加入贴吧再签到")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	var rsp *respond.SignInRespond
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		now := time.Now()
		activity, err := txRepos.Activity.FindByForumAndUserForUpdate(forumUuid, userUuid)
		if err != nil {
			if !errorx.IsNotFound(err) {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			// 首次签到，新建活跃度行
			gained := GainedExp(1)
			newActivity := model.ForumActivity{
				ForumUuid: forumUuid,
				UserUuid:  userUuid,
				ExpPoints: gained,
				Level:     LevelFor(gained),
				Streak:    1,
			}
			newActivity.LastSignInAt.Time = now
			newActivity.LastSignInAt.Valid = true
			if err := txRepos.Activity.Create(&newActivity); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp = &respond.SignInRespond{
				Detail:    "signed in",
				GainedExp: gained,
				Activity:  activityRespond(&newActivity),
			}
			return nil
		}

		if activity.SignedInOn(now) {
			rsp = &respond.SignInRespond{
				Detail:    "already signed in today",
				GainedExp: 0,
				Activity:  activityRespond(activity),
			}
			return nil
		}

		last := activity.LastSignInAt.Time
		var lastPtr *time.Time
		if activity.LastSignInAt.Valid {
			lastPtr = &last
		}
		streak := NextStreak(lastPtr, activity.Streak, now)
		gained := GainedExp(streak)

		activity.Streak = streak
		activity.ExpPoints += gained
		activity.Level = LevelFor(activity.ExpPoints)
		activity.LastSignInAt.Time = now
		activity.LastSignInAt.Valid = true
		if err := txRepos.Activity.Update(activity); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		rsp = &respond.SignInRespond{
			Detail:    "signed in",
			GainedExp: gained,
			Activity:  activityRespond(activity),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rsp, nil
}

// GetMemberList 获取贴吧在吧成员列表
func (s *forumMemberService) GetMemberList(forumUuid string) ([]respond.MemberRespond, error) {
	members, err := s.repos.ForumMember.FindByForumUuid(forumUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	userUuids := make([]string, 0, len(members))
	for _, m := range members {
		userUuids = append(userUuids, m.UserUuid)
	}
	profiles, err := s.repos.User.FindProfilesByUserUuids(userUuids)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	profileMap := make(map[string]model.UserProfile, len(profiles))
	for _, p := range profiles {
		profileMap[p.UserUuid] = p
	}

	rspList := make([]respond.MemberRespond, 0, len(members))
	for _, m := range members {
		rsp := respond.MemberRespond{
			UserUuid: m.UserUuid,
			RoleType: m.RoleType,
			IsBanned: m.IsBanned,
			JoinedAt: m.JoinedAt.Format("2006-01-02 15:04:05"),
		}
		if m.BannedUntil.Valid {
			rsp.BannedUntil = m.BannedUntil.Time.Format("2006-01-02 15:04:05")
		}
		if p, ok := profileMap[m.UserUuid]; ok {
			rsp.Nickname = p.Nickname
			rsp.Avatar = p.Avatar
		}
		rspList = append(rspList, rsp)
	}
	return rspList, nil
}

// GetAuditLogs 分页查询成员管理审计日志
func (s *forumMemberService) GetAuditLogs(req request.GetAuditLogRequest) (*respond.GetAuditLogWrapper, error) {
	logs, total, err := s.repos.AuditLog.FindByForumUuid(req.ForumUuid, req.Page, req.PageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.AuditLogRespond, 0, len(logs))
	for _, l := range logs {
		rspList = append(rspList, respond.AuditLogRespond{
			ForumUuid:    l.ForumUuid,
			OperatorUuid: l.OperatorUuid,
			TargetUuid:   l.TargetUuid,
			Action:       l.Action,
			OldValue:     l.OldValue,
			NewValue:     l.NewValue,
			Reason:       l.Reason,
			CreatedAt:    l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return &respond.GetAuditLogWrapper{List: rspList, Total: total}, nil
}

// ReconcileMemberCounts 成员计数对账
// 重算每个贴吧的在吧成员数并覆写计数器，修正异步路径可能产生的漂移
func (s *forumMemberService) ReconcileMemberCounts() error {
	forumUuids, err := s.repos.Forum.FindAllUuids()
	if err != nil {
		zap.L().Error("对账任务获取贴吧列表失败", zap.Error(err))
		return errorx.ErrServerBusy
	}

	for _, forumUuid := range forumUuids {
		count, err := s.repos.ForumMember.CountActiveByForum(forumUuid)
		if err != nil {
			zap.L().Error("对账任务统计成员数失败", zap.String("forumUuid", forumUuid), zap.Error(err))
			continue
		}
		forum, err := s.repos.Forum.FindByUuid(forumUuid)
		if err != nil {
			continue
		}
		if int64(forum.MemberCnt) == count {
			continue
		}
		zap.L().Warn("成员计数漂移，已修正",
			zap.String("forumUuid", forumUuid),
			zap.Int("stored", forum.MemberCnt),
			zap.Int64("actual", count))
		if err := s.repos.Forum.SetMemberCount(forumUuid, int(count)); err != nil {
			zap.L().Error("对账任务覆写成员数失败", zap.String("forumUuid", forumUuid), zap.Error(err))
		}
	}
	return nil
}

// StartReconciler 启动周期性计数对账协程
func (s *forumMemberService) StartReconciler(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			_ = s.ReconcileMemberCounts()
		}
	}()
}
