package member

import (
	"context"
	"testing"
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 内存桩实现 ====================

func memberKey(forumUuid, userUuid string) string { return forumUuid + "/" + userUuid }

// fakeForumRepo 贴吧仓库内存实现
// lockedFinds 记录加锁查询次数，failLockedFinds 模拟瞬时数据库故障
type fakeForumRepo struct {
	forums          map[string]*model.Forum
	lockedFinds     int
	failLockedFinds int
}

func (f *fakeForumRepo) FindByUuid(uuid string) (*model.Forum, error) {
	if forum, ok := f.forums[uuid]; ok {
		cp := *forum
		return &cp, nil
	}
	return nil, errorx.ErrNotFound
}
func (f *fakeForumRepo) FindByUuidForUpdate(uuid string) (*model.Forum, error) {
	f.lockedFinds++
	if f.failLockedFinds > 0 {
		f.failLockedFinds--
		return nil, errorx.New(errorx.CodeDBError, "lock wait timeout")
	}
	return f.FindByUuid(uuid)
}
func (f *fakeForumRepo) FindByName(name string) (*model.Forum, error) { return nil, errorx.ErrNotFound }
func (f *fakeForumRepo) GetForumList(page, pageSize int) ([]model.Forum, int64, error) {
	return nil, 0, nil
}
func (f *fakeForumRepo) FindByOwnerUuid(ownerUuid string) ([]model.Forum, error) { return nil, nil }
func (f *fakeForumRepo) Create(forum *model.Forum) error {
	f.forums[forum.Uuid] = forum
	return nil
}
func (f *fakeForumRepo) UpdateInfo(uuid, description, avatar string) error {
	f.forums[uuid].Description = description
	f.forums[uuid].Avatar = avatar
	return nil
}
func (f *fakeForumRepo) UpdateOwner(uuid, ownerUuid string) error {
	f.forums[uuid].OwnerUuid = ownerUuid
	return nil
}
func (f *fakeForumRepo) UpdateStatus(uuid string, status int8) error {
	f.forums[uuid].Status = status
	return nil
}
func (f *fakeForumRepo) IncrementMemberCount(uuid string) error {
	f.forums[uuid].MemberCnt++
	return nil
}
func (f *fakeForumRepo) DecrementMemberCount(uuid string) error {
	f.forums[uuid].MemberCnt--
	return nil
}
func (f *fakeForumRepo) SetMemberCount(uuid string, count int) error {
	f.forums[uuid].MemberCnt = count
	return nil
}
func (f *fakeForumRepo) IncrementPostCount(uuid string, delta int) error { return nil }
func (f *fakeForumRepo) FindAllUuids() ([]string, error) {
	uuids := make([]string, 0, len(f.forums))
	for uuid := range f.forums {
		uuids = append(uuids, uuid)
	}
	return uuids, nil
}
func (f *fakeForumRepo) FindCategories() ([]model.ForumCategory, error)      { return nil, nil }
func (f *fakeForumRepo) CreateCategory(category *model.ForumCategory) error  { return nil }
func (f *fakeForumRepo) BindCategory(forumUuid string, categoryId uint) error { return nil }

// fakeMemberRepo 成员仓库内存实现，软删除语义与真实实现一致
// onUpdateRole 在角色写入后触发，用于在事务中段插入并发写
type fakeMemberRepo struct {
	nextId       uint
	members      map[string]*model.ForumMember
	onUpdateRole func()
}

func (f *fakeMemberRepo) byId(id uint) *model.ForumMember {
	for _, m := range f.members {
		if m.ID == id {
			return m
		}
	}
	return nil
}
func (f *fakeMemberRepo) FindByForumAndUser(forumUuid, userUuid string) (*model.ForumMember, error) {
	m, ok := f.members[memberKey(forumUuid, userUuid)]
	if !ok || m.DeletedAt.Valid {
		return nil, errorx.ErrNotFound
	}
	cp := *m
	return &cp, nil
}
func (f *fakeMemberRepo) FindByForumAndUserUnscoped(forumUuid, userUuid string) (*model.ForumMember, error) {
	m, ok := f.members[memberKey(forumUuid, userUuid)]
	if !ok {
		return nil, errorx.ErrNotFound
	}
	cp := *m
	return &cp, nil
}
func (f *fakeMemberRepo) FindByForumUuid(forumUuid string) ([]model.ForumMember, error) {
	var list []model.ForumMember
	for _, m := range f.members {
		if m.ForumUuid == forumUuid && !m.DeletedAt.Valid {
			list = append(list, *m)
		}
	}
	return list, nil
}
func (f *fakeMemberRepo) FindByUserUuid(userUuid string) ([]model.ForumMember, error) {
	return nil, nil
}
func (f *fakeMemberRepo) Create(member *model.ForumMember) error {
	f.nextId++
	member.ID = f.nextId
	f.members[memberKey(member.ForumUuid, member.UserUuid)] = member
	return nil
}
func (f *fakeMemberRepo) Restore(id uint, joinedAt time.Time) error {
	m := f.byId(id)
	m.DeletedAt = gorm.DeletedAt{}
	m.JoinedAt = joinedAt
	return nil
}
func (f *fakeMemberRepo) SoftDelete(id uint) error {
	m := f.byId(id)
	m.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}
func (f *fakeMemberRepo) UpdateRole(id uint, roleType string) error {
	f.byId(id).RoleType = roleType
	if f.onUpdateRole != nil {
		f.onUpdateRole()
	}
	return nil
}
func (f *fakeMemberRepo) UpdateBan(id uint, isBanned int8, bannedUntil *time.Time) error {
	m := f.byId(id)
	m.IsBanned = isBanned
	if bannedUntil != nil {
		m.BannedUntil.Time = *bannedUntil
		m.BannedUntil.Valid = true
	} else {
		m.BannedUntil.Valid = false
	}
	return nil
}
func (f *fakeMemberRepo) CountActiveByForum(forumUuid string) (int64, error) {
	var count int64
	for _, m := range f.members {
		if m.ForumUuid == forumUuid && !m.DeletedAt.Valid {
			count++
		}
	}
	return count, nil
}

// fakeAuditRepo 审计日志内存实现，只增不改
type fakeAuditRepo struct {
	logs []model.ForumMemberAuditLog
}

func (f *fakeAuditRepo) Create(log *model.ForumMemberAuditLog) error {
	f.logs = append(f.logs, *log)
	return nil
}
func (f *fakeAuditRepo) FindByForumUuid(forumUuid string, page, pageSize int) ([]model.ForumMemberAuditLog, int64, error) {
	return f.logs, int64(len(f.logs)), nil
}
func (f *fakeAuditRepo) FindByTargetUuid(forumUuid, targetUuid string) ([]model.ForumMemberAuditLog, error) {
	return nil, nil
}

// fakeActivityRepo 活跃度内存实现
type fakeActivityRepo struct {
	activities map[string]*model.ForumActivity
}

func (f *fakeActivityRepo) FindByForumAndUser(forumUuid, userUuid string) (*model.ForumActivity, error) {
	if a, ok := f.activities[memberKey(forumUuid, userUuid)]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, errorx.ErrNotFound
}
func (f *fakeActivityRepo) FindByForumAndUserForUpdate(forumUuid, userUuid string) (*model.ForumActivity, error) {
	return f.FindByForumAndUser(forumUuid, userUuid)
}
func (f *fakeActivityRepo) Create(activity *model.ForumActivity) error {
	f.activities[memberKey(activity.ForumUuid, activity.UserUuid)] = activity
	return nil
}
func (f *fakeActivityRepo) Update(activity *model.ForumActivity) error {
	f.activities[memberKey(activity.ForumUuid, activity.UserUuid)] = activity
	return nil
}

// fakeCache 缓存桩实现，记录锁状态和释放次数
type fakeCache struct {
	locks   map[string]bool
	unlocks int
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (f *fakeCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (f *fakeCache) GetOrError(ctx context.Context, key string) (string, error) {
	return "", errorx.ErrNotFound
}
func (f *fakeCache) Delete(ctx context.Context, key string) error                    { return nil }
func (f *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error       { return nil }
func (f *fakeCache) DeleteByPatterns(ctx context.Context, patterns []string) error   { return nil }
func (f *fakeCache) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.locks[key] {
		return false, nil
	}
	f.locks[key] = true
	return true, nil
}
func (f *fakeCache) Unlock(ctx context.Context, key string) error {
	delete(f.locks, key)
	f.unlocks++
	return nil
}
func (f *fakeCache) AddToSet(ctx context.Context, key string, members ...interface{}) error {
	return nil
}
func (f *fakeCache) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}
func (f *fakeCache) RemoveFromSet(ctx context.Context, key string, members ...interface{}) error {
	return nil
}
func (f *fakeCache) SubmitTask(action func()) { action() }

// fakeNotifier 通知桩实现，记录发送过的通知
type fakeNotifier struct {
	received []string
}

func (f *fakeNotifier) Notify(receiverUuid, senderUuid, notifyType, content, targetUuid string) {
	f.received = append(f.received, receiverUuid)
}

// ==================== 测试脚手架 ====================

type memberFixture struct {
	svc     *forumMemberService
	forums  *fakeForumRepo
	members *fakeMemberRepo
	audits  *fakeAuditRepo
	notify  *fakeNotifier
}

// newFixture 构造带一个贴吧和吧主的测试环境
// 贴吧 F1 由 U_owner 创建，初始成员数 1
func newFixture(t *testing.T) *memberFixture {
	t.Helper()

	forums := &fakeForumRepo{forums: map[string]*model.Forum{}}
	members := &fakeMemberRepo{members: map[string]*model.ForumMember{}}
	audits := &fakeAuditRepo{}
	activities := &fakeActivityRepo{activities: map[string]*model.ForumActivity{}}
	notify := &fakeNotifier{}

	forums.forums["F1"] = &model.Forum{Uuid: "F1", Name: "测试吧", OwnerUuid: "U_owner", MemberCnt: 1}
	_ = members.Create(&model.ForumMember{
		ForumUuid: "F1", UserUuid: "U_owner",
		RoleType: model.MemberRoleOwner, JoinedAt: time.Now(),
	})

	repos := &repository.Repositories{
		Forum:       forums,
		ForumMember: members,
		AuditLog:    audits,
		Activity:    activities,
	}
	svc := NewMemberService(repos, &fakeCache{locks: map[string]bool{}}, notify)
	return &memberFixture{svc: svc, forums: forums, members: members, audits: audits, notify: notify}
}

// joinAs 让用户加入 F1
func (fx *memberFixture) joinAs(t *testing.T, userUuid string) {
	t.Helper()
	if _, err := fx.svc.ToggleMembership(userUuid, request.ToggleMembershipRequest{ForumUuid: "F1"}); err != nil {
		t.Fatalf("join as %s: %v", userUuid, err)
	}
}

// ==================== 成员切换 ====================

func TestToggleMembershipLifecycle(t *testing.T) {
	fx := newFixture(t)
	req := request.ToggleMembershipRequest{ForumUuid: "F1"}

	// 首次加入
	rsp, err := fx.svc.ToggleMembership("U2", req)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if rsp.Detail != ToggleJoined || rsp.RoleType != model.MemberRoleMember || rsp.MemberCnt != 2 {
		t.Errorf("joined respond = %+v", rsp)
	}

	// 退出
	rsp, err = fx.svc.ToggleMembership("U2", req)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if rsp.Detail != ToggleLeft || rsp.MemberCnt != 1 {
		t.Errorf("left respond = %+v", rsp)
	}

	// 重新加入：恢复原行
	rsp, err = fx.svc.ToggleMembership("U2", req)
	if err != nil {
		t.Fatalf("third toggle: %v", err)
	}
	if rsp.Detail != ToggleRejoined || rsp.MemberCnt != 2 {
		t.Errorf("rejoined respond = %+v", rsp)
	}
	if count, _ := fx.members.CountActiveByForum("F1"); count != 2 {
		t.Errorf("active members = %d, want 2", count)
	}
}

func TestToggleMembershipPreservesRoleAcrossRejoin(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")

	// 升为吧务后退出再加入，角色应保留
	m := fx.members.members[memberKey("F1", "U2")]
	m.RoleType = model.MemberRoleAdmin

	req := request.ToggleMembershipRequest{ForumUuid: "F1"}
	if _, err := fx.svc.ToggleMembership("U2", req); err != nil {
		t.Fatalf("leave: %v", err)
	}
	rsp, err := fx.svc.ToggleMembership("U2", req)
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if rsp.Detail != ToggleRejoined || rsp.RoleType != model.MemberRoleAdmin {
		t.Errorf("rejoin respond = %+v, want rejoined admin", rsp)
	}
}

func TestOwnerCannotLeaveOwnForum(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.ToggleMembership("U_owner", request.ToggleMembershipRequest{ForumUuid: "F1"})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("owner leave err = %v, want forbidden", err)
	}
	// 成员数不应变化
	if fx.forums.forums["F1"].MemberCnt != 1 {
		t.Errorf("member count = %d, want 1", fx.forums.forums["F1"].MemberCnt)
	}
}

func TestToggleMembershipForumNotFound(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.ToggleMembership("U2", request.ToggleMembershipRequest{ForumUuid: "F_missing"})
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestAsyncToggleRejectedWhileLockHeld(t *testing.T) {
	fx := newFixture(t)
	cache := fx.svc.cache.(*fakeCache)
	cache.locks[toggleLockKey("F1", "U2")] = true

	err := fx.svc.AsyncToggleMembership("U2", "F1")
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Errorf("err = %v, want conflict", err)
	}
}

func TestApplyToggleRetriesTransientFailures(t *testing.T) {
	fx := newFixture(t)
	oldBackoff := toggleRetryBackoff
	toggleRetryBackoff = 0
	defer func() { toggleRetryBackoff = oldBackoff }()

	// 消费端执行时互斥锁处于持有状态
	cache := fx.svc.cache.(*fakeCache)
	lockKey := toggleLockKey("F1", "U2")
	cache.locks[lockKey] = true

	// 前两次加锁查询模拟瞬时数据库故障
	fx.forums.failLockedFinds = 2
	if err := fx.svc.ApplyToggle("F1", "U2"); err != nil {
		t.Fatalf("apply toggle: %v", err)
	}
	if fx.forums.lockedFinds != 3 {
		t.Errorf("locked finds = %d, want 3 (两次瞬时失败后第三次成功)", fx.forums.lockedFinds)
	}
	if _, err := fx.members.FindByForumAndUser("F1", "U2"); err != nil {
		t.Error("重试成功后 U2 应已加入")
	}
	// 互斥锁在最终成败确定后释放且只释放一次
	if cache.locks[lockKey] {
		t.Error("最终成功后应释放互斥锁")
	}
	if cache.unlocks != 1 {
		t.Errorf("unlock 次数 = %d, want 1 (重试期间不应提前释放)", cache.unlocks)
	}
}

func TestApplyToggleDoesNotRetryValidationFailures(t *testing.T) {
	fx := newFixture(t)
	oldBackoff := toggleRetryBackoff
	toggleRetryBackoff = 0
	defer func() { toggleRetryBackoff = oldBackoff }()

	cache := fx.svc.cache.(*fakeCache)
	lockKey := toggleLockKey("F_missing", "U2")
	cache.locks[lockKey] = true

	err := fx.svc.ApplyToggle("F_missing", "U2")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("err = %v, want not found", err)
	}
	if fx.forums.lockedFinds != 1 {
		t.Errorf("locked finds = %d, want 1 (校验类失败不重试)", fx.forums.lockedFinds)
	}
	if cache.locks[lockKey] {
		t.Error("失败后也应释放互斥锁")
	}
}

// ==================== 角色变更 ====================

func TestChangeMemberRole(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	operator := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	err := fx.svc.ChangeMemberRole(operator, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U2", RoleType: model.MemberRoleAdmin,
	})
	if err != nil {
		t.Fatalf("promote to admin: %v", err)
	}
	if got := fx.members.members[memberKey("F1", "U2")].RoleType; got != model.MemberRoleAdmin {
		t.Errorf("target role = %q, want admin", got)
	}
	if len(fx.audits.logs) != 1 {
		t.Fatalf("audit logs = %d, want 1", len(fx.audits.logs))
	}
	log := fx.audits.logs[0]
	if log.Action != model.AuditActionRoleChange || log.OldValue != model.MemberRoleMember || log.NewValue != model.MemberRoleAdmin {
		t.Errorf("audit log = %+v", log)
	}
	if len(fx.notify.received) != 1 || fx.notify.received[0] != "U2" {
		t.Errorf("notify targets = %v, want [U2]", fx.notify.received)
	}
}

func TestChangeMemberRoleNoop(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	operator := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	err := fx.svc.ChangeMemberRole(operator, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U2", RoleType: model.MemberRoleMember,
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("err = %v, want invalid param", err)
	}
}

func TestChangeMemberRoleCannotTouchOwner(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	fx.members.members[memberKey("F1", "U2")].RoleType = model.MemberRoleAdmin
	operator := authz.Principal{UserUuid: "U2", Authenticated: true}

	err := fx.svc.ChangeMemberRole(operator, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U_owner", RoleType: model.MemberRoleMember,
	})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("err = %v, want forbidden", err)
	}
}

func TestOnlyOwnerCanTransferOwnership(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	fx.joinAs(t, "U3")
	fx.members.members[memberKey("F1", "U2")].RoleType = model.MemberRoleAdmin

	// 吧务发起转让：拒绝，且不落审计日志
	admin := authz.Principal{UserUuid: "U2", Authenticated: true}
	err := fx.svc.ChangeMemberRole(admin, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U3", RoleType: model.MemberRoleOwner,
	})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("admin transfer err = %v, want forbidden", err)
	}
	if len(fx.audits.logs) != 0 {
		t.Errorf("audit logs after failed transfer = %d, want 0", len(fx.audits.logs))
	}
}

func TestTransferOwnership(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	owner := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	err := fx.svc.ChangeMemberRole(owner, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U2", RoleType: model.MemberRoleOwner,
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := fx.forums.forums["F1"].OwnerUuid; got != "U2" {
		t.Errorf("forum owner = %q, want U2", got)
	}
	if got := fx.members.members[memberKey("F1", "U_owner")].RoleType; got != model.MemberRoleAdmin {
		t.Errorf("old owner role = %q, want admin", got)
	}
	if got := fx.members.members[memberKey("F1", "U2")].RoleType; got != model.MemberRoleOwner {
		t.Errorf("new owner role = %q, want owner", got)
	}
	// 原吧主降级 + 目标升级，各一条审计
	if len(fx.audits.logs) != 2 {
		t.Errorf("audit logs = %d, want 2", len(fx.audits.logs))
	}
}

func TestTransferOwnershipKeepsConcurrentCounter(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	owner := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	// 转让事务读取贴吧行之后，另一笔加入提交了原子自增
	fx.members.onUpdateRole = func() {
		fx.members.onUpdateRole = nil
		_ = fx.forums.IncrementMemberCount("F1")
	}

	err := fx.svc.ChangeMemberRole(owner, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U2", RoleType: model.MemberRoleOwner,
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := fx.forums.forums["F1"].OwnerUuid; got != "U2" {
		t.Errorf("forum owner = %q, want U2", got)
	}
	// 吧主写入只改 owner_uuid 列，并发提交的计数不能被旧快照覆盖
	if got := fx.forums.forums["F1"].MemberCnt; got != 3 {
		t.Errorf("member count after transfer = %d, want 3", got)
	}
}

// ==================== 封禁 ====================

func TestBanMember(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	operator := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2", Reason: "灌水", BanDays: 3,
	})
	if err != nil {
		t.Fatalf("ban: %v", err)
	}
	target := fx.members.members[memberKey("F1", "U2")]
	if target.IsBanned != 1 || !target.BannedUntil.Valid {
		t.Errorf("target after ban = %+v", target)
	}
	if !target.IsBanActive(time.Now()) {
		t.Error("ban should be active now")
	}
	if len(fx.audits.logs) != 1 || fx.audits.logs[0].Action != model.AuditActionBan {
		t.Errorf("audit logs = %+v", fx.audits.logs)
	}

	// 重复封禁
	err = fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2", Reason: "灌水",
	})
	if errorx.GetCode(err) != errorx.CodeConflict {
		t.Errorf("double ban err = %v, want conflict", err)
	}
}

func TestBanMemberOnlyTargetsPlainMembers(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	fx.members.members[memberKey("F1", "U2")].RoleType = model.MemberRoleAdmin
	operator := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2", Reason: "测试",
	})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("ban admin err = %v, want forbidden", err)
	}
}

func TestBanMemberPermanent(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	operator := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	// BanDays 为 0：永久封禁，无截止时间
	err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2", Reason: "永久",
	})
	if err != nil {
		t.Fatalf("ban: %v", err)
	}
	target := fx.members.members[memberKey("F1", "U2")]
	if target.BannedUntil.Valid {
		t.Error("permanent ban should have no deadline")
	}
	if !target.IsBanActive(time.Now().AddDate(10, 0, 0)) {
		t.Error("permanent ban should never expire")
	}
}

func TestUnbanMember(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	operator := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	// 未封禁直接解封
	err := fx.svc.UnbanMember(operator, request.UnbanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2",
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("unban unbanned err = %v, want invalid param", err)
	}

	if err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2", Reason: "灌水",
	}); err != nil {
		t.Fatalf("ban: %v", err)
	}
	if err := fx.svc.UnbanMember(operator, request.UnbanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2",
	}); err != nil {
		t.Fatalf("unban: %v", err)
	}
	target := fx.members.members[memberKey("F1", "U2")]
	if target.IsBanned != 0 || target.BannedUntil.Valid {
		t.Errorf("target after unban = %+v", target)
	}
}

func TestChangeMemberRoleRejectsBannedTarget(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	operator := authz.Principal{UserUuid: "U_owner", Authenticated: true}

	if err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2", Reason: "灌水",
	}); err != nil {
		t.Fatalf("ban: %v", err)
	}

	// 封禁标记未清除前不能晋升，保证被封禁者始终是普通成员
	err := fx.svc.ChangeMemberRole(operator, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U2", RoleType: model.MemberRoleAdmin,
	})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("promote banned err = %v, want forbidden", err)
	}

	// 解封后恢复正常晋升
	if err := fx.svc.UnbanMember(operator, request.UnbanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2",
	}); err != nil {
		t.Fatalf("unban: %v", err)
	}
	if err := fx.svc.ChangeMemberRole(operator, request.ChangeMemberRoleRequest{
		ForumUuid: "F1", TargetUuid: "U2", RoleType: model.MemberRoleAdmin,
	}); err != nil {
		t.Errorf("promote after unban: %v", err)
	}
}

func TestExpiredBanDoesNotBlockOperator(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	fx.joinAs(t, "U3")

	// 历史数据：吧务带有已过期的限时封禁标记
	m := fx.members.members[memberKey("F1", "U2")]
	m.RoleType = model.MemberRoleAdmin
	m.IsBanned = 1
	m.BannedUntil.Time = time.Now().AddDate(0, 0, -1)
	m.BannedUntil.Valid = true

	operator := authz.Principal{UserUuid: "U2", Authenticated: true}
	if err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U3", Reason: "违规",
	}); err != nil {
		t.Errorf("过期封禁不应阻止管理操作: %v", err)
	}

	// 封禁仍在有效期内则继续拦截
	m.BannedUntil.Time = time.Now().AddDate(0, 0, 1)
	err := fx.svc.UnbanMember(operator, request.UnbanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U3",
	})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("有效封禁期间管理操作 err = %v, want forbidden", err)
	}
}

func TestNonAdminCannotBan(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	fx.joinAs(t, "U3")
	operator := authz.Principal{UserUuid: "U2", Authenticated: true}

	err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U3", Reason: "测试",
	})
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("plain member ban err = %v, want forbidden", err)
	}
}

func TestSuperAdminBypassesMembership(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	// 平台超管未加入贴吧也能执行管理操作
	operator := authz.Principal{UserUuid: "U_root", RoleLevel: 100, Authenticated: true}

	err := fx.svc.BanMember(operator, request.BanMemberRequest{
		ForumUuid: "F1", TargetUuid: "U2", Reason: "违规",
	})
	if err != nil {
		t.Errorf("super admin ban err = %v", err)
	}
}

// ==================== 签到 ====================

func TestSignInRequiresMembership(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.SignIn("U2", "F1")
	if errorx.GetCode(err) != errorx.CodeForbidden {
		t.Errorf("err = %v, want forbidden", err)
	}
}

func TestSignInFirstTime(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")

	rsp, err := fx.svc.SignIn("U2", "F1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if rsp.Detail != "signed in" || rsp.GainedExp != 30 {
		t.Errorf("respond = %+v, want signed in / 30 exp", rsp)
	}
	if rsp.Activity.Streak != 1 || rsp.Activity.ExpPoints != 30 || rsp.Activity.Level != 1 {
		t.Errorf("activity = %+v", rsp.Activity)
	}
}

func TestSignInSameDayIdempotent(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")

	if _, err := fx.svc.SignIn("U2", "F1"); err != nil {
		t.Fatalf("first sign in: %v", err)
	}
	rsp, err := fx.svc.SignIn("U2", "F1")
	if err != nil {
		t.Fatalf("second sign in: %v", err)
	}
	if rsp.Detail != "already signed in today" || rsp.GainedExp != 0 {
		t.Errorf("respond = %+v, want already signed in / 0 exp", rsp)
	}
	if rsp.Activity.ExpPoints != 30 {
		t.Errorf("exp = %d, want 30 (不重复累计)", rsp.Activity.ExpPoints)
	}
}

func TestSignInConsecutiveDays(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")

	// 昨天已签过：今天续签 streak+1
	activities := fx.svc.repos.Activity.(*fakeActivityRepo)
	yesterday := time.Now().AddDate(0, 0, -1)
	existing := &model.ForumActivity{
		ForumUuid: "F1", UserUuid: "U2",
		ExpPoints: 30, Level: 1, Streak: 1,
	}
	existing.LastSignInAt.Time = yesterday
	existing.LastSignInAt.Valid = true
	_ = activities.Create(existing)

	rsp, err := fx.svc.SignIn("U2", "F1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if rsp.Activity.Streak != 2 || rsp.GainedExp != 30 || rsp.Activity.ExpPoints != 60 {
		t.Errorf("respond = %+v, want streak 2 / gained 30 / exp 60", rsp)
	}
}

func TestSignInStreakReset(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")

	activities := fx.svc.repos.Activity.(*fakeActivityRepo)
	threeDaysAgo := time.Now().AddDate(0, 0, -3)
	existing := &model.ForumActivity{
		ForumUuid: "F1", UserUuid: "U2",
		ExpPoints: 120, Level: 2, Streak: 4,
	}
	existing.LastSignInAt.Time = threeDaysAgo
	existing.LastSignInAt.Valid = true
	_ = activities.Create(existing)

	rsp, err := fx.svc.SignIn("U2", "F1")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if rsp.Activity.Streak != 1 {
		t.Errorf("streak = %d, want 1 (中断重置)", rsp.Activity.Streak)
	}
	if rsp.Activity.ExpPoints != 150 || rsp.Activity.Level != 2 {
		t.Errorf("activity = %+v, want exp 150 level 2", rsp.Activity)
	}
}

// ==================== 对账 ====================

func TestReconcileMemberCounts(t *testing.T) {
	fx := newFixture(t)
	fx.joinAs(t, "U2")
	fx.joinAs(t, "U3")

	// 人为制造计数漂移
	fx.forums.forums["F1"].MemberCnt = 7

	if err := fx.svc.ReconcileMemberCounts(); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if got := fx.forums.forums["F1"].MemberCnt; got != 3 {
		t.Errorf("member count after reconcile = %d, want 3", got)
	}
}
