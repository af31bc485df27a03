package authz

import (
	"testing"
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"gorm.io/gorm"
)

// stubRoleRepo 角色仓库桩实现，grants 记录 roleId -> 权限码集合
type stubRoleRepo struct {
	grants map[uint]map[string]bool
}

func (s *stubRoleRepo) FindById(id uint) (*model.Role, error)        { return nil, errorx.ErrNotFound }
func (s *stubRoleRepo) FindByName(name string) (*model.Role, error)  { return nil, errorx.ErrNotFound }
func (s *stubRoleRepo) FindAll() ([]model.Role, error)               { return nil, nil }
func (s *stubRoleRepo) CreateRole(role *model.Role) error            { return nil }
func (s *stubRoleRepo) CreatePermission(p *model.Permission) error   { return nil }
func (s *stubRoleRepo) GrantPermission(roleId, permId uint) error    { return nil }
func (s *stubRoleRepo) RevokePermission(roleId, permId uint) error   { return nil }
func (s *stubRoleRepo) FindPermissionByCode(code string) (*model.Permission, error) {
	return nil, errorx.ErrNotFound
}
func (s *stubRoleRepo) FindPermissionsByRoleId(roleId uint) ([]model.Permission, error) {
	return nil, nil
}
func (s *stubRoleRepo) FindAllPermissions() ([]model.Permission, error) { return nil, nil }
func (s *stubRoleRepo) HasPermission(roleId uint, code string) (bool, error) {
	return s.grants[roleId][code], nil
}

// stubMemberRepo 成员仓库桩实现，members 记录 forum+user -> 成员
type stubMemberRepo struct {
	members map[string]*model.ForumMember
}

func memberKey(forumUuid, userUuid string) string { return forumUuid + "/" + userUuid }

func (s *stubMemberRepo) FindByForumAndUser(forumUuid, userUuid string) (*model.ForumMember, error) {
	m, ok := s.members[memberKey(forumUuid, userUuid)]
	if !ok || m.DeletedAt.Valid {
		return nil, errorx.ErrNotFound
	}
	return m, nil
}
func (s *stubMemberRepo) FindByForumAndUserUnscoped(forumUuid, userUuid string) (*model.ForumMember, error) {
	m, ok := s.members[memberKey(forumUuid, userUuid)]
	if !ok {
		return nil, errorx.ErrNotFound
	}
	return m, nil
}
func (s *stubMemberRepo) FindByForumUuid(forumUuid string) ([]model.ForumMember, error) {
	return nil, nil
}
func (s *stubMemberRepo) FindByUserUuid(userUuid string) ([]model.ForumMember, error) {
	return nil, nil
}
func (s *stubMemberRepo) Create(member *model.ForumMember) error       { return nil }
func (s *stubMemberRepo) Restore(id uint, joinedAt time.Time) error    { return nil }
func (s *stubMemberRepo) SoftDelete(id uint) error                     { return nil }
func (s *stubMemberRepo) UpdateRole(id uint, roleType string) error    { return nil }
func (s *stubMemberRepo) UpdateBan(id uint, isBanned int8, bannedUntil *time.Time) error {
	return nil
}
func (s *stubMemberRepo) CountActiveByForum(forumUuid string) (int64, error) { return 0, nil }

func TestCanActNoPermissionCode(t *testing.T) {
	a := NewAuthorizer(&stubRoleRepo{grants: map[uint]map[string]bool{}})
	// 未声明权限码的操作对任何人放行，包括未登录用户
	ok, err := a.CanAct(Principal{}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected grant for empty permission code")
	}
}

func TestCanActUnauthenticated(t *testing.T) {
	a := NewAuthorizer(&stubRoleRepo{grants: map[uint]map[string]bool{}})
	ok, err := a.CanAct(Principal{Authenticated: false}, "post.delete")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected deny for unauthenticated principal")
	}
}

func TestCanActSuperAdminBypass(t *testing.T) {
	// 超管不依赖授权表，故意传入空授权表验证旁路生效
	a := NewAuthorizer(&stubRoleRepo{grants: map[uint]map[string]bool{}})
	p := Principal{UserUuid: "U1", RoleId: 9, RoleLevel: 100, Authenticated: true}
	ok, err := a.CanAct(p, "anything.at.all")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected grant for role level >= 100")
	}
}

func TestCanActExplicitGrant(t *testing.T) {
	repo := &stubRoleRepo{grants: map[uint]map[string]bool{
		2: {"post.delete": true},
	}}
	a := NewAuthorizer(repo)

	granted := Principal{UserUuid: "U1", RoleId: 2, RoleLevel: 10, Authenticated: true}
	ok, err := a.CanAct(granted, "post.delete")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected grant via role_permission_map")
	}

	// 等级 1 且无授权记录：任何权限码都拒绝
	denied := Principal{UserUuid: "U2", RoleId: 1, RoleLevel: 1, Authenticated: true}
	ok, err = a.CanAct(denied, "post.delete")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected deny without grant")
	}
}

func TestCanManageForumUnresolved(t *testing.T) {
	a := NewForumAuthorizer(&stubMemberRepo{members: map[string]*model.ForumMember{}})
	// 无法解析目标贴吧：默认放行
	ok, err := a.CanManageForum(Principal{UserUuid: "U1", Authenticated: true}, "")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected permissive default when forum unresolved")
	}
}

func TestCanManageForumResolvedNotMember(t *testing.T) {
	a := NewForumAuthorizer(&stubMemberRepo{members: map[string]*model.ForumMember{}})
	// 贴吧已解析但主体不是成员：拒绝
	ok, err := a.CanManageForum(Principal{UserUuid: "U1", RoleLevel: 1, Authenticated: true}, "F1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected deny when forum resolved but membership missing")
	}
}

func TestCanManageForumRoles(t *testing.T) {
	repo := &stubMemberRepo{members: map[string]*model.ForumMember{
		memberKey("F1", "Uowner"):  {ForumUuid: "F1", UserUuid: "Uowner", RoleType: model.MemberRoleOwner},
		memberKey("F1", "Uadmin"):  {ForumUuid: "F1", UserUuid: "Uadmin", RoleType: model.MemberRoleAdmin},
		memberKey("F1", "Umember"): {ForumUuid: "F1", UserUuid: "Umember", RoleType: model.MemberRoleMember},
	}}
	a := NewForumAuthorizer(repo)

	cases := []struct {
		user string
		want bool
	}{
		{"Uowner", true},
		{"Uadmin", true},
		{"Umember", false},
	}
	for _, c := range cases {
		ok, err := a.CanManageForum(Principal{UserUuid: c.user, RoleLevel: 1, Authenticated: true}, "F1")
		if err != nil {
			t.Fatal(err)
		}
		if ok != c.want {
			t.Fatalf("user %s: expected %v got %v", c.user, c.want, ok)
		}
	}
}

func TestCanManageForumSuperAdmin(t *testing.T) {
	a := NewForumAuthorizer(&stubMemberRepo{members: map[string]*model.ForumMember{}})
	p := Principal{UserUuid: "Uroot", RoleLevel: 100, Authenticated: true}
	ok, err := a.CanManageForum(p, "F1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected grant for platform super admin")
	}
}

func TestCanManageForumLeftMember(t *testing.T) {
	// 已退出（软删除）的吧务不再拥有管理权限
	left := &model.ForumMember{ForumUuid: "F1", UserUuid: "Uadmin", RoleType: model.MemberRoleAdmin}
	left.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	repo := &stubMemberRepo{members: map[string]*model.ForumMember{
		memberKey("F1", "Uadmin"): left,
	}}
	a := NewForumAuthorizer(repo)
	ok, err := a.CanManageForum(Principal{UserUuid: "Uadmin", RoleLevel: 1, Authenticated: true}, "F1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected deny for soft-deleted membership")
	}
}
