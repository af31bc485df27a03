package authz

import (
	"testing"
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"gorm.io/gorm"
)

// stubInteractionRepo 互动仓库桩实现，只关心关注关系
type stubInteractionRepo struct {
	follows map[string]*model.UserFollow // follower/followee -> 记录
}

func followKey(follower, followee string) string { return follower + "/" + followee }

func (s *stubInteractionRepo) FindFollowUnscoped(follower, followee string) (*model.UserFollow, error) {
	f, ok := s.follows[followKey(follower, followee)]
	if !ok {
		return nil, errorx.ErrNotFound
	}
	return f, nil
}
func (s *stubInteractionRepo) FindLikeUnscoped(u, tt, tu string) (*model.LikeRecord, error) {
	return nil, errorx.ErrNotFound
}
func (s *stubInteractionRepo) CreateLike(r *model.LikeRecord) error { return nil }
func (s *stubInteractionRepo) RestoreLike(id uint) error            { return nil }
func (s *stubInteractionRepo) SoftDeleteLike(id uint) error         { return nil }
func (s *stubInteractionRepo) FindFolderByUuid(uuid string) (*model.CollectionFolder, error) {
	return nil, errorx.ErrNotFound
}
func (s *stubInteractionRepo) FindFoldersByUserUuid(u string) ([]model.CollectionFolder, error) {
	return nil, nil
}
func (s *stubInteractionRepo) CreateFolder(f *model.CollectionFolder) error { return nil }
func (s *stubInteractionRepo) SoftDeleteFolder(uuid string) error           { return nil }
func (s *stubInteractionRepo) FindItem(fu, pu string) (*model.CollectionItem, error) {
	return nil, errorx.ErrNotFound
}
func (s *stubInteractionRepo) FindItemsByFolder(fu string, p, ps int) ([]model.CollectionItem, int64, error) {
	return nil, 0, nil
}
func (s *stubInteractionRepo) CreateItem(i *model.CollectionItem) error          { return nil }
func (s *stubInteractionRepo) DeleteItem(fu, pu string) error                    { return nil }
func (s *stubInteractionRepo) IncrementItemCount(fu string, delta int) error     { return nil }
func (s *stubInteractionRepo) CreateFollow(f *model.UserFollow) error            { return nil }
func (s *stubInteractionRepo) RestoreFollow(id uint) error                       { return nil }
func (s *stubInteractionRepo) SoftDeleteFollow(id uint) error                    { return nil }
func (s *stubInteractionRepo) FindFollowees(f string) ([]model.UserFollow, error) { return nil, nil }
func (s *stubInteractionRepo) FindFollowers(f string) ([]model.UserFollow, error) { return nil, nil }
func (s *stubInteractionRepo) IsMutualFollow(a, b string) (bool, error)          { return false, nil }

func TestCanViewProfileSelf(t *testing.T) {
	c := NewProfileVisibilityChecker(&stubInteractionRepo{follows: map[string]*model.UserFollow{}})
	viewer := Principal{UserUuid: "U1", Authenticated: true}
	// 本人总是可见，即使设置为 private
	ok, err := c.CanViewProfile(viewer, "U1", model.VisibilityPrivate)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected self always visible")
	}
}

func TestCanViewProfilePublic(t *testing.T) {
	c := NewProfileVisibilityChecker(&stubInteractionRepo{follows: map[string]*model.UserFollow{}})
	ok, err := c.CanViewProfile(Principal{}, "U1", model.VisibilityPublic)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected public profile visible to anonymous")
	}
}

func TestCanViewProfileFollowers(t *testing.T) {
	// followers 档位：资料主人 U1 关注了 U2，则 U2 可见
	repo := &stubInteractionRepo{follows: map[string]*model.UserFollow{
		followKey("U1", "U2"): {FollowerUuid: "U1", FolloweeUuid: "U2"},
	}}
	c := NewProfileVisibilityChecker(repo)

	ok, err := c.CanViewProfile(Principal{UserUuid: "U2", Authenticated: true}, "U1", model.VisibilityFollowers)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected visible when follow edge exists from owner to viewer")
	}

	ok, err = c.CanViewProfile(Principal{UserUuid: "U3", Authenticated: true}, "U1", model.VisibilityFollowers)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected hidden without follow edge")
	}
}

func TestCanViewProfileFollowersUnfollowed(t *testing.T) {
	// 取关（软删除）后不再可见
	f := &model.UserFollow{FollowerUuid: "U1", FolloweeUuid: "U2"}
	f.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	repo := &stubInteractionRepo{follows: map[string]*model.UserFollow{
		followKey("U1", "U2"): f,
	}}
	c := NewProfileVisibilityChecker(repo)
	ok, err := c.CanViewProfile(Principal{UserUuid: "U2", Authenticated: true}, "U1", model.VisibilityFollowers)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected hidden after unfollow")
	}
}

func TestCanViewProfilePrivate(t *testing.T) {
	c := NewProfileVisibilityChecker(&stubInteractionRepo{follows: map[string]*model.UserFollow{}})
	ok, err := c.CanViewProfile(Principal{UserUuid: "U2", Authenticated: true}, "U1", model.VisibilityPrivate)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected private profile hidden from others")
	}
}
