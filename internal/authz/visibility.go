package authz

import (
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
)

// ProfileVisibilityChecker 资料可见性判定接口
type ProfileVisibilityChecker interface {
	// CanViewProfile 判定 viewer 能否查看 owner 的资料
	CanViewProfile(viewer Principal, ownerUuid, visibility string) (bool, error)
}

// profileVisibilityChecker 默认实现，followers 档位依赖关注关系查询
type profileVisibilityChecker struct {
	interactionRepo repository.InteractionRepository
}

// NewProfileVisibilityChecker 创建资料可见性判定器
func NewProfileVisibilityChecker(interactionRepo repository.InteractionRepository) ProfileVisibilityChecker {
	return &profileVisibilityChecker{interactionRepo: interactionRepo}
}

// CanViewProfile 三态可见性判定
//   - 本人总是可见
//   - public 对所有人可见
//   - followers 仅当资料主人关注了查看者时可见
//   - private 对他人不可见
func (c *profileVisibilityChecker) CanViewProfile(viewer Principal, ownerUuid, visibility string) (bool, error) {
	if viewer.Authenticated && viewer.UserUuid == ownerUuid {
		return true, nil
	}
	switch visibility {
	case model.VisibilityPublic:
		return true, nil
	case model.VisibilityFollowers:
		if !viewer.Authenticated {
			return false, nil
		}
		follow, err := c.interactionRepo.FindFollowUnscoped(ownerUuid, viewer.UserUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return false, nil
			}
			return false, err
		}
		// 软删除的关注记录视为未关注
		return !follow.DeletedAt.Valid, nil
	case model.VisibilityPrivate:
		return false, nil
	default:
		// 未知档位按 private 处理
		return false, nil
	}
}
