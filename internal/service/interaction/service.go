// Package interaction 实现点赞、收藏与关注业务逻辑
package interaction

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
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

// interactionService 互动业务逻辑实现
type interactionService struct {
	repos      *repository.Repositories
	notifier   Notifier
	visibility authz.ProfileVisibilityChecker
}

// NewInteractionService 构造函数，注入所有依赖
func NewInteractionService(repos *repository.Repositories, notifier Notifier,
	visibility authz.ProfileVisibilityChecker) *interactionService {
	return &interactionService{
		repos:      repos,
		notifier:   notifier,
		visibility: visibility,
	}
}

// likeTarget 定位点赞目标并返回作者与当前点赞数
func (s *interactionService) likeTarget(targetType, targetUuid string) (authorUuid string, likeCnt int, err error) {
	switch targetType {
	case model.TargetTypePost:
		post, err := s.repos.Post.FindByUuid(targetUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return "", 0, errorx.New(errorx.CodeNotFound, "帖子不存在")
			}
			zap.L().Error(err.Error())
			return "", 0, errorx.ErrServerBusy
		}
		return post.AuthorUuid, post.LikeCnt, nil
	case model.TargetTypeComment:
		comment, err := s.repos.Comment.FindByUuid(targetUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return "", 0, errorx.New(errorx.CodeNotFound, "评论不存在")
			}
			zap.L().Error(err.Error())
			return "", 0, errorx.ErrServerBusy
		}
		return comment.AuthorUuid, comment.LikeCnt, nil
	default:
		return "", 0, errorx.ErrInvalidParam
	}
}

// incrementLikeCount 按目标类型增减点赞计数
func incrementLikeCount(txRepos *repository.Repositories, targetType, targetUuid string, delta int) error {
	if targetType == model.TargetTypePost {
		return txRepos.Post.IncrementLikeCount(targetUuid, delta)
	}
	return txRepos.Comment.IncrementLikeCount(targetUuid, delta)
}

// ToggleLike 点赞/取消点赞切换
// 点赞记录软删除复用：再次点赞恢复原行，避免重复行
func (s *interactionService) ToggleLike(userUuid string, req request.ToggleLikeRequest) (*respond.ToggleLikeRespond, error) {
	authorUuid, likeCnt, err := s.likeTarget(req.TargetType, req.TargetUuid)
	if err != nil {
		return nil, err
	}

	rsp := &respond.ToggleLikeRespond{}
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		existing, err := txRepos.Interaction.FindLikeUnscoped(userUuid, req.TargetType, req.TargetUuid)
		if err != nil && !errorx.IsNotFound(err) {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}

		switch {
		case err != nil:
			// 首次点赞
			record := model.LikeRecord{
				UserUuid:   userUuid,
				TargetType: req.TargetType,
				TargetUuid: req.TargetUuid,
			}
			if err := txRepos.Interaction.CreateLike(&record); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.Liked = true
		case existing.DeletedAt.Valid:
			// 取消过，恢复原行
			if err := txRepos.Interaction.RestoreLike(existing.ID); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.Liked = true
		default:
			// 当前已点赞，本次为取消
			if err := txRepos.Interaction.SoftDeleteLike(existing.ID); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.Liked = false
		}

		delta := -1
		if rsp.Liked {
			delta = 1
		}
		if err := incrementLikeCount(txRepos, req.TargetType, req.TargetUuid, delta); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		rsp.LikeCnt = likeCnt + delta
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rsp.Liked && authorUuid != userUuid {
		s.notifier.Notify(authorUuid, userUuid, model.NotificationTypeLike,
			"你的内容收到了一个赞", req.TargetUuid)
	}
	return rsp, nil
}

// CreateFolder 创建收藏夹
func (s *interactionService) CreateFolder(userUuid string, req request.CreateFolderRequest) (*respond.FolderRespond, error) {
	folder := model.CollectionFolder{
		Uuid:     fmt.Sprintf("D%s", random.GetNowAndLenRandomString(11)),
		UserUuid: userUuid,
		Name:     req.Name,
	}
	if err := s.repos.Interaction.CreateFolder(&folder); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return &respond.FolderRespond{
		Uuid:      folder.Uuid,
		Name:      folder.Name,
		ItemCnt:   folder.ItemCnt,
		CreatedAt: folder.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// GetFolders 查看用户的收藏夹列表
// 查看他人收藏夹时按收藏夹可见性过滤
func (s *interactionService) GetFolders(viewer authz.Principal, ownerUuid string) ([]respond.FolderRespond, error) {
	if viewer.UserUuid != ownerUuid {
		profile, err := s.repos.User.FindProfileByUserUuid(ownerUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
			}
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		visible, err := s.visibility.CanViewProfile(viewer, ownerUuid, profile.CollectionVisibility)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		if !visible {
			return nil, errorx.New(errorx.CodeForbidden, "对方的收藏不可见")
		}
	}

	folders, err := s.repos.Interaction.FindFoldersByUserUuid(ownerUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.FolderRespond, 0, len(folders))
	for _, f := range folders {
		rspList = append(rspList, respond.FolderRespond{
			Uuid:      f.Uuid,
			Name:      f.Name,
			ItemCnt:   f.ItemCnt,
			CreatedAt: f.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rspList, nil
}

// checkFolderOwner 校验收藏夹归属
func (s *interactionService) checkFolderOwner(folderUuid, userUuid string) (*model.CollectionFolder, error) {
	folder, err := s.repos.Interaction.FindFolderByUuid(folderUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "收藏夹不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if folder.UserUuid != userUuid {
		return nil, errorx.ErrForbidden
	}
	return folder, nil
}

// CollectPost 收藏帖子
// 收藏条目与收藏夹计数同事务提交
func (s *interactionService) CollectPost(userUuid string, req request.CollectPostRequest) error {
	if _, err := s.checkFolderOwner(req.FolderUuid, userUuid); err != nil {
		return err
	}
	if _, err := s.repos.Post.FindByUuid(req.PostUuid); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "帖子不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if _, err := s.repos.Interaction.FindItem(req.FolderUuid, req.PostUuid); err == nil {
		return errorx.New(errorx.CodeConflict, "已收藏过该帖子")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	return s.repos.Transaction(func(txRepos *repository.Repositories) error {
		item := model.CollectionItem{
			FolderUuid: req.FolderUuid,
			PostUuid:   req.PostUuid,
		}
		if err := txRepos.Interaction.CreateItem(&item); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Interaction.IncrementItemCount(req.FolderUuid, 1); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
}

// UncollectPost 取消收藏
func (s *interactionService) UncollectPost(userUuid string, req request.UncollectPostRequest) error {
	if _, err := s.checkFolderOwner(req.FolderUuid, userUuid); err != nil {
		return err
	}
	if _, err := s.repos.Interaction.FindItem(req.FolderUuid, req.PostUuid); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "未收藏该帖子")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	return s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Interaction.DeleteItem(req.FolderUuid, req.PostUuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Interaction.IncrementItemCount(req.FolderUuid, -1); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
}

// GetFolderItems 分页查看收藏夹内的帖子
func (s *interactionService) GetFolderItems(viewer authz.Principal, folderUuid string, page, pageSize int) (*respond.GetPostListWrapper, error) {
	folder, err := s.repos.Interaction.FindFolderByUuid(folderUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "收藏夹不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if folder.UserUuid != viewer.UserUuid {
		profile, err := s.repos.User.FindProfileByUserUuid(folder.UserUuid)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		visible, err := s.visibility.CanViewProfile(viewer, folder.UserUuid, profile.CollectionVisibility)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		if !visible {
			return nil, errorx.New(errorx.CodeForbidden, "对方的收藏不可见")
		}
	}

	items, total, err := s.repos.Interaction.FindItemsByFolder(folderUuid, page, pageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.PostRespond, 0, len(items))
	for _, item := range items {
		post, err := s.repos.Post.FindByUuid(item.PostUuid)
		if err != nil {
			// 帖子已删除，条目保留但不展示
			continue
		}
		list = append(list, respond.PostRespond{
			Uuid:       post.Uuid,
			ForumUuid:  post.ForumUuid,
			AuthorUuid: post.AuthorUuid,
			Title:      post.Title,
			Content:    post.Content,
			ViewCnt:    post.ViewCnt,
			LikeCnt:    post.LikeCnt,
			CommentCnt: post.CommentCnt,
			IsPinned:   post.IsPinned,
			CreatedAt:  post.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return &respond.GetPostListWrapper{List: list, Total: total}, nil
}

// ToggleFollow 关注/取关切换
// 关注记录软删除复用原行；关注数与粉丝数同事务增减
func (s *interactionService) ToggleFollow(userUuid string, req request.ToggleFollowRequest) (*respond.ToggleFollowRespond, error) {
	if userUuid == req.TargetUuid {
		return nil, errorx.New(errorx.CodeInvalidParam, "不能关注自己")
	}
	if _, err := s.repos.User.FindByUuid(req.TargetUuid); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rsp := &respond.ToggleFollowRespond{}
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		existing, err := txRepos.Interaction.FindFollowUnscoped(userUuid, req.TargetUuid)
		if err != nil && !errorx.IsNotFound(err) {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}

		switch {
		case err != nil:
			follow := model.UserFollow{
				FollowerUuid: userUuid,
				FolloweeUuid: req.TargetUuid,
			}
			if err := txRepos.Interaction.CreateFollow(&follow); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.Following = true
		case existing.DeletedAt.Valid:
			if err := txRepos.Interaction.RestoreFollow(existing.ID); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.Following = true
		default:
			if err := txRepos.Interaction.SoftDeleteFollow(existing.ID); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
			rsp.Following = false
		}

		delta := -1
		if rsp.Following {
			delta = 1
		}
		if err := txRepos.User.IncrementFollowCnt(userUuid, delta); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.User.IncrementFansCnt(req.TargetUuid, delta); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if rsp.Following {
		s.notifier.Notify(req.TargetUuid, userUuid, model.NotificationTypeFollow,
			"你有了一个新粉丝", userUuid)
	}
	return rsp, nil
}

// GetFollowees 查看用户关注的人
func (s *interactionService) GetFollowees(userUuid string) ([]respond.GetProfileRespond, error) {
	follows, err := s.repos.Interaction.FindFollowees(userUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	uuids := make([]string, 0, len(follows))
	for _, f := range follows {
		uuids = append(uuids, f.FolloweeUuid)
	}
	return s.briefProfiles(uuids)
}

// GetFollowers 查看用户的粉丝
func (s *interactionService) GetFollowers(userUuid string) ([]respond.GetProfileRespond, error) {
	follows, err := s.repos.Interaction.FindFollowers(userUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	uuids := make([]string, 0, len(follows))
	for _, f := range follows {
		uuids = append(uuids, f.FollowerUuid)
	}
	return s.briefProfiles(uuids)
}

// briefProfiles 批量构建简要资料（关注/粉丝列表只展示昵称头像）
func (s *interactionService) briefProfiles(uuids []string) ([]respond.GetProfileRespond, error) {
	profiles, err := s.repos.User.FindProfilesByUserUuids(uuids)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	rspList := make([]respond.GetProfileRespond, 0, len(profiles))
	for _, p := range profiles {
		rspList = append(rspList, respond.GetProfileRespond{
			Uuid:     p.UserUuid,
			Nickname: p.Nickname,
			Avatar:   p.Avatar,
		})
	}
	return rspList, nil
}
