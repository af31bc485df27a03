// Package forum 实现贴吧业务逻辑
package forum

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	myredis "github.com/WhiteCrowZero/MinTieba/internal/dao/redis"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/random"
)

// forumService 贴吧业务逻辑实现
type forumService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewForumService 构造函数，注入所有依赖
func NewForumService(repos *repository.Repositories, cacheService myredis.AsyncCacheService) *forumService {
	return &forumService{
		repos: repos,
		cache: cacheService,
	}
}

func forumRespond(forum *model.Forum) respond.ForumRespond {
	return respond.ForumRespond{
		Uuid:        forum.Uuid,
		Name:        forum.Name,
		Description: forum.Description,
		Avatar:      forum.Avatar,
		OwnerUuid:   forum.OwnerUuid,
		MemberCnt:   forum.MemberCnt,
		PostCnt:     forum.PostCnt,
		Status:      forum.Status,
		CreatedAt:   forum.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateForum 创建贴吧
// 贴吧行与吧主成员行在同一事务内创建，吧主身份只能由创建动作产生
func (s *forumService) CreateForum(creatorUuid string, req request.CreateForumRequest) (*respond.ForumRespond, error) {
	if _, err := s.repos.Forum.FindByName(req.Name); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "贴吧名称已存在")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	forum := model.Forum{
		Uuid:        fmt.Sprintf("F%s", random.GetNowAndLenRandomString(11)),
		Name:        req.Name,
		Description: req.Description,
		OwnerUuid:   creatorUuid,
		MemberCnt:   1,
	}
	if req.Avatar != "" {
		forum.Avatar = req.Avatar
	}

	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Forum.Create(&forum); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		owner := model.ForumMember{
			ForumUuid: forum.Uuid,
			UserUuid:  creatorUuid,
			RoleType:  model.MemberRoleOwner,
			JoinedAt:  time.Now(),
		}
		if err := txRepos.ForumMember.Create(&owner); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if req.CategoryId > 0 {
			if err := txRepos.Forum.BindCategory(forum.Uuid, req.CategoryId); err != nil {
				zap.L().Error(err.Error())
				return errorx.ErrServerBusy
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.SubmitTask(func() {
		if err := s.cache.DeleteByPattern(context.Background(), "forum_list_*"); err != nil {
			zap.L().Error(err.Error())
		}
	})

	rsp := forumRespond(&forum)
	return &rsp, nil
}

// UpdateForum 更新贴吧信息
// 仅吧主或平台超级管理员可操作
func (s *forumService) UpdateForum(operator authz.Principal, req request.UpdateForumRequest) error {
	forum, err := s.repos.Forum.FindByUuid(req.ForumUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "贴吧不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if forum.OwnerUuid != operator.UserUuid && !operator.IsSuperAdmin() {
		return errorx.ErrForbidden
	}

	if req.Description != "" {
		forum.Description = req.Description
	}
	if req.Avatar != "" {
		forum.Avatar = req.Avatar
	}
	// 只更新资料列，计数器由原子表达式单独维护
	if err := s.repos.Forum.UpdateInfo(req.ForumUuid, forum.Description, forum.Avatar); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	s.cache.SubmitTask(func() {
		if err := s.cache.Delete(context.Background(), "forum_info_"+req.ForumUuid); err != nil {
			zap.L().Error(err.Error())
		}
	})
	return nil
}

// DismissForum 解散贴吧
// 仅吧主或平台超级管理员可操作；贴吧置为封禁状态，
// 成员关系与帖子保留，供后台回溯
func (s *forumService) DismissForum(operator authz.Principal, forumUuid string) error {
	forum, err := s.repos.Forum.FindByUuid(forumUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "贴吧不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if forum.OwnerUuid != operator.UserUuid && !operator.IsSuperAdmin() {
		return errorx.ErrForbidden
	}
	if forum.Status != 0 {
		return errorx.New(errorx.CodeConflict, "贴吧已解散")
	}

	if err := s.repos.Forum.UpdateStatus(forumUuid, 1); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	s.cache.SubmitTask(func() {
		if err := s.cache.DeleteByPatterns(context.Background(),
			[]string{"forum_info_" + forumUuid, "forum_list_*"}); err != nil {
			zap.L().Error(err.Error())
		}
	})
	return nil
}

// GetForumInfo 获取贴吧信息，带缓存
func (s *forumService) GetForumInfo(forumUuid string) (*respond.ForumRespond, error) {
	cacheKey := "forum_info_" + forumUuid

	rspString, err := s.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var rsp respond.ForumRespond
		if err := json.Unmarshal([]byte(rspString), &rsp); err == nil {
			return &rsp, nil
		}
		zap.L().Warn("Unmarshal forum info cache failed, fallback to DB", zap.String("forumUuid", forumUuid), zap.Error(err))
	} else if err != nil {
		zap.L().Error("Redis get error", zap.Error(err))
	}

	forum, err := s.repos.Forum.FindByUuid(forumUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "贴吧不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	rsp := forumRespond(forum)

	s.cache.SubmitTask(func() {
		rspBytes, err := json.Marshal(rsp)
		if err != nil {
			zap.L().Error(err.Error())
			return
		}
		if err := s.cache.Set(context.Background(), cacheKey, string(rspBytes), time.Minute*30); err != nil {
			zap.L().Error("Set cache error", zap.Error(err))
		}
	})
	return &rsp, nil
}

// GetForumList 分页获取贴吧列表，带缓存
func (s *forumService) GetForumList(req request.GetForumListRequest) (*respond.GetForumListWrapper, error) {
	cacheKey := fmt.Sprintf("forum_list_%d_%d", req.Page, req.PageSize)

	rspString, err := s.cache.Get(context.Background(), cacheKey)
	if err == nil && rspString != "" {
		var wrapper respond.GetForumListWrapper
		if err := json.Unmarshal([]byte(rspString), &wrapper); err == nil {
			return &wrapper, nil
		}
		zap.L().Error("Unmarshal forum list cache error", zap.Error(err))
	} else if err != nil {
		zap.L().Error("Redis get error", zap.Error(err))
	}

	forums, total, err := s.repos.Forum.GetForumList(req.Page, req.PageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 使用 make 初始化 len=0，确保序列化后是 [] 而不是 null
	list := make([]respond.ForumRespond, 0, len(forums))
	for i := range forums {
		list = append(list, forumRespond(&forums[i]))
	}
	wrapper := &respond.GetForumListWrapper{List: list, Total: total}

	s.cache.SubmitTask(func() {
		rspBytes, err := json.Marshal(wrapper)
		if err != nil {
			zap.L().Error(err.Error())
			return
		}
		if err := s.cache.Set(context.Background(), cacheKey, string(rspBytes), time.Minute*10); err != nil {
			zap.L().Error("Set cache error", zap.Error(err))
		}
	})
	return wrapper, nil
}

// GetMyForums 获取用户加入的贴吧列表
func (s *forumService) GetMyForums(userUuid string) ([]respond.ForumRespond, error) {
	members, err := s.repos.ForumMember.FindByUserUuid(userUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.ForumRespond, 0, len(members))
	for _, m := range members {
		forum, err := s.repos.Forum.FindByUuid(m.ForumUuid)
		if err != nil {
			continue
		}
		list = append(list, forumRespond(forum))
	}
	return list, nil
}

// GetCategories 获取贴吧分类列表
func (s *forumService) GetCategories() ([]respond.CategoryRespond, error) {
	categories, err := s.repos.Forum.FindCategories()
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.CategoryRespond, 0, len(categories))
	for _, c := range categories {
		rspList = append(rspList, respond.CategoryRespond{
			Id:        c.ID,
			Name:      c.Name,
			SortOrder: c.SortOrder,
		})
	}
	return rspList, nil
}

// CreateCategory 创建贴吧分类
func (s *forumService) CreateCategory(req request.CreateCategoryRequest) error {
	category := model.ForumCategory{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}
	if err := s.repos.Forum.CreateCategory(&category); err != nil {
		if errorx.GetCode(err) == errorx.CodeConflict {
			return errorx.New(errorx.CodeConflict, "分类名称已存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}
