// Package post 实现帖子与评论业务逻辑
package post

import (
	"fmt"
	"time"

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

// ForumAdminChecker 贴吧管理资格判定接口
type ForumAdminChecker interface {
	CanManageForum(principal authz.Principal, forumUuid string) (bool, error)
}

// postService 帖子业务逻辑实现
type postService struct {
	repos      *repository.Repositories
	notifier   Notifier
	forumAuthz ForumAdminChecker
}

// NewPostService 构造函数，注入所有依赖
func NewPostService(repos *repository.Repositories, notifier Notifier, forumAuthz ForumAdminChecker) *postService {
	return &postService{
		repos:      repos,
		notifier:   notifier,
		forumAuthz: forumAuthz,
	}
}

// checkCanPublish 校验用户在贴吧内的发布资格：须为在吧成员且未被封禁
func (s *postService) checkCanPublish(forumUuid, userUuid string) error {
	member, err := s.repos.ForumMember.FindByForumAndUser(forumUuid, userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeForbidden, "请先加入贴吧")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if member.IsBanActive(time.Now()) {
		return errorx.New(errorx.CodeForbidden, "封禁期间不能发帖回帖")
	}
	return nil
}

func postRespond(p *model.Post) respond.PostRespond {
	return respond.PostRespond{
		Uuid:       p.Uuid,
		ForumUuid:  p.ForumUuid,
		AuthorUuid: p.AuthorUuid,
		Title:      p.Title,
		Content:    p.Content,
		ViewCnt:    p.ViewCnt,
		LikeCnt:    p.LikeCnt,
		CommentCnt: p.CommentCnt,
		IsPinned:   p.IsPinned,
		CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreatePost 发帖
// 帖子创建与贴吧帖子数增加同事务提交
func (s *postService) CreatePost(authorUuid string, req request.CreatePostRequest) (*respond.PostRespond, error) {
	if _, err := s.repos.Forum.FindByUuid(req.ForumUuid); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "贴吧不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if err := s.checkCanPublish(req.ForumUuid, authorUuid); err != nil {
		return nil, err
	}

	post := model.Post{
		Uuid:       fmt.Sprintf("P%s", random.GetNowAndLenRandomString(11)),
		ForumUuid:  req.ForumUuid,
		AuthorUuid: authorUuid,
		Title:      req.Title,
		Content:    req.Content,
	}
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Post.Create(&post); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Forum.IncrementPostCount(req.ForumUuid, 1); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rsp := postRespond(&post)
	return &rsp, nil
}

// UpdatePost 编辑帖子，仅作者本人可操作
func (s *postService) UpdatePost(operatorUuid string, req request.UpdatePostRequest) error {
	post, err := s.repos.Post.FindByUuid(req.PostUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "帖子不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if post.AuthorUuid != operatorUuid {
		return errorx.ErrForbidden
	}

	post.Title = req.Title
	post.Content = req.Content
	if err := s.repos.Post.Update(post); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// DeletePost 删除帖子
// 作者本人、贴吧吧务或平台超级管理员可操作
func (s *postService) DeletePost(operator authz.Principal, postUuid string) error {
	post, err := s.repos.Post.FindByUuid(postUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "帖子不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if post.AuthorUuid != operator.UserUuid {
		allowed, err := s.forumAuthz.CanManageForum(operator, post.ForumUuid)
		if err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if !allowed {
			return errorx.ErrForbidden
		}
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Post.SoftDelete(postUuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Forum.IncrementPostCount(post.ForumUuid, -1); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	return err
}

// GetPost 获取帖子详情并累加浏览数
func (s *postService) GetPost(postUuid string) (*respond.PostRespond, error) {
	post, err := s.repos.Post.FindByUuid(postUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "帖子不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	if err := s.repos.Post.IncrementViewCount(postUuid); err != nil {
		zap.L().Error(err.Error())
	}
	rsp := postRespond(post)
	rsp.ViewCnt++
	return &rsp, nil
}

// GetPostList 分页获取贴吧帖子列表，置顶帖排前
func (s *postService) GetPostList(req request.GetPostListRequest) (*respond.GetPostListWrapper, error) {
	posts, total, err := s.repos.Post.GetPostList(req.ForumUuid, req.Page, req.PageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.PostRespond, 0, len(posts))
	for i := range posts {
		list = append(list, postRespond(&posts[i]))
	}
	return &respond.GetPostListWrapper{List: list, Total: total}, nil
}

// PinPost 置顶/取消置顶帖子，需贴吧管理资格
func (s *postService) PinPost(operator authz.Principal, req request.PinPostRequest) error {
	post, err := s.repos.Post.FindByUuid(req.PostUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "帖子不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	allowed, err := s.forumAuthz.CanManageForum(operator, post.ForumUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !allowed {
		return errorx.ErrForbidden
	}

	if err := s.repos.Post.UpdatePinned(req.PostUuid, req.IsPinned); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

func commentRespond(c *model.Comment) respond.CommentRespond {
	return respond.CommentRespond{
		Uuid:       c.Uuid,
		PostUuid:   c.PostUuid,
		AuthorUuid: c.AuthorUuid,
		ParentUuid: c.ParentUuid,
		Content:    c.Content,
		LikeCnt:    c.LikeCnt,
		CreatedAt:  c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateComment 发表评论或楼中楼回复
// 评论创建与帖子评论数增加同事务提交，并通知被回复方
func (s *postService) CreateComment(authorUuid string, req request.CreateCommentRequest) (*respond.CommentRespond, error) {
	post, err := s.repos.Post.FindByUuid(req.PostUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "帖子不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if err := s.checkCanPublish(post.ForumUuid, authorUuid); err != nil {
		return nil, err
	}

	// 楼中楼回复时校验父评论并确定通知接收人
	notifyReceiver := post.AuthorUuid
	if req.ParentUuid != "" {
		parent, err := s.repos.Comment.FindByUuid(req.ParentUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.New(errorx.CodeNotFound, "回复的评论不存在")
			}
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		if parent.PostUuid != req.PostUuid {
			return nil, errorx.New(errorx.CodeInvalidParam, "回复的评论不属于该帖子")
		}
		notifyReceiver = parent.AuthorUuid
	}

	comment := model.Comment{
		Uuid:       fmt.Sprintf("C%s", random.GetNowAndLenRandomString(11)),
		PostUuid:   req.PostUuid,
		AuthorUuid: authorUuid,
		ParentUuid: req.ParentUuid,
		Content:    req.Content,
	}
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Comment.Create(&comment); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Post.IncrementCommentCount(req.PostUuid, 1); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notifyReceiver != authorUuid {
		s.notifier.Notify(notifyReceiver, authorUuid, model.NotificationTypeComment,
			"你收到了一条新回复", req.PostUuid)
	}
	rsp := commentRespond(&comment)
	return &rsp, nil
}

// DeleteComment 删除评论
// 作者本人、贴吧吧务或平台超级管理员可操作
func (s *postService) DeleteComment(operator authz.Principal, commentUuid string) error {
	comment, err := s.repos.Comment.FindByUuid(commentUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "评论不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if comment.AuthorUuid != operator.UserUuid {
		post, err := s.repos.Post.FindByUuid(comment.PostUuid)
		if err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		allowed, err := s.forumAuthz.CanManageForum(operator, post.ForumUuid)
		if err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if !allowed {
			return errorx.ErrForbidden
		}
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Comment.SoftDelete(commentUuid); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		if err := txRepos.Post.IncrementCommentCount(comment.PostUuid, -1); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	return err
}

// GetCommentList 分页获取一级评论，附带楼中楼回复
func (s *postService) GetCommentList(req request.GetCommentListRequest) (*respond.GetCommentListWrapper, error) {
	comments, total, err := s.repos.Comment.GetCommentList(req.PostUuid, req.Page, req.PageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.CommentRespond, 0, len(comments))
	for i := range comments {
		rsp := commentRespond(&comments[i])
		replies, err := s.repos.Comment.FindReplies(comments[i].Uuid)
		if err != nil {
			zap.L().Error(err.Error())
			return nil, errorx.ErrServerBusy
		}
		for j := range replies {
			rsp.Replies = append(rsp.Replies, commentRespond(&replies[j]))
		}
		list = append(list, rsp)
	}
	return &respond.GetCommentListWrapper{List: list, Total: total}, nil
}
