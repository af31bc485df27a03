// Package message 实现私信业务逻辑
// 私信正文使用 AES-GCM 加密落库，读取时解密
package message

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/config"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/mq"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/aes"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/random"
)

// messageService 私信业务逻辑实现
type messageService struct {
	repos *repository.Repositories
}

// NewMessageService 构造函数
func NewMessageService(repos *repository.Repositories) *messageService {
	return &messageService{repos: repos}
}

// aesKey 私信加密密钥
func aesKey() []byte {
	return []byte(config.GetConfig().MessageConfig.AesKey)
}

// normalizePair 会话双方按字典序归一化，保证 (A,B) 与 (B,A) 落到同一会话
func normalizePair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// resolveThread 查找或创建两用户间的会话
func (s *messageService) resolveThread(txRepos *repository.Repositories, senderUuid, receiverUuid string) (*model.MessageThread, error) {
	userA, userB := normalizePair(senderUuid, receiverUuid)
	thread, err := txRepos.Message.FindThread(userA, userB)
	if err == nil {
		return thread, nil
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	newThread := model.MessageThread{
		Uuid:      fmt.Sprintf("T%s", random.GetNowAndLenRandomString(11)),
		UserAUuid: userA,
		UserBUuid: userB,
	}
	if err := txRepos.Message.CreateThread(&newThread); err != nil {
		// 并发首次互发时唯一约束兜底，重查一次
		if errorx.GetCode(err) == errorx.CodeConflict {
			return txRepos.Message.FindThread(userA, userB)
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return &newThread, nil
}

// SendMessage 发送私信
// 正文加密落库后向在线的接收方推送明文载荷
func (s *messageService) SendMessage(senderUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error) {
	if senderUuid == req.ReceiverUuid {
		return nil, errorx.New(errorx.CodeInvalidParam, "不能给自己发私信")
	}
	if _, err := s.repos.User.FindByUuid(req.ReceiverUuid); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	ciphertext, err := aes.Encrypt([]byte(req.Content), aesKey())
	if err != nil {
		zap.L().Error("私信加密失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	var message model.PrivateMessage
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		thread, err := s.resolveThread(txRepos, senderUuid, req.ReceiverUuid)
		if err != nil {
			return err
		}
		message = model.PrivateMessage{
			Uuid:       fmt.Sprintf("M%s", random.GetNowAndLenRandomString(11)),
			ThreadUuid: thread.Uuid,
			SenderUuid: senderUuid,
			Content:    ciphertext,
		}
		if err := txRepos.Message.CreateMessage(&message); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rsp := &respond.MessageRespond{
		Uuid:       message.Uuid,
		ThreadUuid: message.ThreadUuid,
		SenderUuid: senderUuid,
		Content:    req.Content,
		IsRead:     0,
		CreatedAt:  message.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	// 接收方在线时实时推送明文
	if pusher := mq.GetNotificationPusher(); pusher != nil {
		if payload, err := json.Marshal(rsp); err == nil {
			pusher.PushToUser(req.ReceiverUuid, payload)
		}
	}
	return rsp, nil
}

// GetThreads 查看本人的私信会话列表
func (s *messageService) GetThreads(userUuid string) ([]respond.ThreadRespond, error) {
	threads, err := s.repos.Message.FindThreadsByUser(userUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.ThreadRespond, 0, len(threads))
	for _, t := range threads {
		peer := t.UserAUuid
		if peer == userUuid {
			peer = t.UserBUuid
		}
		rspList = append(rspList, respond.ThreadRespond{
			Uuid:      t.Uuid,
			PeerUuid:  peer,
			UpdatedAt: t.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rspList, nil
}

// GetMessages 分页查看会话内私信并标记对方消息已读
// 仅会话双方可以查看
func (s *messageService) GetMessages(userUuid string, req request.GetMessageListRequest) (*respond.GetMessageListWrapper, error) {
	thread, err := s.repos.Message.FindThreadByUuid(req.ThreadUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if thread.UserAUuid != userUuid && thread.UserBUuid != userUuid {
		return nil, errorx.ErrForbidden
	}

	messages, total, err := s.repos.Message.FindMessagesByThread(req.ThreadUuid, req.Page, req.PageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.MessageRespond, 0, len(messages))
	for _, m := range messages {
		plaintext, err := aes.Decrypt(m.Content, aesKey())
		if err != nil {
			zap.L().Error("私信解密失败", zap.String("messageUuid", m.Uuid), zap.Error(err))
			continue
		}
		list = append(list, respond.MessageRespond{
			Uuid:       m.Uuid,
			ThreadUuid: m.ThreadUuid,
			SenderUuid: m.SenderUuid,
			Content:    string(plaintext),
			IsRead:     m.IsRead,
			CreatedAt:  m.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if err := s.repos.Message.MarkThreadRead(req.ThreadUuid, userUuid); err != nil {
		zap.L().Error(err.Error())
	}
	return &respond.GetMessageListWrapper{List: list, Total: total}, nil
}
