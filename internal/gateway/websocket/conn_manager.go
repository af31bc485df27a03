// Package websocket 实现通知实时推送网关
// 用户登录后建立长连接，新通知经 Kafka 消费落库后推送到在线连接；
// 离线用户不推送，登录后通过通知列表接口拉取
package websocket

import (
	"net/http"
	"sync"

	"github.com/WhiteCrowZero/MinTieba/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client 一条用户长连接
type Client struct {
	Conn *websocket.Conn
	Uuid string
	Send chan []byte // 待推送的通知
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 检查连接的 Origin 头
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ConnManager 在线连接管理器
// 同一用户重复连接时新连接顶替旧连接
type ConnManager struct {
	clients map[string]*Client
	mutex   sync.Mutex
}

// Manager 全局连接管理器
var Manager = &ConnManager{
	clients: make(map[string]*Client),
}

// register 登记连接，顶掉同一用户的旧连接
func (m *ConnManager) register(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if old, ok := m.clients[client.Uuid]; ok {
		close(old.Send)
		_ = old.Conn.Close()
	}
	m.clients[client.Uuid] = client
}

// unregister 注销连接（仅当仍是当前连接时）
func (m *ConnManager) unregister(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if cur, ok := m.clients[client.Uuid]; ok && cur == client {
		delete(m.clients, client.Uuid)
		close(client.Send)
	}
	_ = client.Conn.Close()
}

// PushToUser 向在线用户推送通知
// 实现 mq.NotificationPusher 接口；用户不在线返回 false
func (m *ConnManager) PushToUser(userUuid string, payload []byte) bool {
	m.mutex.Lock()
	client, ok := m.clients[userUuid]
	m.mutex.Unlock()
	if !ok {
		return false
	}
	select {
	case client.Send <- payload:
		return true
	default:
		// 推送队列满：该连接已不健康，丢弃本次推送
		zap.L().Warn("notification send buffer full", zap.String("user_uuid", userUuid))
		return false
	}
}

// OnlineCount 当前在线连接数
func (m *ConnManager) OnlineCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.clients)
}

// read 读循环只用于感知断连
func (c *Client) read() {
	defer Manager.unregister(c)
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

// write 写循环：把 Send 通道中的通知写入连接
func (c *Client) write() {
	for payload := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Error("notification push failed", zap.String("user_uuid", c.Uuid), zap.Error(err))
			return
		}
	}
}

// NewClientInit 升级 HTTP 连接为 websocket 并登记到连接管理器
// 在用户通过 JWT 认证后调用
func NewClientInit(c *gin.Context, clientId string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := &Client{
		Conn: conn,
		Uuid: clientId,
		Send: make(chan []byte, constants.CHANNEL_SIZE),
	}
	Manager.register(client)
	go client.read()
	go client.write()
	zap.L().Info("notification ws connected", zap.String("user_uuid", clientId))
}
