package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/config"
	dao "github.com/WhiteCrowZero/MinTieba/internal/dao/mysql"
	myredis "github.com/WhiteCrowZero/MinTieba/internal/dao/redis"
	"github.com/WhiteCrowZero/MinTieba/internal/gateway/websocket"
	"github.com/WhiteCrowZero/MinTieba/internal/handler"
	"github.com/WhiteCrowZero/MinTieba/internal/http_server"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/logger"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/mq"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/sms"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
	"github.com/WhiteCrowZero/MinTieba/pkg/constants"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/jwt"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 4. 初始化雪花算法与 JWT
	snowflake.Init(conf.SnowflakeConfig.MachineID)
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 5. 初始化数据库与 Redis
	repos := dao.Init()
	zap.L().Info("数据库初始化成功")
	myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 6. 初始化 SMS Service
	smsService, err := sms.Init(myredis.GetCacheService())
	if err != nil {
		zap.L().Fatal("SMS Service 初始化失败", zap.Error(err))
	}

	// 7. 初始化 Service 层（依赖注入）
	service.InitServices(repos, myredis.GetCacheService(), smsService)
	zap.L().Info("Service 层初始化成功")

	// 8. 通知推送通道：websocket 连接管理器实现 mq.NotificationPusher
	mq.SetNotificationPusher(websocket.Manager)

	// 9. Kafka 启用时启动消费端，未启用时通知同步落库
	if conf.KafkaConfig.Enabled {
		mq.KafkaService.KafkaInit()
		mq.KafkaService.CreateTopic()
		go mq.StartNotificationConsumer(service.Svc.Notification.HandleEvent)
		go mq.StartToggleConsumer(service.Svc.Member.ApplyToggle)
		zap.L().Info("Kafka 消费端启动成功")
	}

	// 10. 启动成员计数对账任务
	service.Svc.Member.StartReconciler(constants.MEMBER_COUNT_RECONCILE_MINUTES * time.Minute)

	// 11. 初始化 HTTP 服务器
	handlers := handler.NewHandlers(service.Svc)
	engine := http_server.Init(handlers, service.Svc)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("服务器启动成功", zap.String("addr", srv.Addr))

	// 等待退出信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}

	if conf.KafkaConfig.Enabled {
		mq.KafkaService.KafkaClose()
	}

	zap.L().Info("服务器已关闭")
}
