// Package mq 封装 Kafka 消息队列
// 两个主题：通知事件（异步落库+实时推送）和成员关系异步切换
package mq

import (
	"context"
	"errors"

	myconfig "github.com/WhiteCrowZero/MinTieba/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ctx = context.Background()

type kafkaService struct {
	NotificationWriter *kafka.Writer
	NotificationReader *kafka.Reader
	ToggleWriter       *kafka.Writer
	ToggleReader       *kafka.Reader
	KafkaConn          *kafka.Conn
}

var KafkaService = new(kafkaService)

// KafkaInit 初始化 kafka 读写器
func (k *kafkaService) KafkaInit() {
	kafkaConfig := myconfig.GetConfig().KafkaConfig
	k.NotificationWriter = &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.NotificationTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           kafkaConfig.Timeout,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: false,
	}
	k.NotificationReader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{kafkaConfig.HostPort},
		Topic:          kafkaConfig.NotificationTopic,
		CommitInterval: kafkaConfig.Timeout,
		GroupID:        "notification",
		StartOffset:    kafka.LastOffset,
	})
	// 成员切换事件要求至少一次投递，使用 RequireOne
	k.ToggleWriter = &kafka.Writer{
		Addr:                   kafka.TCP(kafkaConfig.HostPort),
		Topic:                  kafkaConfig.MemberToggleTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           kafkaConfig.Timeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: false,
	}
	k.ToggleReader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{kafkaConfig.HostPort},
		Topic:          kafkaConfig.MemberToggleTopic,
		CommitInterval: kafkaConfig.Timeout,
		GroupID:        "member_toggle",
		StartOffset:    kafka.LastOffset,
	})
}

// KafkaClose 关闭读写器
func (k *kafkaService) KafkaClose() {
	for _, c := range []interface{ Close() error }{
		k.NotificationWriter, k.NotificationReader, k.ToggleWriter, k.ToggleReader,
	} {
		if c != nil {
			if err := c.Close(); err != nil {
				zap.L().Error(err.Error())
			}
		}
	}
}

// CreateTopic 创建 topic
// 如果已经有 topic 了，就不创建了
func (k *kafkaService) CreateTopic() {
	kafkaConfig := myconfig.GetConfig().KafkaConfig

	// 连接至任意 kafka 节点
	var err error
	k.KafkaConn, err = kafka.Dial("tcp", kafkaConfig.HostPort)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             kafkaConfig.NotificationTopic,
			NumPartitions:     kafkaConfig.Partition,
			ReplicationFactor: 1,
		},
		{
			Topic:             kafkaConfig.MemberToggleTopic,
			NumPartitions:     kafkaConfig.Partition,
			ReplicationFactor: 1,
		},
	}

	if err = k.KafkaConn.CreateTopics(topicConfigs...); err != nil {
		zap.L().Error(err.Error())
	}
}

// ErrKafkaDisabled Kafka 未启用时写入返回的错误
var ErrKafkaDisabled = errors.New("kafka is not enabled")

// WriteNotification 发送通知事件
func (k *kafkaService) WriteNotification(ctx context.Context, key, value []byte) error {
	if k.NotificationWriter == nil {
		return ErrKafkaDisabled
	}
	return k.NotificationWriter.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// WriteToggleEvent 发送成员关系切换事件
// key 为 forum uuid，同一贴吧的事件落入同一分区保证顺序
func (k *kafkaService) WriteToggleEvent(ctx context.Context, key, value []byte) error {
	if k.ToggleWriter == nil {
		return ErrKafkaDisabled
	}
	return k.ToggleWriter.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}
