package kafka

import (
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"packshare/pkg/logger"
)

const producerTimeout = 5 * time.Second

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewProducer(log logger.Logger, brokers []string, versionStr string) (*Producer, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Timeout = producerTimeout

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log:      log.With(logger.NewField("brokers", brokers)),
		producer: producer,
	}, nil
}

// Publish синхронная отправка, ключ определяет партицию.
func (p *Producer) Publish(topic string, key string, message []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(message),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send message to topic %s: %w", topic, err)
	}

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("message published")

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
