package kafka

import (
	"context"
	"strconv"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	ReportsTopic() string
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func newSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	return config
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := newSaramaConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create sync producer")
	}
	return &Producer{
		producer: producer,
		topic:    cfg.ReportsTopic(),
	}, nil
}

// RequestReport enqueues a report for chatID and returns the request id.
func (p *Producer) RequestReport(ctx context.Context, chatID int64, kind string) (uuid.UUID, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "requestReport")
	defer span.Finish()

	req := ReportRequest{
		RequestID: uuid.New(),
		ChatID:    chatID,
		Kind:      kind,
	}
	raw, err := encodeRequest(req)
	if err != nil {
		return uuid.Nil, err
	}

	_, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(chatID, 10)),
		Value: sarama.ByteEncoder(raw),
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "send report request")
	}
	logger.Info("report requested",
		zap.String("requestID", req.RequestID.String()),
		zap.String("kind", kind),
		zap.Int64("offset", offset),
	)
	return req.RequestID, nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
