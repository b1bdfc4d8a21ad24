package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
)

const failedReportMessage = "Sorry, the report could not be generated."

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, kind string) (string, error)
}

type reportSender interface {
	SendMessage(text string, chatID int64) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	generator     reportGenerator
	sender        reportSender
}

func NewConsumer(cfg consumerConfig, generator reportGenerator, sender reportSender) (*Consumer, error) {
	config := newSaramaConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "create consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ReportsTopic(),
		generator:     generator,
		sender:        sender,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrapf(err, "consume from %s", c.topic)
			}
		}
	}
}

func (c *Consumer) Close() error {
	return c.consumerGroup.Close()
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

// handleMessage never fails the claim: broken requests are logged and skipped.
func (c *Consumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	req, err := decodeRequest(message.Value)
	if err != nil {
		logger.Error("cannot decode kafka message", zap.ByteString("key", message.Key), zap.Error(err))
		return
	}
	logger.Info("received report request",
		zap.String("requestID", req.RequestID.String()),
		zap.Int64("chatID", req.ChatID),
		zap.String("kind", req.Kind),
	)
	c.processRequest(ctx, req)
}

func (c *Consumer) processRequest(ctx context.Context, req ReportRequest) {
	report, err := c.generator.GenerateReport(ctx, req.Kind)
	if err != nil {
		logger.Error("failed to generate report", zap.String("requestID", req.RequestID.String()), zap.Error(err))
		report = failedReportMessage
	}
	if err = c.sender.SendMessage(report, req.ChatID); err != nil {
		logger.Error("failed to send report", zap.String("requestID", req.RequestID.String()), zap.Error(err))
	}
}
