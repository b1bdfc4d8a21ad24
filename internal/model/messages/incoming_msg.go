package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
)

const failureMessage = "Sorry, something wrong happened...\n"

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, chatID int64) (string, error)
}

type Service struct {
	sender  messageSender
	handler MessageHandler
}

func NewService(sender messageSender, handler MessageHandler) *Service {
	return &Service{
		sender:  sender,
		handler: handler,
	}
}

type Message struct {
	Text   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	cmd, _ := parseCommand(msg.Text)
	span.SetTag("command", cmd)
	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("message handling failed", zap.String("command", cmd), zap.Error(err))
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.ChatID)
	if err != nil {
		_ = s.sender.SendMessage(failureMessage+resp, msg.ChatID)
		return err
	}
	return s.sender.SendMessage(resp, msg.ChatID)
}
