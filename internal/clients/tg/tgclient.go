package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/messages"
)

const (
	defaultUpdateOffset  = 0
	updateTimeoutSeconds = 60
	handleTimeout        = 5 * time.Second
)

type tokenGetter interface {
	Token() string
}

type messageHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	_, err := c.client.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// ListenUpdates blocks until ctx is cancelled.
func (c *Client) ListenUpdates(ctx context.Context, handler messageHandler) {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updateTimeoutSeconds

	updates := c.client.GetUpdatesChan(u)
	defer c.client.StopReceivingUpdates()

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for messages")
			return
		case update := <-updates:
			c.listenOnce(ctx, update, handler)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, update tgbotapi.Update, handler messageHandler) {
	if update.Message == nil {
		return
	}
	logger.Info(update.Message.Text, zap.Int64("chat", update.Message.Chat.ID))

	ctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	err := handler.HandleIncomingMessage(ctx, messages.Message{
		Text:   update.Message.Text,
		ChatID: update.Message.Chat.ID,
	})
	if err != nil {
		logger.Error("error processing message", zap.Error(err))
	}
}
