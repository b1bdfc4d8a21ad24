package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/config"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/ledger"
	"max.ks1230/expense-ledger/internal/model/messages"
	"max.ks1230/expense-ledger/internal/model/reports"
	"max.ks1230/expense-ledger/internal/model/storage"
)

const (
	prompt      = "> "
	localChatID = 0
	quitCommand = "/quit"
)

type consoleSender struct {
	out io.Writer
}

func (c consoleSender) SendMessage(text string, _ int64) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}

func main() {
	defer logger.Sync()

	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	store, closeStore, err := storage.New(conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer closeStore()

	handler := messages.NewHandler(
		ledger.NewService(conf.App(), store, nil),
		reports.NewGenerator(conf.App(), store, nil),
		nil,
	)
	msgService := messages.NewService(consoleSender{out: os.Stdout}, handler)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	run(ctx, os.Stdin, msgService)
}

func run(ctx context.Context, in io.Reader, msgService *messages.Service) {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		text := scanner.Text()
		if text == quitCommand {
			return
		}
		if text != "" {
			// the reply is already printed, the error only needs logging
			if err := msgService.HandleIncomingMessage(ctx, messages.Message{Text: text, ChatID: localChatID}); err != nil {
				logger.Debug("command failed", zap.Error(err))
			}
		}
		fmt.Print(prompt)
	}
}
