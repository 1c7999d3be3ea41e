package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tumorvision/internal/container"
	"tumorvision/internal/content"
	"tumorvision/internal/domain/entity"
)

var (
	errTooLarge    = errors.New("file too large")
	errUnsupported = errors.New("unsupported file type")
)

// Bot is the Telegram front end: scan upload, result page and chatbot.
type Bot struct {
	api       *tgbotapi.BotAPI
	app       *container.Container
	logger    *slog.Logger
	maxUpload int64
	client    *http.Client
}

// NewBot authorizes with the token and returns a bot ready to Run.
func NewBot(token string, app *container.Container, maxUpload int64, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram authorization: %w", err)
	}

	logger.Info("authorized on telegram", "account", api.Self.UserName)

	return &Bot{
		api:       api,
		app:       app,
		logger:    logger,
		maxUpload: maxUpload,
		client:    http.DefaultClient,
	}, nil
}

// Run processes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	user, err := b.app.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.logger.Error("get user", "user_id", msg.From.ID, "error", err)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	up, err := scanUpload(msg)
	if err != nil {
		b.sendMessage(msg.Chat.ID, errorReply(err))
		return
	}
	if up != nil {
		if !user.AwaitingScan() {
			b.sendMessage(msg.Chat.ID, msgDetectFirst)
			return
		}
		b.handleScan(ctx, msg.Chat.ID, user, up)
		return
	}

	if msg.Text != "" {
		b.handleChat(ctx, msg)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		if _, err := b.app.UserService.Cancel(ctx, user.ID, chatID); err != nil {
			b.logger.Error("save user state", "user_id", user.ID, "error", err)
		}
		b.sendMessage(chatID, content.Home)

	case "about":
		b.sendMessage(chatID, content.About)

	case "help":
		b.sendMessage(chatID, content.Help)

	case "detect":
		if _, err := b.app.UserService.BeginScan(ctx, user.ID, chatID); err != nil {
			b.logger.Error("save user state", "user_id", user.ID, "error", err)
		}
		b.sendMessage(chatID, msgAwaitingScan)

	case "cancel":
		if _, err := b.app.UserService.Cancel(ctx, user.ID, chatID); err != nil {
			b.logger.Error("save user state", "user_id", user.ID, "error", err)
		}
		b.sendMessage(chatID, msgCancelled)

	case "reset":
		if err := b.app.ChatService.Reset(ctx, sessionID(chatID)); err != nil {
			b.logger.Error("reset chat", "chat_id", chatID, "error", err)
			b.sendMessage(chatID, content.Failure)
			return
		}
		b.sendMessage(chatID, msgHistoryCleared)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleScan downloads an uploaded image and replies with the diagnosis.
// The pending /detect is consumed whatever the outcome.
func (b *Bot) handleScan(ctx context.Context, chatID int64, user *entity.User, up *upload) {
	defer func() {
		if _, err := b.app.UserService.FinishScan(ctx, user); err != nil {
			b.logger.Error("finish scan", "user_id", user.ID, "error", err)
		}
	}()

	if up.size > b.maxUpload {
		b.sendMessage(chatID, errorReply(errTooLarge))
		return
	}

	b.sendMessage(chatID, msgVerifying)

	data, err := b.downloadFile(ctx, up.fileID)
	if err != nil {
		b.logger.Error("download scan", "chat_id", chatID, "error", err)
		b.sendMessage(chatID, errorReply(err))
		return
	}

	diagnosis, err := b.app.DiagnosisService.Diagnose(ctx, data)
	if err != nil {
		b.logger.Error("diagnose scan", "chat_id", chatID, "bytes", len(data), "error", err)
		b.sendMessage(chatID, errorReply(err))
		return
	}

	b.sendMessage(chatID, diagnosisReply(diagnosis))
}

func (b *Bot) handleChat(ctx context.Context, msg *tgbotapi.Message) {
	reply, err := b.app.ChatService.Send(ctx, sessionID(msg.Chat.ID), msg.Text)
	if err != nil {
		if !errors.Is(err, entity.ErrEmptyMessage) {
			b.logger.Error("chat", "chat_id", msg.Chat.ID, "error", err)
			b.sendMessage(msg.Chat.ID, content.Failure)
		}
		return
	}
	b.sendMessage(msg.Chat.ID, reply.Text)
}

// downloadFile fetches a Telegram file, refusing anything above maxUpload.
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, b.maxUpload+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > b.maxUpload {
		return nil, errTooLarge
	}

	return data, nil
}

// sendMessage sends text, split to fit the message size limit
func (b *Bot) sendMessage(chatID int64, text string) {
	for _, chunk := range chunkText(text, maxMessageRunes) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Error("send message", "chat_id", chatID, "error", err)
			return
		}
	}
}
