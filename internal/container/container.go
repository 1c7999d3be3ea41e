package container

import (
	"log/slog"

	app "tumorvision/internal/application"
	"tumorvision/internal/domain/port"
	"tumorvision/internal/infrastructure/vision"
)

type Container struct {
	UserService      *app.UserService
	ChatService      *app.ChatService
	DiagnosisService *app.DiagnosisService
}

// Options tunes request handling.
type Options struct {
	// MaxImagePixels caps width*height of an upload; 0 selects the decoder default.
	MaxImagePixels int
}

func New(userRepo port.UserRepository, chatRepo port.ChatRepository, model port.Model, opts Options, logger *slog.Logger) *Container {
	userService := app.NewUserService(userRepo)
	chatService := app.NewChatService(chatRepo)
	diagnosisService := app.NewDiagnosisService(
		vision.NewDecoder(opts.MaxImagePixels),
		vision.NewMRIGate(),
		vision.NewPreprocessor(),
		model,
		logger,
	)

	return &Container{
		UserService:      userService,
		ChatService:      chatService,
		DiagnosisService: diagnosisService,
	}
}
