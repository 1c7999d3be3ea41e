package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	telegram "tumorvision/internal/api"
	"tumorvision/internal/httpapi"
)

func newServeCmd() *cobra.Command {
	var runHTTP, runBot bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot and the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			env, err := newEnvironment(ctx)
			if err != nil {
				return err
			}
			defer env.Close()

			if !cmd.Flags().Changed("bot") {
				runBot = env.cfg.TelegramToken != ""
			}
			if runBot && env.cfg.TelegramToken == "" {
				return errors.New("TELEGRAM_TOKEN is required to run the bot")
			}
			if !runBot && !runHTTP {
				return errors.New("nothing to serve: enable --http or --bot")
			}

			return serve(ctx, env, runHTTP, runBot)
		},
	}

	cmd.Flags().BoolVar(&runHTTP, "http", true, "serve the HTTP API on HTTP_ADDR")
	cmd.Flags().BoolVar(&runBot, "bot", false, "run the Telegram bot (default: when TELEGRAM_TOKEN is set)")
	return cmd
}

func serve(ctx context.Context, env *environment, runHTTP, runBot bool) error {
	var bot *telegram.Bot
	if runBot {
		var err error
		bot, err = telegram.NewBot(env.cfg.TelegramToken, env.app, env.cfg.MaxUploadBytes, env.logger)
		if err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)

	if bot != nil {
		g.Go(func() error {
			env.logger.Info("bot is running")
			return bot.Run(ctx)
		})
	}

	if runHTTP {
		handler := httpapi.NewHandler(env.app, env.cfg.MaxUploadBytes, env.logger)
		srv := &http.Server{
			Addr:              env.cfg.HTTPAddr,
			Handler:           handler.NewRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			env.logger.Info("http api listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
