package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hourlogger/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
)

func newBotCommand(a *app) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.TelegramToken == "" {
				return errors.New("TELEGRAM_TOKEN is required")
			}

			if len(a.cfg.AdminIDs) == 0 {
				log.Println("Warning: ADMIN_IDS not set, some commands will be unavailable")
			}

			bot, err := tgbotapi.NewBotAPI(a.cfg.TelegramToken)
			if err != nil {
				return err
			}

			bot.Debug = debug
			log.Printf("Authorized on account %s", bot.Self.UserName)

			handler := handlers.NewBotHandler(bot, a.svc, a.cfg)
			defer handler.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runUpdates(ctx, bot, handler)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "log Telegram API traffic")

	return cmd
}

// runUpdates обрабатывает обновления последовательно - один писатель
func runUpdates(ctx context.Context, bot *tgbotapi.BotAPI, handler *handlers.BotHandler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			log.Println("Bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			if update.CallbackQuery != nil {
				handler.HandleCallback(update)
				continue
			}

			handler.HandleMessage(update)
		}
	}
}
