package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/isleen/lilybot/internal/event"
	"github.com/isleen/lilybot/internal/sim"
)

type Bot struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	logger  *slog.Logger
	manager *sim.Manager
}

func NewBot(token string, chatID int64, logger *slog.Logger, manager *sim.Manager) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating telegram bot: %w", err)
	}

	return &Bot{
		bot:     bot,
		chatID:  chatID,
		logger:  logger,
		manager: manager,
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || update.Message.Chat.ID != b.chatID {
				continue
			}
			b.handleCommand(update.Message)
		}
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	args := strings.Fields(msg.Text)
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "/start":
		if len(args) < 2 {
			b.send("Usage: /start <character>")
			return
		}
		id, err := b.manager.Start(args[1])
		if err != nil {
			b.send(fmt.Sprintf("Error starting session: %v", err))
			return
		}
		b.send(fmt.Sprintf("Session %s started for %s", id, args[1]))
	case "/stop":
		if len(args) < 2 {
			b.send("Usage: /stop <session>")
			return
		}
		if err := b.manager.Stop(args[1]); err != nil {
			b.send(fmt.Sprintf("Error stopping session: %v", err))
			return
		}
		b.send(fmt.Sprintf("Session %s stopped", args[1]))
	case "/status":
		statuses := b.manager.Status()
		if len(statuses) == 0 {
			b.send("No active sessions")
			return
		}
		lines := make([]string, 0, len(statuses))
		for _, st := range statuses {
			lines = append(lines, fmt.Sprintf("%s | %s | %s | MP %d | party [%s]",
				st.ID, st.Encounter, st.Clock, st.MP, strings.Join(st.PartyHP, " ")))
		}
		b.send(strings.Join(lines, "\n"))
	}
}

// Handle forwards session events to the configured chat.
func (b *Bot) Handle(ctx context.Context, e event.Event) error {
	switch e.Type {
	case event.EncounterStarted, event.EncounterFinished, event.MemberDown, event.MemberRaised:
		return b.send(fmt.Sprintf("[%s] %s", e.SessionID, e.Message))
	default:
		return nil
	}
}

func (b *Bot) send(text string) error {
	_, err := b.bot.Send(tgbotapi.NewMessage(b.chatID, text))
	if err != nil {
		b.logger.Error("error sending telegram message", slog.Any("error", err))
	}
	return err
}
