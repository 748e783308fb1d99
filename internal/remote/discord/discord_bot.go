package discord

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/isleen/lilybot/internal/config"
	"github.com/isleen/lilybot/internal/sim"
)

type Bot struct {
	discordSession *discordgo.Session
	channelID      string
	manager        *sim.Manager
}

func NewBot(token, channelID string, manager *sim.Manager) (*Bot, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		discordSession: dg,
		channelID:      channelID,
		manager:        manager,
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.discordSession.AddHandler(b.onMessageCreated)
	b.discordSession.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	err := b.discordSession.Open()
	if err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	// Wait until context is finished
	<-ctx.Done()

	return b.discordSession.Close()
}

func (b *Bot) onMessageCreated(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}

	if !slices.Contains(config.Lilybot.Discord.BotAdmins, m.Author.ID) {
		return
	}

	if !strings.HasPrefix(m.Content, "!") {
		return
	}

	prefix := strings.Split(m.Content, " ")[0]
	switch prefix {
	case "!start":
		b.handleStartRequest(s, m)
	case "!stop":
		b.handleStopRequest(s, m)
	case "!status":
		b.handleStatusRequest(s, m)
	case "!report":
		b.handleReportRequest(s, m)
	case "!help":
		b.handleHelpRequest(s, m)
	default:
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Unknown command: `%s`. Type `!help` for available commands.", prefix))
	}
}

func (b *Bot) handleStartRequest(s *discordgo.Session, m *discordgo.MessageCreate) {
	parts := strings.Fields(m.Content)
	if len(parts) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!start <character>`")
		return
	}

	id, err := b.manager.Start(parts[1])
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Error: "+err.Error())
		return
	}
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Started session `%s` for **%s**", id, parts[1]))
}

func (b *Bot) handleStopRequest(s *discordgo.Session, m *discordgo.MessageCreate) {
	parts := strings.Fields(m.Content)
	if len(parts) < 2 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!stop <session>`")
		return
	}

	if err := b.manager.Stop(parts[1]); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Error: "+err.Error())
		return
	}
	s.ChannelMessageSend(m.ChannelID, "Stopped session `"+parts[1]+"`")
}

func (b *Bot) handleStatusRequest(s *discordgo.Session, m *discordgo.MessageCreate) {
	statuses := b.manager.Status()
	if len(statuses) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No sessions running.")
		return
	}

	var sb strings.Builder
	for _, status := range statuses {
		fmt.Fprintf(&sb, "**%s** (`%s`) at %s - MP %d, lilies %d, last action: %s\n",
			status.Encounter, status.ID, status.Clock, status.MP, status.Lilies, status.Debug.LastAction)
	}
	s.ChannelMessageSend(m.ChannelID, sb.String())
}

func (b *Bot) handleReportRequest(s *discordgo.Session, m *discordgo.MessageCreate) {
	reports := b.manager.Reports()
	if len(reports) == 0 {
		s.ChannelMessageSend(m.ChannelID, "No finished sessions yet.")
		return
	}

	r := reports[len(reports)-1]
	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(
		"**%s** (%s): %d healing, %d damage, %d deaths, %d raises, %d interrupted casts",
		r.Encounter, r.Duration, r.TotalHealing, r.TotalDamage, r.Deaths, r.Raises, r.Interrupts))
}

func (b *Bot) handleHelpRequest(s *discordgo.Session, m *discordgo.MessageCreate) {
	s.ChannelMessageSend(m.ChannelID, strings.Join([]string{
		"`!start <character>` - run the character's configured encounter",
		"`!stop <session>` - cancel a running session",
		"`!status` - live session overview",
		"`!report` - last finished session report",
	}, "\n"))
}
