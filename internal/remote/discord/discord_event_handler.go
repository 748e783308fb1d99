package discord

import (
	"context"
	"fmt"

	"github.com/isleen/lilybot/internal/event"
)

// Handle publishes the session events worth a channel message. Per-action
// spam stays out of the channel; it is visible in the live status instead.
func (b *Bot) Handle(ctx context.Context, e event.Event) error {
	switch e.Type {
	case event.EncounterStarted, event.EncounterFinished, event.MemberDown, event.MemberRaised:
		return b.sendEventMessage(e)
	default:
		return nil
	}
}

func (b *Bot) sendEventMessage(e event.Event) error {
	message := fmt.Sprintf("**[%s]** %s", e.SessionID, e.Message)
	_, err := b.discordSession.ChannelMessageSend(b.channelID, message)
	return err
}
