// Package dispatch turns raw gateway events into authorized, rate-limited
// command invocations and maps handler failures to user-facing messages.
package dispatch

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/peterhenryd/rowifi-v4/pkg/bucket"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
	"github.com/peterhenryd/rowifi-v4/pkg/confirm"
	"github.com/peterhenryd/rowifi-v4/pkg/permissions"
	"github.com/peterhenryd/rowifi-v4/pkg/standby"
)

// GuildConfig is the slice of per-guild settings the dispatcher reads.
type GuildConfig interface {
	Prefix(guildID string) string
	AdminRole(guildID string) string
	ChannelDisabled(guildID, channelID string) bool
}

// Dispatcher routes one inbound event through prefix resolution, command
// matching, authorization, rate limiting, argument binding and the handler.
// All fields are assigned once before the gateway opens.
type Dispatcher struct {
	Sender        commands.Sender
	BotUserID     string
	DefaultPrefix string

	Guilds  GuildConfig
	Global  *permissions.Global
	AuthFor func(guildID string) permissions.GuildAuth

	Buckets    *bucket.Registry
	Router     *standby.Standby
	Suppressed *confirm.Set
}

// HandleMessage processes one message-created event. discordgo runs each
// event handler on its own goroutine, so concurrent invocations (including
// confirmation waits) never block event intake.
func (d *Dispatcher) HandleMessage(m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.WebhookID != "" || m.GuildID == "" || m.Content == "" {
		return
	}

	guildPrefix := d.Guilds.Prefix(m.GuildID)

	rest, result := commands.ResolvePrefix(m.Content, guildPrefix, d.DefaultPrefix, d.BotUserID)
	switch result {
	case commands.PrefixNone:
		return
	case commands.PrefixOnly:
		prefix := guildPrefix
		if prefix == "" {
			prefix = d.DefaultPrefix
		}
		d.send(m.ChannelID, fmt.Sprintf("The prefix of this server is %s", prefix))
		return
	}

	args := commands.NewArguments(rest)
	cmd, ok := commands.Match(args)
	if !ok {
		// Chat that merely starts with the prefix must not spam anyone.
		return
	}

	auth := d.AuthFor(m.GuildID)
	if !permissions.Authorize(cmd.Level, m.Author.ID, auth, d.Global) {
		// Silent deny: do not leak command existence to unauthorized users.
		return
	}

	if d.Guilds.ChannelDisabled(m.GuildID, m.ChannelID) && !cmd.Named("commandchannel") {
		return
	}

	if cmd.Bucket != "" {
		if wait, limited := d.Buckets.Check(cmd.Bucket, m.GuildID); limited {
			d.send(m.ChannelID, fmt.Sprintf("Ratelimit reached. You may use this command in %s", wait.Round(time.Second)))
			return
		}
	}

	bound, err := commands.Bind(cmd.Params, args)
	if err != nil {
		d.replyError(m, cmd, err)
		return
	}

	ctx := &commands.Context{
		Session:   d.Sender,
		Message:   m,
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Author:    m.Author,
	}

	handler := cmd.Handler
	if handler == nil {
		if cmd.View == nil {
			d.send(m.ChannelID, fmt.Sprintf("Usage: %s%s", d.prefixFor(m.GuildID), cmd.Usage()))
			return
		}
		handler = cmd.View
	}

	if err := handler(ctx, bound); err != nil {
		d.replyError(m, cmd, err)
		return
	}

	if cmd.Bucket != "" {
		d.Buckets.Take(cmd.Bucket, m.GuildID)
	}
}

// HandleInteraction routes component interactions. Interactions on a
// suppressed message belong to the confirmation wait that registered it and
// are never treated as anything else.
func (d *Dispatcher) HandleInteraction(i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent || i.Message == nil {
		return
	}

	var authorID string
	if i.Member != nil && i.Member.User != nil {
		authorID = i.Member.User.ID
	} else if i.User != nil {
		authorID = i.User.ID
	}

	ci := standby.ComponentInteraction{
		MessageID:   i.Message.ID,
		AuthorID:    authorID,
		CustomID:    i.MessageComponentData().CustomID,
		Interaction: i.Interaction,
	}

	if d.Suppressed.Contains(ci.MessageID) {
		d.Router.Dispatch(ci)
		return
	}

	if d.Router.Dispatch(ci) {
		return
	}

	// Nothing owns this component; acknowledge so the client does not show
	// an interaction failure.
	err := d.Sender.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		fmt.Println("Error acknowledging stray interaction:", err)
	}
}

func (d *Dispatcher) prefixFor(guildID string) string {
	if prefix := d.Guilds.Prefix(guildID); prefix != "" {
		return prefix
	}
	return d.DefaultPrefix
}

func (d *Dispatcher) send(channelID, content string) {
	if _, err := d.Sender.ChannelMessageSend(channelID, content); err != nil {
		fmt.Println("Error sending message:", err)
	}
}

// replyError maps a handler failure to user feedback. Command-level errors
// are shown with detail; anything else is logged in full and reported as a
// generic retry message.
func (d *Dispatcher) replyError(m *discordgo.MessageCreate, cmd *commands.Command, err error) {
	var blacklistErr *commands.BlacklistError
	var nicknameErr *commands.NicknameTooLongError
	var parseErr *commands.ParseError

	switch {
	case errors.As(err, &blacklistErr):
		d.send(m.ChannelID, fmt.Sprintf("User was found on the server blacklist. Reason: %s", blacklistErr.Reason))

	case errors.As(err, &nicknameErr):
		d.send(m.ChannelID, fmt.Sprintf("The supposed nickname %s was found to be longer than 32 characters", nicknameErr.Nickname))

	case errors.Is(err, commands.ErrGuildNotSetUp):
		d.send(m.ChannelID, "This server was not set up. Please ask the server owner to run `setup`")

	case errors.As(err, &parseErr):
		d.send(m.ChannelID, renderParseError(m.Content, d.prefixFor(m.GuildID), cmd, parseErr))

	case errors.Is(err, commands.ErrTimeout):
		d.send(m.ChannelID, "Timeout reached. Please try again")

	default:
		log.Printf("Error running command %s: %v", cmd.Name(), err)
		d.send(m.ChannelID, "There was an error in executing this command. Please try again. If the issue persists, please contact the support server for more information")
	}
}

// renderParseError underlines the first occurrence of the offending fragment
// inside the original message. When the fragment is missing or cannot be
// located, it falls back to a plain message; both variants end with the
// generated usage line.
func renderParseError(content, prefix string, cmd *commands.Command, parseErr *commands.ParseError) string {
	usage := fmt.Sprintf("Usage: %s%s", prefix, cmd.Usage())

	if parseErr.Fragment != "" {
		if idx := strings.Index(content, parseErr.Fragment); idx >= 0 {
			return fmt.Sprintf("```%s\n%s%s\n\nExpected %s to be a %s```%s",
				content,
				strings.Repeat(" ", idx),
				strings.Repeat("^", len(parseErr.Fragment)),
				parseErr.Param,
				parseErr.Expected,
				usage,
			)
		}
		return fmt.Sprintf("Expected %s to be a %s. %s", parseErr.Param, parseErr.Expected, usage)
	}

	return fmt.Sprintf("Missing %s, expected a %s. %s", parseErr.Param, parseErr.Expected, usage)
}
