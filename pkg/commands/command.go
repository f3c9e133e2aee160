package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PermissionLevel is the minimum authorization tier required to run a command.
type PermissionLevel int

const (
	LevelNormal PermissionLevel = iota
	LevelTrainer
	LevelAdmin
	LevelCreator
)

func (l PermissionLevel) String() string {
	switch l {
	case LevelNormal:
		return "Normal"
	case LevelTrainer:
		return "Trainer"
	case LevelAdmin:
		return "Admin"
	case LevelCreator:
		return "Creator"
	default:
		return "unknown"
	}
}

// HandlerFunc runs a fully resolved invocation.
type HandlerFunc func(ctx *Context, args *Args) error

// Command describes one command in the static registry. The first entry of
// Names is the canonical name, the rest are aliases; all matching is
// case-insensitive. A Command with Sub entries and a nil Handler is a pure
// namespace: invoking it with no further matching token falls through to View
// when set, or replies with usage.
type Command struct {
	Names       []string
	Description string
	Level       PermissionLevel
	Bucket      string
	Params      []Param
	Sub         []*Command
	Handler     HandlerFunc
	View        HandlerFunc
}

// Name returns the canonical name.
func (c *Command) Name() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// Named reports whether name matches the canonical name or any alias.
func (c *Command) Named(name string) bool {
	for _, n := range c.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Usage builds the usage line from the declared parameters.
func (c *Command) Usage() string {
	var b strings.Builder
	b.WriteString(c.Name())
	for _, p := range c.Params {
		if p.Optional {
			fmt.Fprintf(&b, " [%s]", p.Name)
		} else {
			fmt.Fprintf(&b, " <%s>", p.Name)
		}
	}
	if len(c.Sub) > 0 {
		names := make([]string, 0, len(c.Sub))
		for _, sub := range c.Sub {
			names = append(names, sub.Name())
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(names, "/"))
	}
	return b.String()
}

// Sender is the outbound slice of *discordgo.Session the framework and the
// command handlers use. Narrow on purpose so tests can fake the gateway.
type Sender interface {
	ChannelMessageSend(channelID, content string) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit) (*discordgo.Message, error)
	InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse) error
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams) (*discordgo.Message, error)
	GuildMember(guildID, userID string) (*discordgo.Member, error)
	GuildMembers(guildID, after string, limit int) ([]*discordgo.Member, error)
	GuildMemberNickname(guildID, userID, nickname string) error
}

// Context bundles everything a handler may touch for one invocation.
type Context struct {
	Session   Sender
	Message   *discordgo.MessageCreate
	GuildID   string
	ChannelID string
	Author    *discordgo.User
}

// Reply sends a plain message to the invoking channel.
func (ctx *Context) Reply(format string, a ...interface{}) error {
	_, err := ctx.Session.ChannelMessageSend(ctx.ChannelID, fmt.Sprintf(format, a...))
	return err
}
