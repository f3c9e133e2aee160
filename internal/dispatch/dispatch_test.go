package dispatch

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	qt "github.com/frankban/quicktest"

	"github.com/peterhenryd/rowifi-v4/pkg/bucket"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
	"github.com/peterhenryd/rowifi-v4/pkg/confirm"
	"github.com/peterhenryd/rowifi-v4/pkg/permissions"
	"github.com/peterhenryd/rowifi-v4/pkg/standby"
)

type fakeSender struct {
	sent []string
}

func (f *fakeSender) ChannelMessageSend(channelID, content string) (*discordgo.Message, error) {
	f.sent = append(f.sent, content)
	return &discordgo.Message{ID: "1", ChannelID: channelID, Content: content}, nil
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	f.sent = append(f.sent, data.Content)
	return &discordgo.Message{ID: "1", ChannelID: channelID}, nil
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	f.sent = append(f.sent, embed.Title)
	return &discordgo.Message{ID: "1", ChannelID: channelID}, nil
}

func (f *fakeSender) ChannelMessageEditComplex(m *discordgo.MessageEdit) (*discordgo.Message, error) {
	return &discordgo.Message{ID: m.ID}, nil
}

func (f *fakeSender) InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse) error {
	return nil
}

func (f *fakeSender) FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams) (*discordgo.Message, error) {
	f.sent = append(f.sent, data.Content)
	return &discordgo.Message{ID: "2"}, nil
}

func (f *fakeSender) GuildMember(guildID, userID string) (*discordgo.Member, error) {
	return &discordgo.Member{User: &discordgo.User{ID: userID}}, nil
}

func (f *fakeSender) GuildMembers(guildID, after string, limit int) ([]*discordgo.Member, error) {
	return nil, nil
}

func (f *fakeSender) GuildMemberNickname(guildID, userID, nickname string) error {
	return nil
}

type fakeGuilds struct {
	prefix   string
	disabled map[string]bool
}

func (g fakeGuilds) Prefix(guildID string) string { return g.prefix }

func (g fakeGuilds) AdminRole(guildID string) string { return "" }

func (g fakeGuilds) ChannelDisabled(guildID, channelID string) bool {
	return g.disabled[channelID]
}

type allowAll struct{}

func (allowAll) GuildID() string                                   { return "1" }
func (allowAll) OwnerID() string                                   { return "owner" }
func (allowAll) AdminRoleID() string                               { return "" }
func (allowAll) MemberRoles(userID string) ([]string, error)       { return nil, nil }
func (allowAll) EffectivePermissions(userID string) (int64, error) { return 0, nil }

func newDispatcher(sender *fakeSender, guilds GuildConfig) *Dispatcher {
	buckets := bucket.NewRegistry()
	buckets.Add("slow", time.Minute, 1)

	return &Dispatcher{
		Sender:        sender,
		BotUserID:     "self",
		DefaultPrefix: "!",
		Guilds:        guilds,
		Global:        &permissions.Global{},
		AuthFor: func(guildID string) permissions.GuildAuth {
			return allowAll{}
		},
		Buckets:    buckets,
		Router:     standby.New(),
		Suppressed: confirm.NewSet(),
	}
}

func message(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "10",
			GuildID:   "1",
			ChannelID: "20",
			Content:   content,
			Author:    &discordgo.User{ID: "30"},
		},
	}
}

func init() {
	commands.Register(&commands.Command{
		Names: []string{"greet"},
		Level: commands.LevelNormal,
		Handler: func(ctx *commands.Context, args *commands.Args) error {
			return ctx.Reply("hello")
		},
	})
	commands.Register(&commands.Command{
		Names:  []string{"slowcmd"},
		Level:  commands.LevelNormal,
		Bucket: "slow",
		Handler: func(ctx *commands.Context, args *commands.Args) error {
			return ctx.Reply("done")
		},
	})
	commands.Register(&commands.Command{
		Names:  []string{"failing"},
		Level:  commands.LevelNormal,
		Bucket: "slow",
		Handler: func(ctx *commands.Context, args *commands.Args) error {
			return errors.New("boom")
		},
	})
	commands.Register(&commands.Command{
		Names: []string{"echo"},
		Level: commands.LevelNormal,
		Params: []commands.Param{
			{Name: "count", Type: commands.ParamInt},
		},
		Handler: func(ctx *commands.Context, args *commands.Args) error {
			return ctx.Reply("%d", args.Int("count"))
		},
	})
}

func TestDispatchRunsCommand(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{})

	d.HandleMessage(message("!greet"))
	c.Assert(sender.sent, qt.DeepEquals, []string{"hello"})
}

func TestDispatchSilentOnUnknownCommand(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{})

	d.HandleMessage(message("!nosuchcommand"))
	c.Assert(len(sender.sent), qt.Equals, 0)
}

func TestDispatchIgnoresUnprefixedChat(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{})

	d.HandleMessage(message("greet everyone"))
	c.Assert(len(sender.sent), qt.Equals, 0)
}

func TestDispatchAnnouncesPrefix(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{prefix: "?"})

	d.HandleMessage(message("?"))
	c.Assert(sender.sent, qt.DeepEquals, []string{"The prefix of this server is ?"})
}

func TestDispatchIgnoresBots(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{})

	m := message("!greet")
	m.Author.Bot = true
	d.HandleMessage(m)
	c.Assert(len(sender.sent), qt.Equals, 0)
}

func TestDispatchDisabledChannel(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{disabled: map[string]bool{"20": true}})

	d.HandleMessage(message("!greet"))
	c.Assert(len(sender.sent), qt.Equals, 0)
}

func TestDispatchBucketDebitsOnSuccessOnly(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{})

	// failures never consume allowance, so the command can fail repeatedly
	for i := 0; i < 3; i++ {
		d.HandleMessage(message("!failing"))
	}
	for _, sent := range sender.sent {
		c.Assert(sent, qt.Not(qt.Contains), "Ratelimit")
	}

	sender.sent = nil
	d.HandleMessage(message("!slowcmd"))
	c.Assert(sender.sent, qt.DeepEquals, []string{"done"})

	sender.sent = nil
	d.HandleMessage(message("!slowcmd"))
	c.Assert(len(sender.sent), qt.Equals, 1)
	c.Assert(sender.sent[0], qt.Contains, "Ratelimit reached. You may use this command in")
}

func TestDispatchParseErrorUnderline(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{})

	d.HandleMessage(message("!echo abc"))
	c.Assert(len(sender.sent), qt.Equals, 1)
	c.Assert(sender.sent[0], qt.Contains, "!echo abc\n      ^^^")
	c.Assert(sender.sent[0], qt.Contains, "Expected count to be a number")
	c.Assert(sender.sent[0], qt.Contains, "Usage: !echo <count>")
}

func TestDispatchGenericError(t *testing.T) {
	c := qt.New(t)

	sender := &fakeSender{}
	d := newDispatcher(sender, fakeGuilds{})

	d.HandleMessage(message("!failing"))
	c.Assert(len(sender.sent), qt.Equals, 1)
	c.Assert(sender.sent[0], qt.Contains, "There was an error in executing this command")
}
