package commandchannel

import (
	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"commandchannel", "cc"},
		Description: "Toggle whether commands are allowed in the current channel",
		Level:       commands.LevelAdmin,
		Handler:     run,
	})
}

// commandchannel stays usable in a disabled channel, otherwise there would be
// no way to re-enable it from inside.
func run(ctx *commands.Context, args *commands.Args) error {
	disabled := guildconfig.ChannelDisabled(ctx.GuildID, ctx.ChannelID)

	err := guildconfig.SetChannelDisabled(commands.SQLClient, ctx.GuildID, ctx.ChannelID, !disabled)
	if err != nil {
		return err
	}

	if disabled {
		return ctx.Reply("Commands are now enabled in this channel")
	}
	return ctx.Reply("Commands are now disabled in this channel")
}
