package setup

import (
	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"setup"},
		Description: "Initialize the bot for this server",
		Level:       commands.LevelAdmin,
		Handler:     run,
	})
}

func run(ctx *commands.Context, args *commands.Args) error {
	if guildconfig.IsSetUp(ctx.GuildID) {
		return ctx.Reply("This server is already set up. Use `settings` to change its configuration")
	}

	if err := guildconfig.MarkSetUp(commands.SQLClient, ctx.GuildID); err != nil {
		return err
	}

	return ctx.Reply("Setup complete. Bind a Roblox group with `settings group <id>` to get started")
}
