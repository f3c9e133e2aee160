package ping

import (
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"ping", "pong"},
		Description: "Check whether the bot is alive",
		Level:       commands.LevelNormal,
		Handler:     run,
	})
}

func run(ctx *commands.Context, args *commands.Args) error {
	return ctx.Reply("%s, pong", ctx.Author.Mention())
}
