package prefix

import (
	"github.com/peterhenryd/rowifi-v4/internal/config"
	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"prefix"},
		Description: "Show the command prefix for this server",
		Level:       commands.LevelNormal,
		Handler:     run,
	})
}

func run(ctx *commands.Context, args *commands.Args) error {
	prefix := guildconfig.Prefix(ctx.GuildID)
	if prefix == "" {
		prefix = config.DefaultPrefix
	}
	return ctx.Reply("The prefix of this server is %s", prefix)
}
