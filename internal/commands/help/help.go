package help

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"help", "commands"},
		Description: "List available commands",
		Level:       commands.LevelNormal,
		Handler:     run,
	})
}

func run(ctx *commands.Context, args *commands.Args) error {
	var sb strings.Builder
	for _, cmd := range commands.All() {
		if cmd.Description == "" {
			fmt.Fprintf(&sb, "`%s`\n", cmd.Usage())
			continue
		}
		fmt.Fprintf(&sb, "`%s` - %s\n", cmd.Usage(), cmd.Description)
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Commands",
		Description: sb.String(),
	}
	_, err := ctx.Session.ChannelMessageSendEmbed(ctx.ChannelID, embed)
	return err
}
