package serverinfo

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"serverinfo", "guildinfo"},
		Description: "Show this server's bot configuration",
		Level:       commands.LevelNormal,
		Handler:     run,
	})
}

func run(ctx *commands.Context, args *commands.Args) error {
	if !guildconfig.IsSetUp(ctx.GuildID) {
		return commands.ErrGuildNotSetUp
	}

	prefix := guildconfig.Prefix(ctx.GuildID)
	if prefix == "" {
		prefix = "default"
	}

	group := "none"
	if id := guildconfig.Group(ctx.GuildID); id != 0 {
		group = fmt.Sprintf("%d", id)
	}

	adminRole := "none"
	if id := guildconfig.AdminRole(ctx.GuildID); id != "" {
		adminRole = "<@&" + id + ">"
	}

	trainerRoles := "none"
	if ids := guildconfig.TrainerRoles(ctx.GuildID); len(ids) > 0 {
		mentions := make([]string, len(ids))
		for i, id := range ids {
			mentions[i] = "<@&" + id + ">"
		}
		trainerRoles = strings.Join(mentions, " ")
	}

	embed := &discordgo.MessageEmbed{
		Title: "Server Info",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guild ID", Value: ctx.GuildID, Inline: true},
			{Name: "Prefix", Value: prefix, Inline: true},
			{Name: "Group", Value: group, Inline: true},
			{Name: "Admin Role", Value: adminRole, Inline: true},
			{Name: "Trainer Roles", Value: trainerRoles, Inline: true},
		},
	}

	_, err := ctx.Session.ChannelMessageSendEmbed(ctx.ChannelID, embed)
	return err
}
