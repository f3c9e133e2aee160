package settings

import (
	"fmt"
	"strings"

	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
	"github.com/peterhenryd/rowifi-v4/pkg/utils"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"settings"},
		Description: "View or change this server's bot settings",
		Level:       commands.LevelAdmin,
		View:        view,
		Sub: []*commands.Command{
			{
				Names:       []string{"prefix"},
				Description: "Change the command prefix for this server",
				Level:       commands.LevelAdmin,
				Params: []commands.Param{
					{Name: "prefix", Type: commands.ParamString},
				},
				Handler: runPrefix,
			},
			{
				Names:       []string{"admin", "adminrole"},
				Description: "Set the admin role for this server",
				Level:       commands.LevelAdmin,
				Params: []commands.Param{
					{Name: "role", Type: commands.ParamRole},
				},
				Handler: runAdmin,
			},
			{
				Names:       []string{"trainer", "trainerroles"},
				Description: "Set the trainer roles for this server",
				Level:       commands.LevelAdmin,
				Params: []commands.Param{
					{Name: "roles", Type: commands.ParamRest},
				},
				Handler: runTrainer,
			},
			{
				Names:       []string{"group"},
				Description: "Bind a Roblox group to this server",
				Level:       commands.LevelAdmin,
				Params: []commands.Param{
					{Name: "group_id", Type: commands.ParamInt},
				},
				Handler: runGroup,
			},
		},
	})
}

func view(ctx *commands.Context, args *commands.Args) error {
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
	trainers := "none"
	if ids := guildconfig.TrainerRoles(ctx.GuildID); len(ids) > 0 {
		trainers = strings.Join(ids, ", ")
	}

	return ctx.Reply("Settings for this server:\nPrefix: %s\nGroup: %s\nAdmin Role: %s\nTrainer Roles: %s", prefix, group, adminRole, trainers)
}

func runPrefix(ctx *commands.Context, args *commands.Args) error {
	prefix := args.String("prefix")
	err := guildconfig.SavePrefix(commands.SQLClient, ctx.GuildID, prefix)
	if err != nil {
		return err
	}
	return ctx.Reply("The prefix of this server is now set to %s", prefix)
}

func runAdmin(ctx *commands.Context, args *commands.Args) error {
	roleID := args.String("role")
	err := guildconfig.SaveAdminRole(commands.SQLClient, ctx.GuildID, roleID)
	if err != nil {
		return err
	}
	return ctx.Reply("The admin role of this server is now set to <@&%s>", roleID)
}

func runTrainer(ctx *commands.Context, args *commands.Args) error {
	raw := args.String("roles")
	parts := strings.Fields(raw)
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		id := utils.CleanRoleID(part)
		if id == "" {
			return &commands.ParseError{Fragment: part, Param: "roles", Expected: "role"}
		}
		ids = append(ids, id)
	}
	err := guildconfig.SaveTrainerRoles(commands.SQLClient, ctx.GuildID, ids)
	if err != nil {
		return err
	}
	return ctx.Reply("The trainer roles of this server have been updated")
}

func runGroup(ctx *commands.Context, args *commands.Args) error {
	groupID := args.Int("group_id")
	err := guildconfig.SaveGroup(commands.SQLClient, ctx.GuildID, groupID)
	if err != nil {
		return err
	}
	return ctx.Reply("This server is now bound to group %d", groupID)
}
