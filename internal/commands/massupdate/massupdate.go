package massupdate

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"massupdate"},
		Description: "Refresh nicknames for every verified member of this server",
		Level:       commands.LevelCreator,
		Params: []commands.Param{
			{Name: "flags", Type: commands.ParamRest, Optional: true},
		},
		Handler: run,
	})
}

type options struct {
	DryRun bool `long:"dry-run"`
	Limit  int  `long:"limit" default:"0"`
}

func run(ctx *commands.Context, args *commands.Args) error {
	if !guildconfig.IsSetUp(ctx.GuildID) {
		return commands.ErrGuildNotSetUp
	}

	var opts options
	raw := ""
	if args.Has("flags") {
		raw = args.String("flags")
	}
	_, err := flags.ParseArgs(&opts, strings.Fields(raw))
	if err != nil {
		return ctx.Reply("%s, error parsing flags: %s", ctx.Author.Mention(), err.Error())
	}

	const limit = 1000
	after := "0"

	var (
		updated int
		skipped int
		failed  int
	)

	for {
		members, err := ctx.Session.GuildMembers(ctx.GuildID, after, limit)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			break
		}

		for _, member := range members {
			after = member.User.ID

			if member.User.Bot {
				continue
			}

			var robloxName string
			err := commands.SQLClient.QueryRow(`SELECT roblox_name FROM users WHERE discord_id=$1`, member.User.ID).Scan(&robloxName)
			if err == sql.ErrNoRows {
				skipped++
				continue
			}
			if err != nil {
				return err
			}

			if len(robloxName) > 32 || member.Nick == robloxName {
				skipped++
				continue
			}

			if opts.DryRun {
				updated++
				continue
			}

			err = ctx.Session.GuildMemberNickname(ctx.GuildID, member.User.ID, robloxName)
			if err != nil {
				fmt.Println("Error setting nickname for", member.User.ID, err)
				failed++
				continue
			}
			updated++

			if opts.Limit > 0 && updated >= opts.Limit {
				return report(ctx, opts.DryRun, updated, skipped, failed)
			}
		}
	}

	return report(ctx, opts.DryRun, updated, skipped, failed)
}

func report(ctx *commands.Context, dryRun bool, updated, skipped, failed int) error {
	verb := "updated"
	if dryRun {
		verb = "would update"
	}
	return ctx.Reply("Mass update finished: %s %d members, skipped %d, failed %d", verb, updated, skipped, failed)
}
