package verify

import (
	"context"
	"time"

	"github.com/peterhenryd/rowifi-v4/internal/roblox"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
	"github.com/peterhenryd/rowifi-v4/pkg/utils"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"verify"},
		Description: "Link your Roblox account to your Discord account",
		Level:       commands.LevelNormal,
		Params: []commands.Param{
			{Name: "username", Type: commands.ParamString},
		},
		Handler: run,
	})
	commands.Register(&commands.Command{
		Names:       []string{"unverify"},
		Description: "Unlink your Roblox account",
		Level:       commands.LevelNormal,
		Handler:     runUnverify,
	})
}

func run(ctx *commands.Context, args *commands.Args) error {
	username := args.String("username")

	lookupCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	user, err := roblox.Default.UserByUsername(lookupCtx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ctx.Reply("No Roblox account with the username %s was found", utils.EscapeMarkdown(username))
	}

	const query = `INSERT INTO users (discord_id, roblox_id, roblox_name) VALUES ($1, $2, $3)
		ON CONFLICT (discord_id) DO UPDATE SET roblox_id=$2, roblox_name=$3`
	_, err = commands.SQLClient.Exec(query, ctx.Author.ID, user.ID, user.Name)
	if err != nil {
		return err
	}

	return ctx.Reply("%s, you are now verified as %s", ctx.Author.Mention(), utils.EscapeMarkdown(user.Name))
}

func runUnverify(ctx *commands.Context, args *commands.Args) error {
	res, err := commands.SQLClient.Exec(`DELETE FROM users WHERE discord_id=$1`, ctx.Author.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ctx.Reply("%s, you are not verified", ctx.Author.Mention())
	}
	return ctx.Reply("%s, your Roblox account has been unlinked", ctx.Author.Mention())
}
