package blacklist

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
	"github.com/peterhenryd/rowifi-v4/pkg/confirm"
	"github.com/peterhenryd/rowifi-v4/pkg/utils"
)

const undoWindow = 5 * time.Minute

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"blacklist", "bl"},
		Description: "Manage this server's blacklists",
		Level:       commands.LevelAdmin,
		View:        view,
		Sub: []*commands.Command{
			{
				Names:       []string{"group"},
				Description: "Blacklist members of a Roblox group",
				Level:       commands.LevelAdmin,
				Params: []commands.Param{
					{Name: "group_id", Type: commands.ParamInt},
					{Name: "reason", Type: commands.ParamRest, Optional: true},
				},
				Handler: runGroup,
			},
			{
				Names:       []string{"user"},
				Description: "Blacklist a Roblox user",
				Level:       commands.LevelAdmin,
				Params: []commands.Param{
					{Name: "user_id", Type: commands.ParamInt},
					{Name: "reason", Type: commands.ParamRest, Optional: true},
				},
				Handler: runUser,
			},
			{
				Names:       []string{"delete", "remove"},
				Description: "Remove a blacklist by its id",
				Level:       commands.LevelAdmin,
				Params: []commands.Param{
					{Name: "id", Type: commands.ParamInt},
				},
				Handler: runDelete,
			},
			{
				Names:       []string{"view", "list"},
				Description: "List this server's blacklists",
				Level:       commands.LevelAdmin,
				Handler:     view,
			},
		},
	})
}

type entry struct {
	id     int64
	kind   string
	target int64
	reason string
}

func listEntries(guildID string) ([]entry, error) {
	const query = `SELECT id, kind, target, reason FROM blacklists WHERE guild_id=$1 ORDER BY id`
	rows, err := commands.SQLClient.Query(query, guildID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.id, &e.kind, &e.target, &e.reason); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func view(ctx *commands.Context, args *commands.Args) error {
	if !guildconfig.IsSetUp(ctx.GuildID) {
		return commands.ErrGuildNotSetUp
	}

	entries, err := listEntries(ctx.GuildID)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return ctx.Reply("There are no blacklists on this server")
	}

	var sb strings.Builder
	for _, e := range entries {
		reason := e.reason
		if reason == "" {
			reason = "none"
		}
		fmt.Fprintf(&sb, "%d. %s %d (reason: %s)\n", e.id, e.kind, e.target, utils.EscapeMarkdown(reason))
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Blacklists",
		Description: sb.String(),
	}
	_, err = ctx.Session.ChannelMessageSendEmbed(ctx.ChannelID, embed)
	return err
}

func runGroup(ctx *commands.Context, args *commands.Args) error {
	return add(ctx, args, "group", args.Int("group_id"))
}

func runUser(ctx *commands.Context, args *commands.Args) error {
	return add(ctx, args, "user", args.Int("user_id"))
}

// add inserts the blacklist, announces it with an undo button, and waits for
// the invoker to take it back.
func add(ctx *commands.Context, args *commands.Args, kind string, target int64) error {
	if !guildconfig.IsSetUp(ctx.GuildID) {
		return commands.ErrGuildNotSetUp
	}

	reason := ""
	if args.Has("reason") {
		reason = args.String("reason")
	}

	const insert = `INSERT INTO blacklists (guild_id, kind, target, reason) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := commands.SQLClient.QueryRow(insert, ctx.GuildID, kind, target, reason).Scan(&id)
	if err != nil {
		return err
	}

	shownReason := utils.EscapeMarkdown(reason)
	if shownReason == "" {
		shownReason = "none"
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Blacklist Added",
		Description: fmt.Sprintf("Id: %d\nType: %s\nTarget: %d\nReason: %s", id, kind, target, shownReason),
	}

	msg, err := ctx.Session.ChannelMessageSendComplex(ctx.ChannelID, &discordgo.MessageSend{
		Embed: embed,
		Components: []discordgo.MessageComponent{
			confirm.Button("Oh no! Revert", fmt.Sprintf("blacklist-revert:%d", id)),
		},
	})
	if err != nil {
		return err
	}

	return confirm.Offer(confirm.Options{
		ChannelID: ctx.ChannelID,
		MessageID: msg.ID,
		InvokerID: ctx.Author.ID,
		Timeout:   undoWindow,
		Undo: func() error {
			_, err := commands.SQLClient.Exec(`DELETE FROM blacklists WHERE id=$1 AND guild_id=$2`, id, ctx.GuildID)
			return err
		},
		Notice: "The blacklist was reverted",
	})
}

func runDelete(ctx *commands.Context, args *commands.Args) error {
	if !guildconfig.IsSetUp(ctx.GuildID) {
		return commands.ErrGuildNotSetUp
	}

	id := args.Int("id")
	res, err := commands.SQLClient.Exec(`DELETE FROM blacklists WHERE id=$1 AND guild_id=$2`, id, ctx.GuildID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ctx.Reply("No blacklist with id %d was found on this server", id)
	}
	return ctx.Reply("Blacklist %d has been deleted", id)
}
