package update

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/internal/roblox"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

func init() {
	commands.Register(&commands.Command{
		Names:       []string{"update", "getroles"},
		Description: "Refresh a member's nickname from their Roblox account",
		Level:       commands.LevelTrainer,
		Bucket:      "update",
		Params: []commands.Param{
			{Name: "user", Type: commands.ParamUser, Optional: true},
		},
		Handler: run,
	})
}

func run(ctx *commands.Context, args *commands.Args) error {
	if !guildconfig.IsSetUp(ctx.GuildID) {
		return commands.ErrGuildNotSetUp
	}

	targetID := ctx.Author.ID
	if args.Has("user") {
		targetID = args.String("user")
	}

	var (
		robloxID   int64
		robloxName string
	)
	const query = `SELECT roblox_id, roblox_name FROM users WHERE discord_id=$1`
	err := commands.SQLClient.QueryRow(query, targetID).Scan(&robloxID, &robloxName)
	if err == sql.ErrNoRows {
		return ctx.Reply("<@%s> is not verified. Ask them to run `verify` first", targetID)
	}
	if err != nil {
		return err
	}

	lookupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if reason, blocked, err := blacklisted(lookupCtx, ctx.GuildID, robloxID); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return commands.ErrTimeout
		}
		return err
	} else if blocked {
		return &commands.BlacklistError{Reason: reason}
	}

	if len(robloxName) > 32 {
		return &commands.NicknameTooLongError{Nickname: robloxName}
	}

	err = ctx.Session.GuildMemberNickname(ctx.GuildID, targetID, robloxName)
	if err != nil {
		return err
	}

	groupID := guildconfig.Group(ctx.GuildID)
	if groupID == 0 {
		return ctx.Reply("<@%s> has been updated to %s", targetID, robloxName)
	}

	rank, err := roblox.Default.GroupRank(lookupCtx, robloxID, groupID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return commands.ErrTimeout
		}
		return err
	}
	if rank == 0 {
		return ctx.Reply("<@%s> has been updated to %s (not in the group)", targetID, robloxName)
	}
	return ctx.Reply("<@%s> has been updated to %s (group rank %d)", targetID, robloxName, rank)
}

// blacklisted checks the guild's blacklists against an account: user entries
// match the roblox id directly, group entries match group membership.
func blacklisted(ctx context.Context, guildID string, robloxID int64) (string, bool, error) {
	const query = `SELECT kind, target, reason FROM blacklists WHERE guild_id=$1`
	rows, err := commands.SQLClient.Query(query, guildID)
	if err != nil {
		return "", false, err
	}
	defer rows.Close()

	type entry struct {
		kind   string
		target int64
		reason string
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.kind, &e.target, &e.reason); err != nil {
			return "", false, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return "", false, err
	}

	for _, e := range entries {
		switch e.kind {
		case "user":
			if e.target == robloxID {
				return e.reason, true, nil
			}
		case "group":
			rank, err := roblox.Default.GroupRank(ctx, robloxID, e.target)
			if err != nil {
				return "", false, err
			}
			if rank > 0 {
				return e.reason, true, nil
			}
		}
	}
	return "", false, nil
}
