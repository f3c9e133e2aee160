package permissions

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

// GuildAuth is the slice of cached guild state the resolver reads. The
// discordgo-backed implementation lives in session.go; tests use fakes.
type GuildAuth interface {
	GuildID() string
	OwnerID() string
	// AdminRoleID returns the guild-configured admin role, or "".
	AdminRoleID() string
	MemberRoles(userID string) ([]string, error)
	// EffectivePermissions computes the member's guild-wide permission bits.
	EffectivePermissions(userID string) (int64, error)
}

// Global holds the process-wide owner allow-list and moderation denylists.
type Global struct {
	Owners        []string
	BlockedUsers  []string
	BlockedGuilds []string
}

func (g *Global) IsOwner(userID string) bool {
	return contains(g.Owners, userID)
}

func (g *Global) IsBlockedUser(userID string) bool {
	return contains(g.BlockedUsers, userID)
}

func (g *Global) IsBlockedGuild(guildID string) bool {
	return contains(g.BlockedGuilds, guildID)
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}

// Authorize decides whether userID may run a command at the given level.
// Rules short-circuit in order: global denylists, then guild owner and bot
// owner allowances, then the per-level checks. A failure to compute effective
// permissions only disables that one check; the resolver falls through to the
// admin-role rule instead of erroring out.
func Authorize(level commands.PermissionLevel, userID string, guild GuildAuth, global *Global) bool {
	if global.IsBlockedUser(userID) {
		return false
	}
	if global.IsBlockedGuild(guild.GuildID()) {
		return false
	}
	if global.IsBlockedUser(guild.OwnerID()) {
		return false
	}

	if userID == guild.OwnerID() {
		return true
	}
	if global.IsOwner(userID) {
		return true
	}

	switch level {
	case commands.LevelNormal, commands.LevelTrainer:
		// Trainer imposes no extra restriction over Normal. The trainer-roles
		// guild setting exists but was never wired into this check; keep the
		// permissive behavior until stakeholders decide otherwise.
		return true

	case commands.LevelAdmin:
		perms, err := guild.EffectivePermissions(userID)
		if err != nil {
			fmt.Println("Error computing effective permissions:", err)
		} else if perms&discordgo.PermissionManageServer != 0 {
			return true
		}

		adminRole := guild.AdminRoleID()
		if adminRole == "" {
			return false
		}
		roles, err := guild.MemberRoles(userID)
		if err != nil {
			fmt.Println("Error fetching member roles:", err)
			return false
		}
		return contains(roles, adminRole)

	case commands.LevelCreator:
		// Bot owners were already allowed above.
		return false
	}

	return false
}
