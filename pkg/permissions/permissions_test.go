package permissions

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	qt "github.com/frankban/quicktest"

	"github.com/peterhenryd/rowifi-v4/pkg/commands"
)

type fakeAuth struct {
	guildID   string
	ownerID   string
	adminRole string
	roles     map[string][]string
	perms     map[string]int64
}

func (a *fakeAuth) GuildID() string     { return a.guildID }
func (a *fakeAuth) OwnerID() string     { return a.ownerID }
func (a *fakeAuth) AdminRoleID() string { return a.adminRole }

func (a *fakeAuth) MemberRoles(userID string) ([]string, error) {
	return a.roles[userID], nil
}

func (a *fakeAuth) EffectivePermissions(userID string) (int64, error) {
	return a.perms[userID], nil
}

func TestAuthorizeGuildOwner(t *testing.T) {
	c := qt.New(t)

	guild := &fakeAuth{guildID: "1", ownerID: "100"}
	global := &Global{}

	c.Assert(Authorize(commands.LevelNormal, "100", guild, global), qt.IsTrue)
	c.Assert(Authorize(commands.LevelAdmin, "100", guild, global), qt.IsTrue)
	c.Assert(Authorize(commands.LevelCreator, "100", guild, global), qt.IsTrue)
}

func TestAuthorizeBotOwner(t *testing.T) {
	c := qt.New(t)

	guild := &fakeAuth{guildID: "1", ownerID: "100"}
	global := &Global{Owners: []string{"999"}}

	c.Assert(Authorize(commands.LevelCreator, "999", guild, global), qt.IsTrue)
	c.Assert(Authorize(commands.LevelCreator, "200", guild, global), qt.IsFalse)
}

func TestAuthorizePlainMember(t *testing.T) {
	c := qt.New(t)

	guild := &fakeAuth{guildID: "1", ownerID: "100"}
	global := &Global{}

	c.Assert(Authorize(commands.LevelNormal, "200", guild, global), qt.IsTrue)
	c.Assert(Authorize(commands.LevelAdmin, "200", guild, global), qt.IsFalse)
	c.Assert(Authorize(commands.LevelCreator, "200", guild, global), qt.IsFalse)
}

func TestAuthorizeTrainerIsPermissive(t *testing.T) {
	c := qt.New(t)

	// a member with no roles at all may still run trainer commands
	guild := &fakeAuth{guildID: "1", ownerID: "100"}
	global := &Global{}

	c.Assert(Authorize(commands.LevelTrainer, "200", guild, global), qt.IsTrue)
}

func TestAuthorizeAdminByPermissionBit(t *testing.T) {
	c := qt.New(t)

	guild := &fakeAuth{
		guildID: "1",
		ownerID: "100",
		perms:   map[string]int64{"200": discordgo.PermissionManageServer},
	}
	global := &Global{}

	c.Assert(Authorize(commands.LevelAdmin, "200", guild, global), qt.IsTrue)
}

func TestAuthorizeAdminByConfiguredRole(t *testing.T) {
	c := qt.New(t)

	guild := &fakeAuth{
		guildID:   "1",
		ownerID:   "100",
		adminRole: "555",
		roles:     map[string][]string{"200": {"444", "555"}},
	}
	global := &Global{}

	c.Assert(Authorize(commands.LevelAdmin, "200", guild, global), qt.IsTrue)
	c.Assert(Authorize(commands.LevelAdmin, "201", guild, global), qt.IsFalse)
}

func TestAuthorizeBlocked(t *testing.T) {
	c := qt.New(t)

	guild := &fakeAuth{guildID: "1", ownerID: "100"}

	blockedUser := &Global{BlockedUsers: []string{"200"}}
	c.Assert(Authorize(commands.LevelNormal, "200", guild, blockedUser), qt.IsFalse)

	blockedGuild := &Global{BlockedGuilds: []string{"1"}}
	c.Assert(Authorize(commands.LevelNormal, "200", guild, blockedGuild), qt.IsFalse)

	// even the guild owner is denied in a guild whose owner is blocked
	blockedOwner := &Global{BlockedUsers: []string{"100"}}
	c.Assert(Authorize(commands.LevelNormal, "100", guild, blockedOwner), qt.IsFalse)
	c.Assert(Authorize(commands.LevelNormal, "200", guild, blockedOwner), qt.IsFalse)
}
