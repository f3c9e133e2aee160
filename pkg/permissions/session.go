package permissions

import (
	"github.com/bwmarrin/discordgo"
)

// SessionAuth answers GuildAuth queries from the discordgo state cache,
// falling back to the REST API for members the cache has not seen.
type SessionAuth struct {
	Session   *discordgo.Session
	ID        string
	AdminRole string
}

var _ GuildAuth = &SessionAuth{}

func (a *SessionAuth) GuildID() string {
	return a.ID
}

func (a *SessionAuth) OwnerID() string {
	guild, err := a.Session.State.Guild(a.ID)
	if err != nil {
		if guild, err = a.Session.Guild(a.ID); err != nil {
			return ""
		}
	}
	return guild.OwnerID
}

func (a *SessionAuth) AdminRoleID() string {
	return a.AdminRole
}

func (a *SessionAuth) member(userID string) (*discordgo.Member, error) {
	member, err := a.Session.State.Member(a.ID, userID)
	if err != nil {
		if member, err = a.Session.GuildMember(a.ID, userID); err != nil {
			return nil, err
		}
	}
	return member, nil
}

func (a *SessionAuth) MemberRoles(userID string) ([]string, error) {
	member, err := a.member(userID)
	if err != nil {
		return nil, err
	}
	return member.Roles, nil
}

// EffectivePermissions ORs the permission bits of the @everyone role and
// every role the member holds.
func (a *SessionAuth) EffectivePermissions(userID string) (int64, error) {
	member, err := a.member(userID)
	if err != nil {
		return 0, err
	}

	var perms int64
	if everyone, err := a.Session.State.Role(a.ID, a.ID); err == nil {
		perms |= everyone.Permissions
	}
	for _, roleID := range member.Roles {
		role, err := a.Session.State.Role(a.ID, roleID)
		if err != nil {
			return 0, err
		}
		perms |= role.Permissions
	}

	return perms, nil
}
