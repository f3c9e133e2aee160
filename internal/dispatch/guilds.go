package dispatch

import "github.com/peterhenryd/rowifi-v4/internal/guildconfig"

// StoredGuildConfig answers the dispatcher's guild-setting reads from the
// guildconfig cache. Tests substitute their own GuildConfig instead.
type StoredGuildConfig struct{}

var _ GuildConfig = StoredGuildConfig{}

func (StoredGuildConfig) Prefix(guildID string) string {
	return guildconfig.Prefix(guildID)
}

func (StoredGuildConfig) AdminRole(guildID string) string {
	return guildconfig.AdminRole(guildID)
}

func (StoredGuildConfig) ChannelDisabled(guildID, channelID string) bool {
	return guildconfig.ChannelDisabled(guildID, channelID)
}
