package config

import (
	"github.com/joho/godotenv"
)

const (
	envPrefix = "ROWIFI_BOT_"
)

func envName(v string) string {
	return envPrefix + v
}

var (
	DSN string

	Token string

	// DefaultPrefix applies in guilds with no prefix override
	DefaultPrefix string

	// OwnerIDs may run Creator-level commands anywhere
	OwnerIDs []string

	// Moderation denylists
	BlockedUserIDs  []string
	BlockedGuildIDs []string
)

func init() {
	// A missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	DSN = stringEnv(envName("SQL_DSN"), "postgres:///rowifi?sslmode=disable")

	Token = mustStringEnv(envName("TOKEN"))

	DefaultPrefix = stringEnv(envName("DEFAULT_PREFIX"), "!")

	OwnerIDs = cleanList(stringListEnv(envName("OWNER_IDS"), []string{}))
	BlockedUserIDs = cleanList(stringListEnv(envName("BLOCKED_USER_IDS"), []string{}))
	BlockedGuildIDs = cleanList(stringListEnv(envName("BLOCKED_GUILD_IDS"), []string{}))
}
