// Package guildconfig caches per-guild settings (prefix override, admin
// role, trainer roles, setup marker, disabled channels) in memory, backed by
// the guild_config table. Loaded once at startup; writes go through Save so
// the cache and the database never drift.
package guildconfig

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var ErrNoSQLClient = errors.New("no sql client set up")

var (
	mutex sync.RWMutex
	data  = map[string]string{}
)

// Get returns the stored value for a guild-scoped key, or "".
func Get(guildID, key string) string {
	fullKey := guildID + ":" + key

	mutex.RLock()
	defer mutex.RUnlock()
	if value, ok := data[fullKey]; ok {
		return value
	}

	return ""
}

func set(guildID, key, value string) {
	fullKey := guildID + ":" + key

	mutex.Lock()
	defer mutex.Unlock()

	data[fullKey] = value
}

func remove(guildID, key string) {
	fullKey := guildID + ":" + key

	mutex.Lock()
	defer mutex.Unlock()

	delete(data, fullKey)
}

// Load fills the cache from the database. Called once before the gateway
// connection opens; a failure here is fatal.
func Load(sqlClient *sql.DB) {
	const query = "SELECT guild_id, key, value FROM guild_config"
	rows, err := sqlClient.Query(query)
	if err != nil {
		fmt.Println("Error loading guild config:", err)
		os.Exit(1)
	}
	defer rows.Close()

	for rows.Next() {
		var guildID, key, value string
		err := rows.Scan(&guildID, &key, &value)
		if err != nil {
			fmt.Println("Error scanning guild config:", err)
			os.Exit(1)
		}

		set(guildID, key, value)
	}
}

// Save sets a value in the database, and then updates the internal store
func Save(sqlClient *sql.DB, guildID, key, value string) (err error) {
	if sqlClient == nil {
		return ErrNoSQLClient
	}
	const query = "INSERT INTO guild_config (guild_id, key, value) VALUES ($1, $2, $3) ON CONFLICT (guild_id, key) DO UPDATE SET value=$3"
	_, err = sqlClient.Exec(query, guildID, key, value)
	if err != nil {
		return
	}

	set(guildID, key, value)

	return
}

// Remove deletes a value from the database, also removing it from the
// internal store
func Remove(sqlClient *sql.DB, guildID, key string) (err error) {
	if sqlClient == nil {
		return ErrNoSQLClient
	}
	const query = "DELETE FROM guild_config WHERE guild_id=$1 AND key=$2"
	_, err = sqlClient.Exec(query, guildID, key)
	if err != nil {
		return
	}

	remove(guildID, key)

	return
}

// Typed accessors over the raw key/value store.

const (
	keyPrefix       = "prefix"
	keySetup        = "setup"
	keyAdminRole    = "role:admin"
	keyTrainerRoles = "roles:trainer"
	keyGroup        = "group"
)

// Prefix returns the guild's prefix override, or "" when the default prefix
// applies.
func Prefix(guildID string) string {
	return Get(guildID, keyPrefix)
}

func SavePrefix(sqlClient *sql.DB, guildID, prefix string) error {
	return Save(sqlClient, guildID, keyPrefix, prefix)
}

// IsSetUp reports whether the guild has completed setup.
func IsSetUp(guildID string) bool {
	return Get(guildID, keySetup) == "1"
}

func MarkSetUp(sqlClient *sql.DB, guildID string) error {
	return Save(sqlClient, guildID, keySetup, "1")
}

// AdminRole returns the guild-configured admin role id, or "".
func AdminRole(guildID string) string {
	return Get(guildID, keyAdminRole)
}

func SaveAdminRole(sqlClient *sql.DB, guildID, roleID string) error {
	return Save(sqlClient, guildID, keyAdminRole, roleID)
}

// TrainerRoles returns the guild's trainer role ids. Stored but not yet
// consulted during authorization; see the permission resolver.
func TrainerRoles(guildID string) []string {
	stored := Get(guildID, keyTrainerRoles)
	if stored == "" {
		return nil
	}
	return strings.Fields(stored)
}

func SaveTrainerRoles(sqlClient *sql.DB, guildID string, roleIDs []string) error {
	return Save(sqlClient, guildID, keyTrainerRoles, strings.Join(roleIDs, " "))
}

// Group returns the Roblox group id the guild is bound to, or 0.
func Group(guildID string) int64 {
	stored := Get(guildID, keyGroup)
	if stored == "" {
		return 0
	}
	id, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func SaveGroup(sqlClient *sql.DB, guildID string, groupID int64) error {
	return Save(sqlClient, guildID, keyGroup, strconv.FormatInt(groupID, 10))
}

// ChannelDisabled reports whether commands are ignored in the channel.
func ChannelDisabled(guildID, channelID string) bool {
	return Get(guildID, "channel:disabled:"+channelID) == "1"
}

func SetChannelDisabled(sqlClient *sql.DB, guildID, channelID string, disabled bool) error {
	key := "channel:disabled:" + channelID
	if disabled {
		return Save(sqlClient, guildID, key, "1")
	}
	return Remove(sqlClient, guildID, key)
}
