package main

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pajlada/stupidmigration"

	"github.com/peterhenryd/rowifi-v4/internal/config"
	"github.com/peterhenryd/rowifi-v4/internal/dispatch"
	"github.com/peterhenryd/rowifi-v4/internal/guildconfig"
	"github.com/peterhenryd/rowifi-v4/pkg/bucket"
	"github.com/peterhenryd/rowifi-v4/pkg/commands"
	"github.com/peterhenryd/rowifi-v4/pkg/confirm"
	"github.com/peterhenryd/rowifi-v4/pkg/permissions"
	"github.com/peterhenryd/rowifi-v4/pkg/standby"

	_ "github.com/lib/pq"

	_ "github.com/peterhenryd/rowifi-v4/internal/commands/blacklist"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/commandchannel"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/help"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/massupdate"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/ping"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/prefix"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/serverinfo"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/settings"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/setup"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/update"
	_ "github.com/peterhenryd/rowifi-v4/internal/commands/verify"
)

var sqlClient *sql.DB

func init() {
	var err error
	sqlClient, err = sql.Open("postgres", config.DSN)
	if err != nil {
		fmt.Println("Unable to connect to postgres", err)
		os.Exit(1)
	}

	err = sqlClient.Ping()
	if err != nil {
		fmt.Println("Unable to ping postgres", err)
		os.Exit(1)
	}

	err = stupidmigration.Migrate("migrations", sqlClient)
	if err != nil {
		fmt.Println("Unable to run SQL migrations", err)
		os.Exit(1)
	}

	commands.SQLClient = sqlClient

	guildconfig.Load(sqlClient)
}

func main() {
	bot, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		fmt.Println("error creating Discord session,", err)
		return
	}

	bot.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMembers

	// Resolve our own user up front; the dispatcher's fields must not change
	// once the gateway opens.
	self, err := bot.User("@me")
	if err != nil {
		fmt.Println("error fetching bot user,", err)
		return
	}

	buckets := bucket.NewRegistry()
	buckets.Add("update", 10*time.Minute, 3)

	router := standby.New()
	suppressed := confirm.NewSet()

	confirm.Default = &confirm.Confirmer{
		Sender:     bot,
		Router:     router,
		Suppressed: suppressed,
	}

	dispatcher := &dispatch.Dispatcher{
		Sender:        bot,
		BotUserID:     self.ID,
		DefaultPrefix: config.DefaultPrefix,
		Guilds:        dispatch.StoredGuildConfig{},
		Global: &permissions.Global{
			Owners:        config.OwnerIDs,
			BlockedUsers:  config.BlockedUserIDs,
			BlockedGuilds: config.BlockedGuildIDs,
		},
		AuthFor: func(guildID string) permissions.GuildAuth {
			return &permissions.SessionAuth{
				Session:   bot,
				ID:        guildID,
				AdminRole: guildconfig.AdminRole(guildID),
			}
		},
		Buckets:    buckets,
		Router:     router,
		Suppressed: suppressed,
	}

	bot.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		dispatcher.HandleMessage(m)
	})
	bot.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		dispatcher.HandleInteraction(i)
	})
	bot.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		fmt.Println("Logged in as", r.User.Username)
	})

	err = bot.Open()
	if err != nil {
		fmt.Println("error opening connection,", err)
		return
	}

	defer bot.Close()

	fmt.Println("Bot is now running.  Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc
}
