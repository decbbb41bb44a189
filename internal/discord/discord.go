package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"pkg.aki.moe/rolebind/internal/rolespec"
	"pkg.aki.moe/rolebind/internal/storage"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

// Config carries the Discord-facing settings: the single operating guild
// and the default color for announcement embeds.
type Config struct {
	guild        entity.Snowflake
	defaultColor rolespec.Color
}

func NewConfig(guild entity.Snowflake, defaultColor rolespec.Color) *Config {
	return &Config{guild: guild, defaultColor: defaultColor}
}

type Discord struct {
	ctx     context.Context
	logger  *zap.SugaredLogger
	session *discordgo.Session
	config  *Config
	storage *storage.Storage
}

func NewDiscord(ctx context.Context, log *zap.SugaredLogger, auth string, config *Config, store *storage.Storage) (*Discord, error) {
	s, err := discordgo.New(auth)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessageReactions
	return &Discord{ctx: ctx, logger: log, session: s, config: config, storage: store}, nil
}

func (d *Discord) addHandlers() {
	d.session.AddHandlerOnce(d.onReady)
	d.session.AddHandler(d.onInteractionCreate)
	d.session.AddHandler(d.onMessageReactionAdd)
	d.session.AddHandler(d.onMessageReactionRemove)
}

func (d *Discord) Connect() error {
	d.addHandlers()
	if err := d.session.Open(); err != nil {
		return err
	}
	return d.registerCommands()
}

func (d *Discord) Close() error {
	return d.session.Close()
}
