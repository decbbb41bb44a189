package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v4"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

// roleAction applies or reverses one role membership change.
type roleAction func(guildID, userID, roleID string) error

// reconcile is the shared add/remove path: load the message's bindings,
// look up the reacted emoji, resolve the member, apply the action. An
// unbound message or emoji and a member that already left the guild are
// ordinary no-ops. Failures never retry; the platform's reaction state is
// the source of truth and the next event gets a fresh lookup.
func (d *Discord) reconcile(r *discordgo.MessageReaction, verb string, act roleAction) {
	var bindings map[string]entity.Snowflake
	if err := d.storage.Begin(d.ctx, func(tx pgx.Tx) error {
		var err error
		bindings, err = entity.FindBindings(d.ctx, tx, entity.MustParseSnowflake(r.MessageID))
		return err
	}); err != nil {
		if d.shouldLogError(err) {
			d.logger.Errorf("Failed to load bindings for message %s: %s.", r.MessageID, err)
		}
		return
	}

	roleID, ok := lookupBinding(bindings, &r.Emoji)
	if !ok {
		return
	}

	if !d.memberExists(r.GuildID, r.UserID) {
		d.logger.Debugf("Skipping reaction on message %s from unresolved member %s.", r.MessageID, r.UserID)
		return
	}

	if err := act(r.GuildID, r.UserID, entity.FormatSnowflake(roleID)); err != nil {
		d.logger.Errorf("Failed to %s role %d for member %s: %s.", verb, roleID, r.UserID, err)
		return
	}

	d.logger.Infof("Reconciled reaction %s on message %s: %s role %d for member %s.", r.Emoji.APIName(), r.MessageID, verb, roleID, r.UserID)
}

// lookupBinding matches the event's emoji against the stored mapping by
// its API name (the unicode glyph itself, or name:id for custom emoji).
func lookupBinding(bindings map[string]entity.Snowflake, emoji *discordgo.Emoji) (entity.Snowflake, bool) {
	roleID, ok := bindings[emoji.APIName()]
	return roleID, ok
}

// memberExists checks the state cache first and falls back to the API.
func (d *Discord) memberExists(guildID, userID string) bool {
	if _, err := d.session.State.Member(guildID, userID); err == nil {
		return true
	}
	_, err := d.session.GuildMember(guildID, userID)
	return err == nil
}

func (d *Discord) shouldLogError(err error) bool {
	return !(err == nil || errors.Is(err, context.Canceled))
}
