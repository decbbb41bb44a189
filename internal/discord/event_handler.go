package discord

import (
	"github.com/bwmarrin/discordgo"
)

func (d *Discord) onReady(_ *discordgo.Session, e *discordgo.Ready) {
	d.logger.Infof("Logged in Discord API as %s.", e.User)
}

func (d *Discord) onInteractionCreate(_ *discordgo.Session, e *discordgo.InteractionCreate) {
	switch e.Type {
	case discordgo.InteractionApplicationCommand:
		if e.ApplicationCommandData().Name == commandName {
			d.openSetupModal(e.Interaction)
		}
	case discordgo.InteractionModalSubmit:
		if e.ModalSubmitData().CustomID == setupModalID {
			d.createBindings(e.Interaction)
		}
	}
}

func (d *Discord) onMessageReactionAdd(_ *discordgo.Session, e *discordgo.MessageReactionAdd) {
	d.reconcile(e.MessageReaction, "grant", func(guildID, userID, roleID string) error {
		return d.session.GuildMemberRoleAdd(guildID, userID, roleID)
	})
}

func (d *Discord) onMessageReactionRemove(_ *discordgo.Session, e *discordgo.MessageReactionRemove) {
	d.reconcile(e.MessageReaction, "revoke", func(guildID, userID, roleID string) error {
		return d.session.GuildMemberRoleRemove(guildID, userID, roleID)
	})
}
