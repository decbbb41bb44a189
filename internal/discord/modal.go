package discord

import (
	"github.com/bwmarrin/discordgo"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

const (
	commandName  = "create-reaction-roles"
	setupModalID = "reaction_roles_setup"
)

// registerCommands registers the creation command, restricted to the
// operating guild. Re-registering an existing command is a no-op upsert on
// the Discord side.
func (d *Discord) registerCommands() error {
	_, err := d.session.ApplicationCommandCreate(d.session.State.User.ID, entity.FormatSnowflake(d.config.guild), &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: "Create a reaction roles announcement.",
	})
	return err
}

// isOperator reports whether the interaction comes from an administrator
// inside the operating guild. Everything else is rejected before any
// further validation runs.
func (d *Discord) isOperator(i *discordgo.Interaction) bool {
	if i.GuildID != entity.FormatSnowflake(d.config.guild) || i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// openSetupModal renders the four-field setup form, or rejects the caller.
// Either path is the interaction's single response.
func (d *Discord) openSetupModal(i *discordgo.Interaction) {
	if !d.isOperator(i) {
		d.respondError(i, "You do not have permission to create reaction roles here.")
		return
	}

	if err := d.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: setupModalID,
			Title:    "Reaction Roles Setup",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{discordgo.TextInput{
					CustomID:    "title",
					Label:       "Title",
					Style:       discordgo.TextInputShort,
					Placeholder: "Reaction Roles Title",
					Required:    true,
					MaxLength:   100,
				}}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{discordgo.TextInput{
					CustomID:    "description",
					Label:       "Description",
					Style:       discordgo.TextInputParagraph,
					Placeholder: "Message description",
					Required:    true,
					MaxLength:   2000,
				}}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{discordgo.TextInput{
					CustomID:    "color",
					Label:       "Post Color",
					Style:       discordgo.TextInputShort,
					Placeholder: "Hex color code (e.g. #1EEB0C)",
					Required:    false,
					MaxLength:   7,
				}}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{discordgo.TextInput{
					CustomID:    "spec",
					Label:       "Emoji|Role Mapping",
					Style:       discordgo.TextInputParagraph,
					Placeholder: "format: Emoji|Role, e.g. '😼|SampleRole, ❤️|Larper'",
					Required:    true,
					MaxLength:   2000,
				}}},
			},
		},
	}); err != nil {
		d.logger.Errorf("Failed to open setup modal: %s.", err)
	}
}

// setupRequestFromModal collects the raw field values from a submitted
// setup form.
func setupRequestFromModal(data discordgo.ModalSubmitInteractionData) *setupRequest {
	req := &setupRequest{}
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			in, ok := rc.(*discordgo.TextInput)
			if !ok {
				continue
			}
			switch in.CustomID {
			case "title":
				req.Title = in.Value
			case "description":
				req.Description = in.Value
			case "color":
				req.Color = in.Value
			case "spec":
				req.Specification = in.Value
			}
		}
	}
	return req
}

// respondError sends the interaction's single response as a short
// ephemeral failure description.
func (d *Discord) respondError(i *discordgo.Interaction, msg string) {
	if err := d.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		d.logger.Errorf("Failed to respond to interaction: %s.", err)
	}
}
