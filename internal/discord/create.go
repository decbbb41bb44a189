package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v4"
	"pkg.aki.moe/rolebind/internal/rolespec"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

// ErrRoleNotFound reports a specification role name that does not exist in
// the operating guild.
var ErrRoleNotFound = errors.New("role not found")

// setupRequest is the raw four-field modal submission.
type setupRequest struct {
	Title         string
	Description   string
	Color         string
	Specification string
}

// roleBinding pairs one normalized emoji with the resolved role it grants.
type roleBinding struct {
	emoji string
	role  *discordgo.Role
}

// validateSetup validates the whole submission against the guild's role
// directory before anything is posted: color first, then the specification,
// then every role name in order. The first failure aborts the creation, so
// a rejected submission leaves no visible trace.
func validateSetup(req *setupRequest, roles []*discordgo.Role, defaultColor rolespec.Color) (rolespec.Color, []roleBinding, error) {
	color := defaultColor
	if req.Color != "" {
		var err error
		if color, err = rolespec.ParseColor(req.Color); err != nil {
			return 0, nil, err
		}
	}

	pairs, err := rolespec.Parse(req.Specification)
	if err != nil {
		return 0, nil, err
	}

	bindings := make([]roleBinding, 0, len(pairs))
	for _, p := range pairs {
		role, ok := resolveRole(roles, p.Role)
		if !ok {
			return 0, nil, fmt.Errorf("role %q: %w", p.Role, ErrRoleNotFound)
		}
		bindings = append(bindings, roleBinding{emoji: p.Emoji, role: role})
	}

	return color, bindings, nil
}

// setupErrorMessage translates a validation failure into the single
// user-facing line the interaction response carries.
func setupErrorMessage(err error) string {
	switch {
	case errors.Is(err, rolespec.ErrInvalidColor):
		return "Invalid color code, use a hex value such as #1EEB0C."
	case errors.Is(err, rolespec.ErrMalformedEntry):
		return fmt.Sprintf("Could not read the specification (%s). Use the form 'Emoji|Role, Emoji|Role'.", err)
	case errors.Is(err, rolespec.ErrDuplicateEmoji):
		return fmt.Sprintf("Each emoji may appear only once (%s).", err)
	case errors.Is(err, ErrRoleNotFound):
		return fmt.Sprintf("Could not create reaction roles: %s.", err)
	default:
		return "Could not create reaction roles."
	}
}

// createBindings handles a submitted setup form: validate everything up
// front, post the announcement embed as the interaction response, seed the
// reactions in specification order and persist the bindings in one
// transaction. Validation failures never leave a visible announcement;
// seeding and persistence failures after the post are logged only, the
// response slot is already spent.
func (d *Discord) createBindings(i *discordgo.Interaction) {
	if !d.isOperator(i) {
		d.respondError(i, "You do not have permission to create reaction roles here.")
		return
	}

	req := setupRequestFromModal(i.ModalSubmitData())

	roles, err := d.session.GuildRoles(i.GuildID)
	if err != nil {
		d.logger.Errorf("Failed to fetch roles for guild %s: %s.", i.GuildID, err)
		d.respondError(i, "Could not read the guild's roles, try again later.")
		return
	}

	color, bindings, err := validateSetup(req, roles, d.config.defaultColor)
	if err != nil {
		d.respondError(i, setupErrorMessage(err))
		return
	}

	if err := d.session.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       req.Title,
				Description: req.Description,
				Color:       int(color),
				Timestamp:   time.Now().UTC().Format(time.RFC3339),
			}},
		},
	}); err != nil {
		d.logger.Errorf("Failed to post announcement: %s.", err)
		return
	}

	msg, err := d.session.InteractionResponse(i)
	if err != nil {
		d.logger.Errorf("Failed to fetch posted announcement: %s.", err)
		return
	}

	for _, b := range bindings {
		if err := d.session.MessageReactionAdd(msg.ChannelID, msg.ID, b.emoji); err != nil {
			d.logger.Errorf("Failed to seed reaction %s on message %s: %s.", b.emoji, msg.ID, err)
		}
	}

	messageID := entity.MustParseSnowflake(msg.ID)
	if err := d.storage.Begin(d.ctx, func(tx pgx.Tx) error {
		for _, b := range bindings {
			eb := entity.NewBinding(messageID, b.emoji, entity.MustParseSnowflake(b.role.ID))
			if err := entity.UpsertBinding(d.ctx, tx, eb); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		if d.shouldLogError(err) {
			d.logger.Errorf("Failed to persist bindings for message %s: %s.", msg.ID, err)
		}
		return
	}

	d.logger.Infof("Created %d reaction role bindings for message %s.", len(bindings), msg.ID)
}
