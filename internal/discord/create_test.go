package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.aki.moe/rolebind/internal/rolespec"
)

var guildRoles = []*discordgo.Role{
	{ID: "100", Name: "Red"},
	{ID: "200", Name: "Blue"},
	{ID: "300", Name: "SampleRole"},
}

func TestValidateSetup(t *testing.T) {
	req := &setupRequest{
		Title:         "Roles",
		Description:   "Pick one",
		Color:         "#1EEB0C",
		Specification: "🟥|Red, 🟦|Blue",
	}

	color, bindings, err := validateSetup(req, guildRoles, 0x2F3136)
	require.NoError(t, err)
	require.Equal(t, rolespec.Color(0x1EEB0C), color)
	require.Len(t, bindings, 2)
	// specification order is preserved for reaction seeding
	assert.Equal(t, "🟥", bindings[0].emoji)
	assert.Equal(t, "100", bindings[0].role.ID)
	assert.Equal(t, "🟦", bindings[1].emoji)
	assert.Equal(t, "200", bindings[1].role.ID)
}

func TestValidateSetupDefaultColor(t *testing.T) {
	req := &setupRequest{Specification: "😼|SampleRole"}

	color, bindings, err := validateSetup(req, guildRoles, 0x2F3136)
	require.NoError(t, err)
	require.Equal(t, rolespec.Color(0x2F3136), color)
	require.Len(t, bindings, 1)
}

func TestValidateSetupInvalidColor(t *testing.T) {
	req := &setupRequest{Color: "nope", Specification: "🟥|Red"}

	_, bindings, err := validateSetup(req, guildRoles, 0)
	require.ErrorIs(t, err, rolespec.ErrInvalidColor)
	require.Nil(t, bindings)
}

func TestValidateSetupMalformedSpecification(t *testing.T) {
	req := &setupRequest{Specification: "🟥|Red|Extra"}

	_, bindings, err := validateSetup(req, guildRoles, 0)
	require.ErrorIs(t, err, rolespec.ErrMalformedEntry)
	require.Nil(t, bindings)
}

// A single unresolved role name rejects the whole submission, even when
// every other pair resolves. Nothing is handed back for partial use.
func TestValidateSetupUnknownRoleAbortsAll(t *testing.T) {
	req := &setupRequest{Specification: "🟥|Red, 🟨|Yellow"}

	_, bindings, err := validateSetup(req, guildRoles, 0)
	require.ErrorIs(t, err, ErrRoleNotFound)
	require.ErrorContains(t, err, "Yellow")
	require.Nil(t, bindings)
}

func TestValidateSetupDuplicateEmoji(t *testing.T) {
	req := &setupRequest{Specification: "🟥|Red, 🟥|Blue"}

	_, bindings, err := validateSetup(req, guildRoles, 0)
	require.ErrorIs(t, err, rolespec.ErrDuplicateEmoji)
	require.Nil(t, bindings)
}

func TestSetupErrorMessage(t *testing.T) {
	_, _, err := validateSetup(&setupRequest{Specification: "🟥|Missing"}, guildRoles, 0)
	require.Error(t, err)
	assert.Contains(t, setupErrorMessage(err), "Missing")

	_, _, err = validateSetup(&setupRequest{Color: "bad", Specification: "🟥|Red"}, guildRoles, 0)
	require.Error(t, err)
	assert.Contains(t, setupErrorMessage(err), "color")
}
