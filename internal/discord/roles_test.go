package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRole(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "1", Name: "Larper"},
		{ID: "2", Name: "larper"},
	}

	r, ok := resolveRole(roles, "Larper")
	require.True(t, ok)
	assert.Equal(t, "1", r.ID)

	// matching is case-sensitive
	r, ok = resolveRole(roles, "larper")
	require.True(t, ok)
	assert.Equal(t, "2", r.ID)

	_, ok = resolveRole(roles, "LARPER")
	assert.False(t, ok)

	_, ok = resolveRole(nil, "Larper")
	assert.False(t, ok)
}
