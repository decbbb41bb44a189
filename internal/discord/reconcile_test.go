package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.aki.moe/rolebind/internal/storage/entity"
)

func TestLookupBinding(t *testing.T) {
	bindings := map[string]entity.Snowflake{
		"🟦":       200,
		"blob:123": 300,
	}

	roleID, ok := lookupBinding(bindings, &discordgo.Emoji{Name: "🟦"})
	require.True(t, ok)
	assert.Equal(t, entity.Snowflake(200), roleID)

	roleID, ok = lookupBinding(bindings, &discordgo.Emoji{ID: "123", Name: "blob"})
	require.True(t, ok)
	assert.Equal(t, entity.Snowflake(300), roleID)
}

// An emoji without a binding is an ordinary no-op, as is a message with no
// bindings at all.
func TestLookupBindingMiss(t *testing.T) {
	bindings := map[string]entity.Snowflake{"🟦": 200}

	_, ok := lookupBinding(bindings, &discordgo.Emoji{Name: "🟨"})
	assert.False(t, ok)

	_, ok = lookupBinding(map[string]entity.Snowflake{}, &discordgo.Emoji{Name: "🟦"})
	assert.False(t, ok)

	// a custom emoji never matches a unicode binding with the same name
	_, ok = lookupBinding(bindings, &discordgo.Emoji{ID: "55", Name: "🟦"})
	assert.False(t, ok)
}
