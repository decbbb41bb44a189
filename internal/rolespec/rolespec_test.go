package rolespec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.aki.moe/rolebind/internal/rolespec"
)

func TestParse(t *testing.T) {
	pairs, err := rolespec.Parse("😼|Role1, ❤️|Role2")
	require.NoError(t, err)
	require.Equal(t, []rolespec.Pair{
		{Emoji: "😼", Role: "Role1"},
		{Emoji: "❤️", Role: "Role2"},
	}, pairs)
}

func TestParseTrimsWhitespace(t *testing.T) {
	pairs, err := rolespec.Parse("  🟥 | Red ,🟦|Blue  ")
	require.NoError(t, err)
	require.Equal(t, []rolespec.Pair{
		{Emoji: "🟥", Role: "Red"},
		{Emoji: "🟦", Role: "Blue"},
	}, pairs)
}

func TestParseNormalizesCustomEmoji(t *testing.T) {
	pairs, err := rolespec.Parse("<:blob:123456789>|Blobs, <a:party:987654321>|Party")
	require.NoError(t, err)
	require.Equal(t, []rolespec.Pair{
		{Emoji: "blob:123456789", Role: "Blobs"},
		{Emoji: "party:987654321", Role: "Party"},
	}, pairs)
}

func TestParseSingleEntry(t *testing.T) {
	pairs, err := rolespec.Parse("😼|SampleRole")
	require.NoError(t, err)
	require.Equal(t, []rolespec.Pair{{Emoji: "😼", Role: "SampleRole"}}, pairs)
}

func TestParseMalformed(t *testing.T) {
	for _, spec := range []string{
		"",
		"   ",
		"😼|Role1|Extra",
		"😼",
		"😼|Role1, ❤️",
		"|Role1",
		"😼|",
		",",
	} {
		_, err := rolespec.Parse(spec)
		assert.ErrorIsf(t, err, rolespec.ErrMalformedEntry, "spec %q", spec)
	}
}

func TestParseDuplicateEmoji(t *testing.T) {
	_, err := rolespec.Parse("😼|Role1, 😼|Role2")
	require.ErrorIs(t, err, rolespec.ErrDuplicateEmoji)
}

func TestNormalizeEmoji(t *testing.T) {
	assert.Equal(t, "😼", rolespec.NormalizeEmoji("😼"))
	assert.Equal(t, "blob:123", rolespec.NormalizeEmoji("<:blob:123>"))
	assert.Equal(t, "party:42", rolespec.NormalizeEmoji("<a:party:42>"))
	// not an emoji mention, left untouched
	assert.Equal(t, "<notamention>", rolespec.NormalizeEmoji("<notamention>"))
}
