package rolespec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkg.aki.moe/rolebind/internal/rolespec"
)

func TestParseColor(t *testing.T) {
	c, err := rolespec.ParseColor("#1EEB0C")
	require.NoError(t, err)
	require.Equal(t, rolespec.Color(0x1EEB0C), c)

	c, err = rolespec.ParseColor("ff0000")
	require.NoError(t, err)
	require.Equal(t, rolespec.Color(0xFF0000), c)
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "#", "#12345", "#1234567", "zzzzzz", "#1EEB0G"} {
		_, err := rolespec.ParseColor(s)
		assert.ErrorIsf(t, err, rolespec.ErrInvalidColor, "color %q", s)
	}
}
