package discord

import (
	"github.com/bwmarrin/discordgo"
)

// resolveRole finds a role by exact, case-sensitive display name in the
// guild's current role list.
func resolveRole(roles []*discordgo.Role, name string) (*discordgo.Role, bool) {
	for _, r := range roles {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}
