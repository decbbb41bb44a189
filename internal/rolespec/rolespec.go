// Package rolespec parses operator-supplied reaction-role specifications.
// It is deliberately free of any Discord or storage dependency so the
// validation rules can be exercised on their own.
package rolespec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedEntry reports a specification entry that does not split
	// into exactly one emoji and one role name.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrDuplicateEmoji reports an emoji that appears more than once in a
	// specification.
	ErrDuplicateEmoji = errors.New("duplicate emoji")
)

// Pair is one emoji to role-name association from a specification string.
type Pair struct {
	Emoji string
	Role  string
}

// Parse splits a specification such as "😼|SampleRole, ❤️|Larper" into its
// ordered pairs. Entries are comma-separated and each entry must contain
// exactly one pipe. Surrounding whitespace is trimmed from both tokens and
// custom emoji mentions are normalized to their API name. An empty
// specification is malformed; the input field is required.
func Parse(spec string) ([]Pair, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("empty specification: %w", ErrMalformedEntry)
	}

	chunks := strings.Split(spec, ",")
	pairs := make([]Pair, 0, len(chunks))
	seen := make(map[string]struct{}, len(chunks))
	for _, chunk := range chunks {
		parts := strings.Split(chunk, "|")
		if len(parts) != 2 {
			return nil, fmt.Errorf("entry %q: %w", strings.TrimSpace(chunk), ErrMalformedEntry)
		}

		emoji, role := NormalizeEmoji(strings.TrimSpace(parts[0])), strings.TrimSpace(parts[1])
		if emoji == "" || role == "" {
			return nil, fmt.Errorf("entry %q: %w", strings.TrimSpace(chunk), ErrMalformedEntry)
		}
		if _, ok := seen[emoji]; ok {
			return nil, fmt.Errorf("emoji %q: %w", emoji, ErrDuplicateEmoji)
		}

		seen[emoji] = struct{}{}
		pairs = append(pairs, Pair{Emoji: emoji, Role: role})
	}

	return pairs, nil
}

// NormalizeEmoji reduces a custom emoji mention such as <:blob:123> or
// <a:blob:123> to the name:id form the reaction API reports. Unicode emoji
// pass through unchanged.
func NormalizeEmoji(s string) string {
	if !strings.HasPrefix(s, "<") || !strings.HasSuffix(s, ">") {
		return s
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
	inner = strings.TrimPrefix(inner, "a")
	inner = strings.TrimPrefix(inner, ":")
	if strings.Count(inner, ":") != 1 {
		return s
	}

	return inner
}
