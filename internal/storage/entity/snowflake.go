package entity

import (
	"fmt"
	"strconv"
)

// MustParseSnowflake parses a decimal Snowflake string. It panics on
// malformed input; gateway payloads only ever carry numeric identifiers.
func MustParseSnowflake(s string) Snowflake {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		panic(fmt.Errorf("could not parse Snowflake ID string: %w", err))
	}
	return val
}

func FormatSnowflake(s Snowflake) string {
	return strconv.FormatUint(s, 10)
}
