package entity

// Snowflake is a Discord 64-bit object identifier.
type Snowflake = uint64
