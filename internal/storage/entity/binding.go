package entity

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Binding associates one emoji on one announcement message with the role
// it grants. The (message_id, emoji) pair is the identity: a message may
// bind many emoji, each emoji on a message maps to exactly one role.
type Binding struct {
	MessageID Snowflake
	Emoji     string
	RoleID    Snowflake
}

func NewBinding(messageID Snowflake, emoji string, roleID Snowflake) *Binding {
	return &Binding{MessageID: messageID, Emoji: emoji, RoleID: roleID}
}

// EnsureSchema creates the reaction_role relation if it does not exist.
// The composite primary key makes binding writes last-write-wins per
// (message, emoji). Idempotent, safe to run on every start.
func EnsureSchema(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `create table if not exists reaction_role (message_id bigint not null, emoji text not null, role_id bigint not null, primary key (message_id, emoji))`)
	return err
}

// UpsertBinding writes or replaces the binding for b's (message, emoji) key.
func UpsertBinding(ctx context.Context, tx pgx.Tx, b *Binding) error {
	_, err := tx.Exec(ctx, `insert into reaction_role (message_id, emoji, role_id) values ($1, $2, $3) on conflict (message_id, emoji) do update set role_id = excluded.role_id`, int64(b.MessageID), b.Emoji, int64(b.RoleID))
	return err
}

// FindBindings loads every binding for the given message as an
// emoji -> role mapping. A message with no bindings yields an empty map.
func FindBindings(ctx context.Context, tx pgx.Tx, messageID Snowflake) (map[string]Snowflake, error) {
	m := make(map[string]Snowflake)
	var emoji string
	var roleID int64
	if _, err := tx.QueryFunc(
		ctx,
		`select emoji, role_id from reaction_role where message_id = $1`,
		[]interface{}{int64(messageID)},
		[]interface{}{&emoji, &roleID},
		func(pgx.QueryFuncRow) error {
			m[emoji] = Snowflake(roleID)
			return nil
		},
	); err != nil {
		return nil, err
	}

	return m, nil
}

// BoundMessage is one announcement message together with its binding count.
type BoundMessage struct {
	MessageID Snowflake
	Bindings  uint32
}

// FindBoundMessages lists every message that has at least one binding.
func FindBoundMessages(ctx context.Context, tx pgx.Tx) ([]*BoundMessage, error) {
	ms := make([]*BoundMessage, 0)
	var messageID int64
	var count uint32
	if _, err := tx.QueryFunc(
		ctx,
		`select message_id, count(*) from reaction_role group by message_id order by message_id`,
		nil,
		[]interface{}{&messageID, &count},
		func(pgx.QueryFuncRow) error {
			ms = append(ms, &BoundMessage{MessageID: Snowflake(messageID), Bindings: count})
			return nil
		},
	); err != nil {
		return nil, err
	}

	return ms, nil
}
