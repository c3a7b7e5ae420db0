package db

import (
	"context"

	"swimapi/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Referential integrity lives here: deleting a resource cascades to its
// timeslots, deleting a timeslot or user cascades to dependent reservations,
// and UNIQUE (slot_id) on reservations is the sole double-booking guard.
const ddl = `
CREATE TABLE IF NOT EXISTS users (
    user_id    BIGSERIAL PRIMARY KEY,
    name       TEXT        NOT NULL,
    email      TEXT        NOT NULL UNIQUE,
    api_key    TEXT        NOT NULL UNIQUE,
    user_type  TEXT        NOT NULL DEFAULT 'customer'
               CHECK (user_type IN ('customer', 'admin')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS resources (
    resource_id   BIGSERIAL PRIMARY KEY,
    name          TEXT NOT NULL,
    description   TEXT,
    resource_type TEXT NOT NULL
                  CHECK (resource_type IN ('pool', 'sauna', 'gym'))
);

CREATE TABLE IF NOT EXISTS timeslots (
    slot_id     BIGSERIAL PRIMARY KEY,
    resource_id BIGINT      NOT NULL
                REFERENCES resources (resource_id) ON DELETE CASCADE,
    start_time  TIMESTAMPTZ NOT NULL,
    end_time    TIMESTAMPTZ NOT NULL,
    UNIQUE (resource_id, start_time, end_time)
);

CREATE TABLE IF NOT EXISTS reservations (
    reservation_id BIGSERIAL PRIMARY KEY,
    user_id        BIGINT      NOT NULL
                   REFERENCES users (user_id) ON DELETE CASCADE,
    slot_id        BIGINT      NOT NULL UNIQUE
                   REFERENCES timeslots (slot_id) ON DELETE CASCADE,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate applies the schema at startup. Statements are idempotent so a
// restart against an existing database is a no-op.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return errs.Wrap(err, "failed to apply database schema")
	}
	return nil
}
