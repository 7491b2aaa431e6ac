package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

type PgxPoolIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres keeps the slot as one row of storage_slot. The database is only a
// place to put the JSON document; nothing is queried inside it.
type Postgres struct {
	pool PgxPoolIface
	name string
}

func NewPostgres(pool PgxPoolIface, name string) *Postgres {
	return &Postgres{pool: pool, name: name}
}

func (r *Postgres) EnsureSchema(ctx context.Context) error {
	query := `
create table if not exists storage_slot (
  name       text primary key,
  value      jsonb not null,
  updated_at timestamptz not null default now()
);
`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Postgres) Load(ctx context.Context) ([]byte, error) {
	query := `select value::text from storage_slot where name = $1`

	var value string
	if err := r.pool.QueryRow(ctx, query, r.name).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dto.ErrSlotEmpty
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return []byte(value), nil
}

func (r *Postgres) Save(ctx context.Context, data []byte) error {
	query := `
insert into storage_slot (name, value, updated_at)
values (@name, @value::jsonb, now())
on conflict (name) do update set
  value      = excluded.value,
  updated_at = now();
`
	args := pgx.NamedArgs{
		"name":  r.name,
		"value": string(data),
	}

	if _, err := r.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}
