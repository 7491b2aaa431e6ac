package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Artexxx/HR-Employees/internal/dto"

	_ "modernc.org/sqlite"
)

// SQLite keeps named slots in a local database file, one row per slot.
type SQLite struct {
	db   *sql.DB
	name string
}

func NewSQLite(ctx context.Context, path, name string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	// single writer; sqlite serialises writes anyway
	db.SetMaxOpenConns(1)

	query := `
create table if not exists storage_slot (
	name       text primary key,
	value      text not null,
	updated_at text not null default current_timestamp
);
`
	if _, err := db.ExecContext(ctx, query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.ExecContext: %w", err)
	}

	return &SQLite{db: db, name: name}, nil
}

func (s *SQLite) Load(ctx context.Context) ([]byte, error) {
	query := `select value from storage_slot where name = ?`

	var value string
	if err := s.db.QueryRowContext(ctx, query, s.name).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dto.ErrSlotEmpty
		}

		return nil, fmt.Errorf("row.Scan: %w", err)
	}

	return []byte(value), nil
}

func (s *SQLite) Save(ctx context.Context, data []byte) error {
	query := `
insert into storage_slot (name, value, updated_at)
values (?, ?, current_timestamp)
on conflict (name) do update set
  value      = excluded.value,
  updated_at = excluded.updated_at;
`
	if _, err := s.db.ExecContext(ctx, query, s.name, string(data)); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
