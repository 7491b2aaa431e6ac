package slot

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type fakePool struct {
	row      fakeRow
	execErr  error
	execArgs []any
	queries  []string
}

func (p *fakePool) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	p.queries = append(p.queries, sql)
	return p.row
}

func (p *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p.queries = append(p.queries, sql)
	p.execArgs = args
	return pgconn.NewCommandTag("INSERT 0 1"), p.execErr
}

func TestPostgres_LoadEmpty(t *testing.T) {
	pool := &fakePool{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := NewPostgres(pool, "employees_data").Load(context.Background())

	assert.ErrorIs(t, err, dto.ErrSlotEmpty)
}

func TestPostgres_Load(t *testing.T) {
	pool := &fakePool{row: fakeRow{value: `{"employees":[]}`}}

	got, err := NewPostgres(pool, "employees_data").Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, `{"employees":[]}`, string(got))
}

func TestPostgres_LoadError(t *testing.T) {
	boom := errors.New("conn reset")
	pool := &fakePool{row: fakeRow{err: boom}}

	_, err := NewPostgres(pool, "employees_data").Load(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, dto.ErrSlotEmpty)
}

func TestPostgres_Save(t *testing.T) {
	pool := &fakePool{}

	require.NoError(t, NewPostgres(pool, "employees_data").Save(context.Background(), []byte(`{"employees":[]}`)))

	require.Len(t, pool.execArgs, 1)
	args, ok := pool.execArgs[0].(pgx.NamedArgs)
	require.True(t, ok)
	assert.Equal(t, "employees_data", args["name"])
	assert.Equal(t, `{"employees":[]}`, args["value"])
}

func TestPostgres_EnsureSchema(t *testing.T) {
	pool := &fakePool{execErr: errors.New("permission denied")}

	err := NewPostgres(pool, "employees_data").EnsureSchema(context.Background())

	assert.Error(t, err)
	assert.Len(t, pool.queries, 1)
}
