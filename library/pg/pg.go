package pg

import (
	"context"
	"fmt"

	"github.com/Artexxx/HR-Employees/library/yamlenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type PostgresConfig struct {
	Conn *yamlenv.Env[string] `yaml:"conn"`
}

type PG struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPG(ctx context.Context, conn string, log zerolog.Logger) (*PG, error) {
	pool, err := pgxpool.New(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	log.Info().Msg("postgres connected")

	return &PG{pool: pool, log: log.With().Str("component", "pg").Logger()}, nil
}

func (p *PG) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *PG) Close() {
	p.pool.Close()
	p.log.Info().Msg("postgres pool closed")
}
