package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// PostgresSource reads observations from a table with location, congestion_level and time columns,
// in ascending OrderColumn (ingestion id) order.
type PostgresSource struct {
	DSN         string
	Table       string
	OrderColumn string
}

func NewPostgresSource(dsn, table, orderColumn string) *PostgresSource {
	if orderColumn == "" {
		orderColumn = "id"
	}
	return &PostgresSource{DSN: dsn, Table: table, OrderColumn: orderColumn}
}

func (s *PostgresSource) String() string {
	return fmt.Sprintf("postgres:%s", s.Table)
}

func (s *PostgresSource) query() string {
	return fmt.Sprintf(`SELECT location, congestion_level::text, time::text FROM %s ORDER BY %s ASC`,
		pgx.Identifier(strings.Split(s.Table, ".")).Sanitize(), pgx.Identifier{s.OrderColumn}.Sanitize())
}

func (s *PostgresSource) Load(ctx context.Context) (*Ledger, error) {
	conn, err := pgx.Connect(ctx, s.DSN)
	if err != nil {
		return nil, dataLoadErrorf(err, "connect to traffic database: %v", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, s.query())
	if err != nil {
		return nil, dataLoadErrorf(err, "query traffic table %s: %v", s.Table, err)
	}
	defer rows.Close()

	observations := make([]Observation, 0)
	row := 0
	for rows.Next() {
		row++
		var location, count, clock string
		if err := rows.Scan(&location, &count, &clock); err != nil {
			return nil, dataLoadErrorf(err, "scan traffic table row %d: %v", row, err)
		}
		o, err := parseRecord(row, []string{location, count, trimSeconds(clock)}, 0, 1, 2)
		if err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, dataLoadErrorf(err, "read traffic table %s: %v", s.Table, err)
	}

	return New(observations), nil
}

// trimSeconds turns a postgres time text ("08:05:00") into HH:MM.
func trimSeconds(clock string) string {
	clock = strings.TrimSpace(clock)
	if len(clock) == len("15:04:05") && clock[5] == ':' {
		return clock[:5]
	}
	return clock
}
