package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/jpsleep/sleepcheck/ent"
)

// sequenceCounter hands out the global monotonic sequence shared by every
// event table, so assessments, reports and LLM calls can be ordered
// against each other. It uses raw SQL because ent has no atomic counters.
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic in the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// window turns the sequence and time bounds of QueryOpts into predicates
// for any event table; every event schema shares these columns through
// EventMixin.
func window[P ~func(*entsql.Selector)](o QueryOpts) []P {
	var ps []P
	if o.After > 0 {
		ps = append(ps, P(entsql.FieldGT("sequence", o.After)))
	}
	if o.Before > 0 {
		ps = append(ps, P(entsql.FieldLT("sequence", o.Before)))
	}
	if !o.From.IsZero() {
		ps = append(ps, P(entsql.FieldGTE("timestamp", o.From)))
	}
	if !o.To.IsZero() {
		ps = append(ps, P(entsql.FieldLTE("timestamp", o.To)))
	}
	return ps
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
