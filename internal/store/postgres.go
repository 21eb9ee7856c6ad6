// Package store persists imported specimens to PostgreSQL. It is one
// concrete implementation of the core's Sink; the import pipeline itself
// never depends on it.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paleodesk/fossilimport/internal/specimen"
)

// execer is the slice of pgx both a pool and a transaction satisfy.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store writes specimen records through a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the specimens table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS specimens (
			id                 UUID PRIMARY KEY,
			owner_id           TEXT NOT NULL,
			species            TEXT NOT NULL,
			genus              TEXT,
			family             TEXT,
			taxon_order        TEXT,
			taxon_class        TEXT,
			element            TEXT NOT NULL,
			condition          TEXT,
			description        TEXT,
			nickname           TEXT,
			era                TEXT,
			period             TEXT,
			epoch              TEXT,
			age                TEXT,
			formation          TEXT,
			country            TEXT,
			state              TEXT,
			locality           TEXT,
			latitude           DOUBLE PRECISION,
			longitude          DOUBLE PRECISION,
			width              DOUBLE PRECISION,
			height             DOUBLE PRECISION,
			length             DOUBLE PRECISION,
			size_unit          TEXT,
			weight             DOUBLE PRECISION,
			weight_unit        TEXT,
			acquisition_method TEXT,
			acquisition_date   TIMESTAMPTZ,
			collection_date    TIMESTAMPTZ,
			price_paid         DOUBLE PRECISION,
			price_currency     TEXT,
			estimated_value    DOUBLE PRECISION,
			estimated_currency TEXT,
			storage_location   TEXT,
			notes              TEXT,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure specimens schema: %w", err)
	}
	return nil
}

// Insert persists one specimen for the owner, each call in its own
// implicit transaction. For whole-run atomicity use BeginImport.
func (s *Store) Insert(ctx context.Context, ownerID string, sp *specimen.Specimen) error {
	return insertSpecimen(ctx, s.pool, ownerID, sp)
}

// BeginImport opens an import session: a single transaction holding every
// insert of one run. A failed row rolls back to its savepoint and the rest
// of the run continues; nothing is visible until Commit.
func (s *Store) BeginImport(ctx context.Context) (*ImportSession, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	return &ImportSession{tx: tx}, nil
}

// ImportSession is a transactional Sink covering one import run. Not safe
// for concurrent use; the import driver inserts sequentially.
type ImportSession struct {
	tx  pgx.Tx
	row int
}

// Insert persists one specimen inside the session transaction, guarded by
// a savepoint so a failure poisons only this row.
func (is *ImportSession) Insert(ctx context.Context, ownerID string, sp *specimen.Specimen) error {
	name := fmt.Sprintf("row_%d", is.row)
	is.row++

	if _, err := is.tx.Exec(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("create savepoint: %w", err)
	}
	if err := insertSpecimen(ctx, is.tx, ownerID, sp); err != nil {
		_, _ = is.tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+name)
		return err
	}
	if _, err := is.tx.Exec(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}

// Commit makes the whole run visible.
func (is *ImportSession) Commit(ctx context.Context) error {
	if err := is.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Close rolls back anything uncommitted. Safe to call after Commit.
func (is *ImportSession) Close(ctx context.Context) {
	_ = is.tx.Rollback(ctx)
}

// insertSpecimen writes one row. Enum-typed values are stored by their
// stable serialized tokens.
func insertSpecimen(ctx context.Context, db execer, ownerID string, sp *specimen.Specimen) error {
	var period, method *string
	if sp.Period != nil {
		v := sp.Period.String()
		period = &v
	}
	if sp.Method != nil {
		v := sp.Method.Token()
		method = &v
	}

	var priceCur, estCur *string
	if sp.PriceCurrency != nil {
		v := sp.PriceCurrency.Code()
		priceCur = &v
	}
	if sp.EstimatedCurrency != nil {
		v := sp.EstimatedCurrency.Code()
		estCur = &v
	}

	_, err := db.Exec(ctx, `
		INSERT INTO specimens (
			id, owner_id, species, genus, family, taxon_order, taxon_class,
			element, condition, description, nickname,
			era, period, epoch, age, formation,
			country, state, locality, latitude, longitude,
			width, height, length, size_unit, weight, weight_unit,
			acquisition_method, acquisition_date, collection_date,
			price_paid, price_currency, estimated_value, estimated_currency,
			storage_location, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21,
			$22, $23, $24, $25, $26, $27,
			$28, $29, $30,
			$31, $32, $33, $34,
			$35, $36
		)`,
		uuid.New().String(), ownerID, sp.Species, nullable(sp.Genus), nullable(sp.Family),
		nullable(sp.Order), nullable(sp.Class),
		sp.Element.Serial(), nullable(sp.Condition.String()), nullable(sp.Description), nullable(sp.Nickname),
		nullable(sp.Era), period, nullable(sp.Epoch), nullable(sp.Age), nullable(sp.Formation),
		nullable(sp.Country), nullable(sp.State), nullable(sp.Locality), sp.Latitude, sp.Longitude,
		sp.Width, sp.Height, sp.Length, nullable(sp.SizeUnit), sp.Weight, nullable(sp.WeightUnit),
		method, sp.AcquisitionDate, sp.CollectionDate,
		sp.PricePaid, priceCur, sp.EstimatedValue, estCur,
		nullable(sp.StorageLocation), nullable(sp.Notes),
	)
	if err != nil {
		return fmt.Errorf("insert specimen %q: %w", sp.Species, err)
	}
	return nil
}

// nullable maps empty strings to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
