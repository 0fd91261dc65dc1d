package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"lendhub/internal/domain/rental"
	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/infra/readstore"
	"lendhub/internal/infra/repository"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes;
// serialization comes from the row locks the command reads take.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx queries.ReadTx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &readTx{dbtx: pgxTx}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask high bit to keep the conversion positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	rentalRepo   shared.RentalRepository
	messageRepo  shared.MessageRepository
	reviewRepo   shared.ReviewRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository()
	}
	return t.rentalRepo
}

func (t *pgTx) Messages() shared.MessageRepository {
	if t.messageRepo == nil {
		t.messageRepo = repository.NewMessageRepository()
	}
	return t.messageRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository()
	}
	return t.reviewRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type readTx struct {
	dbtx db.DBTX
}

func (t *readTx) Rentals() queries.RentalReadStore {
	return readstore.NewRentalReadStore(t.dbtx)
}

func (t *readTx) Messages() queries.MessageReadStore {
	return readstore.NewMessageReadStore(t.dbtx)
}

type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	return readstore.NewResourceReadStore(r.dbtx).FindByID(ctx, id)
}

const rentalSnapshotSQL = `
SELECT r.id, r.resource_id, r.renter_id, p.owner_id, r.status,
       r.start_date, r.end_date, r.is_reviewed
FROM rentals r
JOIN resources p ON p.id = r.resource_id
WHERE r.id = $1
`

// FOR UPDATE OF r: the rental row serializes status transitions, chat
// sends, and review submissions against each other.
func (r *commandReads) RentalByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.RentalSnapshot, error) {
	return r.rentalSnapshot(ctx, rentalSnapshotSQL+" FOR UPDATE OF r", id)
}

func (r *commandReads) rentalSnapshot(ctx context.Context, sql string, id uuid.UUID) (*shared.RentalSnapshot, error) {
	var snap shared.RentalSnapshot
	err := r.dbtx.QueryRow(ctx, sql, id).Scan(
		&snap.ID, &snap.ResourceID, &snap.RenterID, &snap.OwnerID,
		&snap.Status, &snap.StartDate, &snap.EndDate, &snap.IsReviewed,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load rental snapshot", err)
	}
	return &snap, nil
}

const activeCalendarSQL = `
SELECT id, start_date, end_date
FROM rentals
WHERE resource_id = $1
  AND status IN ('Requested', 'Approved', 'Active')
FOR UPDATE
`

func (r *commandReads) ActiveCalendarForUpdate(ctx context.Context, resourceID uuid.UUID) ([]rental.CalendarEntry, error) {
	rows, err := r.dbtx.Query(ctx, activeCalendarSQL, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load resource calendar", err)
	}
	defer rows.Close()

	var entries []rental.CalendarEntry
	for rows.Next() {
		var id uuid.UUID
		var start, end time.Time
		if err := rows.Scan(&id, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan calendar entry", err)
		}
		entries = append(entries, rental.CalendarEntry{
			RentalID: id,
			Range:    rental.ReconstructDateRange(start, end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resource calendar", err)
	}

	return entries, nil
}
