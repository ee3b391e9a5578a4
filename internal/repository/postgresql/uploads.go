package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

const TableUploads = "uploads"

var uploadColumns = []string{
	"id",
	"file_name",
	"file_size",
	"file_url",
	"county",
	"budget_year",
	"upload_status",
	"error_message",
	"uploaded_at",
	"user_id",
}

type UploadsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadsRepository(pool *pgxpool.Pool) *UploadsRepository {
	return &UploadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateUpload inserts the upload in pending status and fills the
// database-generated id and timestamp.
func (r *UploadsRepository) CreateUpload(ctx context.Context, upload *domain.Upload) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUploads).
		Columns(
			"file_name",
			"file_size",
			"file_url",
			"county",
			"budget_year",
			"upload_status",
			"user_id",
		).
		Values(
			upload.FileName,
			upload.FileSize,
			upload.FileURL,
			upload.County,
			upload.BudgetYear,
			domain.StatusPending,
			upload.UserID,
		).
		Suffix("RETURNING id, uploaded_at").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&upload.ID, &upload.UploadedAt); err != nil {
		return scanRowError(err)
	}

	upload.Status = domain.StatusPending

	return nil
}

// UpdateUploadStatus moves an upload from one status to another. The update is
// conditional on the current status, so a row already past "from" is left
// untouched and the call fails with domain.ErrStatusConflict.
func (r *UploadsRepository) UpdateUploadStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to domain.Status,
	errorMessage string,
) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrStatusConflict, from, to)
	}

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("upload_status", to).
		Set("error_message", errorMessage).
		Where(sq.Eq{"id": id, "upload_status": from}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: upload %s is not in status %q", domain.ErrStatusConflict, id, from)
	}

	return nil
}

// Uploads returns one page of the ledger ordered by uploaded_at descending,
// plus the total row count.
func (r *UploadsRepository) Uploads(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableUploads).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		OrderBy("uploaded_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Upload])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return uploads, total, nil
}

// AllUploads returns the full ledger ordered by uploaded_at descending.
func (r *UploadsRepository) AllUploads(ctx context.Context) ([]*domain.Upload, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(uploadColumns...).
		From(TableUploads).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Upload])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return uploads, nil
}

// ResetInterruptedUploads fails every upload left in processing by a previous
// run. Failed is the only legal exit from processing, runs are never retried.
func (r *UploadsRepository) ResetInterruptedUploads(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploads).
		Set("upload_status", domain.StatusFailed).
		Set("error_message", "processing interrupted").
		Where(sq.Eq{"upload_status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}
