package postgresql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

const TableAnalyses = "analyses"

type AnalysesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewAnalysesRepository(pool *pgxpool.Pool) *AnalysesRepository {
	return &AnalysesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveAnalysis inserts the analysis and fills the database-generated id and
// timestamp. The unique constraint on upload_id keeps it one per upload.
func (r *AnalysesRepository) SaveAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableAnalyses).
		Columns(
			"upload_id",
			"extracted_text",
			"summary",
			"key_insights",
			"transparency_score",
			"flagged_issues",
		).
		Values(
			analysis.UploadID,
			analysis.ExtractedText,
			analysis.Summary,
			analysis.KeyInsights,
			analysis.TransparencyScore,
			analysis.FlaggedIssues,
		).
		Suffix("RETURNING id, analyzed_at").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&analysis.ID, &analysis.AnalyzedAt); err != nil {
		return scanRowError(err)
	}

	return nil
}

func (r *AnalysesRepository) AnalysisByUploadID(ctx context.Context, uploadID uuid.UUID) (*domain.Analysis, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"upload_id",
			"extracted_text",
			"summary",
			"key_insights",
			"transparency_score",
			"flagged_issues",
			"analyzed_at",
		).
		From(TableAnalyses).
		Where(sq.Eq{"upload_id": uploadID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	analysis, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Analysis])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: analysis for upload %s", domain.ErrNotFound, uploadID)
		}
		return nil, collectRowsError(err)
	}

	return analysis, nil
}
