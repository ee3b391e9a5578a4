package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

// Processor runs the upload lifecycle for exactly one document per call:
// create pending -> processing -> extract -> analyze -> persist analysis
// and complete in one transaction. Any step failure after creation leaves
// a durable failed row; nothing is deleted or retried.
type Processor struct {
	log           *slog.Logger
	stepTimeout   time.Duration
	uploadCreator UploadCreator
	statusUpdater StatusUpdater
	analysisSaver AnalysisSaver
	extractor     TextExtractor
	analyzer      Analyzer
	transactor    Transactor
	reports       chan<- *domain.Result
}

func NewProcessor(
	log *slog.Logger,
	stepTimeout time.Duration,
	uploadCreator UploadCreator,
	statusUpdater StatusUpdater,
	analysisSaver AnalysisSaver,
	extractor TextExtractor,
	analyzer Analyzer,
	transactor Transactor,
	reports chan<- *domain.Result,
) *Processor {
	return &Processor{
		log:           log,
		stepTimeout:   stepTimeout,
		uploadCreator: uploadCreator,
		statusUpdater: statusUpdater,
		analysisSaver: analysisSaver,
		extractor:     extractor,
		analyzer:      analyzer,
		transactor:    transactor,
		reports:       reports,
	}
}

func (p *Processor) Process(ctx context.Context, sub *domain.Submission) (*domain.Result, error) {
	upload := &domain.Upload{
		FileName:   sub.Document.Name,
		FileSize:   sub.Document.Size,
		FileURL:    sub.Document.Path,
		County:     sub.County,
		BudgetYear: sub.BudgetYear,
		Status:     domain.StatusPending,
		UserID:     sub.UserID,
	}

	if err := p.uploadCreator.CreateUpload(ctx, upload); err != nil {
		return nil, fmt.Errorf("%w: failed to create upload: %w", domain.ErrPersistence, err)
	}

	log := p.log.With(
		slog.String("upload_id", upload.ID.String()),
		slog.String("file_name", upload.FileName),
	)

	log.InfoContext(ctx, "created upload",
		slog.String("county", upload.County),
		slog.String("budget_year", upload.BudgetYear),
	)

	if err := p.transition(ctx, upload, domain.StatusProcessing, ""); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	text, err := p.extractText(ctx, sub.Document)
	if err != nil {
		return nil, p.fail(ctx, log, upload, fmt.Errorf("%w: %w", domain.ErrExtraction, err))
	}

	result, err := p.analyze(ctx, text)
	if err != nil {
		return nil, p.fail(ctx, log, upload, fmt.Errorf("%w: %w", domain.ErrAnalysis, err))
	}

	analysis := &domain.Analysis{
		UploadID:          upload.ID,
		ExtractedText:     &text,
		Summary:           &result.Summary,
		KeyInsights:       result.KeyInsights,
		TransparencyScore: result.TransparencyScore,
		FlaggedIssues:     result.FlaggedIssues,
	}

	// completed must only become visible once the analysis row is durable
	err = p.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := p.analysisSaver.SaveAnalysis(ctx, analysis); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}

		return p.transition(ctx, upload, domain.StatusCompleted, "")
	})
	if err != nil {
		upload.Status = domain.StatusProcessing
		return nil, p.fail(ctx, log, upload, fmt.Errorf("%w: %w", domain.ErrPersistence, err))
	}

	log.InfoContext(ctx, "upload completed",
		slog.Int("transparency_score", analysis.TransparencyScore),
	)

	composed := &domain.Result{Upload: upload, Analysis: analysis}

	select {
	case p.reports <- composed:
	case <-ctx.Done():
	}

	return composed, nil
}

func (p *Processor) extractText(ctx context.Context, doc *domain.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.stepTimeout)
	defer cancel()

	return p.extractor.ExtractText(ctx, doc)
}

func (p *Processor) analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.stepTimeout)
	defer cancel()

	result, err := p.analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis result: %w", err)
	}

	return result, nil
}

func (p *Processor) transition(ctx context.Context, upload *domain.Upload, to domain.Status, errorMessage string) error {
	err := p.statusUpdater.UpdateUploadStatus(ctx, upload.ID, upload.Status, to, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to update upload status: %w", err)
	}

	upload.Status = to

	return nil
}

// fail moves the upload to its terminal failed state and returns the cause
// so the caller can surface it. The failed row is the audit trail, it is
// kept even when the status update itself fails.
func (p *Processor) fail(ctx context.Context, log *slog.Logger, upload *domain.Upload, cause error) error {
	log.ErrorContext(ctx, "upload failed", slog.String("err", cause.Error()))

	if err := p.transition(ctx, upload, domain.StatusFailed, cause.Error()); err != nil {
		log.ErrorContext(ctx, "failed to mark upload as failed", slog.String("err", err.Error()))
	}

	return cause
}
