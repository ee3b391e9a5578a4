package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

type UploadCreator interface {
	CreateUpload(ctx context.Context, upload *domain.Upload) error
}

type StatusUpdater interface {
	UpdateUploadStatus(ctx context.Context, id uuid.UUID, from, to domain.Status, errorMessage string) error
}

type AnalysisSaver interface {
	SaveAnalysis(ctx context.Context, analysis *domain.Analysis) error
}

type TextExtractor interface {
	ExtractText(ctx context.Context, doc *domain.Document) (string, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, result *domain.Result) error
}
