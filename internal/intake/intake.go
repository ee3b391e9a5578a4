package intake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

// MaxFileSize is the hard limit for a single budget document, 100 MiB.
const MaxFileSize = 100 << 20

const pdfContentType = "application/pdf"

// File is a candidate for staging. Open is only called once the
// candidate passed validation.
type File struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// Rejection reports a single file that did not pass intake validation.
type Rejection struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

type Intake struct {
	log        *slog.Logger
	stagingDir string
}

func New(log *slog.Logger, stagingDir string) *Intake {
	return &Intake{
		log:        log,
		stagingDir: stagingDir,
	}
}

// Stage validates each candidate and copies the accepted ones into the
// staging directory. Acceptance is per file: rejected candidates do not
// prevent valid ones from being staged. Rejections only ever carry
// validation reasons; an I/O failure while staging is the server's fault
// and is returned as an error instead. Nothing is persisted here.
func (i *Intake) Stage(ctx context.Context, files []File) ([]*domain.Document, []Rejection, error) {
	var (
		staged   []*domain.Document
		rejected []Rejection
	)

	for _, file := range files {
		if err := validateFile(file); err != nil {
			i.log.DebugContext(ctx, "rejected file",
				slog.String("file_name", file.Name),
				slog.String("reason", err.Error()),
			)

			rejected = append(rejected, Rejection{FileName: file.Name, Reason: err.Error()})
			continue
		}

		doc, err := i.stageFile(file)
		if err != nil {
			i.log.ErrorContext(ctx, "failed to stage file",
				slog.String("file_name", file.Name),
				slog.String("err", err.Error()),
			)

			return staged, rejected, fmt.Errorf("failed to stage file %q: %w", file.Name, err)
		}

		i.log.DebugContext(ctx, "staged file",
			slog.String("file_name", doc.Name),
			slog.String("path", doc.Path),
		)

		staged = append(staged, doc)
	}

	return staged, rejected, nil
}

func (i *Intake) stageFile(file File) (_ *domain.Document, err error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { err = errors.Join(err, src.Close()) }()

	path := filepath.Join(i.stagingDir, uuid.NewString()+".pdf")

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}
	defer func() { err = errors.Join(err, dst.Close()) }()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	return &domain.Document{
		Name:        file.Name,
		Size:        file.Size,
		ContentType: pdfContentType,
		Path:        path,
	}, nil
}

func validateFile(file File) error {
	if !isPDF(file) {
		return domain.ErrUnsupportedType
	}

	if file.Size > MaxFileSize {
		return domain.ErrFileTooLarge
	}

	return nil
}

func isPDF(file File) bool {
	if file.ContentType == pdfContentType {
		return true
	}

	return strings.EqualFold(filepath.Ext(file.Name), ".pdf")
}

// ValidateMetadata checks the two required classification fields. Submissions
// failing it never reach orchestration.
func ValidateMetadata(county, budgetYear string) error {
	if strings.TrimSpace(county) == "" {
		return fmt.Errorf("%w: county is empty", domain.ErrMissingMetadata)
	}

	if strings.TrimSpace(budgetYear) == "" {
		return fmt.Errorf("%w: budget year is empty", domain.ErrMissingMetadata)
	}

	return nil
}
