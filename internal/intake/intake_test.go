package intake_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/openbudgetke/budget_analyzer/internal/domain"
	"github.com/openbudgetke/budget_analyzer/internal/intake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfFile(name, content string) intake.File {
	return intake.File{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: "application/pdf",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestIntake_Stage_HappyPath(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	stagingDir := t.TempDir()

	i := intake.New(log, stagingDir)

	staged, rejected, err := i.Stage(context.Background(), []intake.File{
		pdfFile("budget-2024.pdf", "%PDF-1.4 nairobi budget"),
	})
	require.NoError(t, err)

	require.Len(t, staged, 1)
	assert.Empty(t, rejected)

	doc := staged[0]
	assert.Equal(t, "budget-2024.pdf", doc.Name)
	assert.Equal(t, int64(len("%PDF-1.4 nairobi budget")), doc.Size)

	data, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 nairobi budget", string(data))
}

func TestIntake_Stage_RejectsUnsupportedType(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	i := intake.New(log, t.TempDir())

	opened := false
	staged, rejected, err := i.Stage(context.Background(), []intake.File{
		{
			Name:        "budget.docx",
			Size:        1024,
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Open: func() (io.ReadCloser, error) {
				opened = true
				return io.NopCloser(strings.NewReader("")), nil
			},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, staged)
	require.Len(t, rejected, 1)
	assert.Equal(t, "budget.docx", rejected[0].FileName)
	assert.Equal(t, domain.ErrUnsupportedType.Error(), rejected[0].Reason)
	assert.False(t, opened, "rejected file must not be opened")
}

func TestIntake_Stage_RejectsTooLargeFile(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	i := intake.New(log, t.TempDir())

	staged, rejected, err := i.Stage(context.Background(), []intake.File{
		{
			Name:        "huge.pdf",
			Size:        intake.MaxFileSize + 1,
			ContentType: "application/pdf",
			Open: func() (io.ReadCloser, error) {
				t.Fatal("oversized file must not be opened")
				return nil, nil
			},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, staged)
	require.Len(t, rejected, 1)
	assert.Equal(t, domain.ErrFileTooLarge.Error(), rejected[0].Reason)
}

func TestIntake_Stage_AcceptsExactlyMaxSize(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	i := intake.New(log, t.TempDir())

	file := pdfFile("exact.pdf", "%PDF-1.4")
	file.Size = intake.MaxFileSize

	staged, rejected, err := i.Stage(context.Background(), []intake.File{file})
	require.NoError(t, err)

	assert.Len(t, staged, 1)
	assert.Empty(t, rejected)
}

func TestIntake_Stage_PartialAcceptance(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	i := intake.New(log, t.TempDir())

	staged, rejected, err := i.Stage(context.Background(), []intake.File{
		pdfFile("first.pdf", "%PDF-1.4 first"),
		{Name: "notes.txt", Size: 10, ContentType: "text/plain"},
		pdfFile("second.pdf", "%PDF-1.4 second"),
	})
	require.NoError(t, err)

	require.Len(t, staged, 2)
	assert.Equal(t, "first.pdf", staged[0].Name)
	assert.Equal(t, "second.pdf", staged[1].Name)

	require.Len(t, rejected, 1)
	assert.Equal(t, "notes.txt", rejected[0].FileName)
}

func TestIntake_Stage_AcceptsPDFByExtension(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	i := intake.New(log, t.TempDir())

	file := pdfFile("budget.PDF", "%PDF-1.4")
	file.ContentType = "application/octet-stream"

	staged, rejected, err := i.Stage(context.Background(), []intake.File{file})
	require.NoError(t, err)

	assert.Len(t, staged, 1)
	assert.Empty(t, rejected)
}

func TestIntake_Stage_StagingFailureIsNotARejection(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	i := intake.New(log, t.TempDir())

	broken := intake.File{
		Name:        "budget.pdf",
		Size:        1024,
		ContentType: "application/pdf",
		Open: func() (io.ReadCloser, error) {
			return nil, errors.New("disk on fire")
		},
	}

	staged, rejected, err := i.Stage(context.Background(), []intake.File{
		pdfFile("first.pdf", "%PDF-1.4 first"),
		broken,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget.pdf")

	// a server-side failure is not the client's fault
	assert.Empty(t, rejected)
	assert.Len(t, staged, 1)
}

func TestValidateMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		county     string
		budgetYear string
		wantErr    bool
	}{
		{name: "both set", county: "Nairobi", budgetYear: "2024"},
		{name: "missing county", county: "", budgetYear: "2024", wantErr: true},
		{name: "missing year", county: "Nairobi", budgetYear: "", wantErr: true},
		{name: "whitespace only", county: "  ", budgetYear: "\t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := intake.ValidateMetadata(tt.county, tt.budgetYear)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrMissingMetadata)
				return
			}
			require.NoError(t, err)
		})
	}
}
