package v1

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/openbudgetke/budget_analyzer/internal/domain"
	"github.com/openbudgetke/budget_analyzer/internal/intake"
)

const maxMultipartMemory = 32 << 20

type Stager interface {
	Stage(ctx context.Context, files []intake.File) ([]*domain.Document, []intake.Rejection, error)
}

type Processor interface {
	Process(ctx context.Context, sub *domain.Submission) (*domain.Result, error)
}

type UploadsProvider interface {
	Uploads(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error)
	AllUploads(ctx context.Context) ([]*domain.Upload, error)
}

type AnalysisProvider interface {
	AnalysisByUploadID(ctx context.Context, uploadID uuid.UUID) (*domain.Analysis, error)
}

type UploadsHandler struct {
	stager           Stager
	processor        Processor
	uploadsProvider  UploadsProvider
	analysisProvider AnalysisProvider
}

func NewUploadsHandler(
	stager Stager,
	processor Processor,
	uploadsProvider UploadsProvider,
	analysisProvider AnalysisProvider,
) *UploadsHandler {
	return &UploadsHandler{
		stager:           stager,
		processor:        processor,
		uploadsProvider:  uploadsProvider,
		analysisProvider: analysisProvider,
	}
}

type UploadOutcome struct {
	FileName          string   `json:"file_name"`
	UploadID          string   `json:"upload_id,omitempty"`
	Status            string   `json:"status"`
	Summary           string   `json:"summary,omitempty"`
	KeyInsights       []string `json:"key_insights,omitempty"`
	TransparencyScore *int     `json:"transparency_score,omitempty"`
	FlaggedIssues     []string `json:"flagged_issues,omitempty"`
	Error             string   `json:"error,omitempty"`
}

type UploadDocumentsResponse struct {
	Results  []UploadOutcome    `json:"results"`
	Rejected []intake.Rejection `json:"rejected,omitempty"`
}

// UploadDocuments accepts a multipart batch, stages valid files and runs the
// analysis pipeline once per staged file. Each run is independent: a failed
// document does not affect the others.
func (h *UploadsHandler) UploadDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	county := r.FormValue("county")
	budgetYear := r.FormValue("budget_year")

	if err := intake.ValidateMetadata(county, budgetYear); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		http.Error(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	userID, err := parseUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	files := make([]intake.File, 0, len(headers))
	for _, header := range headers {
		files = append(files, intake.File{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Open:        func() (io.ReadCloser, error) { return header.Open() },
		})
	}

	staged, rejected, err := h.stager.Stage(r.Context(), files)
	if err != nil {
		http.Error(w, "failed to stage files: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if len(staged) == 0 {
		writeJSON(w, http.StatusBadRequest, UploadDocumentsResponse{Rejected: rejected})
		return
	}

	results := make([]UploadOutcome, 0, len(staged))
	for _, doc := range staged {
		results = append(results, h.processDocument(r.Context(), doc, county, budgetYear, userID))
	}

	writeJSON(w, http.StatusOK, UploadDocumentsResponse{
		Results:  results,
		Rejected: rejected,
	})
}

func (h *UploadsHandler) processDocument(
	ctx context.Context,
	doc *domain.Document,
	county, budgetYear string,
	userID *uuid.UUID,
) UploadOutcome {
	result, err := h.processor.Process(ctx, &domain.Submission{
		Document:   doc,
		County:     county,
		BudgetYear: budgetYear,
		UserID:     userID,
	})
	if err != nil {
		return UploadOutcome{
			FileName: doc.Name,
			Status:   string(domain.StatusFailed),
			Error:    err.Error(),
		}
	}

	outcome := UploadOutcome{
		FileName:          result.Upload.FileName,
		UploadID:          result.Upload.ID.String(),
		Status:            string(result.Upload.Status),
		KeyInsights:       result.Analysis.KeyInsights,
		TransparencyScore: &result.Analysis.TransparencyScore,
		FlaggedIssues:     result.Analysis.FlaggedIssues,
	}

	if result.Analysis.Summary != nil {
		outcome.Summary = *result.Analysis.Summary
	}

	return outcome
}

type ListUploadsResponse struct {
	Uploads    []*domain.Upload `json:"uploads"`
	Pagination Pagination       `json:"pagination"`
}

func (h *UploadsHandler) ListUploads(w http.ResponseWriter, r *http.Request) {
	page, limit, err := h.parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	uploads, total, err := h.uploadsProvider.Uploads(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ListUploadsResponse{
		Uploads: uploads,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
}

func (h *UploadsHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	uploadID, err := uuid.Parse(chi.URLParam(r, "upload_id"))
	if err != nil {
		http.Error(w, "invalid upload id", http.StatusBadRequest)
		return
	}

	analysis, err := h.analysisProvider.AnalysisByUploadID(r.Context(), uploadID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (h *UploadsHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}

func parseUserID(r *http.Request) (*uuid.UUID, error) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return nil, nil // anonymous uploads are allowed
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("invalid X-User-ID header")
	}

	return &id, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
