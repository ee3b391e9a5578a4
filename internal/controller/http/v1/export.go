package v1

import (
	"net/http"
	"time"

	"github.com/jszwec/csvutil"
)

type uploadExportRow struct {
	ID           string `csv:"id"`
	FileName     string `csv:"file_name"`
	FileSize     int64  `csv:"file_size"`
	County       string `csv:"county"`
	BudgetYear   string `csv:"budget_year"`
	Status       string `csv:"upload_status"`
	ErrorMessage string `csv:"error_message"`
	UploadedAt   string `csv:"uploaded_at"`
}

// ExportUploads streams the full upload ledger as CSV.
func (h *UploadsHandler) ExportUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.uploadsProvider.AllUploads(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rows := make([]uploadExportRow, 0, len(uploads))
	for _, upload := range uploads {
		rows = append(rows, uploadExportRow{
			ID:           upload.ID.String(),
			FileName:     upload.FileName,
			FileSize:     upload.FileSize,
			County:       upload.County,
			BudgetYear:   upload.BudgetYear,
			Status:       string(upload.Status),
			ErrorMessage: upload.ErrorMessage,
			UploadedAt:   upload.UploadedAt.Format(time.RFC3339),
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="uploads.csv"`)
	w.Write(data)
}
