package domain

import (
	"time"

	"github.com/google/uuid"
)

type Upload struct {
	ID           uuid.UUID  `db:"id"             json:"id"`
	FileName     string     `db:"file_name"      json:"file_name"`
	FileSize     int64      `db:"file_size"      json:"file_size"`
	FileURL      string     `db:"file_url"       json:"file_url"`
	County       string     `db:"county"         json:"county"`
	BudgetYear   string     `db:"budget_year"    json:"budget_year"`
	Status       Status     `db:"upload_status"  json:"upload_status"`
	ErrorMessage string     `db:"error_message"  json:"error_message,omitempty"`
	UploadedAt   time.Time  `db:"uploaded_at"    json:"uploaded_at"`
	UserID       *uuid.UUID `db:"user_id"        json:"user_id,omitempty"`
}
