package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Analysis struct {
	ID                uuid.UUID `db:"id"                 json:"id"`
	UploadID          uuid.UUID `db:"upload_id"          json:"upload_id"`
	ExtractedText     *string   `db:"extracted_text"     json:"extracted_text,omitempty"`
	Summary           *string   `db:"summary"            json:"summary,omitempty"`
	KeyInsights       []string  `db:"key_insights"       json:"key_insights"`
	TransparencyScore int       `db:"transparency_score" json:"transparency_score"`
	FlaggedIssues     []string  `db:"flagged_issues"     json:"flagged_issues"`
	AnalyzedAt        time.Time `db:"analyzed_at"        json:"analyzed_at"`
}

// AnalysisResult is the contract between the analyzer and orchestration.
type AnalysisResult struct {
	Summary           string   `json:"summary"`
	KeyInsights       []string `json:"key_insights"`
	TransparencyScore int      `json:"transparency_score"`
	FlaggedIssues     []string `json:"flagged_issues"`
}

func (r *AnalysisResult) Validate() error {
	if r.Summary == "" {
		return fmt.Errorf("summary is required")
	}

	if r.TransparencyScore < 0 || r.TransparencyScore > 100 {
		return fmt.Errorf("transparency score %d is out of range [0;100]", r.TransparencyScore)
	}

	return nil
}
