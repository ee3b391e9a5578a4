package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

// disclosureSections are the budget sections a transparent document is
// expected to disclose. The score is driven entirely by their presence,
// which keeps the analyzer deterministic for identical input. The formula
// itself is a placeholder pending a real scoring model.
var disclosureSections = []string{
	"revenue",
	"expenditure",
	"procurement",
	"audit",
	"debt",
	"development",
}

const (
	// base + all six sections adds up to exactly 100
	baseScore        = 22
	scorePerSection  = 13
	summarySentences = 2
)

type Analyzer struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Analyzer {
	return &Analyzer{log: log}
}

func (a *Analyzer) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("document contains no extractable text")
	}

	lower := strings.ToLower(trimmed)

	score := baseScore
	var insights, issues []string

	for _, section := range disclosureSections {
		if strings.Contains(lower, section) {
			score += scorePerSection
			insights = append(insights, fmt.Sprintf("document discloses %s information", section))
		} else {
			issues = append(issues, fmt.Sprintf("no %s disclosure found", section))
		}
	}

	if score > 100 {
		score = 100
	}

	result := &domain.AnalysisResult{
		Summary:           summarize(trimmed),
		KeyInsights:       insights,
		TransparencyScore: score,
		FlaggedIssues:     issues,
	}

	a.log.DebugContext(ctx, "analyzed document",
		slog.Int("transparency_score", result.TransparencyScore),
		slog.Int("key_insights", len(result.KeyInsights)),
		slog.Int("flagged_issues", len(result.FlaggedIssues)),
	)

	return result, nil
}

// summarize takes the first sentences of the document as its summary.
func summarize(text string) string {
	var (
		b     strings.Builder
		count int
	)

	for _, r := range text {
		b.WriteRune(r)

		if r == '.' || r == '!' || r == '?' {
			count++
			if count == summarySentences {
				break
			}
		}
	}

	summary := strings.Join(strings.Fields(b.String()), " ")

	const maxSummaryLen = 500
	if len(summary) > maxSummaryLen {
		cut := maxSummaryLen
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}

	return summary
}
