package report_generator

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/openbudgetke/budget_analyzer/internal/domain"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport renders a single-upload transparency report PDF.
func (g *Generator) GenerateReport(outputPath string, result *domain.Result) error {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	upload := result.Upload
	analysis := result.Analysis

	m.AddRow(12, text.NewCol(12, "Budget Transparency Report", props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))

	m.AddRow(8, text.NewCol(12, fmt.Sprintf("%s County — Budget Year %s", upload.County, upload.BudgetYear), props.Text{
		Size:  11,
		Align: align.Center,
	}))

	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Source document: %s", upload.FileName), props.Text{
		Size:  9,
		Align: align.Center,
	}))

	m.AddRow(4, line.NewCol(12))

	m.AddRow(10, text.NewCol(12, fmt.Sprintf("Transparency score: %d / 100", analysis.TransparencyScore), props.Text{
		Size:  13,
		Style: fontstyle.Bold,
	}))

	if analysis.Summary != nil && *analysis.Summary != "" {
		m.AddRow(8, text.NewCol(12, "Summary", props.Text{Size: 11, Style: fontstyle.Bold}))
		m.AddRow(14, text.NewCol(12, *analysis.Summary, props.Text{Size: 10}))
	}

	addList(m, "Key insights", analysis.KeyInsights)
	addList(m, "Flagged issues", analysis.FlaggedIssues)

	document, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := document.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save report to %q: %w", outputPath, err)
	}

	return nil
}

func addList(m core.Maroto, title string, items []string) {
	if len(items) == 0 {
		return
	}

	m.AddRow(8, text.NewCol(12, title, props.Text{Size: 11, Style: fontstyle.Bold}))

	for _, item := range items {
		m.AddRow(6, text.NewCol(12, "• "+item, props.Text{Size: 10, Left: 3}))
	}
}
