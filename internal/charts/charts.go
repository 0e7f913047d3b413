// Package charts renders the static dashboard images: return rate by
// category, the monthly return-rate trend, high-risk product counts, and
// the model's confusion matrix.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "returnsight/internal/errors"
	"returnsight/internal/riskmodel"
	"returnsight/pkg/contracts/domain"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// ReturnRateByCategory renders a horizontal bar chart of the top categories
// by return rate.
func ReturnRateByCategory(filePath string, summaries []domain.CategorySummary, topN int) error {
	if len(summaries) == 0 {
		return apperrors.NewDataError("no category summaries to chart", nil)
	}
	if topN > 0 && len(summaries) > topN {
		summaries = summaries[:topN]
	}

	// Reverse so the highest rate lands at the top of the axis.
	values := make(plotter.Values, len(summaries))
	names := make([]string, len(summaries))
	for i, s := range summaries {
		j := len(summaries) - 1 - i
		values[j] = s.ReturnRate * 100
		names[j] = s.Category
	}

	p := plot.New()
	p.Title.Text = "Top Categories by Return Rate"
	p.X.Label.Text = "Return Rate (%)"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Horizontal = true
	p.Add(bars)
	p.NominalY(names...)

	return save(p, filePath)
}

// MonthlyTrend renders the monthly return-rate trend as a line with point
// markers.
func MonthlyTrend(filePath string, summaries []domain.MonthlySummary) error {
	if len(summaries) == 0 {
		return apperrors.NewDataError("no monthly summaries to chart", nil)
	}

	points := make(plotter.XYs, len(summaries))
	months := make([]string, len(summaries))
	for i, s := range summaries {
		points[i].X = float64(i)
		points[i].Y = s.ReturnRate * 100
		months[i] = s.Month
	}

	p := plot.New()
	p.Title.Text = "Monthly Return Rate Trend"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Return Rate (%)"

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return fmt.Errorf("failed to build line chart: %w", err)
	}
	p.Add(line, scatter)
	p.NominalX(months...)

	return save(p, filePath)
}

// HighRiskByCategory renders a bar chart of high-risk product counts per
// category.
func HighRiskByCategory(filePath string, summaries []domain.HighRiskSummary, topN int) error {
	if len(summaries) == 0 {
		return apperrors.NewDataError("no high-risk summaries to chart", nil)
	}
	if topN > 0 && len(summaries) > topN {
		summaries = summaries[:topN]
	}

	values := make(plotter.Values, len(summaries))
	names := make([]string, len(summaries))
	for i, s := range summaries {
		values[i] = float64(s.HighRiskCount)
		names[i] = s.Category
	}

	p := plot.New()
	p.Title.Text = "High-Risk Products by Category"
	p.X.Label.Text = "Category"
	p.Y.Label.Text = "Number of High-Risk Products"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	return save(p, filePath)
}

// ConfusionMatrix renders the 2x2 held-out confusion matrix as a heatmap
// with the outcome counts overlaid.
func ConfusionMatrix(filePath string, cm riskmodel.ConfusionMatrix) error {
	grid := confusionGrid{cm: cm}

	p := plot.New()
	p.Title.Text = "Confusion Matrix - Return Prediction"
	p.X.Label.Text = "Predicted"
	p.Y.Label.Text = "Actual"

	heat := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	p.Add(heat)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
		Labels: []string{
			fmt.Sprintf("%d", cm.TrueNegative),
			fmt.Sprintf("%d", cm.FalsePositive),
			fmt.Sprintf("%d", cm.FalseNegative),
			fmt.Sprintf("%d", cm.TruePositive),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build matrix labels: %w", err)
	}
	p.Add(labels)

	p.NominalX("Purchase", "Return")
	p.NominalY("Return", "Purchase")

	return save(p, filePath)
}

// confusionGrid adapts a confusion matrix to the heatmap grid interface.
// Row 0 is the actual-return row so the matrix reads top-down like the
// conventional layout.
type confusionGrid struct {
	cm riskmodel.ConfusionMatrix
}

func (g confusionGrid) Dims() (int, int) { return 2, 2 }
func (g confusionGrid) X(c int) float64  { return float64(c) }
func (g confusionGrid) Y(r int) float64  { return float64(r) }

func (g confusionGrid) Z(c, r int) float64 {
	switch {
	case c == 0 && r == 1:
		return float64(g.cm.TrueNegative)
	case c == 1 && r == 1:
		return float64(g.cm.FalsePositive)
	case c == 0 && r == 0:
		return float64(g.cm.FalseNegative)
	default:
		return float64(g.cm.TruePositive)
	}
}

func save(p *plot.Plot, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return apperrors.NewStorageError("failed to create charts directory", err)
	}
	if err := p.Save(chartWidth, chartHeight, filePath); err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to save chart %s", filePath), err)
	}
	return nil
}
