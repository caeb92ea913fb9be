package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/foryou/internal/pipeline"
	"github.com/abelbrown/foryou/internal/scoring"
)

// breakdownCard renders the per-action score breakdown for one post.
type breakdownCard struct {
	styles  Styles
	weights scoring.Weights
}

// View renders the card. Bars are scaled to the largest absolute
// contribution so penalties stay visually comparable to boosts.
func (c breakdownCard) View(post pipeline.RankedPost, width int) string {
	contribs := scoring.Contributions(c.weights, &post.Candidate)

	var b strings.Builder
	fmt.Fprintf(&b, "SCORE BREAKDOWN  @%s  final %.4f\n\n", post.Candidate.AuthorID, post.Score)

	if len(contribs) == 0 {
		b.WriteString("no predictions supplied")
		return c.styles.CardBorder.Width(width - 2).Render(b.String())
	}

	maxAbs := 0.0
	for _, ct := range contribs {
		if v := abs(ct.Value); v > maxAbs {
			maxAbs = v
		}
	}

	barWidth := width - 42
	if barWidth < 10 {
		barWidth = 10
	}

	for _, ct := range contribs {
		label := c.styles.MetricLabel.Render(fmt.Sprintf("%-15s", ct.Action))
		detail := fmt.Sprintf("P=%.3f × w=%+.1f", ct.P, ct.Weight)
		value := c.styles.MetricValue.Render(fmt.Sprintf("%+.4f", ct.Value))
		bar := c.renderBar(ct.Value, maxAbs, barWidth, ct.Penalty)

		fmt.Fprintf(&b, "%s %s %s %s\n", label, detail, bar, value)
	}

	if post.Candidate.HasVideo {
		fmt.Fprintf(&b, "\nvideo %.0fs — duration bonus applied before diversity", post.Candidate.VideoSeconds)
	}

	return c.styles.CardBorder.Width(width - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func (c breakdownCard) renderBar(value, maxAbs float64, width int, penalty bool) string {
	if maxAbs == 0 {
		return c.styles.BarEmpty.Render(strings.Repeat("░", width))
	}

	filled := int(abs(value) / maxAbs * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 1 && value != 0 {
		filled = 1
	}

	fill := c.styles.BarFill
	if penalty {
		fill = c.styles.BarPenalty
	}
	return fill.Render(strings.Repeat("█", filled)) +
		c.styles.BarEmpty.Render(strings.Repeat("░", width-filled))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
