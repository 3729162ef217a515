package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ppiankov/factdash/internal/model"
)

// barWidth is the number of cells a 100% bar occupies
const barWidth = 40

// RenderVerdictChart draws the verdict distribution as a labeled bar chart
func RenderVerdictChart(w io.Writer, shares []model.VerdictShare) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Verdict Distribution (%)")
	t.AppendHeader(table.Row{"Verdict", "Percentage", "Claims", ""})

	for _, s := range shares {
		t.AppendRow(table.Row{
			s.Verdict,
			fmt.Sprintf("%.1f", s.Percent),
			s.Count,
			bar(s.Percent),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func bar(percent float64) string {
	cells := int(math.Round(percent / 100 * barWidth))
	if cells < 0 {
		cells = 0
	}
	if cells > barWidth {
		cells = barWidth
	}
	return strings.Repeat("█", cells)
}
