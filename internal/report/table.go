package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ppiankov/factdash/internal/model"
)

const statementWidth = 60

// RenderClaims prints the collected claims table
func RenderClaims(w io.Writer, claims []model.ClaimRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Source", "Statement", "Label", "Author"})
	for _, c := range claims {
		t.AppendRow(table.Row{c.DateString(), c.Source, c.Statement, c.Label, c.Author})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Statement", WidthMax: statementWidth},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderVerified prints claims alongside their verification columns
func RenderVerified(w io.Writer, rows []model.VerifiedClaim) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Statement", "Label", "Verdict", "Publisher", "Rating"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.DateString(),
			r.Statement,
			r.Label,
			r.Result.Verdict,
			r.Result.Publisher,
			r.Result.Rating,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Statement", WidthMax: statementWidth},
		{Name: "Rating", WidthMax: 30},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
