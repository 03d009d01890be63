package renderer

import (
	"bytes"
	"fmt"

	"github.com/sangam/khata"
	md "github.com/nao1215/markdown"
)

func MonthlyMarkdown(r *khata.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Report for %s %d", r.Month, r.Year))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Savings", "Recovery", "Loans", "Collection"},
	}
	for _, day := range r.Days {
		// skip empty days in the detail, the report keeps one row per day in
		// the data so callers can render a full calendar if they want
		if day.Savings.IsZero() && day.Recovery.IsZero() && day.Loans.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{
			day.On.String(),
			signedAmount(day.Savings),
			signedAmount(day.Recovery),
			signedAmount(day.Loans),
			signedAmount(day.Collection),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(amount(r.TotalSavings)),
		md.Bold(amount(r.TotalRecovery)),
		md.Bold(amount(r.TotalLoans)),
		md.Bold(amount(r.TotalCollection)),
	})
	doc.Table(table)

	if r.NewMembers > 0 {
		doc.PlainText(fmt.Sprintf("New members this month: %d", r.NewMembers))
	}

	return doc.String()
}
