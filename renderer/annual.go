package renderer

import (
	"bytes"
	"fmt"

	"github.com/sangam/khata"
	md "github.com/nao1215/markdown"
)

func AnnualMarkdown(r *khata.AnnualReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Annual Report %d", r.Year))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Savings", "Recovery", "Loans", "Collection"},
	}
	for _, m := range r.Months {
		table.Rows = append(table.Rows, []string{
			m.Month.String(),
			signedAmount(m.Savings),
			signedAmount(m.Recovery),
			signedAmount(m.Loans),
			signedAmount(m.Collection),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(amount(r.TotalSavings)),
		md.Bold(amount(r.TotalRecovery)),
		md.Bold(amount(r.TotalLoans)),
		"",
	})
	doc.Table(table)

	doc.H2("Year End")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Net Cash Flow", signedAmount(r.NetCashFlow)},
			{"Estimated Interest Earned", amount(r.EstInterest)},
			{"Active Loans", fmt.Sprintf("%d", r.ActiveLoans)},
			{"Pending Loans", fmt.Sprintf("%d", r.PendingLoans)},
		},
	})

	return doc.String()
}
