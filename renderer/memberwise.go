package renderer

import (
	"bytes"
	"fmt"

	"github.com/sangam/khata"
	md "github.com/nao1215/markdown"
)

func MemberwiseMarkdown(r *khata.MemberwiseReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Memberwise Report (%s)", period(r.Range)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{
			"Member",
			"Savings",
			"Period Savings",
			"Loans",
			"Repaid",
			"Pending Due",
			"Last Repayment",
		},
	}
	for _, row := range r.Rows {
		last := "-"
		if row.HasRepayment {
			last = row.LastRepaidOn.String()
		}
		table.Rows = append(table.Rows, []string{
			row.Member.Name,
			amount(row.TotalSavings),
			amount(row.PeriodSavings),
			amount(row.TotalLoans),
			amount(row.TotalRepaid),
			amount(row.PendingDue),
			last,
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(amount(r.TotalSavings)),
		"",
		md.Bold(amount(r.TotalLoans)),
		md.Bold(amount(r.TotalRepaid)),
		md.Bold(amount(r.TotalDue)),
		"",
	})
	doc.Table(table)

	return doc.String()
}
