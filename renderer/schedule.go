package renderer

import (
	"bytes"
	"fmt"

	"github.com/sangam/khata"
	md "github.com/nao1215/markdown"
)

func ScheduleMarkdown(loan khata.Loan, rows []khata.Installment) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Repayment Schedule for Loan %d", loan.ID))
	doc.PlainText(fmt.Sprintf("Principal %s at %s%% for %d months, quoted EMI %s.",
		loan.Amount.Display(), loan.Rate, loan.Tenor, loan.EMI.Display()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Due", "Opening", "Principal", "Interest", "Total", "Paid"},
	}
	for _, row := range rows {
		paid := ""
		if row.Paid {
			paid = fmt.Sprintf("%s on %s", row.PaidAmt.Display(), row.PaidOn)
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", row.Seq),
			row.DueOn.String(),
			amount(row.Opening),
			amount(row.Principal),
			amount(row.Interest),
			amount(row.Total),
			paid,
		})
	}
	doc.Table(table)

	return doc.String()
}
