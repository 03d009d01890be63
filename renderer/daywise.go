package renderer

import (
	"bytes"
	"fmt"

	"github.com/sangam/khata"
	md "github.com/nao1215/markdown"
)

func DaywiseMarkdown(r *khata.DaywiseReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daywise Report (%s)", period(r.Range)))

	if len(r.Entries) > 0 {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Date", "Kind", "Member", "Detail", "Amount"},
		}
		for _, e := range r.Entries {
			table.Rows = append(table.Rows, []string{
				e.On.String(),
				e.Kind.String(),
				e.Member.Name,
				e.Label,
				amount(e.Amount),
			})
		}
		doc.Table(table)
	}

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Collection", amount(r.Summary.Collection)},
			{"Recovery", amount(r.Summary.Recovery)},
			{"Payments", amount(r.Summary.Payments)},
			{"New Loans", amount(r.Summary.NewLoans)},
		},
	})

	return doc.String()
}
