package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
)

type repayCmd struct {
	loan   int
	amount string
	day    string
	kind   string
	by     int
}

func (*repayCmd) Name() string     { return "repay" }
func (*repayCmd) Synopsis() string { return "record a loan repayment" }
func (*repayCmd) Usage() string {
	return `khc repay -l <loan> -a <amount> [-d <date>] [-kind <kind>]

  Records a repayment against an approved loan. Over-payment is accepted;
  the outstanding figure then reads negative.
`
}

func (c *repayCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.loan, "l", 0, "Loan id")
	f.StringVar(&c.amount, "a", "", "Repayment amount")
	f.StringVar(&c.day, "d", "", "Repayment date (defaults to today)")
	f.StringVar(&c.kind, "kind", "emi", "Kind of repayment (emi, foreclosure, penalty)")
	f.IntVar(&c.by, "by", 0, "Id of the collecting user")
}

func (c *repayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := khata.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -a: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -d: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r, err := book.Repay(khata.Repayment{
		LoanID:      c.loan,
		Amount:      amount,
		On:          on,
		Kind:        c.kind,
		CollectorID: c.by,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	outstanding, err := book.Outstanding(c.loan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded repayment of %s against loan %d, outstanding %s\n",
		r.Amount.Display(), c.loan, outstanding.SignedString())
	return subcommands.ExitSuccess
}
