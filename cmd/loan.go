package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
	"github.com/shopspring/decimal"
)

type loanCmd struct {
	member  int
	product int
	amount  string
	rate    string
	tenor   int
	purpose string
	day     string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "record a loan application" }
func (*loanCmd) Usage() string {
	return `khc loan -m <member> -p <product> -a <amount> -tenor <months> [-rate <pct>] [-purpose <text>] [-d <date>]

  Records a loan application in pending status. The rate defaults to the
  product's rate; both rate and tenor are fixed for the life of the loan.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.member, "m", 0, "Borrowing member id")
	f.IntVar(&c.product, "p", 0, "Loan product id")
	f.StringVar(&c.amount, "a", "", "Principal amount")
	f.StringVar(&c.rate, "rate", "0", "Annual interest rate in percent (defaults to the product's)")
	f.IntVar(&c.tenor, "tenor", 0, "Tenor in months")
	f.StringVar(&c.purpose, "purpose", "", "Purpose of the loan")
	f.StringVar(&c.day, "d", "", "Application date (defaults to today)")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := khata.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -a: %v\n", err)
		return subcommands.ExitUsageError
	}
	rate, err := decimal.NewFromString(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -rate: %v\n", err)
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
	loan, err := book.ApplyLoan(khata.Loan{
		MemberID:  c.member,
		ProductID: c.product,
		Amount:    amount,
		Rate:      rate,
		Tenor:     c.tenor,
		Purpose:   c.purpose,
		AppliedOn: on,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded loan application %d for %s over %d months\n", loan.ID, loan.Amount.Display(), loan.Tenor)
	return subcommands.ExitSuccess
}
