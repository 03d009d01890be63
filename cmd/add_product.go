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

type addSavingProductCmd struct {
	code string
	name string
	rate string
}

func (*addSavingProductCmd) Name() string     { return "add-saving-product" }
func (*addSavingProductCmd) Synopsis() string { return "define a saving product" }
func (*addSavingProductCmd) Usage() string {
	return `khc add-saving-product -code <code> -name <name> [-rate <pct>]

  Defines a saving product members can save under.
`
}

func (c *addSavingProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique product code")
	f.StringVar(&c.name, "name", "", "Product name")
	f.StringVar(&c.rate, "rate", "0", "Annual interest rate in percent")
}

func (c *addSavingProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := decimal.NewFromString(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -rate: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	product, err := book.CreateSavingProduct(khata.SavingProduct{
		Code:   c.code,
		Name:   c.name,
		Rate:   rate,
		Active: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Defined saving product %q with id %d\n", product.Code, product.ID)
	return subcommands.ExitSuccess
}

type addLoanProductCmd struct {
	code string
	name string
	rate string
	max  string
}

func (*addLoanProductCmd) Name() string     { return "add-loan-product" }
func (*addLoanProductCmd) Synopsis() string { return "define a loan product" }
func (*addLoanProductCmd) Usage() string {
	return `khc add-loan-product -code <code> -name <name> -rate <pct> [-max <amount>]

  Defines a loan product. The rate is the default annual rate for loans
  taken under it; -max of 0 means no cap.
`
}

func (c *addLoanProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique product code")
	f.StringVar(&c.name, "name", "", "Product name")
	f.StringVar(&c.rate, "rate", "0", "Default annual interest rate in percent")
	f.StringVar(&c.max, "max", "0", "Maximum loan amount (0 for no cap)")
}

func (c *addLoanProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := decimal.NewFromString(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -rate: %v\n", err)
		return subcommands.ExitUsageError
	}
	max, err := khata.ParseMoney(c.max)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -max: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	product, err := book.CreateLoanProduct(khata.LoanProduct{
		Code:      c.code,
		Name:      c.name,
		Rate:      rate,
		MaxAmount: max,
		Active:    true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Defined loan product %q with id %d\n", product.Code, product.ID)
	return subcommands.ExitSuccess
}
