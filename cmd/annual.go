package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sangam/khata/date"
	"github.com/sangam/khata/renderer"
)

type annualCmd struct {
	year int
}

func (*annualCmd) Name() string     { return "annual" }
func (*annualCmd) Synopsis() string { return "display the year's month-by-month cash book" }
func (*annualCmd) Usage() string {
	return `khc annual [-y <year>]

  Displays the month-by-month cash book for one calendar year with the
  year-end figures (defaults to the current year).
`
}

func (c *annualCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report")
}

func (c *annualCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year := c.year
	if year == 0 {
		year = date.Today().Year()
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AnnualMarkdown(book.NewAnnualReport(year)))
	return subcommands.ExitSuccess
}
