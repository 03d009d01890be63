package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/sangam/khata/date"
	"github.com/sangam/khata/renderer"
)

type monthlyCmd struct {
	month string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the month's day-by-day cash book" }
func (*monthlyCmd) Usage() string {
	return `khc monthly [-m <yyyy-mm>]

  Displays the day-by-day cash book for one calendar month
  (defaults to the current month).
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to report, as yyyy-mm")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year, month := date.Today().Year(), date.Today().Month()
	if c.month != "" {
		t, err := time.Parse("2006-01", c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -m, want yyyy-mm: %v\n", err)
			return subcommands.ExitUsageError
		}
		year, month = t.Year(), t.Month()
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MonthlyMarkdown(book.NewMonthlyReport(year, month)))
	return subcommands.ExitSuccess
}
