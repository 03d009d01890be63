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

type daywiseCmd struct {
	day  string
	from string
	to   string
}

func (*daywiseCmd) Name() string     { return "daywise" }
func (*daywiseCmd) Synopsis() string { return "display every transaction in a date range" }
func (*daywiseCmd) Usage() string {
	return `khc daywise [-d <date> | -from <date> -to <date>]

  Lists every saving, repayment and disbursement in the range, with the
  period's collection and recovery totals. -d alone reports a single day;
  with no flags, today.
`
}

func (c *daywiseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Single day to report")
	f.StringVar(&c.from, "from", "", "Start of the period")
	f.StringVar(&c.to, "to", "", "End of the period")
}

func (c *daywiseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rng date.Range
	switch {
	case c.day != "":
		d, err := date.Parse(c.day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -d: %v\n", err)
			return subcommands.ExitUsageError
		}
		rng = date.NewRange(d, d)
	case c.from != "" || c.to != "":
		var err error
		rng, err = parseRange(c.from, c.to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	default:
		today := date.Today()
		rng = date.NewRange(today, today)
	}

	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := book.NewDaywiseReport(rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DaywiseMarkdown(report))
	return subcommands.ExitSuccess
}
