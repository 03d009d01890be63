package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/sangam/khata/renderer"
)

type scheduleCmd struct{}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display a loan's repayment schedule" }
func (*scheduleCmd) Usage() string {
	return `khc schedule <loan>

  Displays the month-by-month repayment schedule of a loan, with repayments
  matched to their due month.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: give exactly one loan id")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid loan id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	loan, err := book.Loan(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	rows, err := book.Schedule(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ScheduleMarkdown(loan, rows))
	return subcommands.ExitSuccess
}
