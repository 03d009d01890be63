package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type approveCmd struct {
	day string
}

func (*approveCmd) Name() string     { return "approve" }
func (*approveCmd) Synopsis() string { return "approve a pending loan" }
func (*approveCmd) Usage() string {
	return `khc approve [-d <date>] <loan>

  Approves a pending loan on the given date and fixes its quoted EMI.
  The transition is final.
`
}

func (c *approveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "Approval date (defaults to today)")
}

func (c *approveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: give exactly one loan id")
		return subcommands.ExitUsageError
	}
	id, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid loan id %q\n", f.Arg(0))
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
	loan, err := book.ApproveLoan(id, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Approved loan %d, EMI %s\n", loan.ID, loan.EMI.Display())
	return subcommands.ExitSuccess
}

type rejectCmd struct{}

func (*rejectCmd) Name() string     { return "reject" }
func (*rejectCmd) Synopsis() string { return "reject a pending loan" }
func (*rejectCmd) Usage() string {
	return `khc reject <loan>

  Rejects a pending loan. The transition is final.
`
}

func (c *rejectCmd) SetFlags(f *flag.FlagSet) {}

func (c *rejectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	loan, err := book.RejectLoan(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Rejected loan %d\n", loan.ID)
	return subcommands.ExitSuccess
}
