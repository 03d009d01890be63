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

type memberwiseCmd struct {
	from string
	to   string
}

func (*memberwiseCmd) Name() string     { return "memberwise" }
func (*memberwiseCmd) Synopsis() string { return "display the memberwise savings and dues report" }
func (*memberwiseCmd) Usage() string {
	return `khc memberwise [-from <date>] [-to <date>] [<member> ...]

  Displays savings, loans, repayments and pending dues per member. With no
  member ids, every member is listed. The range bounds the period savings
  column only.
`
}

func (c *memberwiseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the period")
	f.StringVar(&c.to, "to", "", "End of the period")
}

func (c *memberwiseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := parseRange(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	var ids []int
	for _, arg := range f.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid member id %q\n", arg)
			return subcommands.ExitUsageError
		}
		ids = append(ids, id)
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := book.NewMemberwiseReport(ids, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MemberwiseMarkdown(report))
	return subcommands.ExitSuccess
}
