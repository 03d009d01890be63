package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
)

type collectCmd struct {
	member  int
	product int
	amount  string
	day     string
	by      int
}

func (*collectCmd) Name() string     { return "collect" }
func (*collectCmd) Synopsis() string { return "record savings deposits and withdrawals" }
func (*collectCmd) Usage() string {
	return `khc collect -p <product> [-d <date>] -m <member> -a <amount>
khc collect -p <product> [-d <date>] <member>=<amount> ...

  Records saving rows. A negative amount is a withdrawal. The second form
  records a whole meeting's collection in one batch: the batch is checked
  first and applied only when every row is valid.
`
}

func (c *collectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.member, "m", 0, "Member id (single row form)")
	f.IntVar(&c.product, "p", 0, "Saving product id")
	f.StringVar(&c.amount, "a", "", "Amount (single row form, negative to withdraw)")
	f.StringVar(&c.day, "d", "", "Collection date (defaults to today)")
	f.IntVar(&c.by, "by", 0, "Id of the collecting user")
}

func (c *collectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -d: %v\n", err)
		return subcommands.ExitUsageError
	}

	var rows []khata.Saving
	if c.member != 0 || c.amount != "" {
		amount, err := khata.ParseMoney(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -a: %v\n", err)
			return subcommands.ExitUsageError
		}
		rows = append(rows, khata.Saving{
			MemberID:    c.member,
			ProductID:   c.product,
			Amount:      amount,
			On:          on,
			CollectorID: c.by,
		})
	}
	for _, arg := range f.Args() {
		member, amount, err := parsePair(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		rows = append(rows, khata.Saving{
			MemberID:    member,
			ProductID:   c.product,
			Amount:      amount,
			On:          on,
			CollectorID: c.by,
		})
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to collect, give -m/-a or member=amount pairs")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	created, err := book.CollectBatch(rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %d saving row(s)\n", len(created))
	return subcommands.ExitSuccess
}

// parsePair splits a "member=amount" argument.
func parsePair(arg string) (member int, amount khata.Money, err error) {
	k, v, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, khata.Money{}, fmt.Errorf("argument %q is not of the form member=amount", arg)
	}
	member, err = strconv.Atoi(k)
	if err != nil {
		return 0, khata.Money{}, fmt.Errorf("argument %q: member id: %w", arg, err)
	}
	amount, err = khata.ParseMoney(v)
	if err != nil {
		return 0, khata.Money{}, fmt.Errorf("argument %q: amount: %w", arg, err)
	}
	return member, amount, nil
}
