package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a book written by the previous system" }
func (*importCmd) Usage() string {
	return `khc import <file>

  Reads the un-versioned JSON blob the previous system wrote and saves it as
  the current book. The target book must not already exist.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: give exactly one legacy file")
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(*bookFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: book %q already exists, refusing to overwrite\n", *bookFile)
		return subcommands.ExitFailure
	}

	legacy, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer legacy.Close()

	book, err := khata.ImportLegacy(legacy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d member(s), %d saving row(s), %d loan(s) into %s\n",
		book.Members.Len(), book.Savings.Len(), book.Loans.Len(), *bookFile)
	return subcommands.ExitSuccess
}
