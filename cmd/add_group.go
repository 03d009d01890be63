package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
)

type addGroupCmd struct {
	code  string
	name  string
	staff int
}

func (*addGroupCmd) Name() string     { return "add-group" }
func (*addGroupCmd) Synopsis() string { return "register a new self-help group" }
func (*addGroupCmd) Usage() string {
	return `khc add-group -code <code> -name <name> [-staff <user>]

  Registers a new group. The code must be unique across the book.
`
}

func (c *addGroupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique group code")
	f.StringVar(&c.name, "name", "", "Group name")
	f.IntVar(&c.staff, "staff", 0, "Id of the staff user in charge")
}

func (c *addGroupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	group, err := book.CreateGroup(khata.Group{
		Code:    c.code,
		Name:    c.name,
		Active:  true,
		StaffID: c.staff,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered group %q with id %d\n", group.Code, group.ID)
	return subcommands.ExitSuccess
}
