package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
)

type addMemberCmd struct {
	group      int
	name       string
	memberType string
	joined     string
}

func (*addMemberCmd) Name() string     { return "add-member" }
func (*addMemberCmd) Synopsis() string { return "enroll a member into a group" }
func (*addMemberCmd) Usage() string {
	return `khc add-member -g <group> -name <name> [-type <type>] [-d <date>]

  Enrolls a member into an existing group. The join date defaults to today.
`
}

func (c *addMemberCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.group, "g", 0, "Id of the group to enroll into")
	f.StringVar(&c.name, "name", "", "Member name")
	f.StringVar(&c.memberType, "type", "primary", "Member type (primary, associate, nominated)")
	f.StringVar(&c.joined, "d", "", "Join date (defaults to today)")
}

func (c *addMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mt, err := khata.ParseMemberType(c.memberType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	joined, err := parseDay(c.joined)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -d: %v\n", err)
		return subcommands.ExitUsageError
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	member, err := book.EnrollMember(khata.Member{
		GroupID:  c.group,
		Name:     c.name,
		Status:   khata.MemberActive,
		Type:     mt,
		JoinedOn: joined,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Enrolled member %q with id %d\n", member.Name, member.ID)
	return subcommands.ExitSuccess
}
