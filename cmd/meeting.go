package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/sangam/khata"
)

type meetingCmd struct {
	group    int
	meetType int
	day      string
	remarks  string
	by       int
}

func (*meetingCmd) Name() string     { return "meeting" }
func (*meetingCmd) Synopsis() string { return "record a group meeting and its attendance" }
func (*meetingCmd) Usage() string {
	return `khc meeting -g <group> [-t <type>] [-d <date>] [-remarks <text>] [<member> ...]

  Records a meeting of a group. Attendees are listed as member ids and must
  all belong to the group.
`
}

func (c *meetingCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.group, "g", 0, "Group id")
	f.IntVar(&c.meetType, "t", 0, "Meeting type id")
	f.StringVar(&c.day, "d", "", "Meeting date (defaults to today)")
	f.StringVar(&c.remarks, "remarks", "", "Free-form remarks")
	f.IntVar(&c.by, "by", 0, "Id of the recording user")
}

func (c *meetingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDay(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -d: %v\n", err)
		return subcommands.ExitUsageError
	}
	var attendees []int
	for _, arg := range f.Args() {
		id, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid member id %q\n", arg)
			return subcommands.ExitUsageError
		}
		attendees = append(attendees, id)
	}
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	meeting, err := book.RecordMeeting(khata.Meeting{
		GroupID:   c.group,
		On:        on,
		TypeID:    c.meetType,
		Attendees: attendees,
		Remarks:   c.remarks,
		CreatedBy: c.by,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded meeting %d with %d attendee(s)\n", meeting.ID, len(meeting.Attendees))
	return subcommands.ExitSuccess
}
