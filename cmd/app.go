// Package cmd implements the khc CLI to keep a self-help group's books.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sangam/khata"
	"github.com/sangam/khata/date"
)

// Register the subcommands. A main package calls Register() to declare the
// subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addGroupCmd{}, "book")
	c.Register(&addMemberCmd{}, "book")
	c.Register(&addSavingProductCmd{}, "book")
	c.Register(&addLoanProductCmd{}, "book")
	c.Register(&importCmd{}, "book")

	c.Register(&collectCmd{}, "collections")
	c.Register(&meetingCmd{}, "collections")

	c.Register(&loanCmd{}, "loans")
	c.Register(&approveCmd{}, "loans")
	c.Register(&rejectCmd{}, "loans")
	c.Register(&repayCmd{}, "loans")
	c.Register(&scheduleCmd{}, "loans")

	c.Register(&memberwiseCmd{}, "reports")
	c.Register(&daywiseCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&annualCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var bookFile = flag.String("book", defaultBookFile(), "Path to the book file (JSON)")

func defaultBookFile() string {
	if p := os.Getenv("KHATA_FILE"); p != "" {
		return p
	}
	return "khata.json"
}

// LoadBook reads the book from the app book file. A missing file is a fresh
// start, not an error.
func LoadBook() (*khata.Store, error) {
	s, err := khata.LoadStore(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("book does not exist, starting an empty one", "path", *bookFile)
		return khata.NewStore(), nil
	}
	return s, err
}

// SaveBook writes the book back to the app book file.
func SaveBook(s *khata.Store) error { return khata.SaveStore(*bookFile, s) }

// printMarkdown renders a markdown report for the terminal, falling back to
// the raw text when rendering fails.
func printMarkdown(text string) {
	out, err := glamour.Render(text, "auto")
	if err != nil {
		fmt.Print(text)
		return
	}
	fmt.Print(out)
}

// parseDay parses an optional date flag. Empty means the zero date, which
// the operations fill with today.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Date{}, nil
	}
	return date.Parse(s)
}

// parseRange builds a report range from optional from/to flags. Both empty
// means the unbounded range.
func parseRange(from, to string) (date.Range, error) {
	f, err := parseDay(from)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid -from: %w", err)
	}
	t, err := parseDay(to)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid -to: %w", err)
	}
	return date.NewRange(f, t), nil
}
