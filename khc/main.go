// khc is the command line to keep a self-help group's books.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sangam/khata/cmd"
	"github.com/sangam/khata/logging"
)

func main() {
	// a .env in the working directory may set KHATA_FILE and KHATA_LOG;
	// absence is fine.
	godotenv.Load()
	logging.Setup()

	// shell completion: this call exits early when invoked by the shell's
	// completion machinery.
	completion().Complete("khc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	sub := map[string]*complete.Command{}
	for _, name := range []string{
		"add-group", "add-member", "add-saving-product", "add-loan-product",
		"collect", "meeting",
		"loan", "approve", "reject", "repay", "schedule",
		"memberwise", "daywise", "monthly", "annual",
		"import", "topic",
	} {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"book": predict.Files("*.json"),
		},
	}
}
