// Command lpc projects a life plan folder: account balances, holdings,
// dividends, financial independence and yearly reports.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/lifeplan/cmd"
	"github.com/etnz/lifeplan/logger"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("lpc")

	commander := subcommands.NewCommander(flag.CommandLine, "lpc")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !isCommand(commander, name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	ctx := logger.WithContext(context.Background(), logger.New())
	os.Exit(int(commander.Execute(ctx)))
}

// isCommand reports whether name is a registered subcommand.
func isCommand(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
