package cmd

import (
	"context"
	"flag"

	"github.com/etnz/lifeplan/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display account balances for every plan year" }
func (*accountsCmd) Usage() string {
	return `lpc accounts

  Displays the initial balance, net flows and final balance of every account,
  then the balance of each account at the end of every plan year.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	p, err := s.project("")
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(renderer.Accounts(p.Accounts))
	return subcommands.ExitSuccess
}
