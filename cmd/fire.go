package cmd

import (
	"context"
	"flag"

	"github.com/etnz/lifeplan"
	"github.com/etnz/lifeplan/renderer"
	"github.com/google/subcommands"
)

type fireCmd struct {
	target float64
	member string
}

func (*fireCmd) Name() string     { return "fire" }
func (*fireCmd) Synopsis() string { return "display net worth and when financial independence is reached" }
func (*fireCmd) Usage() string {
	return `lpc fire [-target <amount>] [-member <id|name>]

  Displays the net worth at the end of each plan year, with the age of the
  selected member, and the first year the FIRE target is reached.
  -target overrides the plan target, and enables the goal if it is disabled.
`
}

func (c *fireCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "target", 0, "FIRE target amount. Plan target by default.")
	f.StringVar(&c.member, "member", "", "Household member anchoring ages. Configured member by default.")
}

func (c *fireCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.target < 0 {
		return usage("-target must not be negative")
	}
	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	p, err := s.project(c.member)
	if err != nil {
		return fail("%v", err)
	}

	goal := p.Goal
	if c.target > 0 {
		g := lifeplan.DetectGoal(p.NetWorth, lifeplan.M(c.target, p.Settings.Currency))
		goal = &g
	}
	if goal != nil {
		s.log.Debug().Bool("achieved", goal.Achieved).Int("year", goal.Year).Stringer("progress", goal.Progress).Msg("fire goal")
	}
	printMarkdown(renderer.Fire(p.NetWorth, goal))
	return subcommands.ExitSuccess
}
