// Package cmd implements the lpc command line application: projections of a
// life plan folder printed as markdown.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/lifeplan"
	"github.com/etnz/lifeplan/config"
	"github.com/etnz/lifeplan/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands returns every lpc subcommand, by group.
func Commands() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"projections": {
			&accountsCmd{},
			&holdingsCmd{},
			&dividendsCmd{},
			&fireCmd{},
			&reportCmd{},
		},
		"plan": {
			&checkCmd{},
			&addCmd{},
			&fmtCmd{},
			&importPricesCmd{},
		},
		"help": {
			&topicCmd{},
			&assistCmd{},
		},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range Commands() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	planDir     = flag.String("plan-dir", "", "Plan folder containing plan.json and transactions.jsonl (default from configuration)")
	configFile  = flag.String("config", config.DefaultFile, "Configuration file")
	logLevel    = flag.String("log-level", "", "Log level: debug, info, warn or error (default from configuration)")
	Verbose     = flag.Bool("v", false, "Verbose logging, same as -log-level debug")
	rawMarkdown = flag.Bool("markdown", false, "Print raw markdown instead of rendering it for the terminal")
)

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// session is what a command needs: the configuration, a logger and the plan.
type session struct {
	cfg  *config.Config
	log  zerolog.Logger
	dir  string
	plan *lifeplan.Plan
	feed *lifeplan.RecordFeed

	// currency as written in plan.json, empty when the configured one is used.
	planCurrency string
}

// loadConfig resolves the configuration and the logger, flags last.
// The logger is derived from the one carried by ctx.
func loadConfig(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	log := logger.FromContext(ctx)
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, log, err
	}
	if *planDir != "" {
		cfg.PlanDir = *planDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	log, err = logger.WithLevel(log, cfg.LogLevel)
	if err != nil {
		return nil, log, fmt.Errorf("invalid log level: %w", err)
	}
	return cfg, log, nil
}

// openSession loads the configuration and the plan folder.
func openSession(ctx context.Context) (*session, error) {
	cfg, log, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	plan, feed, err := lifeplan.LoadPlan(cfg.PlanDir)
	if err != nil {
		return nil, err
	}
	planCurrency := plan.Settings.Currency
	if planCurrency == "" {
		plan.SetCurrency(cfg.Currency)
	}
	log.Debug().
		Str("dir", cfg.PlanDir).
		Int("accounts", len(plan.Accounts)).
		Int("assets", len(plan.Assets)).
		Int("records", len(feed.Records())).
		Msg("plan loaded")
	return &session{cfg: cfg, log: log, dir: cfg.PlanDir, plan: plan, feed: feed, planCurrency: planCurrency}, nil
}

// savePlan writes the plan back to its folder. The configured currency is
// not persisted when the plan did not set one.
func (s *session) savePlan() error {
	p := *s.plan
	p.Settings.Currency = s.planCurrency
	return lifeplan.SavePlan(s.dir, &p)
}

// ages returns the age model for member, or the configured member when empty.
func (s *session) ages(member string) (lifeplan.AgeModel, error) {
	if member == "" {
		member = s.cfg.Member
	}
	ages := lifeplan.AgeModel{CurrentYear: s.cfg.CurrentYear, DefaultAge: s.cfg.DefaultAge}
	if member == "" {
		return ages, nil
	}
	m, ok := s.plan.Member(member)
	if !ok {
		return ages, fmt.Errorf("unknown member %q", member)
	}
	ages.Member = m
	return ages, nil
}

// project runs the projection and logs its diagnostics.
func (s *session) project(member string) (*lifeplan.Projection, error) {
	ages, err := s.ages(member)
	if err != nil {
		return nil, err
	}
	p, err := lifeplan.Project(s.plan, s.feed, ages)
	if err != nil {
		return nil, err
	}
	s.logDiagnostics(p.Diagnostics)
	return p, nil
}

// logDiagnostics logs one warning per diagnostic.
func (s *session) logDiagnostics(ds lifeplan.Diagnostics) {
	for _, d := range ds {
		log := logger.WithFields(s.log, diagnosticFields(d))
		log.Warn().Msg(d.Kind.String() + ": " + d.Message)
	}
}

// diagnosticFields returns the structured fields describing d.
func diagnosticFields(d lifeplan.Diagnostic) map[string]any {
	fields := map[string]any{"year": d.Year}
	if d.TransactionID != "" {
		fields["transaction"] = d.TransactionID
	}
	if d.AssetID != "" {
		fields["asset"] = d.AssetID
	}
	return fields
}

// fail prints an error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// usage prints an error and returns the usage error status.
func usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}
