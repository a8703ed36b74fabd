package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/lifeplan"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "formats the transactions file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `lpc fmt [-check]

  Reads all transaction records, sorts them by year and month, and writes them
  back in a canonical JSONL format. Records of the same month keep their order.
  Records are not validated, use 'lpc check' for that.

Usage Examples:
# Rewrites transactions.jsonl in-place.
$ lpc fmt

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Only report whether the file is formatted, exit with failure if not.")
}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, err := loadConfig(ctx)
	if err != nil {
		return fail("%v", err)
	}
	path := filepath.Join(cfg.PlanDir, lifeplan.TransactionsFilename)
	records, err := lifeplan.LoadRecords(path)
	if err != nil {
		return fail("%v", err)
	}
	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no transaction to format in %q.\n", path)
		return subcommands.ExitSuccess
	}

	sorted := make([]lifeplan.Record, len(records))
	copy(sorted, records)
	lifeplan.SortRecords(sorted)

	if c.check {
		current, err := os.ReadFile(path)
		if err != nil {
			return fail("%v", err)
		}
		var canonical bytes.Buffer
		if err := lifeplan.EncodeRecords(&canonical, sorted); err != nil {
			return fail("%v", err)
		}
		if !bytes.Equal(current, canonical.Bytes()) {
			fmt.Fprintf(os.Stderr, "%q is not formatted.\n", path)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := lifeplan.SaveRecords(cfg.PlanDir, sorted); err != nil {
		return fail("%v", err)
	}
	log.Debug().Int("records", len(sorted)).Str("file", path).Msg("transactions formatted")
	fmt.Fprintf(os.Stderr, "Successfully formatted %q.\n", path)
	return subcommands.ExitSuccess
}
