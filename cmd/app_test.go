package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/lifeplan"
	"github.com/etnz/lifeplan/config"
	"github.com/etnz/lifeplan/logger"
	"github.com/google/subcommands"
)

const testPlan = `{
  "settings": {"planStartYear": 2025, "planEndYear": 2027, "fireTargetAmount": 5000000, "fireEnabled": true, "currency": "JPY"},
  "accounts": [{"id": "main", "name": "Main", "initialBalance": 1000000}],
  "assets": [{"id": "fund", "name": "World", "symbol": "WLD",
    "priceHistory": [{"year": 2025, "price": 10000}, {"year": 2026, "price": 11000}, {"year": 2027, "price": 12000}],
    "dividendHistory": [{"year": 2026, "dividendPerShare": 100}]}],
  "categories": [{"id": "home", "name": "Home", "color": "#3366cc"}],
  "events": [],
  "members": [{"id": "alex", "name": "Alex", "currentAge": 40}]
}`

const testTransactions = `{"id":"salary","type":"income","amount":300000,"frequency":12,"year":2025,"month":1,"toAccountId":"main"}
{"id":"rent","type":"expense","amount":100000,"frequency":12,"year":2025,"month":1,"categoryId":"home","toAccountId":"main"}
{"id":"b1","type":"investment","transactionSubtype":"buy","amount":100000,"frequency":1,"year":2025,"month":6,"fromAccountId":"main","holdingAssetId":"fund","quantity":10}
{"id":"d1","type":"investment","transactionSubtype":"dividend","amount":1000,"frequency":1,"year":2026,"month":12,"toAccountId":"main","holdingAssetId":"fund"}
`

// setupPlan writes a plan folder and points the global flags at it.
// It returns the plan folder.
func setupPlan(t *testing.T, transactions string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "plan.json"), testPlan)
	writeFile(t, filepath.Join(dir, "transactions.jsonl"), transactions)

	for _, env := range []string{
		config.EnvCurrency, config.EnvDefaultAge, config.EnvCurrentYear, config.EnvMember,
		config.EnvLogLevel, config.EnvPlanDir, config.EnvTopN, config.EnvAssistModel,
	} {
		t.Setenv(env, "")
	}
	t.Chdir(dir)

	oldDir, oldConfig, oldRaw, oldLevel := *planDir, *configFile, *rawMarkdown, *logLevel
	*planDir = dir
	*configFile = filepath.Join(dir, "missing.yaml")
	*rawMarkdown = true
	*logLevel = "error"
	t.Cleanup(func() {
		*planDir, *configFile, *rawMarkdown, *logLevel = oldDir, oldConfig, oldRaw, oldLevel
	})
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
}

// run parses args for c and executes it, capturing what it prints.
func run(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("%s: Parse(%q) error = %v", c.Name(), args, err)
	}

	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	defer func() { stdout = old }()

	status := c.Execute(context.Background(), fs)
	return status, buf.String()
}

func TestCommands(t *testing.T) {
	names := make(map[string]bool)
	for group, cmds := range Commands() {
		for _, c := range cmds {
			if names[c.Name()] {
				t.Errorf("command %q is registered twice", c.Name())
			}
			names[c.Name()] = true
			if c.Synopsis() == "" || c.Usage() == "" {
				t.Errorf("command %q in group %q has no synopsis or usage", c.Name(), group)
			}
		}
	}
}

func TestSession_Ages(t *testing.T) {
	setupPlan(t, testTransactions)
	s, err := openSession(context.Background())
	if err != nil {
		t.Fatalf("openSession() error = %v", err)
	}

	ages, err := s.ages("Alex")
	if err != nil {
		t.Fatalf("ages(Alex) error = %v", err)
	}
	if ages.Member == nil || ages.Member.ID != "alex" {
		t.Errorf("ages(Alex).Member = %v, want alex", ages.Member)
	}

	if _, err := s.ages("nobody"); err == nil {
		t.Error("ages(nobody) succeeded, want an error")
	}

	ages, err = s.ages("")
	if err != nil {
		t.Fatalf("ages() error = %v", err)
	}
	if ages.Member != nil {
		t.Errorf("ages().Member = %v, want none", ages.Member)
	}
}

func TestOpenSession_ContextLogger(t *testing.T) {
	setupPlan(t, testTransactions)
	*logLevel = "debug"

	var buf bytes.Buffer
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(&buf))
	if _, err := openSession(ctx); err != nil {
		t.Fatalf("openSession() error = %v", err)
	}
	if !strings.Contains(buf.String(), "plan loaded") {
		t.Errorf("context logger did not receive the session logs: %q", buf.String())
	}
}

func TestSession_LogDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	s := &session{log: logger.NewWithWriter(&buf)}

	s.logDiagnostics(lifeplan.Diagnostics{
		{Kind: lifeplan.PriceGap, Year: 2027, AssetID: "fund", Message: "no price"},
		{Kind: lifeplan.OverSell, Year: 2028, TransactionID: "s1", AssetID: "fund"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{`"year":2027`, `"asset":"fund"`, `"level":"warn"`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line %s does not contain %s", lines[0], want)
		}
	}
	if strings.Contains(lines[0], `"transaction"`) {
		t.Errorf("first line %s has a transaction field", lines[0])
	}
	if !strings.Contains(lines[1], `"transaction":"s1"`) {
		t.Errorf("second line %s does not contain the transaction", lines[1])
	}
}
