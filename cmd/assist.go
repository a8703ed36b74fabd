package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/lifeplan/agent"
	"github.com/etnz/lifeplan/logger"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	member string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `lpc assist [-member <id>] [<prompt>...]

  Starts an interactive session with an assistant that can read the plan
  projections. The Gemini client is configured from the environment
  (GOOGLE_API_KEY or Vertex AI variables). Type 'bye' to quit.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.member, "member", "", "Member whose age is reported (default from configuration)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	s, err := openSession(ctx)
	if err != nil {
		return fail("%v", err)
	}
	p, err := s.project(c.member)
	if err != nil {
		return fail("%v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail("could not initialize Gemini's client: %v", err)
	}
	s.log.Debug().Str("model", s.cfg.Assist.Model).Msg("assistant started")
	ctx = logger.WithContext(ctx, s.log)

	a := agent.New(os.Stdout, os.Stdin, agent.NewAdvisor(s.cfg.Assist.Model, s.plan, p))
	if err := a.Run(ctx, client, prompts...); err != nil {
		return fail("assistant failed: %v", err)
	}
	return subcommands.ExitSuccess
}
