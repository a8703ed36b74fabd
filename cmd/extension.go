package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/etnz/lifeplan/config"
	"github.com/etnz/lifeplan/logger"
	"github.com/google/subcommands"
)

// RunExtension attempts to find and execute an external lpc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The resolved configuration is passed to the extension as LPC_* environment
// variables, with an absolute plan folder.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "lpc-" + subcommand
	log := logger.New()

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("extension not found in PATH")
		return false, 0
	}

	cfg, log, err := loadConfig(logger.WithContext(context.Background(), log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, int(subcommands.ExitFailure)
	}
	dir, err := filepath.Abs(cfg.PlanDir)
	if err != nil {
		dir = cfg.PlanDir
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		config.EnvPlanDir+"="+dir,
		config.EnvCurrency+"="+cfg.Currency,
		config.EnvLogLevel+"="+cfg.LogLevel,
		config.EnvMember+"="+cfg.Member,
		config.EnvDefaultAge+"="+strconv.Itoa(cfg.DefaultAge),
		config.EnvCurrentYear+"="+strconv.Itoa(cfg.CurrentYear),
		config.EnvTopN+"="+strconv.Itoa(cfg.TopN),
		config.EnvAssistModel+"="+cfg.Assist.Model,
	)
	log.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, int(subcommands.ExitFailure)
	}
	return true, 0
}
