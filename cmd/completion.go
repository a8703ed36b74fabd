package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/lifeplan/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of lpc, built from the registered
// subcommands and their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmds := range Commands() {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: flagPredictors(fs)}
			if c.Name() == "topic" {
				sub.Args = topicPredictor()
			}
			root.Sub[c.Name()] = sub
		}
	}
	root.Sub["help"] = &complete.Command{Args: commandPredictor()}
	return root
}

// flagPredictors predicts flag values from their name.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = nil
			return
		}
		switch {
		case strings.HasSuffix(f.Name, "dir"):
			flags[f.Name] = predict.Dirs("*")
		case f.Name == "file":
			flags[f.Name] = predict.Files("*.json")
		case f.Name == "config":
			flags[f.Name] = predict.Files("*.yaml")
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func commandPredictor() predict.Set {
	var names predict.Set
	for _, cmds := range Commands() {
		for _, c := range cmds {
			names = append(names, c.Name())
		}
	}
	return names
}

func topicPredictor() predict.Set {
	topics, _ := docs.Topics()
	return predict.Set(append(topics, "readme"))
}
