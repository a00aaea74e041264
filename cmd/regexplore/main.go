// Command regexplore compares regression models on a CSV dataset described by
// a YAML experiment file.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/config"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/log"
)

// cliState is shared by the root command and its subcommands.
type cliState struct {
	configPath string
	logLevel   string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:   "regexplore",
		Short: "Explore regression models on a log1p-transformed target",
		Long: `regexplore loads a CSV dataset and a set of models from a YAML
experiment file and runs one of the exploration helpers:

  scores  holdout RMSE per model (worst first)
  grid    cross-validated grid search (best first)
  cv      mean 5-fold CV score per model
  blend   averaged predictions of every model`,
		SilenceUsage:      true,
		PersistentPreRunE: st.load,
	}
	root.PersistentFlags().StringVarP(&st.configPath, "config", "c", "experiment.yaml", "experiment file")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "debug, info, warn or error (overrides the experiment file)")

	root.AddCommand(
		newScoresCmd(st),
		newGridCmd(st),
		newCVCmd(st),
		newBlendCmd(st),
	)
	return root
}

// load reads the experiment file and configures logging.
func (st *cliState) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if st.logLevel != "" {
		cfg.Logging.Level = st.logLevel
	}
	if err := log.SetupLogger(cfg.Logging.Level, cmd.ErrOrStderr()); err != nil {
		return err
	}
	st.cfg = cfg
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
