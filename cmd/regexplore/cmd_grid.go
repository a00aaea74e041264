package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/explore"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/report"
)

func newGridCmd(st *cliState) *cobra.Command {
	var (
		chart   string
		nJobs   int
		verbose int
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Cross-validated grid search over the experiment's grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := st.cfg
			if len(cfg.Grid.Params) == 0 {
				return errors.NewValidationError("grid.params", "grid search needs at least one grid", nil)
			}
			if !cmd.Flags().Changed("n-jobs") {
				nJobs = cfg.Grid.NJobs
			}
			if !cmd.Flags().Changed("verbose") {
				verbose = cfg.Grid.Verbose
			}

			data, err := loadTraining(cfg)
			if err != nil {
				return err
			}
			m, err := newModel(cfg.Grid.Kind, nil, cfg.Grid.Scale)
			if err != nil {
				return err
			}

			table, err := explore.GridSearch(m, data.X, data.y, paramGrids(cfg), verbose, nJobs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.GridTableString(table))

			if chart == "" {
				chart = cfg.Output.GridChart
			}
			if chart != "" {
				return report.SaveGridChart(table, chart)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chart, "chart", "", "write an RMSLE-by-rank chart (png, svg, pdf)")
	cmd.Flags().IntVarP(&nJobs, "n-jobs", "j", 0, "concurrent fits, -1 for every CPU")
	cmd.Flags().IntVarP(&verbose, "verbose", "v", 0, "grid search verbosity")
	return cmd
}
