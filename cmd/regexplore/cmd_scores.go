package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/core/model"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/explore"
	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/report"
)

func newScoresCmd(st *cliState) *cobra.Command {
	var chart string
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Holdout RMSE of every model on a random 80/20 split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loadTraining(st.cfg)
			if err != nil {
				return err
			}
			descs, err := descriptors(st.cfg)
			if err != nil {
				return err
			}
			models := make([]model.Model, len(descs))
			for i, d := range descs {
				models[i] = d.Model
			}

			table, err := explore.GetScores(models, data.X, data.y, st.cfg.Rand())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.ScoreTableString(table))

			if chart == "" {
				chart = st.cfg.Output.ScoreChart
			}
			if chart != "" {
				return report.SaveScoreChart(table, chart)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chart, "chart", "", "write a bar chart (png, svg, pdf)")
	return cmd
}
